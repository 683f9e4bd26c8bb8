package entity

import "time"

// PostStatus controls a post's public visibility.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// IsValid checks if the PostStatus is a valid value.
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	default:
		return false
	}
}

// Post is a blog article. Author, Category and Tags are denormalized from the
// joined rows so the query layer can hand listings straight to the delivery
// layer.
type Post struct {
	ID            uint
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	AuthorID      uint
	Author        string
	CategoryID    uint
	Category      string
	PublishedDate time.Time
	ReadTime      string
	ImageURL      string
	Views         int
	Likes         int
	Featured      bool
	Status        PostStatus
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
