package usecase

import (
	"context"

	"neabi/internal/domain/entity"
)

// --- Input DTOs ---

// ListPostsInput narrows and pages the public post listing. Zero values fall
// back to the defaults (page 1, limit 9, status published).
type ListPostsInput struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Featured bool
	Status   entity.PostStatus
}

// CreatePostInput defines the data required to author a post. Optional fields
// left at their zero value receive defaults (read time "5 min", status
// published).
type CreatePostInput struct {
	Title      string
	Excerpt    string
	Content    string
	CategoryID uint
	ReadTime   string
	Tags       []string
	Featured   bool
	Status     entity.PostStatus
}

// UpdatePostInput carries a partial update; nil fields are left untouched.
// Setting Title re-derives the slug. Tags, when present, replace the post's
// tag set entirely.
type UpdatePostInput struct {
	Title      *string
	Excerpt    *string
	Content    *string
	CategoryID *uint
	ReadTime   *string
	Tags       *[]string
	Featured   *bool
	Status     *entity.PostStatus
}

// --- Output DTOs ---

// PostView is the wire representation of a post. Listings omit the content
// body; the detail fetch includes it.
type PostView struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content,omitempty"`
	Author        string   `json:"author"`
	AuthorID      uint     `json:"author_id"`
	AuthorRole    string   `json:"author_role"`
	Category      string   `json:"category"`
	CategoryID    uint     `json:"category_id"`
	PublishedDate string   `json:"published_date"`
	ReadTime      string   `json:"read_time"`
	ImageURL      string   `json:"image_url"`
	Views         int      `json:"views"`
	Likes         int      `json:"likes"`
	Featured      bool     `json:"featured"`
	Status        string   `json:"status"`
	Tags          []string `json:"tags"`
}

// PostPagination describes the page window of a post listing.
type PostPagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalPosts  int64 `json:"total_posts"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// ListPostsOutput is the paged post listing.
type ListPostsOutput struct {
	Posts      []*PostView    `json:"posts"`
	Pagination PostPagination `json:"pagination"`
}

// CreatePostOutput confirms a created post.
type CreatePostOutput struct {
	Message string `json:"message"`
	PostID  uint   `json:"post_id"`
	Slug    string `json:"slug"`
}

// UpdatePostOutput confirms an update, or reports that nothing changed.
type UpdatePostOutput struct {
	Message string `json:"message"`
}

// PostUsecase defines the interface for blog post business operations.
type PostUsecase interface {
	// ListPosts returns a filtered page of posts with pagination metadata.
	ListPosts(ctx context.Context, input ListPostsInput) (*ListPostsOutput, error)

	// GetPostBySlug fetches a published post and increments its view counter.
	GetPostBySlug(ctx context.Context, slug string) (*PostView, error)

	// CreatePost authors a new post on behalf of the given admin, creating
	// missing tags and linking them in the same transaction.
	CreatePost(ctx context.Context, authorID uint, input CreatePostInput) (*CreatePostOutput, error)

	// UpdatePost applies a partial update to the post.
	UpdatePost(ctx context.Context, id uint, input UpdatePostInput) (*UpdatePostOutput, error)

	// DeletePost removes the post and its tag associations.
	DeletePost(ctx context.Context, id uint) error

	// Categories lists the post category vocabulary.
	Categories(ctx context.Context) ([]*entity.Category, error)

	// Tags lists the tag vocabulary.
	Tags(ctx context.Context) ([]*entity.Tag, error)
}
