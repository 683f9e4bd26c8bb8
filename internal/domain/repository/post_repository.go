package repository

import (
	"context"

	"neabi/internal/domain/entity"
	"neabi/internal/errors"
)

// ErrPostNotFound is returned when no post matches the lookup.
var ErrPostNotFound = errors.New("post not found")

// PostFilter narrows post listings. Zero values mean "no filter"; Status is
// always set by the use case (default "published").
type PostFilter struct {
	Status   entity.PostStatus
	Category string // category name, "" or "Todos" disables the filter
	Search   string // substring match on title, excerpt and author name
	Featured bool
	Limit    int
	Offset   int
}

// PostRepository persists blog posts and their tag associations.
type PostRepository interface {
	// List returns a page of posts joined with author name, category name and
	// tag names, ordered by published date descending.
	List(ctx context.Context, filter PostFilter) ([]*entity.Post, error)

	// Count returns the total number of posts matching the filter, ignoring
	// Limit and Offset.
	Count(ctx context.Context, filter PostFilter) (int64, error)

	// FindBySlug retrieves a single post with its joins. When publishedOnly is
	// true, only posts with published status are visible.
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.Post, error)

	// FindByID retrieves a post row without joins.
	FindByID(ctx context.Context, id uint) (*entity.Post, error)

	// SlugExists reports whether any post already uses the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Create persists a new post row and backfills the generated ID.
	Create(ctx context.Context, post *entity.Post) error

	// Update applies the given column values to the post. The fields map uses
	// column names; updated_at is always refreshed.
	Update(ctx context.Context, id uint, fields map[string]any) error

	// Delete hard-deletes the post; tag associations cascade.
	Delete(ctx context.Context, id uint) error

	// IncrementViews bumps the view counter after a successful detail fetch.
	IncrementViews(ctx context.Context, id uint) error

	// ReplaceTags removes all tag associations of the post and links the
	// given tag ids instead.
	ReplaceTags(ctx context.Context, postID uint, tagIDs []uint) error
}
