package repository

import (
	"context"

	"neabi/internal/domain/entity"
)

// TaxonomyRepository persists the category and tag vocabulary.
type TaxonomyRepository interface {
	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListTags returns all tags ordered by name.
	ListTags(ctx context.Context) ([]*entity.Tag, error)

	// EnsureTag inserts the tag if absent and returns the stored row either
	// way. The insert is idempotent on the unique name.
	EnsureTag(ctx context.Context, name, slug string) (*entity.Tag, error)
}
