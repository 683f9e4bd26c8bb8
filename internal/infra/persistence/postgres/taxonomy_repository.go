package postgres

import (
	"context"

	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/domain/repository"
	"neabi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// taxonomyRepository implements the domain.TaxonomyRepository interface using GORM.
type taxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository is the constructor for taxonomyRepository.
func NewTaxonomyRepository(db *gorm.DB) repository.TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

// ListCategories returns all categories ordered by name.
func (repo *taxonomyRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// ListTags returns all tags ordered by name.
func (repo *taxonomyRepository) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	var tagMs []*model.TagModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&tagMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	tags := make([]*entity.Tag, 0, len(tagMs))
	for _, tagM := range tagMs {
		tags = append(tags, toTagDomain(tagM))
	}

	return tags, nil
}

// EnsureTag inserts the tag if absent and returns the stored row either way.
// The bare ON CONFLICT DO NOTHING absorbs collisions on both unique indexes,
// name and slug, since two distinct names can normalize to the same slug; the
// follow-up read resolves the winning row's id.
func (repo *taxonomyRepository) EnsureTag(ctx context.Context, name, slug string) (*entity.Tag, error) {
	tagM := &model.TagModel{Name: name, Slug: slug}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tagM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure tag")
	}

	if tagM.ID == 0 {
		// The row already existed, fetch it.
		if err := repo.db.WithContext(ctx).
			Where("name = ? OR slug = ?", name, slug).
			First(tagM).Error; err != nil {
			return nil, errors.Wrap(err, "failed to load existing tag")
		}
	}

	return toTagDomain(tagM), nil
}

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

// toTagDomain converts a GORM TagModel to a domain Tag entity.
func toTagDomain(data *model.TagModel) *entity.Tag {
	if data == nil {
		return nil
	}

	return &entity.Tag{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		CreatedAt: data.CreatedAt,
	}
}
