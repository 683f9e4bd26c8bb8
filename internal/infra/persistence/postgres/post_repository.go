package postgres

import (
	"context"
	"time"

	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/domain/repository"
	"neabi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// applyPostFilter narrows a blog_posts query. The author and category joins
// are always present because both the search and category filters reach
// across them.
func (repo *postRepository) applyPostFilter(db *gorm.DB, filter repository.PostFilter) *gorm.DB {
	db = db.
		Joins("JOIN users ON users.id = blog_posts.author_id").
		Joins("JOIN categories ON categories.id = blog_posts.category_id")

	if filter.Status != "" {
		db = db.Where("blog_posts.status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		db = db.Where("categories.name = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where(
			"blog_posts.title ILIKE ? OR blog_posts.excerpt ILIKE ? OR (users.first_name || ' ' || users.last_name) ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Featured {
		db = db.Where("blog_posts.featured = ?", true)
	}

	return db
}

// List returns a page of posts ordered by published date descending, with
// author name, category name and tags resolved.
func (repo *postRepository) List(ctx context.Context, filter repository.PostFilter) ([]*entity.Post, error) {
	var postMs []*model.PostModel

	db := repo.applyPostFilter(repo.db.WithContext(ctx).Model(&model.PostModel{}), filter).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("blog_posts.published_date DESC")

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	if err := db.Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Count returns the number of posts matching the filter.
func (repo *postRepository) Count(ctx context.Context, filter repository.PostFilter) (int64, error) {
	var count int64
	db := repo.applyPostFilter(repo.db.WithContext(ctx).Model(&model.PostModel{}), filter)
	if err := db.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count posts")
	}

	return count, nil
}

// FindBySlug retrieves a single post with its associations.
func (repo *postRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.Post, error) {
	var postM model.PostModel

	db := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("slug = ?", slug)
	if publishedOnly {
		db = db.Where("status = ?", string(entity.PostStatusPublished))
	}

	if err := db.First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	return toPostDomain(&postM), nil
}

// FindByID retrieves a post row without its associations.
func (repo *postRepository) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).First(&postM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// SlugExists reports whether any post already uses the slug.
func (repo *postRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check post slug")
	}

	return count > 0, nil
}

// Create persists a new post row. Tag associations are linked separately via
// ReplaceTags so the caller controls them inside its transaction.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicatePostTitle
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown category or author")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update applies the given column values to the post.
func (repo *postRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicatePostTitle
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown category")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete hard-deletes the post. Tag associations are removed by the join
// table's ON DELETE CASCADE.
func (repo *postRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// IncrementViews bumps the view counter in place.
func (repo *postRepository) IncrementViews(ctx context.Context, id uint) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment post views")
	}

	return nil
}

// ReplaceTags removes all tag associations of the post and links the given
// tag ids instead.
func (repo *postRepository) ReplaceTags(ctx context.Context, postID uint, tagIDs []uint) error {
	if err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&model.PostTagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear post tags")
	}

	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]model.PostTagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, model.PostTagModel{PostID: postID, TagID: tagID})
	}

	if err := repo.db.WithContext(ctx).Create(&links).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to link post tags")
	}

	return nil
}

// toPostDomain converts a GORM PostModel to a domain Post entity, flattening
// the joined author, category and tag rows into display fields.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	post := &entity.Post{
		ID:            data.ID,
		Title:         data.Title,
		Slug:          data.Slug,
		Excerpt:       data.Excerpt,
		Content:       data.Content,
		AuthorID:      data.AuthorID,
		CategoryID:    data.CategoryID,
		PublishedDate: data.PublishedDate,
		ReadTime:      data.ReadTime,
		ImageURL:      data.ImageURL,
		Views:         data.Views,
		Likes:         data.Likes,
		Featured:      data.Featured,
		Status:        entity.PostStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.Author != nil {
		post.Author = data.Author.FirstName + " " + data.Author.LastName
	}
	if data.Category != nil {
		post.Category = data.Category.Name
	}

	post.Tags = make([]string, 0, len(data.Tags))
	for _, tag := range data.Tags {
		post.Tags = append(post.Tags, tag.Name)
	}

	return post
}

// fromPostDomain converts a domain Post entity to a GORM PostModel. Tag
// associations are intentionally left out; ReplaceTags manages the join rows.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:            data.ID,
		Title:         data.Title,
		Slug:          data.Slug,
		Excerpt:       data.Excerpt,
		Content:       data.Content,
		AuthorID:      data.AuthorID,
		CategoryID:    data.CategoryID,
		PublishedDate: data.PublishedDate,
		ReadTime:      data.ReadTime,
		ImageURL:      data.ImageURL,
		Views:         data.Views,
		Likes:         data.Likes,
		Featured:      data.Featured,
		Status:        string(data.Status),
	}
}
