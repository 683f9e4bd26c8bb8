package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "neabi/internal/delivery/context"
	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/domain/repository"
	"neabi/internal/slug"
	"neabi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPostPageSize = 9
	defaultReadTime     = "5 min"

	// authorRole is the fixed display role attached to every post author.
	authorRole = "Membro da Equipe NEABI"

	// filterAll is the sentinel category value that disables a filter.
	filterAll = "Todos"

	noChangesMessage = "Nenhuma alteração detectada"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager    repository.TransactionManager
	postRepo     repository.PostRepository
	taxonomyRepo repository.TaxonomyRepository
	logger       *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PostRepo     repository.PostRepository
	TaxonomyRepo repository.TaxonomyRepository
	Logger       *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager:    params.TxManager,
		postRepo:     params.PostRepo,
		taxonomyRepo: params.TaxonomyRepo,
		logger:       params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPosts returns a filtered page of posts with pagination metadata.
func (srv *postService) ListPosts(ctx context.Context, input usecase.ListPostsInput) (*usecase.ListPostsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPostPageSize
	}
	status := input.Status
	if status == "" {
		status = entity.PostStatusPublished
	}
	category := input.Category
	if category == filterAll {
		category = ""
	}

	filter := repository.PostFilter{
		Status:   status,
		Category: category,
		Search:   input.Search,
		Featured: input.Featured,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	total, err := srv.postRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count posts")
	}

	posts, err := srv.postRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	views := make([]*usecase.PostView, 0, len(posts))
	for _, post := range posts {
		view := toPostView(post)
		// Listings carry the excerpt only.
		view.Content = ""
		views = append(views, view)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.ListPostsOutput{
		Posts: views,
		Pagination: usecase.PostPagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalPosts:  total,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	}, nil
}

// GetPostBySlug fetches a published post and bumps its view counter. The
// increment is best effort; a failed bump never fails the fetch.
func (srv *postService) GetPostBySlug(ctx context.Context, slugStr string) (*usecase.PostView, error) {
	post, err := srv.postRepo.FindBySlug(ctx, slugStr, true)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to load post")
	}

	if err := srv.postRepo.IncrementViews(ctx, post.ID); err != nil {
		srv.log(ctx).Warn("Failed to increment post views", slog.Any("postID", post.ID), slog.Any("error", err))
	} else {
		post.Views++
	}

	return toPostView(post), nil
}

// CreatePost authors a new post. The post row, tag creation and tag links
// happen in one transaction so a failed link never leaves a half-created
// post behind.
func (srv *postService) CreatePost(ctx context.Context, authorID uint, input usecase.CreatePostInput) (*usecase.CreatePostOutput, error) {
	slugStr := slug.Make(input.Title)

	exists, err := srv.postRepo.SlugExists(ctx, slugStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check post slug")
	}
	if exists {
		return nil, domainerrors.ErrDuplicatePostTitle
	}

	readTime := input.ReadTime
	if readTime == "" {
		readTime = defaultReadTime
	}
	status := input.Status
	if status == "" {
		status = entity.PostStatusPublished
	}

	post := &entity.Post{
		Title:         input.Title,
		Slug:          slugStr,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		AuthorID:      authorID,
		CategoryID:    input.CategoryID,
		PublishedDate: time.Now(),
		ReadTime:      readTime,
		Featured:      input.Featured,
		Status:        status,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		if err := postRepo.Create(ctx, post); err != nil {
			return err
		}

		return srv.linkTags(ctx, repoFactory, post.ID, input.Tags)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create post", slog.String("title", input.Title), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.String("slug", slugStr))

	return &usecase.CreatePostOutput{
		Message: "Post criado com sucesso",
		PostID:  post.ID,
		Slug:    slugStr,
	}, nil
}

// linkTags ensures every tag exists and replaces the post's tag links.
func (srv *postService) linkTags(ctx context.Context, repoFactory repository.RepositoryFactory, postID uint, tags []string) error {
	if tags == nil {
		return nil
	}

	taxonomyRepo := repoFactory.TaxonomyRepo()

	tagIDs := make([]uint, 0, len(tags))
	for _, name := range tags {
		tag, err := taxonomyRepo.EnsureTag(ctx, name, slug.Make(name))
		if err != nil {
			return errors.Wrapf(err, "failed to ensure tag %q", name)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	return repoFactory.PostRepo().ReplaceTags(ctx, postID, tagIDs)
}

// UpdatePost applies a partial update. A request with no recognized fields
// reports "no changes" without touching the row.
func (srv *postService) UpdatePost(ctx context.Context, id uint, input usecase.UpdatePostInput) (*usecase.UpdatePostOutput, error) {
	if _, err := srv.postRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to load post for update")
	}

	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
		fields["slug"] = slug.Make(*input.Title)
	}
	if input.Excerpt != nil {
		fields["excerpt"] = *input.Excerpt
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.ReadTime != nil {
		fields["read_time"] = *input.ReadTime
	}
	if input.Featured != nil {
		fields["featured"] = *input.Featured
	}
	if input.Status != nil {
		fields["status"] = string(*input.Status)
	}

	if len(fields) == 0 && input.Tags == nil {
		return &usecase.UpdatePostOutput{Message: noChangesMessage}, nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if len(fields) > 0 {
			if err := repoFactory.PostRepo().Update(ctx, id, fields); err != nil {
				return err
			}
		}

		if input.Tags != nil {
			return srv.linkTags(ctx, repoFactory, id, *input.Tags)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update post", slog.Any("postID", id), slog.Any("error", err))

		return nil, err
	}

	return &usecase.UpdatePostOutput{Message: "Post atualizado com sucesso"}, nil
}

// DeletePost removes the post; the join table cascade drops its tag links.
func (srv *postService) DeletePost(ctx context.Context, id uint) error {
	if err := srv.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", id))

	return nil
}

// Categories lists the post category vocabulary.
func (srv *postService) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.taxonomyRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Tags lists the tag vocabulary.
func (srv *postService) Tags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := srv.taxonomyRepo.ListTags(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

// toPostView flattens a post entity into its wire representation.
func toPostView(post *entity.Post) *usecase.PostView {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	return &usecase.PostView{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		Content:       post.Content,
		Author:        post.Author,
		AuthorID:      post.AuthorID,
		AuthorRole:    authorRole,
		Category:      post.Category,
		CategoryID:    post.CategoryID,
		PublishedDate: post.PublishedDate.Format(time.RFC3339),
		ReadTime:      post.ReadTime,
		ImageURL:      post.ImageURL,
		Views:         post.Views,
		Likes:         post.Likes,
		Featured:      post.Featured,
		Status:        string(post.Status),
		Tags:          tags,
	}
}
