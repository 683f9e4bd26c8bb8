package impl

import (
	"context"
	"testing"
	"time"

	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/domain/repository"
	"neabi/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostService(postRepo *fakePostRepo, taxonomyRepo *fakeTaxonomyRepo) usecase.PostUsecase {
	return NewPostService(PostServiceParams{
		TxManager:    &fakeTxManager{factory: &fakeRepoFactory{postRepo: postRepo, taxonomyRepo: taxonomyRepo}},
		PostRepo:     postRepo,
		TaxonomyRepo: taxonomyRepo,
		Logger:       newDiscardLogger(),
	})
}

func TestPostService_ListPosts_DefaultsAndPagination(t *testing.T) {
	var captured repository.PostFilter
	postRepo := &fakePostRepo{
		count: func(_ context.Context, filter repository.PostFilter) (int64, error) {
			captured = filter

			return 20, nil
		},
		list: func(_ context.Context, _ repository.PostFilter) ([]*entity.Post, error) {
			return []*entity.Post{
				{ID: 1, Title: "Primeiro", Content: "corpo completo", PublishedDate: time.Now()},
			}, nil
		},
	}

	service := newTestPostService(postRepo, &fakeTaxonomyRepo{})

	output, err := service.ListPosts(context.Background(), usecase.ListPostsInput{})

	require.NoError(t, err)
	assert.Equal(t, entity.PostStatusPublished, captured.Status)
	assert.Equal(t, 9, captured.Limit)
	assert.Equal(t, 0, captured.Offset)

	assert.Equal(t, 1, output.Pagination.CurrentPage)
	assert.Equal(t, 3, output.Pagination.TotalPages)
	assert.Equal(t, int64(20), output.Pagination.TotalPosts)
	assert.True(t, output.Pagination.HasNext)
	assert.False(t, output.Pagination.HasPrevious)

	// Listings carry the excerpt only.
	require.Len(t, output.Posts, 1)
	assert.Empty(t, output.Posts[0].Content)
}

func TestPostService_ListPosts_TodosDisablesCategoryFilter(t *testing.T) {
	var captured repository.PostFilter
	postRepo := &fakePostRepo{
		count: func(_ context.Context, filter repository.PostFilter) (int64, error) {
			captured = filter

			return 0, nil
		},
		list: func(_ context.Context, _ repository.PostFilter) ([]*entity.Post, error) {
			return nil, nil
		},
	}

	service := newTestPostService(postRepo, &fakeTaxonomyRepo{})

	_, err := service.ListPosts(context.Background(), usecase.ListPostsInput{Category: "Todos", Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Empty(t, captured.Category)
	assert.Equal(t, 5, captured.Limit)
	assert.Equal(t, 5, captured.Offset)
}

func TestPostService_GetPostBySlug_IncrementsViews(t *testing.T) {
	var bumped uint
	postRepo := &fakePostRepo{
		findBySlug: func(_ context.Context, slug string, publishedOnly bool) (*entity.Post, error) {
			assert.Equal(t, "historia-da-capoeira", slug)
			assert.True(t, publishedOnly)

			return &entity.Post{ID: 3, Slug: slug, Views: 10, PublishedDate: time.Now()}, nil
		},
		incrementViews: func(_ context.Context, id uint) error {
			bumped = id

			return nil
		},
	}

	service := newTestPostService(postRepo, &fakeTaxonomyRepo{})

	view, err := service.GetPostBySlug(context.Background(), "historia-da-capoeira")

	require.NoError(t, err)
	assert.Equal(t, uint(3), bumped)
	assert.Equal(t, 11, view.Views)
}

func TestPostService_GetPostBySlug_ViewBumpFailureIsIgnored(t *testing.T) {
	postRepo := &fakePostRepo{
		findBySlug: func(_ context.Context, slug string, _ bool) (*entity.Post, error) {
			return &entity.Post{ID: 3, Slug: slug, Views: 10, PublishedDate: time.Now()}, nil
		},
		incrementViews: func(_ context.Context, _ uint) error {
			return errors.New("update failed")
		},
	}

	service := newTestPostService(postRepo, &fakeTaxonomyRepo{})

	view, err := service.GetPostBySlug(context.Background(), "historia-da-capoeira")

	require.NoError(t, err)
	assert.Equal(t, 10, view.Views)
}

func TestPostService_GetPostBySlug_NotFound(t *testing.T) {
	postRepo := &fakePostRepo{
		findBySlug: func(_ context.Context, _ string, _ bool) (*entity.Post, error) {
			return nil, repository.ErrPostNotFound
		},
	}

	service := newTestPostService(postRepo, &fakeTaxonomyRepo{})

	_, err := service.GetPostBySlug(context.Background(), "nao-existe")

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_CreatePost_Success(t *testing.T) {
	var created *entity.Post
	var linkedTagIDs []uint
	postRepo := &fakePostRepo{
		slugExists: func(_ context.Context, slug string) (bool, error) {
			assert.Equal(t, "educacao-antirracista-na-pratica", slug)

			return false, nil
		},
		create: func(_ context.Context, post *entity.Post) error {
			post.ID = 42
			created = post

			return nil
		},
		replaceTags: func(_ context.Context, postID uint, tagIDs []uint) error {
			assert.Equal(t, uint(42), postID)
			linkedTagIDs = tagIDs

			return nil
		},
	}
	taxonomyRepo := &fakeTaxonomyRepo{
		ensureTag: func(_ context.Context, name, slug string) (*entity.Tag, error) {
			assert.Equal(t, "Educação", name)
			assert.Equal(t, "educacao", slug)

			return &entity.Tag{ID: 5, Name: name, Slug: slug}, nil
		},
	}

	service := newTestPostService(postRepo, taxonomyRepo)

	output, err := service.CreatePost(context.Background(), 1, usecase.CreatePostInput{
		Title:      "Educação Antirracista na Prática",
		Excerpt:    "Uma introdução ao tema.",
		Content:    "Conteúdo completo do post.",
		CategoryID: 2,
		Tags:       []string{"Educação"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Post criado com sucesso", output.Message)
	assert.Equal(t, uint(42), output.PostID)
	assert.Equal(t, "educacao-antirracista-na-pratica", output.Slug)

	require.NotNil(t, created)
	assert.Equal(t, uint(1), created.AuthorID)
	assert.Equal(t, "5 min", created.ReadTime)
	assert.Equal(t, entity.PostStatusPublished, created.Status)
	assert.WithinDuration(t, time.Now(), created.PublishedDate, time.Minute)
	assert.Equal(t, []uint{5}, linkedTagIDs)
}

func TestPostService_CreatePost_DuplicateTitle(t *testing.T) {
	postRepo := &fakePostRepo{
		slugExists: func(_ context.Context, _ string) (bool, error) {
			return true, nil
		},
	}

	service := newTestPostService(postRepo, &fakeTaxonomyRepo{})

	_, err := service.CreatePost(context.Background(), 1, usecase.CreatePostInput{Title: "Título Repetido"})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicatePostTitle)
}

func TestPostService_UpdatePost_NoChanges(t *testing.T) {
	postRepo := &fakePostRepo{
		findByID: func(_ context.Context, _ uint) (*entity.Post, error) {
			return &entity.Post{ID: 3}, nil
		},
	}

	service := newTestPostService(postRepo, &fakeTaxonomyRepo{})

	output, err := service.UpdatePost(context.Background(), 3, usecase.UpdatePostInput{})

	require.NoError(t, err)
	assert.Equal(t, "Nenhuma alteração detectada", output.Message)
}

func TestPostService_UpdatePost_TitleRederivesSlug(t *testing.T) {
	var updated map[string]any
	postRepo := &fakePostRepo{
		findByID: func(_ context.Context, _ uint) (*entity.Post, error) {
			return &entity.Post{ID: 3}, nil
		},
		update: func(_ context.Context, id uint, fields map[string]any) error {
			assert.Equal(t, uint(3), id)
			updated = fields

			return nil
		},
	}

	service := newTestPostService(postRepo, &fakeTaxonomyRepo{})

	title := "Novo Título do Post"
	output, err := service.UpdatePost(context.Background(), 3, usecase.UpdatePostInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Post atualizado com sucesso", output.Message)
	assert.Equal(t, "Novo Título do Post", updated["title"])
	assert.Equal(t, "novo-titulo-do-post", updated["slug"])
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	postRepo := &fakePostRepo{
		findByID: func(_ context.Context, _ uint) (*entity.Post, error) {
			return nil, repository.ErrPostNotFound
		},
	}

	service := newTestPostService(postRepo, &fakeTaxonomyRepo{})

	_, err := service.UpdatePost(context.Background(), 99, usecase.UpdatePostInput{})

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_DeletePost_NotFound(t *testing.T) {
	postRepo := &fakePostRepo{
		delete: func(_ context.Context, _ uint) error {
			return repository.ErrPostNotFound
		},
	}

	service := newTestPostService(postRepo, &fakeTaxonomyRepo{})

	err := service.DeletePost(context.Background(), 99)

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}
