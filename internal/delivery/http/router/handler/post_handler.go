package handler

import (
	"net/http"
	"strconv"
	"strings"

	"neabi/internal/delivery/http/middleware"
	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for blog post handlers.
type PostHandler struct {
	uc usecase.PostUsecase
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

type listPostsQuery struct {
	Page     int    `query:"page" json:"page" validate:"omitempty,gte=1"`
	Limit    int    `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=50"`
	Category string `query:"category" json:"category"`
	Search   string `query:"search" json:"search"`
	Featured bool   `query:"featured" json:"featured"`
	Status   string `query:"status" json:"status" validate:"omitempty,oneof=draft published archived"`
}

type createPostRequest struct {
	Title      string   `json:"title" validate:"required,min=5,max=200"`
	Excerpt    string   `json:"excerpt" validate:"required,min=10,max=300"`
	Content    string   `json:"content" validate:"required,min=50"`
	CategoryID uint     `json:"category_id" validate:"required,gte=1"`
	ReadTime   string   `json:"read_time" validate:"omitempty,read_time"`
	Tags       []string `json:"tags"`
	Featured   bool     `json:"featured"`
	Status     string   `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type updatePostRequest struct {
	Title      *string   `json:"title" validate:"omitempty,min=5,max=200"`
	Excerpt    *string   `json:"excerpt" validate:"omitempty,min=10,max=300"`
	Content    *string   `json:"content" validate:"omitempty,min=50"`
	CategoryID *uint     `json:"category_id" validate:"omitempty,gte=1"`
	ReadTime   *string   `json:"read_time" validate:"omitempty,read_time"`
	Tags       *[]string `json:"tags"`
	Featured   *bool     `json:"featured"`
	Status     *string   `json:"status" validate:"omitempty,oneof=draft published archived"`
}

// validateQuery runs the validator and relabels failures as bad query
// parameters rather than a bad body.
func validateQuery(c echo.Context, query any) error {
	err := c.Validate(query)
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return domainerrors.ErrInvalidQueryParams.WithDetails(appErr.Details()...)
	}

	return domainerrors.ErrInvalidQueryParams
}

// pathID parses the numeric id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrInvalidQueryParams
	}

	return uint(id), nil
}

// List returns the public paged post listing.
func (h *PostHandler) List(c echo.Context) error {
	var query listPostsQuery
	if err := c.Bind(&query); err != nil {
		return domainerrors.ErrInvalidQueryParams
	}
	if err := validateQuery(c, &query); err != nil {
		return err
	}

	output, err := h.uc.ListPosts(c.Request().Context(), usecase.ListPostsInput{
		Page:     query.Page,
		Limit:    query.Limit,
		Category: query.Category,
		Search:   query.Search,
		Featured: query.Featured,
		Status:   entity.PostStatus(query.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// GetBySlug returns a single published post and counts the view.
func (h *PostHandler) GetBySlug(c echo.Context) error {
	post, err := h.uc.GetPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, post)
}

// Create authors a new post as the calling admin.
func (h *PostHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUserNotAuthenticated
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Excerpt = strings.TrimSpace(req.Excerpt)
	req.Content = strings.TrimSpace(req.Content)
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.CreatePost(c.Request().Context(), user.ID, usecase.CreatePostInput{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		ReadTime:   req.ReadTime,
		Tags:       req.Tags,
		Featured:   req.Featured,
		Status:     entity.PostStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, output)
}

// Update applies a partial update to an existing post.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.UpdatePostInput{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		ReadTime:   req.ReadTime,
		Tags:       req.Tags,
		Featured:   req.Featured,
	}
	if req.Status != nil {
		status := entity.PostStatus(*req.Status)
		input.Status = &status
	}

	output, err := h.uc.UpdatePost(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Delete removes a post.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeletePost(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Post deletado com sucesso",
	})
}

// Categories lists the post category vocabulary.
func (h *PostHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, categories)
}

// Tags lists the tag vocabulary.
func (h *PostHandler) Tags(c echo.Context) error {
	tags, err := h.uc.Tags(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tags)
}
