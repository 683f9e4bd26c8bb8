package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"neabi/internal/delivery/http/middleware"
	"neabi/internal/delivery/http/validator"
	"neabi/internal/domain/entity"
	"neabi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// newTestEcho builds an echo instance with the same validator and error
// handler the real server wires, so tests observe the final wire format.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// withUser injects an authenticated account the way the auth middleware does.
func withUser(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("authUser", user)
			c.Set("authToken", "test-token")

			return next(c)
		}
	}
}

type fakeAuthUsecase struct {
	login    func(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error)
	register func(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error)
	logout   func(ctx context.Context, token string) error
	profile  func(ctx context.Context, userID uint) (*entity.User, error)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return f.login(ctx, input)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return f.register(ctx, input)
}

func (f *fakeAuthUsecase) Logout(ctx context.Context, token string) error {
	return f.logout(ctx, token)
}

func (f *fakeAuthUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	return f.profile(ctx, userID)
}

type fakePostUsecase struct {
	listPosts     func(ctx context.Context, input usecase.ListPostsInput) (*usecase.ListPostsOutput, error)
	getPostBySlug func(ctx context.Context, slug string) (*usecase.PostView, error)
	createPost    func(ctx context.Context, authorID uint, input usecase.CreatePostInput) (*usecase.CreatePostOutput, error)
	updatePost    func(ctx context.Context, id uint, input usecase.UpdatePostInput) (*usecase.UpdatePostOutput, error)
	deletePost    func(ctx context.Context, id uint) error
	categories    func(ctx context.Context) ([]*entity.Category, error)
	tags          func(ctx context.Context) ([]*entity.Tag, error)
}

func (f *fakePostUsecase) ListPosts(ctx context.Context, input usecase.ListPostsInput) (*usecase.ListPostsOutput, error) {
	return f.listPosts(ctx, input)
}

func (f *fakePostUsecase) GetPostBySlug(ctx context.Context, slug string) (*usecase.PostView, error) {
	return f.getPostBySlug(ctx, slug)
}

func (f *fakePostUsecase) CreatePost(ctx context.Context, authorID uint, input usecase.CreatePostInput) (*usecase.CreatePostOutput, error) {
	return f.createPost(ctx, authorID, input)
}

func (f *fakePostUsecase) UpdatePost(ctx context.Context, id uint, input usecase.UpdatePostInput) (*usecase.UpdatePostOutput, error) {
	return f.updatePost(ctx, id, input)
}

func (f *fakePostUsecase) DeletePost(ctx context.Context, id uint) error {
	return f.deletePost(ctx, id)
}

func (f *fakePostUsecase) Categories(ctx context.Context) ([]*entity.Category, error) {
	return f.categories(ctx)
}

func (f *fakePostUsecase) Tags(ctx context.Context) ([]*entity.Tag, error) {
	return f.tags(ctx)
}

type fakeEventUsecase struct {
	listEvents     func(ctx context.Context, input usecase.ListEventsInput) (*usecase.ListEventsOutput, error)
	getEventBySlug func(ctx context.Context, slug string) (*usecase.EventView, error)
	createEvent    func(ctx context.Context, input usecase.CreateEventInput) (*usecase.CreateEventOutput, error)
	updateEvent    func(ctx context.Context, id uint, input usecase.UpdateEventInput) (*usecase.UpdateEventOutput, error)
	deleteEvent    func(ctx context.Context, id uint) error
	register       func(ctx context.Context, id uint) error
	categories     func(ctx context.Context) ([]string, error)
	stats          func(ctx context.Context) (*entity.EventStats, error)
}

func (f *fakeEventUsecase) ListEvents(ctx context.Context, input usecase.ListEventsInput) (*usecase.ListEventsOutput, error) {
	return f.listEvents(ctx, input)
}

func (f *fakeEventUsecase) GetEventBySlug(ctx context.Context, slug string) (*usecase.EventView, error) {
	return f.getEventBySlug(ctx, slug)
}

func (f *fakeEventUsecase) CreateEvent(ctx context.Context, input usecase.CreateEventInput) (*usecase.CreateEventOutput, error) {
	return f.createEvent(ctx, input)
}

func (f *fakeEventUsecase) UpdateEvent(ctx context.Context, id uint, input usecase.UpdateEventInput) (*usecase.UpdateEventOutput, error) {
	return f.updateEvent(ctx, id, input)
}

func (f *fakeEventUsecase) DeleteEvent(ctx context.Context, id uint) error {
	return f.deleteEvent(ctx, id)
}

func (f *fakeEventUsecase) Register(ctx context.Context, id uint) error {
	return f.register(ctx, id)
}

func (f *fakeEventUsecase) Categories(ctx context.Context) ([]string, error) {
	return f.categories(ctx)
}

func (f *fakeEventUsecase) Stats(ctx context.Context) (*entity.EventStats, error) {
	return f.stats(ctx)
}
