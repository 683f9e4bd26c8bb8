package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"neabi/internal/domain/entity"
	"neabi/internal/domain/repository"
	"neabi/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// The fakes below implement the repository and service contracts with
// overridable function fields. A test sets only the calls it expects; an
// unexpected call hits a nil function and panics, failing the test loudly.

type fakeUserRepo struct {
	findByID    func(ctx context.Context, id uint) (*entity.User, error)
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	create      func(ctx context.Context, user *entity.User) error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return f.findByID(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.findByEmail(ctx, email)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.create(ctx, user)
}

type fakeSessionRepo struct {
	create        func(ctx context.Context, session *entity.Session) error
	deleteByToken func(ctx context.Context, token string) error
	deleteExpired func(ctx context.Context, now time.Time) (int64, error)
	existsByToken func(ctx context.Context, token string) (bool, error)
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return f.create(ctx, session)
}

func (f *fakeSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	return f.deleteByToken(ctx, token)
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return f.deleteExpired(ctx, now)
}

func (f *fakeSessionRepo) ExistsByToken(ctx context.Context, token string) (bool, error) {
	return f.existsByToken(ctx, token)
}

type fakeTokenService struct {
	generate func(user *entity.User) (string, error)
	validate func(tokenString string) (*service.Claims, error)
	duration time.Duration
}

func (f *fakeTokenService) Generate(user *entity.User) (string, error) {
	return f.generate(user)
}

func (f *fakeTokenService) Validate(tokenString string) (*service.Claims, error) {
	return f.validate(tokenString)
}

func (f *fakeTokenService) TokenDuration() time.Duration {
	return f.duration
}

type fakeHasher struct {
	hash  func(password string) (string, error)
	check func(password, hash string) bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	return f.hash(password)
}

func (f *fakeHasher) Check(password, hash string) bool {
	return f.check(password, hash)
}

type fakePostRepo struct {
	list           func(ctx context.Context, filter repository.PostFilter) ([]*entity.Post, error)
	count          func(ctx context.Context, filter repository.PostFilter) (int64, error)
	findBySlug     func(ctx context.Context, slug string, publishedOnly bool) (*entity.Post, error)
	findByID       func(ctx context.Context, id uint) (*entity.Post, error)
	slugExists     func(ctx context.Context, slug string) (bool, error)
	create         func(ctx context.Context, post *entity.Post) error
	update         func(ctx context.Context, id uint, fields map[string]any) error
	delete         func(ctx context.Context, id uint) error
	incrementViews func(ctx context.Context, id uint) error
	replaceTags    func(ctx context.Context, postID uint, tagIDs []uint) error
}

func (f *fakePostRepo) List(ctx context.Context, filter repository.PostFilter) ([]*entity.Post, error) {
	return f.list(ctx, filter)
}

func (f *fakePostRepo) Count(ctx context.Context, filter repository.PostFilter) (int64, error) {
	return f.count(ctx, filter)
}

func (f *fakePostRepo) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.Post, error) {
	return f.findBySlug(ctx, slug, publishedOnly)
}

func (f *fakePostRepo) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	return f.findByID(ctx, id)
}

func (f *fakePostRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return f.slugExists(ctx, slug)
}

func (f *fakePostRepo) Create(ctx context.Context, post *entity.Post) error {
	return f.create(ctx, post)
}

func (f *fakePostRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	return f.update(ctx, id, fields)
}

func (f *fakePostRepo) Delete(ctx context.Context, id uint) error {
	return f.delete(ctx, id)
}

func (f *fakePostRepo) IncrementViews(ctx context.Context, id uint) error {
	return f.incrementViews(ctx, id)
}

func (f *fakePostRepo) ReplaceTags(ctx context.Context, postID uint, tagIDs []uint) error {
	return f.replaceTags(ctx, postID, tagIDs)
}

type fakeTaxonomyRepo struct {
	listCategories func(ctx context.Context) ([]*entity.Category, error)
	listTags       func(ctx context.Context) ([]*entity.Tag, error)
	ensureTag      func(ctx context.Context, name, slug string) (*entity.Tag, error)
}

func (f *fakeTaxonomyRepo) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return f.listCategories(ctx)
}

func (f *fakeTaxonomyRepo) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	return f.listTags(ctx)
}

func (f *fakeTaxonomyRepo) EnsureTag(ctx context.Context, name, slug string) (*entity.Tag, error) {
	return f.ensureTag(ctx, name, slug)
}

type fakeEventRepo struct {
	list               func(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error)
	count              func(ctx context.Context, filter repository.EventFilter) (int64, error)
	findBySlug         func(ctx context.Context, slug string) (*entity.Event, error)
	findByID           func(ctx context.Context, id uint) (*entity.Event, error)
	slugExists         func(ctx context.Context, slug string) (bool, error)
	create             func(ctx context.Context, event *entity.Event) error
	update             func(ctx context.Context, id uint, fields map[string]any) error
	delete             func(ctx context.Context, id uint) error
	register           func(ctx context.Context, id uint) error
	distinctCategories func(ctx context.Context) ([]string, error)
	stats              func(ctx context.Context) (*entity.EventStats, error)
}

func (f *fakeEventRepo) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error) {
	return f.list(ctx, filter)
}

func (f *fakeEventRepo) Count(ctx context.Context, filter repository.EventFilter) (int64, error) {
	return f.count(ctx, filter)
}

func (f *fakeEventRepo) FindBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	return f.findBySlug(ctx, slug)
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id uint) (*entity.Event, error) {
	return f.findByID(ctx, id)
}

func (f *fakeEventRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return f.slugExists(ctx, slug)
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entity.Event) error {
	return f.create(ctx, event)
}

func (f *fakeEventRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	return f.update(ctx, id, fields)
}

func (f *fakeEventRepo) Delete(ctx context.Context, id uint) error {
	return f.delete(ctx, id)
}

func (f *fakeEventRepo) Register(ctx context.Context, id uint) error {
	return f.register(ctx, id)
}

func (f *fakeEventRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	return f.distinctCategories(ctx)
}

func (f *fakeEventRepo) Stats(ctx context.Context) (*entity.EventStats, error) {
	return f.stats(ctx)
}

// fakeTxManager runs the unit of work against the given factory without any
// real transaction.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (f *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

type fakeRepoFactory struct {
	postRepo     repository.PostRepository
	taxonomyRepo repository.TaxonomyRepository
}

func (f *fakeRepoFactory) PostRepo() repository.PostRepository {
	return f.postRepo
}

func (f *fakeRepoFactory) TaxonomyRepo() repository.TaxonomyRepository {
	return f.taxonomyRepo
}
