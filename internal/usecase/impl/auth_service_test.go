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

func newTestAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	hasher *fakeHasher,
	tokenService *fakeTokenService,
) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "admin@neabi.edu.br", PasswordHash: "$hash", Role: entity.RoleAdmin}

	var recorded *entity.Session
	userRepo := &fakeUserRepo{
		findByEmail: func(_ context.Context, email string) (*entity.User, error) {
			assert.Equal(t, "admin@neabi.edu.br", email)

			return user, nil
		},
	}
	sessionRepo := &fakeSessionRepo{
		create: func(_ context.Context, session *entity.Session) error {
			recorded = session

			return nil
		},
	}
	hasher := &fakeHasher{check: func(password, hash string) bool {
		return password == "admin123" && hash == "$hash"
	}}
	tokenService := &fakeTokenService{
		generate: func(u *entity.User) (string, error) { return "signed-token", nil },
		duration: 24 * time.Hour,
	}

	service := newTestAuthService(userRepo, sessionRepo, hasher, tokenService)

	output, err := service.Login(ctx, usecase.LoginInput{Email: " Admin@NEABI.edu.br ", Password: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, user, output.User)
	require.NotNil(t, recorded)
	assert.Equal(t, user.ID, recorded.UserID)
	assert.Equal(t, "signed-token", recorded.Token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), recorded.ExpiresAt, time.Minute)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}

	service := newTestAuthService(userRepo, &fakeSessionRepo{}, &fakeHasher{}, &fakeTokenService{})

	_, err := service.Login(context.Background(), usecase.LoginInput{Email: "ghost@neabi.edu.br", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*entity.User, error) {
			return &entity.User{ID: 1, PasswordHash: "$hash"}, nil
		},
	}
	hasher := &fakeHasher{check: func(_, _ string) bool { return false }}

	service := newTestAuthService(userRepo, &fakeSessionRepo{}, hasher, &fakeTokenService{})

	_, err := service.Login(context.Background(), usecase.LoginInput{Email: "admin@neabi.edu.br", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_SessionInsertFailureDoesNotFailLogin(t *testing.T) {
	userRepo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*entity.User, error) {
			return &entity.User{ID: 1, PasswordHash: "$hash"}, nil
		},
	}
	sessionRepo := &fakeSessionRepo{
		create: func(_ context.Context, _ *entity.Session) error {
			return errors.New("insert failed")
		},
	}
	hasher := &fakeHasher{check: func(_, _ string) bool { return true }}
	tokenService := &fakeTokenService{
		generate: func(_ *entity.User) (string, error) { return "signed-token", nil },
		duration: time.Hour,
	}

	service := newTestAuthService(userRepo, sessionRepo, hasher, tokenService)

	output, err := service.Login(context.Background(), usecase.LoginInput{Email: "admin@neabi.edu.br", Password: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Register_DefaultsToReaderRole(t *testing.T) {
	var created *entity.User
	userRepo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
		create: func(_ context.Context, user *entity.User) error {
			user.ID = 7
			created = user

			return nil
		},
	}
	hasher := &fakeHasher{hash: func(password string) (string, error) {
		assert.Equal(t, "leitor123", password)

		return "$hashed", nil
	}}

	service := newTestAuthService(userRepo, &fakeSessionRepo{}, hasher, &fakeTokenService{})

	output, err := service.Register(context.Background(), usecase.RegisterInput{
		Email:     "Novo@NEABI.edu.br",
		Password:  "leitor123",
		FirstName: "Novo",
		LastName:  "Leitor",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "novo@neabi.edu.br", created.Email)
	assert.Equal(t, "$hashed", created.PasswordHash)
	assert.Equal(t, entity.RoleReader, created.Role)
	assert.Equal(t, uint(7), output.User.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*entity.User, error) {
			return &entity.User{ID: 1}, nil
		},
	}

	service := newTestAuthService(userRepo, &fakeSessionRepo{}, &fakeHasher{}, &fakeTokenService{})

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Email:    "admin@neabi.edu.br",
		Password: "admin123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	var revoked string
	sessionRepo := &fakeSessionRepo{
		deleteByToken: func(_ context.Context, token string) error {
			revoked = token

			return nil
		},
	}

	service := newTestAuthService(&fakeUserRepo{}, sessionRepo, &fakeHasher{}, &fakeTokenService{})

	err := service.Logout(context.Background(), "signed-token")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", revoked)
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	userRepo := &fakeUserRepo{
		findByID: func(_ context.Context, _ uint) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}

	service := newTestAuthService(userRepo, &fakeSessionRepo{}, &fakeHasher{}, &fakeTokenService{})

	_, err := service.Profile(context.Background(), 99)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
