package middleware

import (
	"strings"

	"neabi/config"
	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/domain/repository"
	"neabi/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// contextKeyUser stores the authenticated *entity.User on echo.Context.
	contextKeyUser = "authUser"
	// contextKeyToken stores the raw bearer string on echo.Context.
	contextKeyToken = "authToken"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc      service.TokenService
	userRepo      repository.UserRepository
	sessionRepo   repository.SessionRepository
	ledgerChecked bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(
	tokenSvc service.TokenService,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	cfg *config.Config,
) *AuthMiddleware {
	ledgerChecked := false
	if cfg.Auth != nil {
		ledgerChecked = cfg.Auth.LedgerChecked
	}

	return &AuthMiddleware{
		tokenSvc:      tokenSvc,
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		ledgerChecked: ledgerChecked,
	}
}

// Authenticate validates the bearer token and attaches the account behind it
// to the request context. By default the token is self-validating; with
// ledger-checked verification enabled, a revoked token is rejected even
// before its expiry.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractBearer(c)
		if tokenString == "" {
			return domainerrors.ErrMissingToken
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		if m.ledgerChecked {
			live, err := m.sessionRepo.ExistsByToken(c.Request().Context(), tokenString)
			if err != nil {
				return errors.Wrap(err, "failed to check session ledger")
			}
			if !live {
				return domainerrors.ErrInvalidToken
			}
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load authenticated user")
		}

		c.Set(contextKeyUser, user)
		c.Set(contextKeyToken, tokenString)

		return next(c)
	}
}

// RequireAdmin rejects non-admin callers. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return domainerrors.ErrUserNotAuthenticated
		}

		if !user.Role.IsAdmin() {
			return domainerrors.ErrAdminOnly
		}

		return next(c)
	}
}

// CurrentUser returns the authenticated account attached by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok
}

// BearerToken returns the raw bearer string attached by Authenticate.
func BearerToken(c echo.Context) string {
	token, _ := c.Get(contextKeyToken).(string)

	return token
}

func extractBearer(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return strings.TrimSpace(tokenString)
}
