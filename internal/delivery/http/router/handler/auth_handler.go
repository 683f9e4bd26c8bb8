// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strings"

	"neabi/internal/delivery/http/middleware"
	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Role      string `json:"role" validate:"omitempty,oneof=admin reader"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=6"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// Login handles the credential exchange.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login realizado com sucesso",
		"user":    output.User,
		"token":   output.Token,
	})
}

// Register creates a new account. The route is admin-gated.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Role:      entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Usuário criado com sucesso",
		"user":    output.User,
	})
}

// Logout revokes the caller's session ledger row.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.BearerToken(c)
	if token == "" {
		return domainerrors.ErrMissingToken
	}

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logout realizado com sucesso",
	})
}

// Profile returns the authenticated account.
func (h *AuthHandler) Profile(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUserNotAuthenticated
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user": user,
	})
}

// Verify confirms the token is still accepted. The middleware already did
// the work; reaching the handler means the token is valid.
func (h *AuthHandler) Verify(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUserNotAuthenticated
	}

	return c.JSON(http.StatusOK, map[string]any{
		"valid": true,
		"user":  user,
	})
}

// ChangePassword validates the payload but the operation itself is not
// available yet.
// TODO: implement once the password policy for self-service resets is agreed.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Funcionalidade de alteração de senha será implementada em breve",
	})
}
