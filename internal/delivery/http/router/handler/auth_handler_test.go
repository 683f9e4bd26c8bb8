package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"neabi/internal/domain/entity"
	domainerrors "neabi/internal/domain/errors"
	"neabi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
			assert.Equal(t, "admin@neabi.edu.br", input.Email)
			assert.Equal(t, "admin123", input.Password)

			return &usecase.LoginOutput{
				User:  &entity.User{ID: 1, Email: input.Email, Role: entity.RoleAdmin},
				Token: "signed-token",
			}, nil
		},
	}

	e := newTestEcho()
	e.POST("/api/auth/login", NewAuthHandler(uc).Login)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@neabi.edu.br","password":"admin123"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login realizado com sucesso", body["message"])
	assert.Equal(t, "signed-token", body["token"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _ usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials
		},
	}

	e := newTestEcho()
	e.POST("/api/auth/login", NewAuthHandler(uc).Login)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@neabi.edu.br","password":"wrong1"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email ou senha incorretos", body["error"])
}

func TestAuthHandler_Login_ShortPassword(t *testing.T) {
	e := newTestEcho()
	e.POST("/api/auth/login", NewAuthHandler(&fakeAuthUsecase{}).Login)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@neabi.edu.br","password":"123"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Dados inválidos", body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestAuthHandler_Register_CreatesReader(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			assert.Equal(t, entity.Role(""), input.Role)

			return &usecase.RegisterOutput{
				User: &entity.User{ID: 9, Email: input.Email, Role: entity.RoleReader},
			}, nil
		},
	}

	e := newTestEcho()
	e.POST("/api/auth/register", NewAuthHandler(uc).Register)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"novo@neabi.edu.br","password":"leitor123","firstName":"Novo","lastName":"Leitor"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Usuário criado com sucesso", body["message"])
}

func TestAuthHandler_Register_RejectsUnknownRole(t *testing.T) {
	e := newTestEcho()
	e.POST("/api/auth/register", NewAuthHandler(&fakeAuthUsecase{}).Register)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"novo@neabi.edu.br","password":"leitor123","firstName":"Novo","lastName":"Leitor","role":"superuser"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Logout_RevokesBearerToken(t *testing.T) {
	var revoked string
	uc := &fakeAuthUsecase{
		logout: func(_ context.Context, token string) error {
			revoked = token

			return nil
		},
	}

	e := newTestEcho()
	e.POST("/api/auth/logout", NewAuthHandler(uc).Logout,
		withUser(&entity.User{ID: 1, Role: entity.RoleReader}))

	rec := doJSON(e, http.MethodPost, "/api/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-token", revoked)
}

func TestAuthHandler_Verify_ReturnsUser(t *testing.T) {
	e := newTestEcho()
	e.GET("/api/auth/verify", NewAuthHandler(&fakeAuthUsecase{}).Verify,
		withUser(&entity.User{ID: 2, Email: "leitor@neabi.edu.br", Role: entity.RoleReader}))

	rec := doJSON(e, http.MethodGet, "/api/auth/verify", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["valid"])
}

func TestAuthHandler_ChangePassword_NotImplementedYet(t *testing.T) {
	e := newTestEcho()
	e.PUT("/api/auth/change-password", NewAuthHandler(&fakeAuthUsecase{}).ChangePassword,
		withUser(&entity.User{ID: 2, Role: entity.RoleReader}))

	rec := doJSON(e, http.MethodPut, "/api/auth/change-password",
		`{"currentPassword":"leitor123","newPassword":"novaSenha1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Funcionalidade de alteração de senha será implementada em breve", body["message"])
}
