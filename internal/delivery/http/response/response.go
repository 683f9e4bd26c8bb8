// Package response renders the API's wire formats. Success bodies are the
// usecase DTOs as-is; failures always carry an "error" message and, for
// validation, per-field "details".
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform failure payload.
type ErrorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Error writes a failure with the given status.
func Error(c echo.Context, statusCode int, message string, details ...string) error {
	return c.JSON(statusCode, ErrorBody{Error: message, Details: details})
}

// InternalError writes the generic 500 failure.
func InternalError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "Erro interno do servidor")
}
