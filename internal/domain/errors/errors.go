// Package errors defines the application error taxonomy. Every error that may
// reach the delivery layer carries an HTTP status, a business code and a
// user-facing message in Portuguese; raw storage errors never leave this
// package's DatabaseExecuteError wrapper.
package errors

import (
	"net/http"

	"neabi/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() []string // Per-field detail messages (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   []string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns per-field detail messages
func (e *BaseError) Details() []string {
	return e.details
}

// WithDetails returns a copy of the error carrying per-field detail messages
func (e *BaseError) WithDetails(details ...string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Token de acesso requerido",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusForbidden,
		"INVALID_TOKEN",
		"Token inválido",
	)

	ErrUserNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Usuário não autenticado",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email ou senha incorretos",
	)

	ErrAdminOnly = NewBaseError(
		http.StatusForbidden,
		"ADMIN_ONLY",
		"Acesso negado. Apenas administradores.",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"Acesso negado",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"USER_NOT_FOUND",
		"Usuário não encontrado",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"Usuário já existe",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
	)

	ErrInvalidQueryParams = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUERY_PARAMS",
		"Parâmetros inválidos",
	)

	// Post-related errors
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Post não encontrado",
	)

	ErrDuplicatePostTitle = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_POST_TITLE",
		"Já existe um post com este título",
	)

	// Event-related errors
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Evento não encontrado",
	)

	ErrDuplicateEventTitle = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_EVENT_TITLE",
		"Já existe um evento com este título",
	)

	ErrRegistrationNotRequired = NewBaseError(
		http.StatusBadRequest,
		"REGISTRATION_NOT_REQUIRED",
		"Este evento não requer inscrição",
	)

	ErrEventFull = NewBaseError(
		http.StatusBadRequest,
		"EVENT_FULL",
		"Evento lotado",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do servidor",
	)
)

// DatabaseExecuteError wraps a storage failure. The wrapped error is kept for
// logs; the client only ever sees the generic internal-error message.
type DatabaseExecuteError struct {
	err     error
	context string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, context string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		context: context,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.context).Error()
}

// Unwrap exposes the underlying storage error for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Erro interno do servidor"
}

// Details returns per-field detail messages
func (e *DatabaseExecuteError) Details() []string {
	return nil
}
