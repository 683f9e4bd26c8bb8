// Package validator adapts go-playground/validator to Echo's Validator
// interface and renders rule failures as localized detail strings.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	domainerrors "neabi/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	readTimePattern  = regexp.MustCompile(`(?i)^\d+\s*(min|minutos?)$`)
	clockTimePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator. Field names in failure details come from
// the json tag, matching what the client actually sent.
func New() *echoValidator {
	validate := playground.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// read_time accepts "5 min", "10 minutos" and the like.
	_ = validate.RegisterValidation("read_time", func(fl playground.FieldLevel) bool {
		return readTimePattern.MatchString(fl.Field().String())
	})

	// hhmm accepts 24-hour clock times such as "09:30" and "23:59".
	_ = validate.RegisterValidation("hhmm", func(fl playground.FieldLevel) bool {
		return clockTimePattern.MatchString(fl.Field().String())
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator. Rule failures surface as a single
// validation error carrying one detail line per failed field.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors playground.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return domainerrors.ErrValidationFailed
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		details = append(details, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(details...)
}

// describe renders a single rule failure in the API's language.
func describe(fieldErr playground.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "email":
		return fmt.Sprintf("%s deve ser um email válido", field)
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter pelo menos %s caracteres", field, fieldErr.Param())
		}

		return fmt.Sprintf("%s deve ser no mínimo %s", field, fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fieldErr.Param())
		}

		return fmt.Sprintf("%s deve ser no máximo %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s inválido", field)
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", field, fieldErr.Param())
	case "datetime":
		return fmt.Sprintf("%s deve estar no formato %s", field, fieldErr.Param())
	case "read_time":
		return fmt.Sprintf("%s deve estar no formato \"X min\"", field)
	case "hhmm":
		return fmt.Sprintf("%s deve estar no formato HH:MM", field)
	default:
		return fmt.Sprintf("%s não satisfaz a regra %s", field, fieldErr.Tag())
	}
}
