package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/devfolio/internal/auth"
	"github.com/jonathan/devfolio/internal/rendering"
)

// ErrNotFound indicates the referenced list entry does not exist
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidPassword *auth.ErrInvalidPassword
		incorrectAnswer *auth.ErrIncorrectAnswer
		missingFields   *auth.ErrMissingFields
		tooShort        *auth.ErrPasswordTooShort
		notFound        *ErrNotFound
		validation      *ErrValidation
		fieldErrors     validator.ValidationErrors
		renderErr       *rendering.RenderError
	)

	switch {
	case errors.As(err, &invalidPassword), errors.As(err, &incorrectAnswer):
		return http.StatusUnauthorized
	case errors.As(err, &missingFields), errors.As(err, &tooShort),
		errors.As(err, &validation), errors.As(err, &fieldErrors), errors.As(err, &renderErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
