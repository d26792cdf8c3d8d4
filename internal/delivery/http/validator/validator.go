// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "roster/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// requestValidator wraps a validator instance for echo.
type requestValidator struct {
	validate *validator.Validate
}

// New creates a validator for request DTOs with `validate` struct tags.
func New() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the application's
// validation error so the error handler maps them to a 400.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.NewBaseError(
			domainerrors.ErrValidationFailed.HTTPCode(),
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			err.Error(),
		)
	}

	return nil
}
