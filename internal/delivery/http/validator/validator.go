// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request DTOs.
package validator

import (
	domainerrors "atlas/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type requestValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the echo server.
func New() *requestValidator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags of a bound request DTO. Failures surface as
// the domain validation error so the error handler renders a 400.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidation.WithMessagef("%s", err.Error())
	}

	return nil
}
