// Package validator adapts the schema validator to echo.
package validator

import (
	domainerrors "giftshop/internal/domain/errors"
	"giftshop/internal/domain/service"
)

// EchoValidator implements echo.Validator on top of a SchemaValidator.
type EchoValidator struct {
	schema service.SchemaValidator
}

// New creates an echo validator. Failures come back as *errors.ValidationError.
func New(schema service.SchemaValidator) *EchoValidator {
	return &EchoValidator{schema: schema}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	if fields := v.schema.Validate(i); len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}
