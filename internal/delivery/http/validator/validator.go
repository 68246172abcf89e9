// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	validate "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validator *validate.Validate
}

// New creates a validator for Echo using struct tag rules.
func New() echo.Validator {
	return &echoValidator{validator: validate.New()}
}

func (v *echoValidator) Validate(i any) error {
	if err := v.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
