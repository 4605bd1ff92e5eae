package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo's Validator interface so
// handlers can call c.Validate after binding a request body.
type Validator struct {
	validate *validator.Validate
}

var _ echo.Validator = (*Validator)(nil)

// NewValidator returns a Validator ready to be assigned to echo.Echo.Validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks the struct tags on the bound request and returns the
// validator error unchanged; callers decide the HTTP status.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
