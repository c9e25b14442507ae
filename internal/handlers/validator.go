package handlers

import (
	"github.com/labstack/echo/v4"

	"tradesim/internal/validation"
)

// CustomValidator implements echo.Validator over the shared rule set
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates the echo request validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.GetValidate().Struct(i)
}
