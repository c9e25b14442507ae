package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("ticker_symbol", validateTickerSymbol)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)

// validateUsername validates that a username is 3-32 characters of letters,
// digits, underscores, or hyphens
func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

var tickerPattern = regexp.MustCompile(`^[A-Za-z]{1,8}$`)

// validateTickerSymbol validates that a symbol looks like a ticker: 1-8
// letters, case-insensitive. Whether the symbol is quotable is decided by
// the price provider, not here.
func validateTickerSymbol(fl validator.FieldLevel) bool {
	return tickerPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}
