package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	validate = &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "uuid", "uuid4":
			errs[field] = "Must be a UUID"
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "ne":
			errs[field] = fmt.Sprintf("Must not be %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
