package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator and renders its tag
// failures as the user-facing messages the role dashboards display.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors maps each failed field to one message.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return messages
	}
	for _, e := range validationErrors {
		messages[e.Field()] = fieldMessage(e)
	}
	return messages
}

func fieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must match the format %s", field, e.Param())
	default:
		return field + " is invalid"
	}
}
