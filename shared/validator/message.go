package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} must not be blank",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be less than or equal to {param} characters",
	"min":      "{field} must be greater than or equal to {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"gt":       "{field} must be greater than {param}",
}

// message renders the first field error that has a template. Errors without one fall
// back to the validator's own text.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		if msg, ok := render(fieldErr); ok {
			return msg
		}
	}

	return fieldErrors.Error()
}

func render(fieldErr val.FieldError) (string, bool) {
	tmpl, ok := templates[fieldErr.Tag()]
	if !ok {
		return "", false
	}

	return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(tmpl), true
}
