package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"boolean":  "{field} must be a boolean",
	}
)

// fieldMessages maps every validation violation to a message keyed by the
// offending field's json name.
func fieldMessages(err error) map[string]string {
	fields := map[string]string{}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		fields["body"] = err.Error()

		return fields
	}

	for _, valErr := range valErrors {
		field := valErr.Field()
		param := valErr.Param()

		msg := messages[valErr.Tag()]
		if msg == "" {
			msg = "{field} is invalid"
		}

		msg = strings.ReplaceAll(msg, "{field}", field)
		msg = strings.ReplaceAll(msg, "{param}", param)

		fields[field] = msg
	}

	return fields
}
