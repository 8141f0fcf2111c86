// Package validation checks request payloads against their declared
// constraints and reports every violation at once.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Violations maps a wire field name to the messages for that field.
type Violations map[string][]string

// Check validates the payload and returns the complete violation set, or nil
// when the payload is valid. It never stops at the first failing field.
func Check(payload any) Violations {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return Violations{"": {err.Error()}}
	}

	violations := make(Violations, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		field := fieldError.Field()
		violations[field] = append(violations[field], message(fieldError))
	}
	return violations
}

func message(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", fieldError.Field())
	case "len":
		return fmt.Sprintf("%s has to be exactly %s characters", fieldError.Field(), fieldError.Param())
	case "min":
		return fmt.Sprintf("%s has to be a minimum of %s characters", fieldError.Field(), fieldError.Param())
	case "max":
		return fmt.Sprintf("%s has to be a maximum of %s characters", fieldError.Field(), fieldError.Param())
	case "gte":
		return fmt.Sprintf("%s has to be at least %s", fieldError.Field(), fieldError.Param())
	case "lte":
		return fmt.Sprintf("%s has to be at most %s", fieldError.Field(), fieldError.Param())
	case "email":
		return fmt.Sprintf("%s has to be a valid email address", fieldError.Field())
	case "oneof":
		return fmt.Sprintf("%s has to be one of: %s", fieldError.Field(), fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid", fieldError.Field())
	}
}
