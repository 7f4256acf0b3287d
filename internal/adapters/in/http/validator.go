package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator plugs go-playground/validator into echo's Context.Validate.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{v: v}
}

func (v *Validator) Validate(i any) error {
	return v.v.Struct(i)
}

// validationMessage lists the offending JSON fields, e.g. "customer.phone is required".
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "Invalid request body"
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}

		switch fe.Tag() {
		case "required", "required_if":
			parts = append(parts, field+" is required")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of %s", field, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "uuid":
			parts = append(parts, field+" must be a UUID")
		default:
			parts = append(parts, field+" is invalid")
		}
	}

	return "Invalid request: " + strings.Join(parts, "; ")
}
