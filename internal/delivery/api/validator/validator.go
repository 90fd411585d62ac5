// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"reflect"
	"strings"

	"cabinet/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request DTOs bound by echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors flattens a validation failure into field name -> failed rule,
// e.g. {"email": "email", "password": "min=8"}. It returns nil for any other error.
func FieldErrors(err error) map[string]string {
	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return nil
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		rule := fieldErr.Tag()
		if param := fieldErr.Param(); param != "" {
			rule += "=" + param
		}
		out[fieldErr.Field()] = rule
	}

	return out
}
