// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RequestValidator validates bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator. Field names in errors follow the json tags.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}
		if name == "-" {
			return ""
		}

		return name
	})

	// uuid.UUID is an array type, so "required" alone does not reject the nil id.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if id, ok := field.Interface().(uuid.UUID); ok {
			if id == uuid.Nil {
				return ""
			}

			return id.String()
		}

		return nil
	}, uuid.UUID{})

	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens validation errors into field → rule pairs.
func FieldErrors(err error) map[string]string {
	errs, ok := err.(validator.ValidationErrors) //nolint:errorlint // returned unwrapped by Struct
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		fields[fieldErr.Field()] = rule
	}

	return fields
}
