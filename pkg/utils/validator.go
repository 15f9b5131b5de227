package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field names from json tags so validation errors match
// the wire names clients actually send.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateStruct returns one message per failing field, keyed by wire name.
// A nil map means the struct is valid.
func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}

	errors := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		errors[fieldErr.Field()] = fieldMessage(fieldErr)
	}
	return errors
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(err.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}

// FormatValidationErrors flattens field errors into one stable, readable line.
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, len(fields))
	for i, field := range fields {
		msgs[i] = field + " " + errors[field]
	}
	return strings.Join(msgs, "; ")
}
