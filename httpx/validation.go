package httpx

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing required field: " + e.Field
}

type answerer interface {
	Answered() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// "answered": present and not blank
	v.RegisterValidation("answered", func(fl validator.FieldLevel) bool {
		if a, ok := fl.Field().Interface().(answerer); ok {
			return a.Answered()
		}
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// ValidateRequired checks the struct v and returns a *MissingFieldError for
// the first failing field, in declaration order, by its JSON name.
func ValidateRequired(v any) error {
	err := validate.Struct(v)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &MissingFieldError{Field: fieldErrs[0].Field()}
	}
	return err
}
