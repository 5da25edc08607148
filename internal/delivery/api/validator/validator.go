// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json/param/query name
func New() *Validator {
	validate := validator.New()

	tags := []string{"json", "param", "query"}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range tags {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return fld.Name
	})

	return &Validator{validate: validate}
}

// Validate validates a bound request struct
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Describe flattens validation errors into "field: rule" messages
func Describe(err error) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		msg := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out = append(out, msg)
	}

	return out
}
