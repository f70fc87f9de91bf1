package users

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validate checks a submitted form against the required-field and format
// rules. Only the first violation is reported so the caller sees one
// actionable message; fields are checked in declaration order, which puts
// required-field failures ahead of the email format check.
func (s *Service) validate(form *UserForm) error {
	if form == nil {
		return ValidationError("No data provided")
	}
	err := s.validator.Struct(form)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return ValidationError("Invalid request body")
	}
	first := fieldErrs[0]
	switch first.Tag() {
	case "required":
		return ValidationError("Missing required field: " + first.Field())
	case "contains":
		return ValidationError("Invalid email format")
	default:
		return ValidationError("Invalid value for field: " + first.Field())
	}
}
