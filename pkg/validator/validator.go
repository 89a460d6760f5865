package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance.
// Field errors report the JSON name of the field.
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// Message returns the first message registered for a failed "field.tag" pair,
// or fallback when none matches.
func Message(err error, messages map[string]string, fallback string) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fallback
	}
	for _, fe := range fieldErrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			return msg
		}
	}
	return fallback
}
