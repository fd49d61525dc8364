package forms

import (
	"github.com/go-playground/validator/v10"
)

// Register installs the custom rules used by the form structs' binding
// tags. It is meant to be called with gin's validator engine.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return IsGenre(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return IsState(fl.Field().String())
	})
}
