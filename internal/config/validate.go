package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/gogpu/avatar"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator, reporting fields by their
// YAML names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks field constraints, then parses every color.
// Constraint failures are returned as *avatar.InvalidArgumentError and bad
// palette entries as *avatar.ColorFormatError.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	if err := avatar.Palette(c.Palette).Validate(); err != nil {
		return err
	}
	if _, err := avatar.ParseColor(c.TextColor); err != nil {
		return &avatar.InvalidArgumentError{
			Op: "config.Validate", Field: "text_color", Value: c.TextColor, Reason: err.Error(),
		}
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Errorf("config: %w", err)
	}
	fe := ves[0]
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	reason := "failed '" + fe.Tag() + "'"
	if fe.Param() != "" {
		reason += " " + fe.Param()
	}
	return &avatar.InvalidArgumentError{
		Op:     "config.Validate",
		Field:  field,
		Value:  fe.Value(),
		Reason: reason,
	}
}
