package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/swatch/internal/color"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := color.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("channel", func(fl validator.FieldLevel) bool {
			_, ok := color.ParseChannel(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return swatcherrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	c, err := cfg.ParsedColor()
	if err != nil {
		return swatcherrors.NewValidationError("color", err.Error(), err)
	}
	space := c.Space()

	x, y := cfg.Channels()
	if x != "" && !space.Has(x) {
		return swatcherrors.NewValidationError("x_channel", swatcherrors.NewChannelError(string(x), string(space)).Error(), nil)
	}
	if y != "" && !space.Has(y) {
		return swatcherrors.NewValidationError("y_channel", swatcherrors.NewChannelError(string(y), string(space)).Error(), nil)
	}
	if x != "" && x == y {
		return swatcherrors.NewValidationError("y_channel", fmt.Sprintf("must differ from x_channel %q", x), nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into swatch validation errors.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return swatcherrors.NewValidationError(field, msg, err)
	}

	return swatcherrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, leaving the
// yaml path such as area.width.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
