package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	itemValuePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// report yaml keys rather than Go field names
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("item_value", func(fl validator.FieldLevel) bool {
			return itemValuePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("colour", func(fl validator.FieldLevel) bool {
			_, err := ParseColour(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return swatcherrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if err := validateMenu(cfg.Gallery.Menu); err != nil {
		return err
	}

	names := make(map[string]struct{}, len(cfg.Gallery.Tabs))
	visible := 0
	for i, tab := range cfg.Gallery.Tabs {
		if _, exists := names[tab.Name]; exists {
			return swatcherrors.NewValidationError(fmt.Sprintf("gallery.tabs[%d].name", i), fmt.Sprintf("duplicate tab name %q", tab.Name), nil)
		}
		names[tab.Name] = struct{}{}
		if !tab.Hidden {
			visible++
		}
	}
	if len(cfg.Gallery.Tabs) > 0 && visible == 0 {
		return swatcherrors.NewValidationError("gallery.tabs", "at least one tab must be visible", nil)
	}

	return nil
}

func validateMenu(menu MenuConfig) error {
	values := make(map[string]struct{}, len(menu.Items))
	for i, item := range menu.Items {
		if _, exists := values[item.Value]; exists {
			return swatcherrors.NewValidationError(fmt.Sprintf("gallery.menu.items[%d].value", i), fmt.Sprintf("duplicate item value %q", item.Value), nil)
		}
		values[item.Value] = struct{}{}
	}

	if !menu.Multiple && len(menu.Selected) > 1 {
		return swatcherrors.NewValidationError("gallery.menu.selected", "only one value may be selected unless multiple is set", nil)
	}

	for i, value := range menu.Selected {
		if _, ok := values[value]; !ok {
			return swatcherrors.NewValidationError(fmt.Sprintf("gallery.menu.selected[%d]", i), fmt.Sprintf("references unknown item %q", value), nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return swatcherrors.NewValidationError(field, msg, err)
	}

	return swatcherrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, leaving the yaml path.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
