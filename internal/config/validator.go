package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the loaded configuration and reports every bad field at once
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)

	if err := validate.Struct(c); err != nil {
		fields := FormatValidationError(err)
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, fields[k]))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(parts, "; "))
	}
	return nil
}

// FormatValidationError formats validation errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "must be set"
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of [%s]", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("must be at most %s", e.Param())
		case "url", "url|eq=*":
			errs[field] = fmt.Sprintf("%q is not a valid origin URL", e.Value())
		default:
			errs[field] = "invalid value"
		}
	}

	return errs
}
