package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf keys so messages name the setting
// an operator actually edits.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})
	_ = v.RegisterValidation("zone", validateZone)

	return v
}

// validateZone accepts IANA names and "Local". The built-in timezone tag
// rejects "Local", which is the board's default.
func validateZone(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return false
	}

	_, err := time.LoadLocation(name)

	return err == nil
}

// Validate checks field constraints and then the settings that only make
// sense together. All problems are reported at once.
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}

		for _, fe := range fieldErrs {
			problems = append(problems, formatFieldError(fe))
		}
	}

	problems = append(problems, c.crossChecks()...)

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

// crossChecks covers rules spanning sections. Zero values are left to the
// field validation above.
func (c *Config) crossChecks() []string {
	var problems []string

	if c.Client.Timeout > 0 && c.Server.RequestTimeout > 0 && c.Client.Timeout >= c.Server.RequestTimeout {
		problems = append(problems, fmt.Sprintf(
			"client.timeout (%s) must be less than server.request_timeout (%s)",
			c.Client.Timeout, c.Server.RequestTimeout,
		))
	}

	if layout := c.Board.DateLayout; layout != "" && !hasTimeFields(layout) {
		problems = append(problems, fmt.Sprintf("board.date_layout %q has no date or time fields", layout))
	}

	return problems
}

// hasTimeFields reports whether layout formats any part of a time. A layout
// without reference tokens renders every quote with the same literal text.
func hasTimeFields(layout string) bool {
	a := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC).Format(layout)
	b := time.Date(2011, 12, 13, 14, 15, 16, 0, time.UTC).Format(layout)

	return a != b
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return field + " must be a valid URL"
	case "http_url":
		return field + " must be an http or https URL"
	case "zone":
		return field + ` must be an IANA time zone name or "Local"`
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", field, siblingPath(field, e.Param()))
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath drops the root struct name: "Config.server.port" becomes
// "server.port".
func formatFieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}

// siblingPath names the field a cross-field tag compared against. The tag
// parameter is a Go field name; koanf keys are its snake_case form.
func siblingPath(field, goName string) string {
	var key strings.Builder

	for i, r := range goName {
		if unicode.IsUpper(r) {
			if i > 0 {
				key.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		key.WriteRune(r)
	}

	if i := strings.LastIndex(field, "."); i >= 0 {
		return field[:i+1] + key.String()
	}

	return key.String()
}
