package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"lynx-bridge/core/laps"

	"github.com/go-playground/validator/v10"
)

// Validate checks settings that would otherwise only fail halfway through a
// run. The output encoding is checked by the update itself, since a command
// line flag may override it.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})

	if err := v.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, describe(fe))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	if _, err := laps.Parse(c.Races.DistanceLaps); err != nil {
		return fmt.Errorf("invalid configuration: races.distance_laps: %w", err)
	}
	if _, err := c.Races.Override(); err != nil {
		return fmt.Errorf("invalid configuration: races.lap_override: %w", err)
	}
	return nil
}

// describe renders a field error with its config key, e.g.
// "history.driver must be one of [sqlite mysql], got \"oracle\"".
func describe(fe validator.FieldError) string {
	// Namespace is "Config.history.driver"; drop the root type.
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fmt.Sprint(fe.Value()))
	case "required_if":
		return fmt.Sprintf("%s is required when %s", key, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", key, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
	}
}
