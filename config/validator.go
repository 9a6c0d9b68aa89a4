package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Validate checks the loaded values. Env parsing falls back to defaults on
// malformed input, so this only catches well-formed but unsupported values.
func (c *Config) Validate() error {
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
