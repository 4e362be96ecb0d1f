// internal/config/env.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds defaults that flags may override.
type Env struct {
	Input  string `env:"POLYMER_INPUT" envDefault:"data/day14/input.txt"`
	Steps  int    `env:"POLYMER_STEPS" envDefault:"10"`
	Method string `env:"POLYMER_METHOD" envDefault:"naive"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns Env populated from the process environment.
func Load() (Env, error) {
	var e Env
	err := ParseEnv(&e)
	return e, err
}
