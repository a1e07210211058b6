// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/linefem/solver"
)

// Sentinel errors of the config package.
var (
	// ErrInvalid indicates a configuration that fails validation.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrEnv indicates an environment value that cannot be parsed.
	ErrEnv = errors.New("config: bad environment value")
)

// Config holds every CLI setting.
type Config struct {
	// Method is the linear solve strategy: gauss, inverse (inv) or lu.
	Method string `yaml:"method" validate:"required,oneof=gauss inverse inv lu"`

	// Step is the sampling step for displacement fields.
	Step float64 `yaml:"step" validate:"gt=0,lt=1"`

	// Precision is the number of decimals in reports.
	Precision int `yaml:"precision" validate:"min=0,max=10"`

	Output Output `yaml:"output"`
	Log    Log    `yaml:"log"`
	Watch  Watch  `yaml:"watch"`
}

// Output names optional report files.
type Output struct {
	XLSX  string `yaml:"xlsx"`
	PDF   string `yaml:"pdf"`
	Title string `yaml:"title" validate:"max=120"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Watch configures the watch command.
type Watch struct {
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Method:    solver.Gauss.String(),
		Step:      0.25,
		Precision: 2,
		Output:    Output{Title: "Structural analysis report"},
		Log:       Log{Level: "info"},
		Watch:     Watch{Debounce: 300 * time.Millisecond},
	}
}

var validate = validator.New()

// Validate checks every field against its tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SolverMethod parses Method.
func (c *Config) SolverMethod() (solver.Method, error) {
	return solver.ParseMethod(c.Method)
}
