// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment key.
const EnvPrefix = "LINEFEM_"

// Option configures Load.
type Option func(*loader)

type loader struct {
	file    string
	envFile string
	lookup  func(string) (string, bool)
}

// WithFile reads the YAML file at path. A missing file is an error.
func WithFile(path string) Option {
	return func(l *loader) { l.file = path }
}

// WithEnvFile reads a dotenv file at path. A missing file is ignored.
func WithEnvFile(path string) Option {
	return func(l *loader) { l.envFile = path }
}

// WithLookup replaces os.LookupEnv, mainly for tests.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(l *loader) {
		if fn != nil {
			l.lookup = fn
		}
	}
}

// Load merges all sources over Default and validates the result.
//
// Implementation:
//   - Stage 1: defaults.
//   - Stage 2: YAML file, when given.
//   - Stage 3: dotenv values, overridden key by key by the process environment.
//   - Stage 4: validation.
func Load(opts ...Option) (*Config, error) {
	l := loader{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(&l)
	}

	// Stage 1
	cfg := Default()

	// Stage 2
	if l.file != "" {
		raw, err := os.ReadFile(l.file)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err = yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", l.file, err)
		}
	}

	// Stage 3
	dotenv := map[string]string{}
	if l.envFile != "" {
		m, err := godotenv.Read(l.envFile)
		switch {
		case err == nil:
			dotenv = m
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("config: read %s: %w", l.envFile, err)
		}
	}
	get := func(key string) (string, bool) {
		if v, ok := l.lookup(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := dotenv[EnvPrefix+key]
		return v, ok
	}
	if err := applyEnv(cfg, get); err != nil {
		return nil, err
	}

	// Stage 4
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays every LINEFEM_* key that is set.
func applyEnv(cfg *Config, get func(string) (string, bool)) error {
	strs := map[string]*string{
		"METHOD":       &cfg.Method,
		"OUTPUT_XLSX":  &cfg.Output.XLSX,
		"OUTPUT_PDF":   &cfg.Output.PDF,
		"OUTPUT_TITLE": &cfg.Output.Title,
		"LOG_LEVEL":    &cfg.Log.Level,
	}
	for key, dst := range strs {
		if v, ok := get(key); ok {
			*dst = v
		}
	}

	if v, ok := get("STEP"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError("STEP", v)
		}
		cfg.Step = f
	}
	if v, ok := get("PRECISION"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("PRECISION", v)
		}
		cfg.Precision = n
	}
	if v, ok := get("LOG_DEVELOPMENT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("LOG_DEVELOPMENT", v)
		}
		cfg.Log.Development = b
	}
	if v, ok := get("WATCH_DEBOUNCE"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("WATCH_DEBOUNCE", v)
		}
		cfg.Watch.Debounce = d
	}

	return nil
}

func envError(key, val string) error {
	return fmt.Errorf("%s%s=%q: %w", EnvPrefix, key, val, ErrEnv)
}
