// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linefem/internal/config"
	"github.com/katalvlaran/linefem/solver"
)

func lookup(env map[string]string) config.Option {
	return config.WithLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
}

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(lookup(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	m, err := cfg.SolverMethod()
	require.NoError(t, err)
	assert.Equal(t, solver.Gauss, m)
}

func TestLayering(t *testing.T) {
	yml := write(t, "linefem.yaml", `
method: lu
step: 0.1
precision: 3
output:
  xlsx: out.xlsx
log:
  level: debug
watch:
  debounce: 1s
`)
	env := write(t, ".env", "LINEFEM_PRECISION=4\nLINEFEM_OUTPUT_PDF=out.pdf\nLINEFEM_METHOD=inverse\n")

	cfg, err := config.Load(config.WithFile(yml), config.WithEnvFile(env),
		lookup(map[string]string{"LINEFEM_METHOD": "inv", "LINEFEM_LOG_DEVELOPMENT": "true"}))
	require.NoError(t, err)

	assert.Equal(t, "inv", cfg.Method)        // process env beats .env and YAML
	assert.Equal(t, 4, cfg.Precision)         // .env beats YAML
	assert.Equal(t, 0.1, cfg.Step)            // YAML beats defaults
	assert.Equal(t, "out.xlsx", cfg.Output.XLSX)
	assert.Equal(t, "out.pdf", cfg.Output.PDF)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, "Structural analysis report", cfg.Output.Title)

	m, err := cfg.SolverMethod()
	require.NoError(t, err)
	assert.Equal(t, solver.InverseMatrix, m)
}

func TestMissingFiles(t *testing.T) {
	_, err := config.Load(config.WithFile(filepath.Join(t.TempDir(), "nope.yaml")), lookup(nil))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(config.WithEnvFile(filepath.Join(t.TempDir(), ".env")), lookup(nil))
	require.NoError(t, err)
}

func TestValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"method":    {"LINEFEM_METHOD": "cramer"},
		"step zero": {"LINEFEM_STEP": "0"},
		"step one":  {"LINEFEM_STEP": "1"},
		"precision": {"LINEFEM_PRECISION": "11"},
		"log level": {"LINEFEM_LOG_LEVEL": "trace"},
		"debounce":  {"LINEFEM_WATCH_DEBOUNCE": "-1s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(lookup(env))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestBadEnvValues(t *testing.T) {
	for _, key := range []string{"LINEFEM_STEP", "LINEFEM_PRECISION", "LINEFEM_LOG_DEVELOPMENT", "LINEFEM_WATCH_DEBOUNCE"} {
		_, err := config.Load(lookup(map[string]string{key: "??"}))
		require.ErrorIs(t, err, config.ErrEnv, key)
	}
}

func TestBadYAML(t *testing.T) {
	yml := write(t, "bad.yaml", "method: [gauss\n")
	_, err := config.Load(config.WithFile(yml), lookup(nil))
	require.Error(t, err)
}
