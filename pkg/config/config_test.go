package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.True(t, cfg.Workbench.ShowGrammar)
	assert.Equal(t, 960, cfg.Desktop.Width)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := writeFile(t, "octc.toml", `
[log]
level = "debug"

[output]
format = "json"
color = false

[desktop]
width = 1280
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, 1280, cfg.Desktop.Width)
	assert.Equal(t, 640, cfg.Desktop.Height)
}

func TestLoadYAML(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := writeFile(t, "octc.yml", `
log:
  format: json
workbench:
  show_grammar: false
  editor_height: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Workbench.ShowGrammar)
	assert.Equal(t, 4, cfg.Workbench.EditorHeight)
}

func TestLoadEnvOverridesLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	path := writeFile(t, "octc.toml", "[log]\nlevel = \"debug\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)

	_, err = Load(writeFile(t, "octc.ini", "level=debug"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "octc.toml", "[log\n"))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvLogLevel, "")

	t.Run("no file", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("explicit file", func(t *testing.T) {
		t.Setenv(EnvConfig, writeFile(t, "c.yaml", "output:\n  format: yaml\n"))
		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.Output.Format)
	})

	t.Run("explicit file missing", func(t *testing.T) {
		t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "nope.toml"))
		_, err := LoadFromEnv()
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Format = "logfmt"
	assert.Error(t, cfg.Validate())
}
