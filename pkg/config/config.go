package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadFromEnv and Load.
const (
	EnvConfig   = "OCTCALC_CONFIG"
	EnvLogLevel = "OCTCALC_LOG_LEVEL"
)

var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Config holds the settings shared by the octc CLI, the terminal workbench
// and the desktop window.
type Config struct {
	Log       LogConfig       `toml:"log" yaml:"log"`
	Output    OutputConfig    `toml:"output" yaml:"output"`
	Desktop   DesktopConfig   `toml:"desktop" yaml:"desktop"`
	Workbench WorkbenchConfig `toml:"workbench" yaml:"workbench"`
}

type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // console or json
}

// OutputConfig controls how `octc run` prints a result.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // text, json or yaml
	Color  bool   `toml:"color" yaml:"color"`
}

type DesktopConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

type WorkbenchConfig struct {
	ShowGrammar  bool `toml:"show_grammar" yaml:"show_grammar"`
	EditorHeight int  `toml:"editor_height" yaml:"editor_height"`
}

// Default returns a configuration with every field set.
func Default() *Config {
	cfg := &Config{Output: OutputConfig{Color: true}, Workbench: WorkbenchConfig{ShowGrammar: true}}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML or YAML file, chosen by extension, and fills in defaults.
// The OCTCALC_LOG_LEVEL environment variable overrides the file's log level.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// LoadFromEnv loads the file named by OCTCALC_CONFIG, or the first default
// location that exists. With no file at all it returns Default.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	cfg := Default()
	cfg.applyEnv()
	return cfg, nil
}

// DefaultPaths lists the locations LoadFromEnv probes, in order.
func DefaultPaths() []string {
	paths := []string{"./octc.toml", "./octc.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "octcalc", "config.toml"))
	}
	return paths
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Desktop.Title == "" {
		c.Desktop.Title = "Octal Translator"
	}
	if c.Desktop.Width <= 0 {
		c.Desktop.Width = 960
	}
	if c.Desktop.Height <= 0 {
		c.Desktop.Height = 640
	}
	if c.Workbench.EditorHeight <= 0 {
		c.Workbench.EditorHeight = 10
	}
}

func (c *Config) applyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
}

// Validate rejects values the front ends cannot honour.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be text, json or yaml, got %q", c.Output.Format)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
