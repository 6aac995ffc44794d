package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eradicate/internal/errors"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// Files may be YAML (.yaml, .yml) or TOML (.toml).
type Config struct {
	Search struct {
		CaseSensitive  bool   `yaml:"case_sensitive" toml:"case_sensitive"`   // Initial case-sensitivity option
		InitialPattern string `yaml:"initial_pattern" toml:"initial_pattern"` // Pattern searched at startup
	} `yaml:"search" toml:"search"`
	UI struct {
		Theme      string `yaml:"theme" toml:"theme"`             // Theme name, see ListThemes
		Tick       string `yaml:"tick" toml:"tick"`               // Refresh cadence, a Go duration
		Watch      bool   `yaml:"watch" toml:"watch"`             // Flag the listing as stale on filesystem changes
		WatchLimit int    `yaml:"watch_limit" toml:"watch_limit"` // Maximum number of directories watched
	} `yaml:"ui" toml:"ui"`
	Log struct {
		File  string `yaml:"file" toml:"file"`   // Log file path, empty for the default
		Level string `yaml:"level" toml:"level"` // debug, info, warn or error
	} `yaml:"log" toml:"log"`
}

// DefaultPath returns ~/.config/eradicate/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "eradicate", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location, falling back to
// config.toml next to it. Missing files yield the defaults.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		alt := strings.TrimSuffix(path, filepath.Ext(path)) + ".toml"
		if _, altErr := os.Stat(alt); altErr == nil {
			path = alt
		}
	}
	return LoadConfigFile(path)
}

// Load reads an explicitly requested file, which must exist, or the
// default location when explicit is empty.
func Load(explicit string) (*Config, error) {
	if explicit == "" {
		return LoadConfig()
	}
	if _, err := os.Stat(explicit); err != nil {
		return nil, errors.NewConfigError("config not found", explicit, errors.ConfigNotFound, err)
	}
	return LoadConfigFile(explicit)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Decoding over the defaults keeps every field the file leaves out.
	if err := decode(path, data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err := dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			// Empty file.
			return nil
		}
		return err
	}
}

func encode(path string, cfg *Config) ([]byte, error) {
	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		return Marshal(cfg, "toml")
	}
	return Marshal(cfg, "yaml")
}

// Marshal renders cfg as "yaml" or "toml".
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch format {
	case "toml":
		return toml.Marshal(cfg)
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	default:
		return nil, errors.NewConfigError("unknown config format", format, errors.InvalidConfig, nil)
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Search.CaseSensitive = true
	cfg.UI.Theme = "default"
	cfg.UI.Tick = "250ms"
	cfg.UI.Watch = true
	cfg.UI.WatchLimit = 64
	cfg.Log.Level = "info"
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file, in the format
// implied by its extension. It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := encode(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if _, ok := themes[c.UI.Theme]; !ok {
		return errors.NewConfigError("unknown theme", c.UI.Theme, errors.InvalidConfig, nil)
	}

	tick, err := time.ParseDuration(c.UI.Tick)
	if err != nil {
		return errors.NewConfigError("invalid ui.tick", c.UI.Tick, errors.InvalidConfig, err)
	}
	if tick <= 0 {
		return errors.NewConfigError("ui.tick must be positive", c.UI.Tick, errors.InvalidConfig, nil)
	}

	if c.UI.WatchLimit < 0 {
		return errors.NewConfigError("ui.watch_limit must be >= 0", fmt.Sprint(c.UI.WatchLimit), errors.InvalidConfig, nil)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigError("invalid log.level", c.Log.Level, errors.InvalidConfig, nil)
	}

	return nil
}

// TickInterval returns the parsed refresh cadence, or 250ms if unset.
func (c *Config) TickInterval() time.Duration {
	d, err := time.ParseDuration(c.UI.Tick)
	if err != nil || d <= 0 {
		return 250 * time.Millisecond
	}
	return d
}

// LogFile returns the configured log path or the default one in the
// user cache directory.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "eradicate.log")
	}
	return filepath.Join(dir, "eradicate", "eradicate.log")
}
