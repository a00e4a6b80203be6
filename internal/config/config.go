// Package config handles TOML configuration loading with sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lucciano/zentyal/internal/format"
	"github.com/lucciano/zentyal/internal/locale"
)

// Config is the top-level configuration for the display formatters.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Bytes   BytesConfig   `toml:"bytes"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig selects how timestamps are rendered.
type DisplayConfig struct {
	// Locale is a BCP 47 tag or POSIX locale name. Empty uses the host
	// environment (LC_ALL, LC_TIME, LANG).
	Locale string `toml:"locale"`
	// Timezone is an IANA zone name. Empty or "Local" uses the host zone.
	Timezone string `toml:"timezone"`
}

// BytesConfig holds the defaults for byte formatting.
type BytesConfig struct {
	Precision  int  `toml:"precision"`
	LongName   bool `toml:"long_name"`
	Commercial bool `toml:"commercial"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	byteDefaults := format.DefaultByteOptions()
	return &Config{
		Display: DisplayConfig{
			Timezone: "Local",
		},
		Bytes: BytesConfig{
			Precision:  byteDefaults.Precision,
			LongName:   byteDefaults.LongName,
			Commercial: byteDefaults.Commercial,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "zentyal", "format.toml")
}

// Load reads configuration from the given path, falling back to defaults
// for any unset fields. If the file does not exist, returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// ByteOptions converts the [bytes] section for format.BytesWith.
func (c *Config) ByteOptions() format.ByteOptions {
	return format.ByteOptions{
		Precision:  c.Bytes.Precision,
		LongName:   c.Bytes.LongName,
		Commercial: c.Bytes.Commercial,
	}
}

// Formatter builds the timestamp formatter for the [display] section.
func (c *Config) Formatter() (locale.Layouts, error) {
	l, err := locale.New(c.Display.Locale, c.Display.Timezone)
	if err != nil {
		return locale.Layouts{}, fmt.Errorf("display settings: %w", err)
	}
	return l, nil
}

// Clock returns a format.Clock for the [display] section.
func (c *Config) Clock() (*format.Clock, error) {
	l, err := c.Formatter()
	if err != nil {
		return nil, err
	}
	return format.NewClock(l), nil
}
