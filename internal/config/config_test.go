package config

import (
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Display.Locale != "" {
		t.Errorf("default locale = %q, want empty", cfg.Display.Locale)
	}
	if cfg.Display.Timezone != "Local" {
		t.Errorf("default timezone = %q, want %q", cfg.Display.Timezone, "Local")
	}
	if cfg.Bytes.Precision != 2 {
		t.Errorf("default precision = %d, want 2", cfg.Bytes.Precision)
	}
	if cfg.Bytes.LongName || cfg.Bytes.Commercial {
		t.Errorf("default bytes = %+v, want short names and base 1024", cfg.Bytes)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/format.toml")
	if err != nil {
		t.Fatalf("loading nonexistent config should return defaults, got error: %v", err)
	}
	if cfg.Bytes.Precision != 2 {
		t.Errorf("precision = %d, want default 2", cfg.Bytes.Precision)
	}
}

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "format.toml")

	content := `
[display]
locale = "es_ES.UTF-8"
timezone = "Europe/Madrid"

[bytes]
precision = 0
long_name = true
commercial = true

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Display.Locale != "es_ES.UTF-8" {
		t.Errorf("display.locale = %q", cfg.Display.Locale)
	}
	if cfg.Display.Timezone != "Europe/Madrid" {
		t.Errorf("display.timezone = %q", cfg.Display.Timezone)
	}
	if cfg.Bytes.Precision != 0 {
		t.Errorf("bytes.precision = %d, want 0", cfg.Bytes.Precision)
	}
	if !cfg.Bytes.LongName || !cfg.Bytes.Commercial {
		t.Errorf("bytes = %+v, want long names and base 1000", cfg.Bytes)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "format.toml")

	if err := os.WriteFile(path, []byte("[bytes]\nlong_name = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.Bytes.Precision != 2 {
		t.Errorf("bytes.precision = %d, want default 2", cfg.Bytes.Precision)
	}
	if cfg.Display.Timezone != "Local" {
		t.Errorf("display.timezone = %q, want default", cfg.Display.Timezone)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "format.toml")

	if err := os.WriteFile(path, []byte("not valid [[[ toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid TOML, got nil")
	}
}

func TestByteOptions(t *testing.T) {
	cfg := Default()
	cfg.Bytes.Precision = 0
	cfg.Bytes.LongName = true
	cfg.Bytes.Commercial = true

	o := cfg.ByteOptions()
	if o.Precision != 0 || !o.LongName || !o.Commercial {
		t.Errorf("ByteOptions = %+v", o)
	}
}

func TestClock(t *testing.T) {
	cfg := Default()
	cfg.Display.Locale = "es_ES.UTF-8"
	cfg.Display.Timezone = "Europe/Madrid"

	c, err := cfg.Clock()
	if err != nil {
		t.Fatalf("Clock: %v", err)
	}

	// 2023-11-14 22:13:20 UTC is 23:13:20 in Madrid.
	if got, want := c.FullDateTime(1700000000), "14/11/2023, 23:13:20"; got != want {
		t.Errorf("FullDateTime = %q, want %q", got, want)
	}
}

func TestFormatterBadTimezone(t *testing.T) {
	cfg := Default()
	cfg.Display.Timezone = "Nowhere/Special"

	if _, err := cfg.Formatter(); err == nil {
		t.Fatal("expected error for unknown timezone, got nil")
	}
	if _, err := cfg.Clock(); err == nil {
		t.Fatal("expected error for unknown timezone, got nil")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	if got := DefaultPath(); filepath.Base(got) != "format.toml" || filepath.Base(filepath.Dir(got)) != "zentyal" {
		t.Errorf("DefaultPath = %q", got)
	}
}
