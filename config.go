// FILE: logplus/config.go
package logplus

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/config"
)

// Config holds all handler configuration values.
// A Config is mutable only while the handler is stopped; Init freezes
// the active copy, and the worker reads it without locking thereafter.
type Config struct {
	// Filtering
	Level int64 `toml:"level"`

	// File sink target: <directory>/<name>.<extension>
	Directory string `toml:"directory"`
	Name      string `toml:"name"`
	Extension string `toml:"extension"`

	// Sink enable flags
	EnableConsole bool   `toml:"enable_console"`
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"
	EnableFile    bool   `toml:"enable_file"`

	// Formatting
	TimestampFormat string `toml:"timestamp_format"`

	// Engine tuning
	FlushIntervalMs int64 `toml:"flush_interval_ms"` // max wait without new data
	BufferThreshold int64 `toml:"buffer_threshold"`  // intake size that triggers an eager wake-up

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`
}

// defaultConfig is the single source for all configurable default values.
// The timestamp format matches ctime(3) output.
var defaultConfig = Config{
	Level:     LevelInfo,
	Directory: "./logs",
	Name:      "app",
	Extension: "log",

	EnableConsole: true,
	ConsoleTarget: "stdout",
	EnableFile:    true,

	TimestampFormat: time.ANSIC,

	FlushIntervalMs: 3000,
	BufferThreshold: 50,

	InternalErrorsToStderr: true,
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file under the
// [log] table and returns a validated Config. A missing file yields
// the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()
	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig pulls loaded values into cfg, leaving defaults for
// keys the file does not set.
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	fields := []struct {
		key string
		set func(any) error
	}{
		{"level", func(v any) error { return setInt64(&cfg.Level, v) }},
		{"directory", func(v any) error { return setString(&cfg.Directory, v) }},
		{"name", func(v any) error { return setString(&cfg.Name, v) }},
		{"extension", func(v any) error { return setString(&cfg.Extension, v) }},
		{"enable_console", func(v any) error { return setBool(&cfg.EnableConsole, v) }},
		{"console_target", func(v any) error { return setString(&cfg.ConsoleTarget, v) }},
		{"enable_file", func(v any) error { return setBool(&cfg.EnableFile, v) }},
		{"timestamp_format", func(v any) error { return setString(&cfg.TimestampFormat, v) }},
		{"flush_interval_ms", func(v any) error { return setInt64(&cfg.FlushIntervalMs, v) }},
		{"buffer_threshold", func(v any) error { return setInt64(&cfg.BufferThreshold, v) }},
		{"internal_errors_to_stderr", func(v any) error { return setBool(&cfg.InternalErrorsToStderr, v) }},
	}

	for _, f := range fields {
		val, found := loader.Get(prefix + f.key)
		if !found {
			continue
		}
		if err := f.set(val); err != nil {
			return fmtErrorf("failed to extract '%s%s': %w", prefix, f.key, err)
		}
	}

	return nil
}

func setString(dst *string, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmtErrorf("expected string, got %T", v)
	}
	*dst = s
	return nil
}

func setInt64(dst *int64, v any) error {
	switch n := v.(type) {
	case int64:
		*dst = n
	case int:
		*dst = int64(n)
	case float64:
		*dst = int64(n)
	default:
		return fmtErrorf("expected int64, got %T", v)
	}
	return nil
}

func setBool(dst *bool, v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmtErrorf("expected bool, got %T", v)
	}
	*dst = b
	return nil
}

// validate performs validation on the configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmtErrorf("log name cannot be empty")
	}

	if strings.HasPrefix(c.Extension, ".") {
		return fmtErrorf("extension should not start with dot: %s", c.Extension)
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	if c.FlushIntervalMs <= 0 {
		return fmtErrorf("flush_interval_ms must be positive: %d", c.FlushIntervalMs)
	}

	if c.BufferThreshold <= 0 {
		return fmtErrorf("buffer_threshold must be positive: %d", c.BufferThreshold)
	}

	if !c.EnableConsole && !c.EnableFile {
		return fmtErrorf("at least one of enable_console or enable_file must be set")
	}

	return nil
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// filePath returns the full log file path for the current target.
func (c *Config) filePath() string {
	name := c.Name
	if c.Extension != "" {
		name += "." + c.Extension
	}
	return filepath.Join(c.Directory, name)
}

// flushInterval returns the flush interval as a duration.
func (c *Config) flushInterval() time.Duration {
	return time.Duration(c.FlushIntervalMs) * time.Millisecond
}
