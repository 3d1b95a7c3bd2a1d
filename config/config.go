package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Input encodings accepted by the CLI.
const (
	InputRaw    = "raw"
	InputHex    = "hex"
	InputBase64 = "base64"
)

// Colour modes for text output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the decoder limits and CLI defaults.
type Config struct {
	MaxDepth      int           `toml:"max_depth"`
	MaxInputBytes int64         `toml:"max_input_bytes"`
	Timeout       time.Duration `toml:"timeout"`
	Workers       int           `toml:"workers"`
	Color         string        `toml:"color"`
	Input         string        `toml:"input"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxDepth:      100,
		MaxInputBytes: 64 << 20,
		Timeout:       30 * time.Second,
		Workers:       4,
		Color:         ColorAuto,
		Input:         InputRaw,
	}
}

// Load reads a TOML file over the defaults and validates the result. Keys
// missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate rejects limits that would make decoding impossible.
func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("max_input_bytes must be positive, got %d", c.MaxInputBytes)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	switch c.Input {
	case InputRaw, InputHex, InputBase64:
	default:
		return fmt.Errorf("input must be raw, hex or base64, got %q", c.Input)
	}
	return nil
}
