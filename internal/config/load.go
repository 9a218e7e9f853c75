package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables that override file settings.
const (
	EnvLogLevel = "IMAGEFX_LOG_LEVEL"
	EnvFilter   = "IMAGEFX_FILTER"
)

// Load reads presets from path. An empty path yields DefaultConfig with
// environment overrides applied. The result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML over DefaultConfig, so missing keys keep
// their defaults, then applies environment overrides and validates.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvFilter); v != "" {
		cfg.Filter = v
	}
}
