package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const delim = "."

// Config holds the tool's knobs. Every field has a default so running
// without a config file works; a YAML file overrides field by field.
type Config struct {
	// LogLevel is debug, info, warn or error.
	LogLevel string `koanf:"log_level"`
	// DefaultSplitBits is the sub-block prefix used when --split is absent;
	// 32 means individual addresses.
	DefaultSplitBits int `koanf:"default_split_bits"`
	// ListLimit caps listing output; 0 disables the cap.
	ListLimit int `koanf:"list_limit"`
}

func Default() Config {
	return Config{
		LogLevel:         "info",
		DefaultSplitBits: 32,
		ListLimit:        1024,
	}
}

// Load reads a YAML config file over the defaults. An empty path keeps
// the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Merge(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge unmarshals YAML bytes over cfg's current values.
func Merge(data []byte, cfg *Config) error {
	k := koanf.New(delim)
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

func (cfg Config) validate() error {
	if cfg.DefaultSplitBits < 0 || cfg.DefaultSplitBits > 32 {
		return fmt.Errorf("config default_split_bits %d outside [0,32]", cfg.DefaultSplitBits)
	}
	if cfg.ListLimit < 0 {
		return fmt.Errorf("config list_limit %d is negative", cfg.ListLimit)
	}
	return nil
}
