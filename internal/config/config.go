// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cgmatch-core/hiercc"
	"cgmatch-core/reftable"
)

// SchemeConfig shapes the matching run.
type SchemeConfig struct {
	Levels    []string `yaml:"levels"`     // hierCC columns emitted, in order
	ChunkSize int      `yaml:"chunk_size"` // reference rows per chunk
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config represents the complete run configuration. All fields are
// optional; the zero file is the documented default behaviour.
type Config struct {
	Scheme  SchemeConfig  `yaml:"scheme"`
	Logging LoggingConfig `yaml:"logging"`
}

// Load reads configuration from a YAML file. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	setDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if len(cfg.Scheme.Levels) == 0 {
		cfg.Scheme.Levels = append([]string(nil), hiercc.DefaultLevels...)
	}
	if cfg.Scheme.ChunkSize == 0 {
		cfg.Scheme.ChunkSize = reftable.DefaultChunkSize
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Scheme.ChunkSize < 1 {
		return fmt.Errorf("scheme.chunk_size must be positive")
	}
	for _, lvl := range c.Scheme.Levels {
		if lvl == "" {
			return fmt.Errorf("scheme.levels must not contain empty names")
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
