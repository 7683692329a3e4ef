// Package config holds all scrutin configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full configuration. The zero-flag, zero-file defaults
// reproduce the fixed paths and delimiters of the original pipeline.
type Config struct {
	// Input data
	Data DataConfig `yaml:"data"`

	// Map output
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig locates the input files. File names and delimiters inside the
// directory are fixed (referendum.csv ';', regions.csv and departments.csv
// ',', regions.geojson).
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig configures the rendered choropleth.
type OutputConfig struct {
	MapPath  string  `yaml:"map_path"`
	WidthCM  float64 `yaml:"width_cm"`
	HeightCM float64 `yaml:"height_cm"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "data",
		},
		Output: OutputConfig{
			MapPath:  "referendum_map.png",
			WidthCM:  24,
			HeightCM: 24,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML config from path, layered over the defaults, then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// FromEnv returns the defaults with environment overrides applied, for runs
// without a config file.
func FromEnv() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg
}

// Save writes the config as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies SCRUTIN_* environment variables on top of the
// loaded values.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("SCRUTIN_DATA_DIR"); dir != "" {
		c.Data.Dir = dir
	}
	if path := os.Getenv("SCRUTIN_MAP_PATH"); path != "" {
		c.Output.MapPath = path
	}
	if level := os.Getenv("SCRUTIN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if c.Output.MapPath == "" {
		return fmt.Errorf("output.map_path must not be empty")
	}
	if c.Output.WidthCM <= 0 || c.Output.HeightCM <= 0 {
		return fmt.Errorf("output dimensions must be positive, got %gx%g", c.Output.WidthCM, c.Output.HeightCM)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}
