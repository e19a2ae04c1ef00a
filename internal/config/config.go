package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the kotus tool configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Batch  BatchConfig  `yaml:"batch"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// BatchConfig configures corpus checking.
type BatchConfig struct {
	Workers int `yaml:"workers"` // 0 means one per CPU
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		Batch: BatchConfig{
			Workers: 0,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if addr := os.Getenv("KOTUS_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("KOTUS_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if w := os.Getenv("KOTUS_WORKERS"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("KOTUS_WORKERS: %w", err)
		}
		c.Batch.Workers = n
	}
	return nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must be >= 0, got %d", c.Batch.Workers)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q: want json or console", c.Log.Format)
	}
	return nil
}
