package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/latoulicious/roster/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Config holds everything the roster CLI needs to run
type Config struct {
	DatabaseURL string         `env:"DATABASE_URL,required,notEmpty"`
	Environment string         `env:"ROSTER_ENV,required"`
	Logger      logging.Config `envPrefix:"ROSTER_LOG_"`
}

// fileConfig is the layout of config/roster.yaml and config/roster.toml
type fileConfig struct {
	Logger logging.Config `yaml:"logger" toml:"logger"`
}

// Loader reads configuration relative to Dir, where .env and the config/
// folder are looked up.
type Loader struct {
	Dir string
}

// LoadConfig loads configuration from the working directory
func LoadConfig() (*Config, error) {
	return Loader{Dir: "."}.Load()
}

// Load applies, in order: .env, defaults, config/roster.yaml or
// config/roster.toml, then the environment.
func (l Loader) Load() (*Config, error) {
	envPath := filepath.Join(l.Dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	file := &fileConfig{Logger: logging.DefaultConfig()}
	if err := l.loadYAMLConfig(file); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if err := l.loadTOMLConfig(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{Logger: file.Logger}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadYAMLConfig attempts to load configuration from YAML file
func (l Loader) loadYAMLConfig(cfg *fileConfig) error {
	data, err := os.ReadFile(filepath.Join(l.Dir, "config", "roster.yaml"))
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

// loadTOMLConfig attempts to load configuration from TOML file
func (l Loader) loadTOMLConfig(cfg *fileConfig) error {
	tomlPath := filepath.Join(l.Dir, "config", "roster.toml")
	if _, err := os.Stat(tomlPath); err != nil {
		return err
	}

	if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
		return fmt.Errorf("failed to parse TOML config: %w", err)
	}

	return nil
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Logger.File == "" {
		return fmt.Errorf("logger file cannot be empty")
	}
	if _, err := logging.ParseLevel(c.Logger.FileLevel); err != nil {
		return fmt.Errorf("logger file_level: %w", err)
	}
	if _, err := logging.ParseLevel(c.Logger.ConsoleLevel); err != nil {
		return fmt.Errorf("logger console_level: %w", err)
	}
	if !isValidLogFormat(c.Logger.Format) {
		return fmt.Errorf("invalid logger format: %s (must be console or json)", c.Logger.Format)
	}
	return nil
}

func isValidLogFormat(format string) bool {
	return format == "console" || format == "json"
}
