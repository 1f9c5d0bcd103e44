// Package config loads settings for the demos from an optional YAML file,
// an optional .env file and the process environment, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "patterns.yaml"
const DefaultEnvFile = ".env"

// Database holds connection settings handed to the connection factories.
type Database struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type Singleton struct {
	Value   string `yaml:"value"`   // value supplied by the first caller
	Callers int    `yaml:"callers"` // concurrent callers in the stress demo
}

type Records struct {
	StationName string `yaml:"station_name"`
}

type Config struct {
	Database  Database  `yaml:"database"`
	Singleton Singleton `yaml:"singleton"`
	Records   Records   `yaml:"records"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Database: Database{
			Host:     "localhost",
			Port:     "1234",
			User:     "new-user",
			Password: "admin123",
			Name:     "patterns",
		},
		Singleton: Singleton{
			Value:   "FOO",
			Callers: 100,
		},
		Records: Records{
			StationName: "Police Station NN",
		},
	}
}

// Load builds a Config from the defaults, then path (if it exists), then
// envFile (if it exists), then PATTERNS_* environment variables. A missing
// file is not an error; a file that cannot be parsed is.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if envFile != "" {
		// godotenv does not override variables already set in the environment
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg.Database.Host = getEnv("PATTERNS_DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("PATTERNS_DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("PATTERNS_DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("PATTERNS_DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnv("PATTERNS_DB_NAME", cfg.Database.Name)
	cfg.Singleton.Value = getEnv("PATTERNS_SINGLETON_VALUE", cfg.Singleton.Value)
	cfg.Records.StationName = getEnv("PATTERNS_STATION_NAME", cfg.Records.StationName)

	if v := os.Getenv("PATTERNS_CALLERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("PATTERNS_CALLERS: %w", err)
		}
		cfg.Singleton.Callers = n
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings that the demos cannot recover from.
func (c Config) Validate() error {
	if c.Singleton.Callers < 1 {
		return fmt.Errorf("singleton.callers must be at least 1, got %d", c.Singleton.Callers)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
