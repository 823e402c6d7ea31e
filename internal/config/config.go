// Package config provides configuration for the log generator.
// Defaults can be overridden by a YAML file and INDUSLOG_* environment
// variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Users is the size of the synthetic user pool.
	Users int `yaml:"users"`
	// Products is the size of the synthetic product catalog.
	Products int `yaml:"products"`
	// JourneysPerHour is the number of independent journeys started at
	// each simulated wall-clock hour.
	JourneysPerHour int `yaml:"journeys_per_hour"`
	// Seed seeds the random source; 0 derives a seed from the current time.
	Seed int64 `yaml:"seed"`
	// OutputPath is where the JSON log file is written.
	OutputPath string `yaml:"output_path"`
	// LogMode selects the logger encoder: "dev" or "prod".
	LogMode string `yaml:"log_mode"`
}

func Default() *Config {
	return &Config{
		Users:           100,
		Products:        50,
		JourneysPerHour: 5,
		Seed:            0,
		OutputPath:      "app.json",
		LogMode:         "dev",
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Users = getEnvInt("INDUSLOG_USERS", cfg.Users)
	cfg.Products = getEnvInt("INDUSLOG_PRODUCTS", cfg.Products)
	cfg.JourneysPerHour = getEnvInt("INDUSLOG_JOURNEYS_PER_HOUR", cfg.JourneysPerHour)
	cfg.Seed = getEnvInt64("INDUSLOG_SEED", cfg.Seed)
	cfg.OutputPath = getEnv("INDUSLOG_OUTPUT", cfg.OutputPath)
	cfg.LogMode = getEnv("INDUSLOG_LOG_MODE", cfg.LogMode)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}
