// Package config loads agent settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the agent CLI. YAML values are applied
// first; environment variables override them.
type Config struct {
	// Provider selects the completion backend ("openai" or "anthropic").
	Provider string `yaml:"provider" env:"REAGENT_PROVIDER"`
	// Model is the model identifier for completions.
	Model string `yaml:"model" env:"REAGENT_MODEL"`
	// MaxTurns bounds model calls per question.
	MaxTurns int `yaml:"max_turns" env:"REAGENT_MAX_TURNS"`
	// Temperature is the sampling temperature.
	Temperature float64 `yaml:"temperature" env:"REAGENT_TEMPERATURE"`
	// MaxRetries enables retrying failed model calls when positive.
	MaxRetries int `yaml:"max_retries" env:"REAGENT_MAX_RETRIES"`
	// Debug switches to development logging.
	Debug bool `yaml:"debug" env:"REAGENT_DEBUG"`

	// API keys are environment-only; they never belong in a config file.
	OpenAIAPIKey    string `yaml:"-" env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `yaml:"-" env:"ANTHROPIC_API_KEY"`
	SerperAPIKey    string `yaml:"-" env:"SERPER_API_KEY"`
	WeatherAPIKey   string `yaml:"-" env:"WEATHER_API_KEY"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Provider:    "openai",
		Model:       "gpt-5.2-mini",
		MaxTurns:    5,
		Temperature: 1.0,
	}
}

// Load builds a Config from defaults, an optional YAML file, and the
// environment, in that order. An empty path skips the file step.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.MaxTurns <= 0 {
		return cfg, fmt.Errorf("max_turns must be positive, got %d", cfg.MaxTurns)
	}
	return cfg, nil
}
