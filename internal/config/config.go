package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App       App
	HTTP      HTTP
	Sequencer Sequencer
	Document  Document
	Session   Session
	RateLimit RateLimit
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"saftz"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor  bool   `env:"LOG_NO_COLOR" envDefault:"false"`
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse()
}

// Parse reads only the process environment.
func Parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Sequencer.validate(); err != nil {
		return Config{}, fmt.Errorf("sequencer: %w", err)
	}

	return config, nil
}
