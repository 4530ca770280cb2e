package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// DataDir is the root directory store data lives under.
	DataDir string `env:"DEPOT_DATA_DIR" envDefault:"data"`
}

// ConfigFromEnv builds a Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("environment parse failed: %w", err)
	}
	return cfg, nil
}
