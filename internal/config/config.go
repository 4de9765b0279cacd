package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration, read from the environment.
type Config struct {
	// DBPath points at the sqlite snapshot database. Empty means no
	// snapshot: the store starts from the built-in demo seed.
	DBPath string `env:"CHOREBOARD_DB_PATH"`
	// ExportOnExit writes the store back to DBPath when the program ends.
	ExportOnExit bool `env:"CHOREBOARD_EXPORT_ON_EXIT"`
	// SeedDemo loads the demo household when the snapshot is empty.
	SeedDemo bool `env:"CHOREBOARD_SEED_DEMO" envDefault:"true"`
	// ParentEmail is the account the summary is scoped to.
	ParentEmail string `env:"CHOREBOARD_PARENT_EMAIL" envDefault:"parent@example.com"`
	// StoreLatency simulates a backing-service delay on every store call.
	StoreLatency time.Duration `env:"CHOREBOARD_STORE_LATENCY"`

	LogLevel  string `env:"CHOREBOARD_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CHOREBOARD_LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from an optional .env file and the environment.
func Load() (Config, error) {
	// A missing .env file is fine; the environment alone is enough.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
