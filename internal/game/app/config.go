package app

import "github.com/NoahPeres/ti4engine/internal/platform/config"

// Config holds engine settings loaded from the environment.
type Config struct {
	// MaxScore is the victory point ceiling for the session.
	MaxScore int `env:"TI4ENGINE_MAX_SCORE" envDefault:"10"`
	// CommodityCeiling is the default commodity capacity for players whose
	// opening balance does not set one.
	CommodityCeiling int `env:"TI4ENGINE_COMMODITY_CEILING" envDefault:"4"`
	// DBPath selects a durable store; empty keeps everything in memory.
	DBPath string `env:"TI4ENGINE_DB_PATH"`
	// DBBackend picks the durable store implementation, "sqlite" or "bolt".
	DBBackend string `env:"TI4ENGINE_DB_BACKEND" envDefault:"sqlite"`
}

// LoadConfig reads engine settings from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
