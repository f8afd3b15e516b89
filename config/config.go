package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// HTTP listen port
		Port int `env:"PORT" envDefault:"5250"`

		// Allowed CORS origins; "*" allows everything
		AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	// Sample generator configuration
	Sample struct {
		// Default number of records generated per request
		Size int `env:"SAMPLE_SIZE" envDefault:"100"`

		// RNG seed; 0 seeds from the wall clock at startup
		Seed int64 `env:"SAMPLE_SEED" envDefault:"0"`
	}

	// Dataset configuration
	Data struct {
		// Optional CSV dataset decoded into memory at startup
		File string `env:"DATA_FILE"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
