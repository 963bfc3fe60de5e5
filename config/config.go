package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultPort = 3000

type Config struct {
	// Connection string for the postgres database holding the teams table.
	DatabaseURL string
	Port        int
}

// Load reads the configuration from the environment after loading an optional
// .env file from the working directory.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit .env paths. Files that don't exist are
// skipped. Values already set in the environment win over the files.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", f, err)
		}
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        defaultPort,
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("error parsing port number: %w", err)
		}
		if p <= 0 || p > 65535 {
			return nil, fmt.Errorf("port number out of range: %d", p)
		}
		cfg.Port = p
	}

	return cfg, nil
}
