package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DB struct {
		Path string `toml:"path"`
	} `toml:"database"`
	PokeAPI struct {
		URL            string `toml:"url"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	} `toml:"pokeapi"`
}

// Read loads the configuration from config.toml, or from the path in the
// MATCHUP_CONFIG environment variable. A missing file yields the zero
// configuration, which runs against the remote pokeapi with defaults.
func Read() (*Config, error) {
	path := os.Getenv("MATCHUP_CONFIG")
	if path == "" {
		path = "config.toml"
	}

	cfg, err := ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}

	return cfg, err
}

func ReadFile(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	return &cfg, nil
}
