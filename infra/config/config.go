package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/drakos74/free-means/internal/math/ml"
	"github.com/rs/zerolog/log"
)

const path = "infra/config"

// Config is the configuration of the interactive clustering tool.
type Config struct {
	// Data is the path of the dataset file.
	Data          string  `json:"data" toml:"data"`
	Epsilon       float64 `json:"epsilon" toml:"epsilon"`
	MaxIterations int     `json:"max_iterations" toml:"max_iterations"`
	// Seed fixes the random source of every run, zero picks a new seed per run.
	Seed    int64 `json:"seed" toml:"seed"`
	Members bool  `json:"members" toml:"members"`
	Plot    bool  `json:"plot" toml:"plot"`
	// Output is the directory reports are stored in, empty disables storing.
	Output string `json:"output" toml:"output"`
	// Metrics is the port for the prometheus endpoint, zero disables it.
	Metrics int `json:"metrics" toml:"metrics"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Data:    "iris.txt",
		Epsilon: ml.DefaultEpsilon,
		Members: true,
	}
}

// KMeans returns the engine part of the configuration.
func (c Config) KMeans() ml.Config {
	return ml.Config{
		Epsilon:       c.Epsilon,
		MaxIterations: c.MaxIterations,
	}
}

// Load decodes the file at the given path into v, based on the file extension.
func Load(p string, v interface{}) error {
	switch ext := filepath.Ext(p); ext {
	case ".json":
		b, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("could not load config '%s': %w", p, err)
		}
		if err := json.Unmarshal(b, v); err != nil {
			return fmt.Errorf("could not unmarshal config '%s': %w", p, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(p, v); err != nil {
			return fmt.Errorf("could not decode config '%s': %w", p, err)
		}
	default:
		return fmt.Errorf("unknown config format '%s' for '%s'", ext, p)
	}
	log.Info().Str("path", p).Msg("loaded config")
	return nil
}

// MustLoad loads the default config file for the given key
func MustLoad(key string, v interface{}) {
	p := fmt.Sprintf("%s/%s.json", path, key)
	if err := Load(p, v); err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}
}

// Exists checks if there is a default config file for the given key.
func Exists(key string) bool {
	_, err := os.Stat(fmt.Sprintf("%s/%s.json", path, key))
	return err == nil
}
