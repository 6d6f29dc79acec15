// Package config reads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Dictionary backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Root word pick modes.
const (
	PickRandom = "random"
	PickSeeded = "seeded"
	PickDaily  = "daily"
)

// Config holds every environment-driven setting of the console host.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"` // console | json

	StartFile      string `env:"WORDS_START_FILE"`
	DictionaryFile string `env:"WORDS_DICTIONARY_FILE"`

	DictionaryBackend string `env:"DICTIONARY_BACKEND" envDefault:"memory"`
	DictionaryDSN     string `env:"DICTIONARY_DSN"     envDefault:"./data/dictionary.db"`

	Locale      string `env:"SCRAMBLE_LOCALE"       envDefault:"en"`
	PickMode    string `env:"SCRAMBLE_PICK"         envDefault:"random"`
	Seed        uint64 `env:"SCRAMBLE_SEED"`
	DailySalt   string `env:"DAILY_SALT"            envDefault:"local_dev_salt"`
	DebugBypass bool   `env:"SCRAMBLE_DEBUG_BYPASS" envDefault:"true"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown enum values.
func (c Config) Validate() error {
	switch c.DictionaryBackend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown DICTIONARY_BACKEND %q", c.DictionaryBackend)
	}
	switch c.PickMode {
	case PickRandom, PickSeeded, PickDaily:
	default:
		return fmt.Errorf("config: unknown SCRAMBLE_PICK %q", c.PickMode)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
