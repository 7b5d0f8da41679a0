// Package config reads the process configuration from DUNGEON_LORE_*
// environment variables.
package config

import (
	"dungeon-lore/internal/logger"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the environment configuration shared by every command.
type Config struct {
	// Seed for shop generation. Zero picks a seed from the clock.
	Seed      int64  `env:"DUNGEON_LORE_SEED" envDefault:"0"`
	LogLevel  string `env:"DUNGEON_LORE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DUNGEON_LORE_LOG_FORMAT" envDefault:"text"`
	// LogSource adds the source file and line to every record.
	LogSource bool `env:"DUNGEON_LORE_LOG_SOURCE" envDefault:"false"`
	// LogFile receives log output, appended. Empty leaves the choice to the
	// command: see LogOutput.
	LogFile string `env:"DUNGEON_LORE_LOG_FILE"`
	// MapScript replaces the built-in alphabet shop script.
	MapScript string `env:"DUNGEON_LORE_MAP_SCRIPT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration from the environment. A .env file in the
// working directory fills in variables that are not already set.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger returns the logger settings.
func (c Config) Logger() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat, AddSource: c.LogSource}
}

// LogOutput opens LogFile for appending, or returns fallback when LogFile is
// unset. The returned close function is always safe to call.
func (c Config) LogOutput(fallback io.Writer) (io.Writer, func() error, error) {
	if c.LogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// Rand returns a generator seeded from Seed, or from the clock when Seed is
// zero.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Script returns the contents of MapScript, or fallback when it is unset.
func (c Config) Script(fallback string) (string, error) {
	if c.MapScript == "" {
		return fallback, nil
	}
	b, err := os.ReadFile(c.MapScript)
	if err != nil {
		return "", fmt.Errorf("read map script: %w", err)
	}
	return string(b), nil
}
