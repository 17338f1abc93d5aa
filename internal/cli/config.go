package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds CLI configuration. Flags override the environment.
type Config struct {
	Rule       string `env:"BATTLESHIP_RULE" envDefault:"default"`
	Difficulty string `env:"BATTLESHIP_DIFFICULTY" envDefault:"easy"`
	First      string `env:"BATTLESHIP_FIRST" envDefault:"human"`
	// Seed of 0 picks a fresh random seed
	Seed     uint64 `env:"BATTLESHIP_SEED"`
	LogFile  string `env:"BATTLESHIP_LOG_FILE"`
	LogLevel string `env:"BATTLESHIP_LOG_LEVEL" envDefault:"info"`
	Output   string `env:"BATTLESHIP_OUTPUT" envDefault:"text"`
}

// LoadConfig reads an optional .env file and then the environment
func LoadConfig(dotenvPath string) (*Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the game logger. The terminal belongs to the board
// display, so logs only go to a file; without one they are discarded.
func (c *Config) NewLogger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}
