package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/services/game"
	"github.com/mcoot/battleship-go/internal/services/placement"
	"github.com/mcoot/battleship-go/internal/services/salvo"
)

// App contains a wired game and the dependencies it was built from
type App struct {
	Game *game.Game

	// Seed reproduces this game's placements and computer choices
	Seed uint64

	// External dependencies
	Clock  clock.Clock
	Random random.Random
}

// Config holds configuration for the application factory
type Config struct {
	// Rule names the salvo rule (default, fury, charge). Empty means default.
	Rule string
	// Difficulty names the computer strategy (easy, hard). Empty means easy.
	Difficulty string
	// First names the side that opens the game (human, computer). Empty means human.
	First string
	// Seed drives all randomness. Zero picks a fresh seed.
	Seed uint64
	// BoardSize overrides the board edge length (optional)
	BoardSize int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// settings is a parsed and validated Config
type settings struct {
	rule       model.RuleVariant
	difficulty model.Difficulty
	first      model.Side
	boardSize  int
}

func parseConfig(cfg Config) (settings, error) {
	rule, err := model.ParseRule(cfg.Rule)
	if err != nil {
		return settings{}, fmt.Errorf("rule %q: %w", cfg.Rule, err)
	}
	difficulty, err := model.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return settings{}, fmt.Errorf("difficulty %q: %w", cfg.Difficulty, err)
	}
	first, err := model.ParseSide(cfg.First)
	if err != nil {
		return settings{}, fmt.Errorf("first %q: %w", cfg.First, err)
	}
	return settings{
		rule:       rule,
		difficulty: difficulty,
		first:      first,
		boardSize:  cfg.BoardSize,
	}, nil
}

// New creates a new game with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	s, err := parseConfig(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = random.NewSeed()
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New(seed)

	app, err := newWithDependencies(s, clk, rnd, logger)
	if err != nil {
		return nil, err
	}
	app.Seed = seed
	logger.Debug("game wired", slog.String("game_id", string(app.Game.ID())), slog.Uint64("seed", seed))
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(s settings, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*App, error) {
	placer := placement.New(rnd, placement.DefaultMaxAttempts, logger)

	rule, err := salvo.New(s.rule)
	if err != nil {
		return nil, err
	}
	strategy, err := bot.New(s.difficulty, rnd)
	if err != nil {
		return nil, err
	}

	g, err := game.New(
		game.Options{First: s.first, BoardSize: s.boardSize},
		placer,
		rule,
		strategy,
		clk,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return &App{
		Game:   g,
		Clock:  clk,
		Random: rnd,
	}, nil
}
