package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/factory"
	"github.com/mcoot/battleship-go/internal/tui"
)

var (
	cfg    *Config
	cfgErr error

	// runGame plays a wired game; replaced in tests
	runGame = func(app *factory.App, logger *slog.Logger) error {
		return tui.Run(app.Game, tui.Options{Seed: app.Seed, Logger: logger})
	}
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg, cfgErr = LoadConfig(".env")
	if cfg == nil {
		cfg = &Config{}
	}

	rootCmd := &cobra.Command{
		Use:   "battleship",
		Short: "Play battleship against the computer in your terminal",
		Long: `battleship is a terminal battleship game against a computer opponent.

Each side hides a fleet of four ships on a 10x10 grid: a Fighter (X), a
Destroyer (V), a Carrier (H) and a Scout (I). Sink the whole enemy fleet
before yours goes down.

Controls: arrows or hjkl move the cursor, space selects a target, enter
fires, q quits.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfgErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd)
		},
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: BATTLESHIP_OUTPUT)")

	rootCmd.Flags().StringVarP(&cfg.Rule, "rule", "r", cfg.Rule, "Salvo rule: default, fury, charge (env: BATTLESHIP_RULE)")
	rootCmd.Flags().StringVarP(&cfg.Difficulty, "difficulty", "d", cfg.Difficulty, "Computer difficulty: easy, hard (env: BATTLESHIP_DIFFICULTY)")
	rootCmd.Flags().StringVar(&cfg.First, "first", cfg.First, "Side that fires first: human, computer (env: BATTLESHIP_FIRST)")
	rootCmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a fresh one (env: BATTLESHIP_SEED)")
	rootCmd.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write JSON logs to this file (env: BATTLESHIP_LOG_FILE)")
	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: BATTLESHIP_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

func play(cmd *cobra.Command) error {
	logger, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	app, err := factory.New(factory.Config{
		Rule:       cfg.Rule,
		Difficulty: cfg.Difficulty,
		First:      cfg.First,
		Seed:       cfg.Seed,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	if err := runGame(app, logger); err != nil {
		logger.Error("terminal client failed", slog.String("error", err.Error()))
		return err
	}

	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	out.Print(NewGameSummary(app.Game.Snapshot(), app.Seed))
	return nil
}

// Execute runs the root command
func Execute() {
	if err := execute(NewRootCmd(), os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and reports any error in the configured output format
func execute(cmd *cobra.Command, errOut io.Writer) error {
	err := cmd.Execute()
	if err != nil {
		NewOutput(cfg.Output, errOut).PrintError(err)
	}
	return err
}
