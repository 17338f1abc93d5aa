package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/services/placement"
	"github.com/mcoot/battleship-go/internal/services/salvo"
)

// DefaultMaxSetupAttempts bounds full-board placement retries per side
const DefaultMaxSetupAttempts = 10

// Options configures a new game
type Options struct {
	First model.Side
	// BoardSize defaults to model.BoardSize
	BoardSize int
	// MaxSetupAttempts defaults to DefaultMaxSetupAttempts
	MaxSetupAttempts int
}

// Game runs one human-versus-computer match. It is not safe for concurrent
// use; every call is expected to come from a single input loop.
type Game struct {
	id       model.GameID
	rule     salvo.Rule
	strategy bot.Strategy
	clock    clock.Clock
	logger   *slog.Logger

	boards map[model.Side]*model.Board
	stats  map[model.Side]*model.SideStats
	first  model.Side
	turn   model.TurnState
	round  int

	startedAt  time.Time
	finishedAt time.Time
}

// New places both fleets and opens the first turn. Rule and strategy must be
// fresh instances owned by this game.
func New(
	opts Options,
	placer *placement.Placer,
	rule salvo.Rule,
	strategy bot.Strategy,
	clk clock.Clock,
	logger *slog.Logger,
) (*Game, error) {
	if opts.First == "" {
		opts.First = model.SideHuman
	}
	if opts.BoardSize <= 0 {
		opts.BoardSize = model.BoardSize
	}
	if opts.MaxSetupAttempts <= 0 {
		opts.MaxSetupAttempts = DefaultMaxSetupAttempts
	}

	id := model.GameID(uuid.NewString())
	logger = logger.With(
		slog.String("component", "game"),
		slog.String("game_id", string(id)),
	)

	g := &Game{
		id:       id,
		rule:     rule,
		strategy: strategy,
		clock:    clk,
		logger:   logger,
		boards:   make(map[model.Side]*model.Board, 2),
		stats: map[model.Side]*model.SideStats{
			model.SideHuman:    {},
			model.SideComputer: {},
		},
		first: opts.First,
		round: 1,
	}

	for _, side := range []model.Side{model.SideHuman, model.SideComputer} {
		board, err := setupBoard(placer, opts.BoardSize, opts.MaxSetupAttempts, logger)
		if err != nil {
			logger.Error("game setup failed",
				slog.String("side", string(side)),
				slog.String("error", err.Error()),
			)
			return nil, &model.SetupError{Side: side, Attempts: opts.MaxSetupAttempts, Err: err}
		}
		g.boards[side] = board
	}

	g.startedAt = clk.Now()
	g.beginTurn(opts.First)

	logger.Info("game created",
		slog.String("rule", string(rule.Variant())),
		slog.String("difficulty", string(strategy.Difficulty())),
		slog.String("first", string(opts.First)),
		slog.Int("board_size", opts.BoardSize),
	)

	return g, nil
}

// setupBoard retries a whole fleet placement on a fresh board
func setupBoard(placer *placement.Placer, size, attempts int, logger *slog.Logger) (*model.Board, error) {
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		board := model.NewBoard(size)
		err := placer.PlaceFleet(board, model.Templates())
		if err == nil {
			return board, nil
		}
		if !errors.Is(err, model.ErrPlacementExhausted) {
			return nil, err
		}
		lastErr = err
		logger.Debug("retrying board setup", slog.Int("attempt", attempt))
	}
	return nil, lastErr
}

// ID returns the game's unique identifier
func (g *Game) ID() model.GameID {
	return g.id
}

// Turn returns the current turn state
func (g *Game) Turn() model.TurnState {
	return g.turn
}

// HumanShot fires one shot of the human's salvo at the computer's board.
// Rejected shots leave the game unchanged and do not consume the shot.
func (g *Game) HumanShot(cell model.Cell) (model.ShotOutcome, error) {
	if err := g.checkTurn(model.SideHuman); err != nil {
		return model.ShotOutcome{}, err
	}
	return g.fire(model.SideHuman, cell)
}

// ComputerTakeTurn fires the computer's entire salvo and returns the shots
// in order. The strategy sees each outcome before choosing the next cell.
func (g *Game) ComputerTakeTurn() ([]model.ShotRecord, error) {
	if err := g.checkTurn(model.SideComputer); err != nil {
		return nil, err
	}

	var records []model.ShotRecord
	target := g.boards[model.SideHuman]
	for g.turn.Phase == model.PhaseAwaitingComputerShots {
		cell, err := g.strategy.ChooseTarget(target.ObservableView())
		if err != nil {
			return records, fmt.Errorf("choose target: %w", err)
		}

		outcome, err := g.fire(model.SideComputer, cell)
		if err != nil {
			return records, fmt.Errorf("computer shot: %w", err)
		}
		g.strategy.Observe(cell, outcome, target.ObservableView())

		records = append(records, model.ShotRecord{
			Side:    model.SideComputer,
			Cell:    cell,
			Outcome: outcome,
		})
	}

	return records, nil
}

func (g *Game) checkTurn(side model.Side) error {
	if g.turn.IsOver() {
		return model.ErrGameOver
	}
	if active, ok := g.turn.ActiveSide(); !ok || active != side {
		return model.ErrNotYourTurn
	}
	return nil
}

// fire applies one shot and advances the state machine
func (g *Game) fire(side model.Side, cell model.Cell) (model.ShotOutcome, error) {
	target := g.boards[side.Opponent()]
	outcome, err := target.RecordShot(cell)
	if err != nil {
		return model.ShotOutcome{}, err
	}

	stats := g.stats[side]
	stats.ShotsFired++
	if outcome.Result != model.ResultMiss {
		stats.Hits++
	}
	if outcome.Result == model.ResultSunk {
		stats.ShipsSunk++
		g.logger.Info("ship sunk",
			slog.String("by", string(side)),
			slog.String("ship", string(outcome.Kind)),
			slog.String("cell", cell.String()),
		)
	}

	if target.AllSunk() {
		g.finish(side)
		return outcome, nil
	}

	g.turn.ShotsRemaining--
	if g.turn.ShotsRemaining <= 0 {
		g.passTurn(side)
	}
	return outcome, nil
}

// passTurn ends side's salvo. The round resolves once the side that did not
// open the game has fired.
func (g *Game) passTurn(side model.Side) {
	if side != g.first {
		g.turn = model.TurnState{Phase: model.PhaseRoundResolved}
		g.logger.Debug("round resolved", slog.Int("round", g.round))
		g.round++
	}
	g.beginTurn(side.Opponent())
}

// beginTurn asks the rule for a fresh shot count
func (g *Game) beginTurn(side model.Side) {
	shots := g.rule.ShotsForTurn(salvo.Context{
		Side:       side,
		ShipsAlive: g.boards[side].ShipsAlive(),
		ShipsSunk:  g.boards[side.Opponent()].ShipsSunk(),
	})
	g.turn = model.TurnState{
		Phase:          model.AwaitingPhase(side),
		ShotsRemaining: shots,
	}
	g.logger.Debug("turn started",
		slog.String("side", string(side)),
		slog.Int("shots", shots),
		slog.Int("round", g.round),
	)
}

func (g *Game) finish(winner model.Side) {
	g.turn = model.TurnState{Phase: model.PhaseGameOver, Winner: winner}
	g.finishedAt = g.clock.Now()
	g.logger.Info("game over",
		slog.String("winner", string(winner)),
		slog.Int("rounds", g.round),
		slog.Duration("duration", g.clock.Since(g.startedAt)),
	)
}
