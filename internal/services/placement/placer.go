package placement

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// DefaultMaxAttempts bounds the random samples tried for a single ship
const DefaultMaxAttempts = 1000

// Placer positions ships on a board by rejection sampling
type Placer struct {
	random      random.Random
	maxAttempts int
	logger      *slog.Logger
}

// New creates a Placer. A non-positive maxAttempts uses DefaultMaxAttempts.
func New(rnd random.Random, maxAttempts int, logger *slog.Logger) *Placer {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Placer{
		random:      rnd,
		maxAttempts: maxAttempts,
		logger:      logger.With(slog.String("component", "placer")),
	}
}

// PlaceFleet places every template in order. On failure the board may hold
// the ships placed before the failing one and should be discarded.
func (p *Placer) PlaceFleet(board *model.Board, templates []model.ShipTemplate) error {
	for _, t := range templates {
		if _, err := p.PlaceShip(board, t); err != nil {
			return err
		}
	}
	return nil
}

// PlaceShip samples a uniform anchor and rotation until the ship fits.
// Returns ErrPlacementExhausted after maxAttempts rejected samples.
func (p *Placer) PlaceShip(board *model.Board, t model.ShipTemplate) (*model.PlacedShip, error) {
	size := board.Size()
	for range p.maxAttempts {
		anchor := model.Cell{Row: p.random.Intn(size), Col: p.random.Intn(size)}
		rotation := p.random.Intn(t.Rotations())

		ship := model.NewPlacedShip(t, anchor, rotation)
		if err := board.Place(ship); err != nil {
			continue // Overlap or out of bounds: resample
		}
		return ship, nil
	}

	p.logger.Warn("placement exhausted",
		slog.String("ship", string(t.Kind)),
		slog.Int("board_size", size),
		slog.Int("attempts", p.maxAttempts),
	)
	return nil, fmt.Errorf("%s: %w", t.Kind, model.ErrPlacementExhausted)
}
