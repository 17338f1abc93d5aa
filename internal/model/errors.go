package model

import (
	"errors"
	"fmt"
)

// Common errors used across the engine
var (
	// Placement errors
	ErrOverlap            = errors.New("cell is already occupied by a ship")
	ErrOutOfBounds        = errors.New("cell is outside the board")
	ErrPlacementExhausted = errors.New("no valid ship placement found")

	// Shot errors
	ErrAlreadyShot = errors.New("cell has already been shot")
	ErrNotYourTurn = errors.New("not this side's turn")
	ErrGameOver    = errors.New("game is already over")

	// Targeting errors
	ErrNoTargets = errors.New("no unshot cells remain")

	// Configuration errors
	ErrUnknownRule       = errors.New("unknown salvo rule")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownSide       = errors.New("unknown side")
)

// PlacementError reports why a ship could not be put on a board
type PlacementError struct {
	Kind ShipKind
	Cell Cell
	Err  error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("place %s at %s: %v", e.Kind, e.Cell, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}

// ShotError reports a rejected shot. The board is left unchanged.
type ShotError struct {
	Cell Cell
	Err  error
}

func (e *ShotError) Error() string {
	return fmt.Sprintf("shot at %s: %v", e.Cell, e.Err)
}

func (e *ShotError) Unwrap() error {
	return e.Err
}

// SetupError is a fatal failure to build a game
type SetupError struct {
	Side     Side
	Attempts int
	Err      error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("set up %s board after %d attempts: %v", e.Side, e.Attempts, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
