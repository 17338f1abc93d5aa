package model

import (
	"strings"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// Side is one of the two players
type Side string

const (
	SideHuman    Side = "human"
	SideComputer Side = "computer"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideHuman {
		return SideComputer
	}
	return SideHuman
}

// ParseSide converts a flag value to a Side. Empty means human.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case "", SideHuman:
		return SideHuman, nil
	case SideComputer:
		return SideComputer, nil
	default:
		return "", ErrUnknownSide
	}
}

// Phase is the current step of the turn state machine.
// PhaseRoundResolved is transient: it is entered and left inside the call
// that ends a round, so it shows up in logs but never in Turn or a Snapshot.
type Phase string

const (
	PhaseAwaitingHumanShots    Phase = "awaiting_human_shots"
	PhaseAwaitingComputerShots Phase = "awaiting_computer_shots"
	PhaseRoundResolved         Phase = "round_resolved" // Both sides finished their turn; never observable
	PhaseGameOver              Phase = "game_over"
)

// AwaitingPhase returns the phase in which the given side fires
func AwaitingPhase(side Side) Phase {
	if side == SideComputer {
		return PhaseAwaitingComputerShots
	}
	return PhaseAwaitingHumanShots
}

// TurnState is the explicit turn state machine value
type TurnState struct {
	Phase          Phase
	ShotsRemaining int  // Shots left in the current salvo
	Winner         Side // Set only in PhaseGameOver
}

// ActiveSide returns the side expected to fire, if any
func (t TurnState) ActiveSide() (Side, bool) {
	switch t.Phase {
	case PhaseAwaitingHumanShots:
		return SideHuman, true
	case PhaseAwaitingComputerShots:
		return SideComputer, true
	default:
		return "", false
	}
}

// IsOver returns true once a winner is decided
func (t TurnState) IsOver() bool {
	return t.Phase == PhaseGameOver
}

// ShipStatus reports a single ship for display and post-game summaries
type ShipStatus struct {
	ID    ShipID
	Kind  ShipKind
	Size  int
	Hits  int
	Sunk  bool
	Cells []Cell // Empty for opponent ships that are still afloat
}

// SideStats counts one side's shooting
type SideStats struct {
	ShotsFired int
	Hits       int // Shots that struck a ship, including sinking shots
	ShipsSunk  int // Opponent ships sunk
}

// Snapshot is a read-only view of a game from the human player's seat
type Snapshot struct {
	ID         GameID
	Rule       RuleVariant
	Difficulty Difficulty
	Turn       TurnState
	Round      int

	MyBoard       BoardView // Full own board, ships visible
	OpponentBoard BoardView // Observable only: unshot cells are CellUnknown

	MyFleet       []ShipStatus
	OpponentFleet []ShipStatus

	MyStats       SideStats
	OpponentStats SideStats

	StartedAt  time.Time
	FinishedAt time.Time // Zero until the game is over
}

// ShotsRemaining returns the shots left in the active salvo
func (s Snapshot) ShotsRemaining() int {
	return s.Turn.ShotsRemaining
}
