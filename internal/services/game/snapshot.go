package game

import (
	"slices"

	"github.com/mcoot/battleship-go/internal/model"
)

// Snapshot returns a read-only copy of the game as the human sees it.
// The computer's fleet is revealed in full once the game is over.
func (g *Game) Snapshot() model.Snapshot {
	mine := g.boards[model.SideHuman]
	theirs := g.boards[model.SideComputer]

	return model.Snapshot{
		ID:            g.id,
		Rule:          g.rule.Variant(),
		Difficulty:    g.strategy.Difficulty(),
		Turn:          g.turn,
		Round:         g.round,
		MyBoard:       mine.OwnView(),
		OpponentBoard: theirs.ObservableView(),
		MyFleet:       fleetStatus(mine, false),
		OpponentFleet: fleetStatus(theirs, !g.turn.IsOver()),
		MyStats:       *g.stats[model.SideHuman],
		OpponentStats: *g.stats[model.SideComputer],
		StartedAt:     g.startedAt,
		FinishedAt:    g.finishedAt,
	}
}

// fleetStatus summarises a fleet. Hidden fleets only reveal hits and cells
// of ships that are already sunk.
func fleetStatus(board *model.Board, hidden bool) []model.ShipStatus {
	fleet := make([]model.ShipStatus, 0, len(board.Ships))
	for _, ship := range board.Ships {
		status := model.ShipStatus{
			ID:   ship.ID,
			Kind: ship.Kind,
			Size: ship.Size(),
			Sunk: ship.Sunk(),
		}
		if !hidden || status.Sunk {
			status.Hits = ship.Hits
			status.Cells = slices.Clone(ship.Cells)
		}
		fleet = append(fleet, status)
	}
	return fleet
}
