package bot

import (
	"slices"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// probe is a cell queued for targeting next to a confirmed hit
type probe struct {
	cell   model.Cell
	source model.Cell // The hit that caused the probe
}

// HardStrategy hunts and targets. While probes are queued it fires at them
// in order; otherwise it searches the even checkerboard cells, falling back
// to any unshot cell once the even cells are used up.
type HardStrategy struct {
	random random.Random
	probes []probe
}

// NewHardStrategy creates a new HardStrategy
func NewHardStrategy(rnd random.Random) *HardStrategy {
	return &HardStrategy{random: rnd}
}

func (s *HardStrategy) Difficulty() model.Difficulty {
	return model.DifficultyHard
}

// ChooseTarget pops the next usable probe, or searches if none remain
func (s *HardStrategy) ChooseTarget(view model.BoardView) (model.Cell, error) {
	for len(s.probes) > 0 {
		next := s.probes[0]
		s.probes = s.probes[1:]
		if view.Contains(next.cell) && !view.IsShot(next.cell) {
			return next.cell, nil
		}
	}
	return s.search(view)
}

func (s *HardStrategy) search(view model.BoardView) (model.Cell, error) {
	unshot := view.UnshotCells()
	parity := make([]model.Cell, 0, len(unshot))
	for _, c := range unshot {
		if (c.Row+c.Col)%2 == 0 {
			parity = append(parity, c)
		}
	}
	if len(parity) > 0 {
		return pick(s.random, parity)
	}
	// Ships whose cells all sit on odd squares (a diagonal fighter) need the rest
	return pick(s.random, unshot)
}

// Observe queues neighbours of new hits and drops probes around sunk ships
func (s *HardStrategy) Observe(cell model.Cell, outcome model.ShotOutcome, view model.BoardView) {
	switch outcome.Result {
	case model.ResultHit:
		s.enqueueNeighbors(cell, view)
	case model.ResultSunk:
		// Every cell of the sunk ship now reads CellSunk, so probes raised
		// by its hits are resolved.
		s.probes = slices.DeleteFunc(s.probes, func(p probe) bool {
			return view.At(p.source) == model.CellSunk
		})
		// A purged probe may also border another ship's open hit; requeue
		// around every hit still unresolved.
		for _, c := range hitCells(view) {
			s.enqueueNeighbors(c, view)
		}
	}
}

func (s *HardStrategy) enqueueNeighbors(cell model.Cell, view model.BoardView) {
	for _, n := range cell.Neighbors() {
		if !view.Contains(n) || view.IsShot(n) || s.queued(n) {
			continue
		}
		s.probes = append(s.probes, probe{cell: n, source: cell})
	}
}

// hitCells returns cells reading CellHit in row-major order
func hitCells(view model.BoardView) []model.Cell {
	var cells []model.Cell
	for row := 0; row < view.Size; row++ {
		for col := 0; col < view.Size; col++ {
			if view.Cells[row][col] == model.CellHit {
				cells = append(cells, model.Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Pending returns the queued probe cells in firing order
func (s *HardStrategy) Pending() []model.Cell {
	cells := make([]model.Cell, len(s.probes))
	for i, p := range s.probes {
		cells[i] = p.cell
	}
	return cells
}

func (s *HardStrategy) queued(c model.Cell) bool {
	return slices.ContainsFunc(s.probes, func(p probe) bool { return p.cell == c })
}

func (s *HardStrategy) sealed() {}

var _ Strategy = (*HardStrategy)(nil)
