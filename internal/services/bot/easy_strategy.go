package bot

import (
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// EasyStrategy fires at a uniformly random unshot cell and keeps no memory
type EasyStrategy struct {
	random random.Random
}

// NewEasyStrategy creates a new EasyStrategy
func NewEasyStrategy(rnd random.Random) *EasyStrategy {
	return &EasyStrategy{random: rnd}
}

func (s *EasyStrategy) Difficulty() model.Difficulty {
	return model.DifficultyEasy
}

// ChooseTarget picks a random unshot cell
func (s *EasyStrategy) ChooseTarget(view model.BoardView) (model.Cell, error) {
	return pick(s.random, view.UnshotCells())
}

func (s *EasyStrategy) Observe(model.Cell, model.ShotOutcome, model.BoardView) {}

func (s *EasyStrategy) sealed() {}

var _ Strategy = (*EasyStrategy)(nil)
