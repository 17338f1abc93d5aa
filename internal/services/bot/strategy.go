package bot

import (
	"fmt"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// Strategy chooses where the computer fires. It only ever sees the
// observable view of the opponent board.
// The set of strategies is closed: only this package can implement it.
type Strategy interface {
	Difficulty() model.Difficulty
	// ChooseTarget selects one unshot cell
	ChooseTarget(view model.BoardView) (model.Cell, error)
	// Observe reports the outcome of a shot; view reflects the board after it
	Observe(cell model.Cell, outcome model.ShotOutcome, view model.BoardView)

	sealed()
}

// New creates a fresh strategy for one game
func New(difficulty model.Difficulty, rnd random.Random) (Strategy, error) {
	switch difficulty {
	case model.DifficultyEasy:
		return NewEasyStrategy(rnd), nil
	case model.DifficultyHard:
		return NewHardStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("%q: %w", difficulty, model.ErrUnknownDifficulty)
	}
}

// pick returns a uniformly random element of cells
func pick(rnd random.Random, cells []model.Cell) (model.Cell, error) {
	if len(cells) == 0 {
		return model.Cell{}, model.ErrNoTargets
	}
	return cells[rnd.Intn(len(cells))], nil
}
