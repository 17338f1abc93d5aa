package model

import "fmt"

// BoardSize is the edge length of every board in a normal game
const BoardSize = 10

// Cell identifies a square on a board
type Cell struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// String renders the cell as a row letter and 1-based column, e.g. "C7"
func (c Cell) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row), c.Col+1)
}

// Neighbors returns the four orthogonal neighbours of the cell.
// Callers must bounds-check the results.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
}

// CellState is the status of a single grid cell
type CellState int

const (
	CellEmpty    CellState = iota // Nothing here, not shot
	CellOccupied                  // Part of a ship, not shot
	CellHit                       // Part of a ship, shot
	CellMiss                      // Nothing here, shot
	CellSunk                      // Part of a ship whose every cell was hit

	// CellUnknown only appears in observable views of an opponent board
	CellUnknown
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	case CellSunk:
		return "sunk"
	case CellUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// IsShot returns true if the cell has already received a shot
func (s CellState) IsShot() bool {
	return s == CellHit || s == CellMiss || s == CellSunk
}

// Grid is a square matrix of cell states
type Grid struct {
	Size  int
	Cells [][]CellState // Row-major: Cells[row][col]
}

// NewGrid creates an all-empty grid of the given size
func NewGrid(size int) *Grid {
	cells := make([][]CellState, size)
	for i := range cells {
		cells[i] = make([]CellState, size)
	}
	return &Grid{
		Size:  size,
		Cells: cells,
	}
}

// Contains returns true if the cell is within bounds
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Col >= 0 && c.Col < g.Size
}

// Get returns the state at the given cell, or CellEmpty if out of bounds
func (g *Grid) Get(c Cell) CellState {
	if !g.Contains(c) {
		return CellEmpty
	}
	return g.Cells[c.Row][c.Col]
}

func (g *Grid) set(c Cell, state CellState) {
	g.Cells[c.Row][c.Col] = state
}

// Count returns how many cells currently hold the given state
func (g *Grid) Count(state CellState) int {
	count := 0
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if g.Cells[row][col] == state {
				count++
			}
		}
	}
	return count
}
