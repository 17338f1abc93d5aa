package model

import "fmt"

// ShotResult is the kind of outcome a shot produced
type ShotResult string

const (
	ResultMiss ShotResult = "miss"
	ResultHit  ShotResult = "hit"
	ResultSunk ShotResult = "sunk"
)

// ShotOutcome describes what happened at a shot cell.
// Ship and Kind are only set when Result is ResultSunk.
type ShotOutcome struct {
	Result ShotResult
	Ship   ShipID
	Kind   ShipKind
}

func (o ShotOutcome) String() string {
	if o.Result == ResultSunk {
		return fmt.Sprintf("sunk %s", o.Kind)
	}
	return string(o.Result)
}

// ShotRecord is one applied shot, kept for display
type ShotRecord struct {
	Side    Side
	Cell    Cell
	Outcome ShotOutcome
}

// Board is one player's grid and fleet
type Board struct {
	Grid  *Grid
	Ships []*PlacedShip

	// owner[row][col] is the index into Ships covering the cell, or -1
	owner [][]int
}

// NewBoard creates an empty board with no ships
func NewBoard(size int) *Board {
	owner := make([][]int, size)
	for row := range owner {
		owner[row] = make([]int, size)
		for col := range owner[row] {
			owner[row][col] = -1
		}
	}
	return &Board{
		Grid:  NewGrid(size),
		owner: owner,
	}
}

// Size returns the board's edge length
func (b *Board) Size() int {
	return b.Grid.Size
}

// Place puts a ship on the board and assigns its ID.
// Nothing is changed if any cell is out of bounds or already occupied.
func (b *Board) Place(ship *PlacedShip) error {
	for _, c := range ship.Cells {
		if !b.Grid.Contains(c) {
			return &PlacementError{Kind: ship.Kind, Cell: c, Err: ErrOutOfBounds}
		}
		if b.Grid.Get(c) != CellEmpty {
			return &PlacementError{Kind: ship.Kind, Cell: c, Err: ErrOverlap}
		}
	}

	ship.ID = ShipID(len(b.Ships))
	ship.Hits = 0
	for _, c := range ship.Cells {
		b.Grid.set(c, CellOccupied)
		b.owner[c.Row][c.Col] = len(b.Ships)
	}
	b.Ships = append(b.Ships, ship)
	return nil
}

// RecordShot applies a shot to the board and reports what it hit
func (b *Board) RecordShot(c Cell) (ShotOutcome, error) {
	if !b.Grid.Contains(c) {
		return ShotOutcome{}, &ShotError{Cell: c, Err: ErrOutOfBounds}
	}

	switch b.Grid.Get(c) {
	case CellEmpty:
		b.Grid.set(c, CellMiss)
		return ShotOutcome{Result: ResultMiss}, nil
	case CellOccupied:
		ship := b.Ships[b.owner[c.Row][c.Col]]
		b.Grid.set(c, CellHit)
		ship.Hits++
		if !ship.Sunk() {
			return ShotOutcome{Result: ResultHit}, nil
		}
		for _, sc := range ship.Cells {
			b.Grid.set(sc, CellSunk)
		}
		return ShotOutcome{Result: ResultSunk, Ship: ship.ID, Kind: ship.Kind}, nil
	default:
		return ShotOutcome{}, &ShotError{Cell: c, Err: ErrAlreadyShot}
	}
}

// AllSunk returns true if every ship on the board has been sunk
func (b *Board) AllSunk() bool {
	for _, s := range b.Ships {
		if !s.Sunk() {
			return false
		}
	}
	return true
}

// ShipsAlive returns the number of ships not yet sunk
func (b *Board) ShipsAlive() int {
	alive := 0
	for _, s := range b.Ships {
		if !s.Sunk() {
			alive++
		}
	}
	return alive
}

// ShipsSunk returns the number of sunk ships
func (b *Board) ShipsSunk() int {
	return len(b.Ships) - b.ShipsAlive()
}

// ShipAt returns the ship covering the cell, or nil
func (b *Board) ShipAt(c Cell) *PlacedShip {
	if !b.Grid.Contains(c) {
		return nil
	}
	idx := b.owner[c.Row][c.Col]
	if idx < 0 {
		return nil
	}
	return b.Ships[idx]
}

// OwnView returns a copy of the full board, ships included
func (b *Board) OwnView() BoardView {
	return b.view(false)
}

// ObservableView returns what the opponent can see: unshot cells are unknown
func (b *Board) ObservableView() BoardView {
	return b.view(true)
}

func (b *Board) view(observable bool) BoardView {
	cells := make([][]CellState, b.Grid.Size)
	for row := range cells {
		cells[row] = make([]CellState, b.Grid.Size)
		for col := range cells[row] {
			state := b.Grid.Cells[row][col]
			if observable && !state.IsShot() {
				state = CellUnknown
			}
			cells[row][col] = state
		}
	}
	return BoardView{Size: b.Grid.Size, Cells: cells}
}

// BoardView is a read-only copy of a board's cell states
type BoardView struct {
	Size  int
	Cells [][]CellState
}

// Contains returns true if the cell is within bounds
func (v BoardView) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < v.Size && c.Col >= 0 && c.Col < v.Size
}

// At returns the state at the given cell, or CellUnknown if out of bounds
func (v BoardView) At(c Cell) CellState {
	if !v.Contains(c) {
		return CellUnknown
	}
	return v.Cells[c.Row][c.Col]
}

// IsShot returns true if the cell has already been shot
func (v BoardView) IsShot(c Cell) bool {
	return v.At(c).IsShot()
}

// UnshotCells returns every cell not yet shot, in row-major order
func (v BoardView) UnshotCells() []Cell {
	var cells []Cell
	for row := 0; row < v.Size; row++ {
		for col := 0; col < v.Size; col++ {
			if !v.Cells[row][col].IsShot() {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// ShotCount returns the number of cells already shot
func (v BoardView) ShotCount() int {
	return v.Size*v.Size - len(v.UnshotCells())
}
