package model

import (
	"fmt"
	"slices"
)

// ShipKind names one of the four fleet shapes
type ShipKind string

const (
	ShipFighter   ShipKind = "fighter"   // X
	ShipCarrier   ShipKind = "carrier"   // H
	ShipDestroyer ShipKind = "destroyer" // V
	ShipScout     ShipKind = "scout"     // I
)

// Letter returns the shape letter the ship is drawn after
func (k ShipKind) Letter() rune {
	switch k {
	case ShipFighter:
		return 'X'
	case ShipCarrier:
		return 'H'
	case ShipDestroyer:
		return 'V'
	case ShipScout:
		return 'I'
	default:
		return '?'
	}
}

// DisplayName returns a human-readable label for the ship
func (k ShipKind) DisplayName() string {
	switch k {
	case ShipFighter:
		return "Fighter"
	case ShipCarrier:
		return "Carrier"
	case ShipDestroyer:
		return "Destroyer"
	case ShipScout:
		return "Scout"
	default:
		return string(k)
	}
}

// Offset is a cell position relative to a ship's anchor
type Offset struct {
	DRow int
	DCol int
}

// ShipTemplate is the immutable shape of a ship kind with its distinct rotations.
// Every rotation is normalized so its smallest row and column offsets are 0,
// which makes the anchor the top-left corner of the shape's bounding box.
type ShipTemplate struct {
	Kind      ShipKind
	rotations [][]Offset
}

// Rotations returns the number of distinct orientations of the shape
func (t ShipTemplate) Rotations() int {
	return len(t.rotations)
}

// Size returns the number of cells the ship occupies
func (t ShipTemplate) Size() int {
	if len(t.rotations) == 0 {
		return 0
	}
	return len(t.rotations[0])
}

// Offsets returns a copy of the offsets for the given rotation index
func (t ShipTemplate) Offsets(rotation int) []Offset {
	return slices.Clone(t.rotations[rotation])
}

// CellsAt returns the absolute cells covered when anchored at anchor with the
// given rotation index. No bounds checking is done.
func (t ShipTemplate) CellsAt(anchor Cell, rotation int) []Cell {
	offsets := t.rotations[rotation]
	cells := make([]Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = Cell{Row: anchor.Row + o.DRow, Col: anchor.Col + o.DCol}
	}
	return cells
}

// The fleet shapes, each drawn inside a 3x3 frame:
//
//	X      V      H      I
//	* . *  * . *  * . *  . * .
//	. * .  * . *  * * *  . * .
//	* . *  . * .  * . *  . * .
var fleet = []ShipTemplate{
	newTemplate(ShipFighter, []Offset{{0, 0}, {0, 2}, {1, 1}, {2, 0}, {2, 2}}),
	newTemplate(ShipDestroyer, []Offset{{0, 0}, {0, 2}, {1, 0}, {1, 2}, {2, 1}}),
	newTemplate(ShipCarrier, []Offset{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 2}}),
	newTemplate(ShipScout, []Offset{{0, 1}, {1, 1}, {2, 1}}),
}

// Templates returns the fleet in placement order
func Templates() []ShipTemplate {
	return slices.Clone(fleet)
}

// TemplateFor returns the template for a ship kind
func TemplateFor(kind ShipKind) (ShipTemplate, bool) {
	for _, t := range fleet {
		if t.Kind == kind {
			return t, true
		}
	}
	return ShipTemplate{}, false
}

// newTemplate derives the distinct quarter-turn rotations of base
func newTemplate(kind ShipKind, base []Offset) ShipTemplate {
	rotations := [][]Offset{normalizeOffsets(base)}
	current := base
	for range 3 {
		current = rotateOffsets(current)
		normalized := normalizeOffsets(current)
		duplicate := slices.ContainsFunc(rotations, func(r []Offset) bool {
			return slices.Equal(r, normalized)
		})
		if !duplicate {
			rotations = append(rotations, normalized)
		}
	}
	return ShipTemplate{Kind: kind, rotations: rotations}
}

// rotateOffsets turns the shape 90 degrees clockwise: (r, c) -> (c, -r)
func rotateOffsets(offsets []Offset) []Offset {
	out := make([]Offset, len(offsets))
	for i, o := range offsets {
		out[i] = Offset{DRow: o.DCol, DCol: -o.DRow}
	}
	return out
}

func normalizeOffsets(offsets []Offset) []Offset {
	minRow, minCol := offsets[0].DRow, offsets[0].DCol
	for _, o := range offsets[1:] {
		minRow = min(minRow, o.DRow)
		minCol = min(minCol, o.DCol)
	}
	out := make([]Offset, len(offsets))
	for i, o := range offsets {
		out[i] = Offset{DRow: o.DRow - minRow, DCol: o.DCol - minCol}
	}
	slices.SortFunc(out, func(a, b Offset) int {
		if a.DRow != b.DRow {
			return a.DRow - b.DRow
		}
		return a.DCol - b.DCol
	})
	return out
}

// ShipID identifies a ship within one board
type ShipID int

// PlacedShip is a template bound to an anchor and rotation on a board
type PlacedShip struct {
	ID       ShipID
	Kind     ShipKind
	Anchor   Cell
	Rotation int
	Cells    []Cell
	Hits     int
}

// NewPlacedShip binds a template to a position. The ID is assigned by Board.Place.
func NewPlacedShip(t ShipTemplate, anchor Cell, rotation int) *PlacedShip {
	return &PlacedShip{
		Kind:     t.Kind,
		Anchor:   anchor,
		Rotation: rotation,
		Cells:    t.CellsAt(anchor, rotation),
	}
}

// Size returns the number of cells the ship occupies
func (s *PlacedShip) Size() int {
	return len(s.Cells)
}

// Sunk returns true once every cell of the ship has been hit
func (s *PlacedShip) Sunk() bool {
	return s.Hits == len(s.Cells)
}

// Contains returns true if the ship covers the given cell
func (s *PlacedShip) Contains(c Cell) bool {
	return slices.Contains(s.Cells, c)
}

func (s *PlacedShip) String() string {
	return fmt.Sprintf("%s#%d@%s", s.Kind, s.ID, s.Anchor)
}
