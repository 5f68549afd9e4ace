package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Dimensions of the packing volume. The solver, the exporters, and the
// UI all render against the same 3x3x3 cube.
const (
	CubeEdge  = 3
	CubeCells = CubeEdge * CubeEdge * CubeEdge
)

// Cell is an integer coordinate inside the packing volume, or an offset
// relative to a piece's anchor.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Add returns the cell translated by the given offset.
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns the offset from o to c.
func (c Cell) Sub(o Cell) Cell {
	return Cell{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// DistSq returns the squared euclidean distance between two cells.
// Cells sharing a face are exactly distance 1 apart.
func (c Cell) DistSq(o Cell) int {
	d := c.Sub(o)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// CloneCells returns an independent copy of a cell slice.
func CloneCells(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out
}

// Piece represents a polycube piece as a set of cell offsets from its
// own origin. The offsets are treated as immutable after construction;
// the solver works on rotated copies instead.
type Piece struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cells []Cell `json:"cells"`
}

func NewPiece(name string, cells []Cell) Piece {
	return Piece{
		ID:    uuid.New().String()[:8],
		Name:  name,
		Cells: CloneCells(cells),
	}
}

// Size returns the number of unit cubes in the piece.
func (p Piece) Size() int {
	return len(p.Cells)
}

// Placement records one piece fixed inside the volume: the orientation
// it was placed in, as offsets, and the anchor those offsets are
// relative to.
type Placement struct {
	Piece  Piece  `json:"piece"`
	Cells  []Cell `json:"cells"`
	Anchor Cell   `json:"anchor"`
}

// AbsoluteCells returns the volume cells the placement occupies.
func (p Placement) AbsoluteCells() []Cell {
	abs := make([]Cell, len(p.Cells))
	for i, off := range p.Cells {
		abs[i] = p.Anchor.Add(off)
	}
	return abs
}

// Edges returns every pair of the placement's cells that sit face to
// face (squared distance 1). Renderers draw these as the piece skeleton.
func (p Placement) Edges() [][2]Cell {
	abs := p.AbsoluteCells()
	var edges [][2]Cell
	for i := 0; i < len(abs); i++ {
		for j := i + 1; j < len(abs); j++ {
			if abs[i].DistSq(abs[j]) == 1 {
				edges = append(edges, [2]Cell{abs[i], abs[j]})
			}
		}
	}
	return edges
}

// SolveSettings holds solver configuration.
type SolveSettings struct {
	PieceSet    string `json:"piece_set"`    // Built-in piece set used when a project has no pieces of its own
	MaxAttempts int64  `json:"max_attempts"` // Stop searching after this many orientation trials; 0 = unlimited
}

func DefaultSolveSettings() SolveSettings {
	return SolveSettings{
		PieceSet:    "Classic",
		MaxAttempts: 0,
	}
}

// SolveResult holds the full outcome of a packing search.
type SolveResult struct {
	Placements []Placement `json:"placements"`
	Unplaced   []Piece     `json:"unplaced,omitempty"`
	Filled     int         `json:"filled"`
	Solved     bool        `json:"solved"`
}

// FillPercent returns the share of the volume covered by placements.
func (r SolveResult) FillPercent() float64 {
	return float64(r.Filled) / float64(CubeCells) * 100.0
}

// PieceAt returns the index into Placements of the piece covering the
// given cell, or -1 when the cell is empty. Renderers use the index to
// give each piece a stable color across output formats.
func (r SolveResult) PieceAt(c Cell) int {
	for i, p := range r.Placements {
		for _, cell := range p.AbsoluteCells() {
			if cell == c {
				return i
			}
		}
	}
	return -1
}

// Project ties everything together for save/load.
type Project struct {
	Name     string        `json:"name"`
	Pieces   []Piece       `json:"pieces"`
	Settings SolveSettings `json:"settings"`
	Result   *SolveResult  `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Pieces:   []Piece{},
		Settings: DefaultSolveSettings(),
	}
}
