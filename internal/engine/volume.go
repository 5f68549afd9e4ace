package engine

import (
	"errors"

	"github.com/piwi3910/CubePack/internal/model"
)

// The two recoverable placement failures. The solver catches both at
// the call site to abandon a trial; they never signal overall failure.
var (
	ErrOutOfBounds = errors.New("placement out of bounds")
	ErrCollision   = errors.New("cell already occupied")
)

// Volume is the 3x3x3 occupancy grid. It is a plain value type over a
// fixed-size array, so assigning a Volume copies all 27 cells — that is
// what makes per-trial state cloning cheap.
type Volume struct {
	cells [model.CubeCells]bool
}

func cellIndex(c model.Cell) int {
	return c.X*model.CubeEdge*model.CubeEdge + c.Y*model.CubeEdge + c.Z
}

func inBounds(c model.Cell) bool {
	return c.X >= 0 && c.X < model.CubeEdge &&
		c.Y >= 0 && c.Y < model.CubeEdge &&
		c.Z >= 0 && c.Z < model.CubeEdge
}

// Occupied reports whether the given cell is filled. The cell must be
// inside the volume.
func (v *Volume) Occupied(c model.Cell) bool {
	return v.cells[cellIndex(c)]
}

// NumFilled returns the number of filled cells.
func (v *Volume) NumFilled() int {
	n := 0
	for _, filled := range v.cells {
		if filled {
			n++
		}
	}
	return n
}

// IsFilled reports whether all 27 cells are occupied.
func (v *Volume) IsFilled() bool {
	return v.NumFilled() == model.CubeCells
}

// Validate checks a placement of the given offsets at anchor without
// modifying the volume. It returns ErrOutOfBounds if any absolute cell
// has a coordinate outside [0,2], ErrCollision if any absolute cell is
// already occupied. The first failing offset decides which error is
// reported.
func (v *Volume) Validate(offsets []model.Cell, anchor model.Cell) error {
	for _, off := range offsets {
		abs := anchor.Add(off)
		if !inBounds(abs) {
			return ErrOutOfBounds
		}
		if v.cells[cellIndex(abs)] {
			return ErrCollision
		}
	}
	return nil
}

// Place validates the placement and, only if the whole piece fits,
// marks its cells occupied. A failed attempt leaves the volume
// unchanged — validation runs to completion before the first cell is
// marked.
func (v *Volume) Place(offsets []model.Cell, anchor model.Cell) error {
	if err := v.Validate(offsets, anchor); err != nil {
		return err
	}
	for _, off := range offsets {
		v.cells[cellIndex(anchor.Add(off))] = true
	}
	return nil
}
