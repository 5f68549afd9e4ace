// Package engine implements the packing search: piece orientation
// generation, the 3x3x3 occupancy volume, and the recursive
// backtracking solver.
package engine

import (
	"iter"

	"github.com/piwi3910/CubePack/internal/model"
)

// rotation is a 3x3 integer matrix applied to cell offsets.
type rotation [3][3]int

// The two primitive 90-degree rotations the orientation walk is built
// from. roll rotates about the X axis (y' = -z, z' = y), turn rotates
// about the Z axis (x' = -y, y' = x). Both are proper rotations
// (orthogonal, determinant +1), so every composition is too.
var (
	roll = rotation{
		{1, 0, 0},
		{0, 0, -1},
		{0, 1, 0},
	}
	turn = rotation{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}
)

func (m rotation) apply(c model.Cell) model.Cell {
	return model.Cell{
		X: m[0][0]*c.X + m[0][1]*c.Y + m[0][2]*c.Z,
		Y: m[1][0]*c.X + m[1][1]*c.Y + m[1][2]*c.Z,
		Z: m[2][0]*c.X + m[2][1]*c.Y + m[2][2]*c.Z,
	}
}

// rotate applies the matrix to every offset in place. Only ever used on
// the generator's private working copy.
func (m rotation) rotate(cells []model.Cell) {
	for i, c := range cells {
		cells[i] = m.apply(c)
	}
}

// Orientations returns the 24 proper rotations of a piece shape as a
// lazy sequence. The walk is the classical one: two cycles of three
// rolls, each roll followed by three turns (2 x 3 x (1+3) = 24 states,
// each visited exactly once), with a roll-turn-roll realignment between
// the cycles. Reflections are never produced.
//
// The input shape is not modified and every yielded offset set is an
// independent copy, so yielded sets may be retained by search branches
// without aliasing each other.
func Orientations(shape []model.Cell) iter.Seq[[]model.Cell] {
	return func(yield func([]model.Cell) bool) {
		cur := model.CloneCells(shape)
		for cycle := 0; cycle < 2; cycle++ {
			for step := 0; step < 3; step++ {
				roll.rotate(cur)
				if !yield(model.CloneCells(cur)) {
					return
				}
				for i := 0; i < 3; i++ {
					turn.rotate(cur)
					if !yield(model.CloneCells(cur)) {
						return
					}
				}
			}
			// Realign so the second cycle covers the remaining
			// three face directions.
			roll.rotate(cur)
			turn.rotate(cur)
			roll.rotate(cur)
		}
	}
}
