package engine

import (
	"github.com/piwi3910/CubePack/internal/model"
)

// State is one node of the backtracking search: the pieces still to
// place, the placements made so far, and the volume they occupy.
// Invariant: the union of the placed pieces' absolute cells equals the
// set of filled volume cells, and those cell sets are pairwise
// disjoint.
type State struct {
	Remaining []model.Piece
	Placed    []model.Placement
	Volume    Volume
}

// NewState creates the root search state over the given pieces. The
// slice is copied; pieces themselves are immutable and shared.
func NewState(pieces []model.Piece) State {
	return State{
		Remaining: append([]model.Piece(nil), pieces...),
		Placed:    []model.Placement{},
	}
}

// Clone returns an independent copy of the state. The slices are fresh
// and the volume is copied by value, so mutating the clone can never
// reach back into the original. Piece and Placement contents are
// shared but never mutated after construction.
func (s State) Clone() State {
	return State{
		Remaining: append([]model.Piece(nil), s.Remaining...),
		Placed:    append([]model.Placement(nil), s.Placed...),
		Volume:    s.Volume,
	}
}

// Solved reports whether the state's volume is completely filled.
func (s State) Solved() bool {
	return s.Volume.IsFilled()
}

// Result converts the state into the collaborator-facing aggregate
// consumed by renderers, exporters, and status output.
func (s State) Result() model.SolveResult {
	return model.SolveResult{
		Placements: append([]model.Placement(nil), s.Placed...),
		Unplaced:   append([]model.Piece(nil), s.Remaining...),
		Filled:     s.Volume.NumFilled(),
		Solved:     s.Volume.IsFilled(),
	}
}
