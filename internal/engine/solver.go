package engine

import (
	"errors"
	"time"

	"github.com/piwi3910/CubePack/internal/model"
)

// Stats captures how much work a solve performed. It is reporting
// output only and never influences the search.
type Stats struct {
	PiecesTried  int           `json:"pieces_tried"`
	Attempts     int64         `json:"attempts"`
	OutOfBounds  int64         `json:"out_of_bounds"`
	Collisions   int64         `json:"collisions"`
	StatesCloned int64         `json:"states_cloned"`
	Duration     time.Duration `json:"duration"`
}

// Solver runs the recursive backtracking search.
//
// Pieces are consumed from the tail of State.Remaining in one fixed
// order for the whole search; the solver never tries an alternate piece
// ordering within a branch. As a consequence the search is not
// guaranteed to find a solution that only exists under a different
// piece-consumption order. This mirrors the behaviour of the original
// puzzle and is deliberate — callers that care can permute the input.
type Solver struct {
	Settings model.SolveSettings
}

func New(settings model.SolveSettings) *Solver {
	return &Solver{Settings: settings}
}

// Solve searches for a placement of all remaining pieces that fills
// the volume. It returns the first solved state it reaches, or an
// unsolved state when the search is exhausted (or the attempt budget
// runs out). Absence of a solution is a normal return, not an error.
//
// Given the same input the search is fully deterministic: pieces from
// the tail, anchors in raster order, orientations in generation order.
func (s *Solver) Solve(state State) (State, Stats) {
	start := time.Now()
	var stats Stats
	out := s.solve(state, &stats)
	stats.Duration = time.Since(start)
	return out, stats
}

func (s *Solver) solve(state State, stats *Stats) State {
	if state.Volume.IsFilled() || len(state.Remaining) == 0 {
		return state
	}

	piece := state.Remaining[len(state.Remaining)-1]
	rest := state.Remaining[:len(state.Remaining)-1]
	stats.PiecesTried++

	for x := 0; x < model.CubeEdge; x++ {
		for y := 0; y < model.CubeEdge; y++ {
			for z := 0; z < model.CubeEdge; z++ {
				anchor := model.Cell{X: x, Y: y, Z: z}
				if state.Volume.Occupied(anchor) {
					continue
				}
				for offsets := range Orientations(piece.Cells) {
					if s.Settings.MaxAttempts > 0 && stats.Attempts >= s.Settings.MaxAttempts {
						return state
					}
					stats.Attempts++

					trial := State{
						Remaining: append([]model.Piece(nil), rest...),
						Placed:    append([]model.Placement(nil), state.Placed...),
						Volume:    state.Volume,
					}
					stats.StatesCloned++

					if err := trial.Volume.Place(offsets, anchor); err != nil {
						switch {
						case errors.Is(err, ErrOutOfBounds):
							stats.OutOfBounds++
						case errors.Is(err, ErrCollision):
							stats.Collisions++
						}
						continue
					}

					trial.Placed = append(trial.Placed, model.Placement{
						Piece:  piece,
						Cells:  offsets,
						Anchor: anchor,
					})

					solved := s.solve(trial, stats)
					if solved.Volume.IsFilled() {
						return solved
					}
				}
			}
		}
	}

	// No anchor/orientation worked at this level: hand the pre-branch
	// state back so the caller can continue its own enumeration.
	return state
}
