package model

import (
	"testing"
)

func TestCellAddSub(t *testing.T) {
	a := Cell{X: 1, Y: 2, Z: 0}
	b := Cell{X: 0, Y: 1, Z: 2}

	sum := a.Add(b)
	if sum != (Cell{X: 1, Y: 3, Z: 2}) {
		t.Errorf("Add() = %v, want (1,3,2)", sum)
	}

	diff := sum.Sub(b)
	if diff != a {
		t.Errorf("Sub() = %v, want %v", diff, a)
	}
}

func TestCellDistSq(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want int
	}{
		{"same cell", Cell{1, 1, 1}, Cell{1, 1, 1}, 0},
		{"face neighbours", Cell{0, 0, 0}, Cell{1, 0, 0}, 1},
		{"edge diagonal", Cell{0, 0, 0}, Cell{1, 1, 0}, 2},
		{"corner diagonal", Cell{0, 0, 0}, Cell{1, 1, 1}, 3},
		{"opposite corners", Cell{0, 0, 0}, Cell{2, 2, 2}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DistSq(tt.b); got != tt.want {
				t.Errorf("DistSq(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.DistSq(tt.a); got != tt.want {
				t.Errorf("DistSq should be symmetric, got %d want %d", got, tt.want)
			}
		})
	}
}

func TestNewPieceCopiesCells(t *testing.T) {
	cells := []Cell{{0, 0, 0}, {1, 0, 0}}
	p := NewPiece("Bar", cells)

	// Mutating the input slice must not reach into the piece
	cells[0] = Cell{X: 9, Y: 9, Z: 9}

	if p.Cells[0] != (Cell{0, 0, 0}) {
		t.Error("NewPiece should copy the cell slice, not alias it")
	}
	if p.Name != "Bar" {
		t.Errorf("expected name Bar, got %s", p.Name)
	}
	if len(p.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", p.ID)
	}
	if p.Size() != 2 {
		t.Errorf("Size() = %d, want 2", p.Size())
	}
}

func TestPlacementAbsoluteCells(t *testing.T) {
	pl := Placement{
		Piece:  Piece{Name: "Tri"},
		Cells:  []Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		Anchor: Cell{X: 0, Y: 1, Z: 2},
	}

	abs := pl.AbsoluteCells()
	want := []Cell{{0, 1, 2}, {1, 1, 2}, {2, 1, 2}}
	if len(abs) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(abs))
	}
	for i := range want {
		if abs[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, abs[i], want[i])
		}
	}
}

func TestPlacementEdges(t *testing.T) {
	// The L tetracube has exactly three face-adjacent pairs.
	pl := Placement{
		Cells:  []Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 1, 0}},
		Anchor: Cell{},
	}

	edges := pl.Edges()
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}
	for _, e := range edges {
		if e[0].DistSq(e[1]) != 1 {
			t.Errorf("edge %v-%v is not unit length", e[0], e[1])
		}
	}
}

func TestPlacementEdgesWithAnchorOffset(t *testing.T) {
	pl := Placement{
		Cells:  []Cell{{0, 0, 0}, {1, 0, 0}},
		Anchor: Cell{X: 1, Y: 1, Z: 1},
	}

	edges := pl.Edges()
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0][0] != (Cell{1, 1, 1}) || edges[0][1] != (Cell{2, 1, 1}) {
		t.Errorf("edge endpoints wrong: %v", edges[0])
	}
}

func TestSolveResultPieceAt(t *testing.T) {
	result := SolveResult{
		Placements: []Placement{
			{Cells: []Cell{{0, 0, 0}, {1, 0, 0}}, Anchor: Cell{}},
			{Cells: []Cell{{0, 0, 0}}, Anchor: Cell{X: 2, Y: 2, Z: 2}},
		},
	}

	if idx := result.PieceAt(Cell{1, 0, 0}); idx != 0 {
		t.Errorf("PieceAt((1,0,0)) = %d, want 0", idx)
	}
	if idx := result.PieceAt(Cell{2, 2, 2}); idx != 1 {
		t.Errorf("PieceAt((2,2,2)) = %d, want 1", idx)
	}
	if idx := result.PieceAt(Cell{0, 1, 0}); idx != -1 {
		t.Errorf("PieceAt on empty cell = %d, want -1", idx)
	}
}

func TestSolveResultFillPercent(t *testing.T) {
	r := SolveResult{Filled: CubeCells}
	if r.FillPercent() != 100.0 {
		t.Errorf("FillPercent() = %v, want 100", r.FillPercent())
	}

	empty := SolveResult{}
	if empty.FillPercent() != 0.0 {
		t.Errorf("FillPercent() = %v, want 0", empty.FillPercent())
	}
}

func TestClassicPieceSetFillsCube(t *testing.T) {
	set := GetPieceSet("Classic")
	if set.TotalCells() != CubeCells {
		t.Errorf("Classic set covers %d cells, want %d", set.TotalCells(), CubeCells)
	}
	if len(set.Pieces) != 6 {
		t.Fatalf("expected 6 pieces, got %d", len(set.Pieces))
	}

	sizes := map[int]int{}
	for _, p := range set.Pieces {
		sizes[p.Size()]++
	}
	if sizes[4] != 3 || sizes[5] != 3 {
		t.Errorf("expected three tetracubes and three pentacubes, got %v", sizes)
	}
}

func TestGetPieceSetFallsBackToClassic(t *testing.T) {
	set := GetPieceSet("NonExistent")
	if set.Name != "Classic" {
		t.Errorf("expected Classic fallback, got %s", set.Name)
	}
}

func TestGetPieceSetNames(t *testing.T) {
	names := GetPieceSetNames()
	found := false
	for _, n := range names {
		if n == "Classic" {
			found = true
		}
	}
	if !found {
		t.Error("missing built-in set Classic")
	}
}

func TestNewProjectDefaults(t *testing.T) {
	p := NewProject()
	if p.Name != "Untitled" {
		t.Errorf("expected Untitled, got %s", p.Name)
	}
	if p.Pieces == nil {
		t.Error("Pieces should be initialized, not nil")
	}
	if p.Settings.PieceSet != "Classic" {
		t.Errorf("expected Classic default set, got %s", p.Settings.PieceSet)
	}
	if p.Result != nil {
		t.Error("new project should have no result")
	}
}

func TestAppConfigApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultMaxAttempts = 5000

	s := SolveSettings{}
	cfg.ApplyToSettings(&s)

	if s.PieceSet != "Classic" {
		t.Errorf("expected Classic, got %s", s.PieceSet)
	}
	if s.MaxAttempts != 5000 {
		t.Errorf("expected 5000, got %d", s.MaxAttempts)
	}
}

func TestAppConfigAddRecentProject(t *testing.T) {
	cfg := DefaultAppConfig()

	cfg.AddRecentProject("/tmp/a.json")
	cfg.AddRecentProject("/tmp/b.json")
	cfg.AddRecentProject("/tmp/a.json") // moves to front, no duplicate

	if len(cfg.RecentProjects) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(cfg.RecentProjects))
	}
	if cfg.RecentProjects[0] != "/tmp/a.json" {
		t.Errorf("most recent should be first, got %s", cfg.RecentProjects[0])
	}
}

func TestAppConfigRecentProjectsCapped(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 15; i++ {
		cfg.AddRecentProject(string(rune('a'+i)) + ".json")
	}
	if len(cfg.RecentProjects) != 10 {
		t.Errorf("expected cap of 10, got %d", len(cfg.RecentProjects))
	}
}
