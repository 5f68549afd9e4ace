package model

// PieceSet is a named collection of pieces meant to fill the volume together.
type PieceSet struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Pieces      []Piece `json:"pieces"`
}

// TotalCells returns the combined cube count of all pieces in the set.
// A set can only fill the volume exactly when this equals CubeCells.
func (s PieceSet) TotalCells() int {
	total := 0
	for _, p := range s.Pieces {
		total += p.Size()
	}
	return total
}

// Built-in piece sets
var PieceSets = []PieceSet{
	{
		Name:        "Classic",
		Description: "Six blocks (three tetracubes, three pentacubes) that fill the cube exactly",
		Pieces: []Piece{
			{ID: "b1", Name: "B1", Cells: []Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 1, 0}}},
			{ID: "b2", Name: "B2", Cells: []Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}}},
			{ID: "b3", Name: "B3", Cells: []Cell{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 1, 1}}},
			{ID: "b4", Name: "B4", Cells: []Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}, {1, 1, 1}}},
			{ID: "b5", Name: "B5", Cells: []Cell{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 0, 1}, {2, 0, 1}}},
			{ID: "b6", Name: "B6", Cells: []Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}, {2, 0, 1}}},
		},
	},
}

// GetPieceSet returns a built-in piece set by name, or the Classic set if not found.
func GetPieceSet(name string) PieceSet {
	for _, s := range PieceSets {
		if s.Name == name {
			return s
		}
	}
	return PieceSets[0]
}

// GetPieceSetNames returns a list of all built-in piece set names.
func GetPieceSetNames() []string {
	var names []string
	for _, s := range PieceSets {
		names = append(names, s.Name)
	}
	return names
}
