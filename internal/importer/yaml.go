package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/CubePack/internal/model"
)

// yamlPieceSet is the on-disk YAML layout for a piece set:
//
//	name: Classic
//	description: Six blocks that fill the cube
//	pieces:
//	  - name: B1
//	    cells: [[0, 0, 0], [1, 0, 0], [2, 0, 0], [2, 1, 0]]
type yamlPieceSet struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Pieces      []yamlPiece `yaml:"pieces"`
}

type yamlPiece struct {
	Name  string  `yaml:"name"`
	Cells [][]int `yaml:"cells"`
}

// ImportYAML imports pieces from a YAML piece-set file.
func ImportYAML(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	var set yamlPieceSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse YAML: %v", err))
		return result
	}

	if len(set.Pieces) == 0 {
		result.Errors = append(result.Errors, "No pieces found in file")
		return result
	}

	for i, yp := range set.Pieces {
		name := yp.Name
		if name == "" {
			name = fmt.Sprintf("Piece %d", i+1)
		}
		if len(yp.Cells) == 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Piece %q has no cells", name))
			continue
		}

		cells := make([]model.Cell, 0, len(yp.Cells))
		bad := false
		for _, c := range yp.Cells {
			if len(c) != 3 {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Piece %q has an offset with %d coordinates, want 3", name, len(c)))
				bad = true
				break
			}
			cells = append(cells, model.Cell{X: c[0], Y: c[1], Z: c[2]})
		}
		if bad {
			continue
		}

		result.Pieces = append(result.Pieces, model.NewPiece(name, cells))
	}

	return result
}

// ExportYAML writes pieces to a YAML piece-set file in the same layout
// ImportYAML reads, so a set can be round-tripped through disk.
func ExportYAML(path string, name string, pieces []model.Piece) error {
	set := yamlPieceSet{Name: name}
	for _, p := range pieces {
		yp := yamlPiece{Name: p.Name}
		for _, c := range p.Cells {
			yp.Cells = append(yp.Cells, []int{c.X, c.Y, c.Z})
		}
		set.Pieces = append(set.Pieces, yp)
	}

	data, err := yaml.Marshal(set)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
