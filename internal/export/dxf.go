package export

import (
	"fmt"

	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"

	"github.com/piwi3910/CubePack/internal/model"
)

// dxfCellSize is the edge length of one grid cell in drawing units (mm).
const dxfCellSize = 20.0

// AutoCAD color indices cycled per piece, roughly matching the
// PDF/canvas palette order.
var dxfColors = []int{3, 5, 30, 6, 4, 1, 2, 7}

// ExportDXF writes a 3D wireframe of the packing result. Every placed
// piece goes on its own layer with its own color; each face-adjacent
// pair of the piece's cells becomes a LINE between the cell centers,
// which renders the piece as its skeleton of unit edges.
func ExportDXF(path string, result model.SolveResult) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	drawing := dxf.NewDrawing()

	for i, p := range result.Placements {
		layerName := fmt.Sprintf("%02d_%s", i+1, p.Piece.Name)
		color := dxfcolor.ColorNumber(dxfColors[i%len(dxfColors)])
		if _, err := drawing.AddLayer(layerName, color, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add layer %q: %w", layerName, err)
		}

		for _, edge := range p.Edges() {
			a, b := edge[0], edge[1]
			_, err := drawing.Line(
				float64(a.X)*dxfCellSize, float64(a.Y)*dxfCellSize, float64(a.Z)*dxfCellSize,
				float64(b.X)*dxfCellSize, float64(b.Y)*dxfCellSize, float64(b.Z)*dxfCellSize,
			)
			if err != nil {
				return fmt.Errorf("failed to draw edge for %q: %w", p.Piece.Name, err)
			}
		}
	}

	return drawing.SaveAs(path)
}
