package widgets

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/canvas"

	"github.com/piwi3910/CubePack/internal/model"
)

// solvedResult builds a fully packed cube out of three 3x3 slabs, one
// per Z layer.
func solvedResult() model.SolveResult {
	slab := []model.Cell{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 2, Y: 1, Z: 0},
		{X: 0, Y: 2, Z: 0}, {X: 1, Y: 2, Z: 0}, {X: 2, Y: 2, Z: 0},
	}

	var placements []model.Placement
	names := []string{"S1", "S2", "S3"}
	for z, name := range names {
		placements = append(placements, model.Placement{
			Piece:  model.NewPiece(name, slab),
			Cells:  slab,
			Anchor: model.Cell{X: 0, Y: 0, Z: z},
		})
	}

	return model.SolveResult{
		Placements: placements,
		Filled:     model.CubeCells,
		Solved:     true,
	}
}

func TestLayerCanvas_RendersEveryCell(t *testing.T) {
	result := solvedResult()

	solid := 0
	texts := 0
	for z := 0; z < model.CubeEdge; z++ {
		lc := NewLayerCanvas(result, z, 48)
		renderer := lc.CreateRenderer()

		for _, obj := range renderer.Objects() {
			switch o := obj.(type) {
			case *canvas.Rectangle:
				if o.FillColor != color.Transparent {
					solid++
				}
			case *canvas.Text:
				texts++
			}
		}
	}

	if solid != model.CubeCells {
		t.Errorf("got %d solid cell rectangles across 3 layers, want %d", solid, model.CubeCells)
	}
	if texts != model.CubeCells {
		t.Errorf("got %d piece labels, want %d", texts, model.CubeCells)
	}
}

func TestLayerCanvas_PieceColorsFollowPlacementOrder(t *testing.T) {
	result := solvedResult()

	for z := 0; z < model.CubeEdge; z++ {
		lc := NewLayerCanvas(result, z, 48)
		renderer := lc.CreateRenderer()

		want := pieceColors[z%len(pieceColors)]
		for _, obj := range renderer.Objects() {
			rect, ok := obj.(*canvas.Rectangle)
			if !ok || rect.FillColor == color.Transparent {
				continue
			}
			if rect.FillColor != want {
				t.Errorf("layer %d cell filled %v, want placement color %v", z, rect.FillColor, want)
			}
		}
	}
}

func TestLayerCanvas_MinSizeCoversGrid(t *testing.T) {
	lc := NewLayerCanvas(solvedResult(), 0, 48)
	size := lc.CreateRenderer().MinSize()

	edge := float32(48 * model.CubeEdge)
	if size.Width != edge || size.Height != edge {
		t.Errorf("MinSize = %v, want %gx%g", size, edge, edge)
	}
}

func TestRenderSolveResult_EmptyShowsPlaceholder(t *testing.T) {
	if obj := RenderSolveResult(nil); obj == nil {
		t.Fatal("nil result should still render a placeholder")
	}
	if obj := RenderSolveResult(&model.SolveResult{}); obj == nil {
		t.Fatal("empty result should still render a placeholder")
	}
}
