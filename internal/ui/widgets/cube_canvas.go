package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/CubePack/internal/model"
)

// Piece colors — cycle through these for visual distinction.
var pieceColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// LayerCanvas renders one horizontal slice of the cube as a 3x3 grid.
type LayerCanvas struct {
	widget.BaseWidget
	result   model.SolveResult
	layer    int
	cellSize float32
}

func NewLayerCanvas(result model.SolveResult, layer int, cellSize float32) *LayerCanvas {
	lc := &LayerCanvas{
		result:   result,
		layer:    layer,
		cellSize: cellSize,
	}
	lc.ExtendBaseWidget(lc)
	return lc
}

func (lc *LayerCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newLayerCanvasRenderer(lc)
}

type layerCanvasRenderer struct {
	lc      *LayerCanvas
	objects []fyne.CanvasObject
}

func newLayerCanvasRenderer(lc *LayerCanvas) *layerCanvasRenderer {
	r := &layerCanvasRenderer{lc: lc}
	r.rebuild()
	return r
}

func (r *layerCanvasRenderer) rebuild() {
	r.objects = nil

	cell := r.lc.cellSize
	for y := 0; y < model.CubeEdge; y++ {
		for x := 0; x < model.CubeEdge; x++ {
			px := float32(x) * cell
			py := float32(y) * cell

			idx := r.lc.result.PieceAt(model.Cell{X: x, Y: y, Z: r.lc.layer})
			fill := color.NRGBA{R: 240, G: 240, B: 240, A: 255}
			if idx >= 0 {
				fill = pieceColors[idx%len(pieceColors)]
			}

			cellRect := canvas.NewRectangle(fill)
			cellRect.Resize(fyne.NewSize(cell, cell))
			cellRect.Move(fyne.NewPos(px, py))
			r.objects = append(r.objects, cellRect)

			cellBorder := canvas.NewRectangle(color.Transparent)
			cellBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
			cellBorder.StrokeWidth = 1
			cellBorder.Resize(fyne.NewSize(cell, cell))
			cellBorder.Move(fyne.NewPos(px, py))
			r.objects = append(r.objects, cellBorder)

			if idx >= 0 {
				label := canvas.NewText(r.lc.result.Placements[idx].Piece.Name, color.Black)
				label.TextSize = 11
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.Move(fyne.NewPos(px+4, py+3))
				r.objects = append(r.objects, label)
			}
		}
	}
}

func (r *layerCanvasRenderer) Layout(size fyne.Size)        {}
func (r *layerCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *layerCanvasRenderer) Destroy()                     {}
func (r *layerCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *layerCanvasRenderer) MinSize() fyne.Size {
	edge := r.lc.cellSize * float32(model.CubeEdge)
	return fyne.NewSize(edge, edge)
}

// RenderSolveResult creates a scrollable container showing all three
// cube layers with a per-piece legend and a summary line.
func RenderSolveResult(result *model.SolveResult) fyne.CanvasObject {
	if result == nil || len(result.Placements) == 0 {
		return widget.NewLabel("No results yet. Pick a piece set, then click Solve.")
	}

	var items []fyne.CanvasObject

	var layers []fyne.CanvasObject
	for z := 0; z < model.CubeEdge; z++ {
		header := widget.NewLabel(fmt.Sprintf("Layer z=%d", z))
		header.TextStyle = fyne.TextStyle{Bold: true}
		layers = append(layers, container.NewVBox(header, NewLayerCanvas(*result, z, 48)))
	}
	items = append(items, container.NewHBox(layers...), widget.NewSeparator())

	for i, p := range result.Placements {
		items = append(items, widget.NewLabel(fmt.Sprintf(
			"%d. %s — %d cells at anchor %s", i+1, p.Piece.Name, p.Piece.Size(), p.Anchor,
		)))
	}

	if len(result.Unplaced) > 0 {
		warning := widget.NewLabel(fmt.Sprintf(
			"WARNING: %d pieces could not be placed!", len(result.Unplaced),
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}

	summaryText := fmt.Sprintf("Filled %d of %d cells (%.1f%%)",
		result.Filled, model.CubeCells, result.FillPercent())
	if result.Solved {
		summaryText = "Solved! " + summaryText
	}
	summary := widget.NewLabel(summaryText)
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
