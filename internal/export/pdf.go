// Package export provides functionality for exporting solved puzzle
// results to various file formats.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/CubePack/internal/model"
)

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors mirrors the color scheme used in the UI cube canvas widget.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	cellSize     = 28.0 // mm per grid cell
	layerGap     = 12.0 // mm between layer diagrams
)

// ExportPDF generates a PDF document for a packing result: one page
// with the three Z layers of the cube as top-down diagrams, followed by
// a summary page. Each placed piece keeps one color across all layers.
func ExportPDF(path string, result model.SolveResult) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayersPage(pdf, result)

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderLayersPage draws the three horizontal slices of the cube.
func renderLayersPage(pdf *fpdf.Fpdf, result model.SolveResult) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := "Cube Solution - Layer Diagrams"
	if !result.Solved {
		title = fmt.Sprintf("Partial Packing - %d of %d cells filled", result.Filled, model.CubeCells)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	gridSize := cellSize * float64(model.CubeEdge)
	totalWidth := 3*gridSize + 2*layerGap
	offsetX := marginLeft + (pageWidth-marginLeft-marginRight-totalWidth)/2

	for z := 0; z < model.CubeEdge; z++ {
		x0 := offsetX + float64(z)*(gridSize+layerGap)
		renderLayer(pdf, result, z, x0, drawAreaTop)
	}

	drawPiecesLegend(pdf, result, drawAreaTop+gridSize+14)
}

// renderLayer draws one Z slice as a 3x3 grid at the given position.
// Grid X runs right, grid Y runs down the page.
func renderLayer(pdf *fpdf.Fpdf, result model.SolveResult, z int, x0, y0 float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(x0, y0-6)
	pdf.CellFormat(cellSize*model.CubeEdge, 5, fmt.Sprintf("Layer z=%d", z), "", 0, "C", false, 0, "")

	for gy := 0; gy < model.CubeEdge; gy++ {
		for gx := 0; gx < model.CubeEdge; gx++ {
			px := x0 + float64(gx)*cellSize
			py := y0 + float64(gy)*cellSize

			idx := result.PieceAt(model.Cell{X: gx, Y: gy, Z: z})
			if idx >= 0 {
				col := pieceColors[idx%len(pieceColors)]
				pdf.SetFillColor(col.R, col.G, col.B)
			} else {
				pdf.SetFillColor(240, 240, 240)
			}
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.3)
			pdf.Rect(px, py, cellSize, cellSize, "FD")

			if idx >= 0 {
				name := result.Placements[idx].Piece.Name
				pdf.SetFont("Helvetica", "B", 9)
				labelW := pdf.GetStringWidth(name)
				pdf.SetXY(px+(cellSize-labelW)/2, py+cellSize/2-2)
				pdf.CellFormat(labelW, 4, name, "", 0, "C", false, 0, "")
			}
		}
	}
}

// drawPiecesLegend renders a compact legend of placed pieces.
func drawPiecesLegend(pdf *fpdf.Fpdf, result model.SolveResult, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Pieces placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range result.Placements {
		col := pieceColors[i%len(pieceColors)]
		label := fmt.Sprintf("%s (%d cells @ %s)", p.Piece.Name, p.Piece.Size(), p.Anchor)
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		// Color swatch
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.SolveResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	status := "UNSOLVED"
	if result.Solved {
		status = "SOLVED"
	}
	summaryItems := []struct {
		label string
		value string
	}{
		{"Status", status},
		{"Cells Filled", fmt.Sprintf("%d / %d (%.1f%%)", result.Filled, model.CubeCells, result.FillPercent())},
		{"Pieces Placed", fmt.Sprintf("%d", len(result.Placements))},
		{"Pieces Unplaced", fmt.Sprintf("%d", len(result.Unplaced))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Placement table, in search order
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Placements", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 30, 20, 30, 150}
	headers := []string{"#", "Piece", "Cells", "Anchor", "Occupied Cells"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range result.Placements {
		xPos = marginLeft
		cells := ""
		for j, c := range p.AbsoluteCells() {
			if j > 0 {
				cells += " "
			}
			cells += c.String()
		}
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			p.Piece.Name,
			fmt.Sprintf("%d", p.Piece.Size()),
			p.Anchor.String(),
			cells,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Unplaced pieces warning
	if len(result.Unplaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unplaced Pieces", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, piece := range result.Unplaced {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %d cells", piece.Name, piece.Size())
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CubePack - 3x3x3 Polycube Packing Solver", "", 0, "C", false, 0, "")
}
