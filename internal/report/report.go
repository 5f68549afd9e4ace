// Package report renders packing results for the terminal: a solve
// summary and colored top-down layer grids.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/piwi3910/CubePack/internal/engine"
	"github.com/piwi3910/CubePack/internal/model"
)

// Piece palette — cycled in placement order, kept in step with the
// PDF and canvas palettes.
var pieceColors = []lipgloss.Color{
	lipgloss.Color("2"),  // green
	lipgloss.Color("4"),  // blue
	lipgloss.Color("3"),  // orange/yellow
	lipgloss.Color("5"),  // magenta
	lipgloss.Color("6"),  // cyan
	lipgloss.Color("1"),  // red
	lipgloss.Color("11"), // bright yellow
	lipgloss.Color("9"),  // bright red
}

// Styles provides pre-configured lipgloss styles for report output.
var Styles = struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Empty   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true),
	Header:  lipgloss.NewStyle().Bold(true).Underline(true),
	Muted:   lipgloss.NewStyle().Faint(true),
	Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	Empty:   lipgloss.NewStyle().Faint(true),
}

func pieceStyle(idx int) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(pieceColors[idx%len(pieceColors)])
}

// pieceToken returns the short colored token a piece is drawn with in
// the layer grids: the first two runes of its name, padded to width 2.
func pieceToken(name string, idx int) string {
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	token := fmt.Sprintf("%-2s", string(runes))
	return pieceStyle(idx).Render(token)
}

// Summary renders the solve outcome the way the puzzle's status output
// always has: fill count, candidate pieces, placed pieces — plus a
// search-statistics line.
func Summary(result model.SolveResult, stats engine.Stats) string {
	var b strings.Builder

	if result.Solved {
		b.WriteString(Styles.Success.Render("Solved!"))
	} else {
		b.WriteString(Styles.Warning.Render("No solution found"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Places filled: %d / %d (%.1f%%)\n", result.Filled, model.CubeCells, result.FillPercent())

	b.WriteString("Candidate pieces: ")
	if len(result.Unplaced) == 0 {
		b.WriteString(Styles.Muted.Render("none"))
	} else {
		names := make([]string, len(result.Unplaced))
		for i, p := range result.Unplaced {
			names[i] = p.Name
		}
		b.WriteString(strings.Join(names, " "))
	}
	b.WriteString("\n")

	b.WriteString("Placed pieces: ")
	if len(result.Placements) == 0 {
		b.WriteString(Styles.Muted.Render("none"))
	} else {
		names := make([]string, len(result.Placements))
		for i, p := range result.Placements {
			names[i] = pieceStyle(i).Render(p.Piece.Name)
		}
		b.WriteString(strings.Join(names, " "))
	}
	b.WriteString("\n")

	b.WriteString(Styles.Muted.Render(fmt.Sprintf(
		"%d attempts, %d out-of-bounds, %d collisions, %d states cloned, %s",
		stats.Attempts, stats.OutOfBounds, stats.Collisions, stats.StatesCloned, stats.Duration,
	)))
	b.WriteString("\n")

	return b.String()
}

// Layers renders the three horizontal slices of the cube as text grids,
// one colored token per cell, empty cells as dots. X runs right, Y runs
// down.
func Layers(result model.SolveResult) string {
	var b strings.Builder

	for z := 0; z < model.CubeEdge; z++ {
		if z > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Styles.Header.Render(fmt.Sprintf("Layer z=%d", z)))
		b.WriteString("\n")

		for y := 0; y < model.CubeEdge; y++ {
			for x := 0; x < model.CubeEdge; x++ {
				if x > 0 {
					b.WriteString(" ")
				}
				idx := result.PieceAt(model.Cell{X: x, Y: y, Z: z})
				if idx < 0 {
					b.WriteString(Styles.Empty.Render(". "))
					continue
				}
				b.WriteString(pieceToken(result.Placements[idx].Piece.Name, idx))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Legend lists each placed piece with its anchor and absolute cells.
func Legend(result model.SolveResult) string {
	var b strings.Builder

	for i, p := range result.Placements {
		fmt.Fprintf(&b, "%s  %d cells, anchor %s:", pieceStyle(i).Render(p.Piece.Name), p.Piece.Size(), p.Anchor)
		for _, c := range p.AbsoluteCells() {
			b.WriteString(" ")
			b.WriteString(c.String())
		}
		b.WriteString("\n")
	}

	return b.String()
}
