package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/CubePack/internal/engine"
	"github.com/piwi3910/CubePack/internal/export"
	pieceimporter "github.com/piwi3910/CubePack/internal/importer"
	"github.com/piwi3910/CubePack/internal/model"
	"github.com/piwi3910/CubePack/internal/project"
	"github.com/piwi3910/CubePack/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window  fyne.Window
	project model.Project
	config  model.AppConfig
	stats   engine.Stats
	tabs    *container.AppTabs

	// UI references for dynamic updates
	piecesContainer *fyne.Container
	resultContainer *fyne.Container
	statusLabel     *widget.Label
}

func NewApp(window fyne.Window) *App {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}

	a := &App{
		window:  window,
		project: model.NewProject(),
		config:  config,
	}
	a.config.ApplyToSettings(&a.project.Settings)
	a.project.Pieces = model.GetPieceSet(a.project.Settings.PieceSet).Pieces
	return a
}

// rememberProject records a project path in the recent list and
// persists the config. Config write failures are not worth a dialog.
func (a *App) rememberProject(path string) {
	a.config.AddRecentProject(path)
	_ = project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", func() {
			a.project = model.NewProject()
			a.project.Pieces = model.GetPieceSet(a.project.Settings.PieceSet).Pieces
			a.refreshPiecesList()
			a.refreshResults()
		}),
		fyne.NewMenuItem("Open Project...", func() {
			a.loadProject()
		}),
		fyne.NewMenuItem("Save Project...", func() {
			a.saveProject()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Pieces from CSV...", func() {
			a.importPieces("csv")
		}),
		fyne.NewMenuItem("Import Pieces from Excel...", func() {
			a.importPieces("xlsx")
		}),
		fyne.NewMenuItem("Import Pieces from YAML...", func() {
			a.importPieces("yaml")
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Solution as PDF...", func() {
			a.exportSolution("pdf")
		}),
		fyne.NewMenuItem("Export Solution as DXF...", func() {
			a.exportSolution("dxf")
		}),
		fyne.NewMenuItem("Export Assembly Labels...", func() {
			a.exportSolution("labels")
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Solve", func() {
			a.runSolve()
			a.tabs.SelectIndex(1) // Switch to Solution tab
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation(
				"About CubePack",
				"CubePack — 3x3x3 Polycube Packing Solver\n\n"+
					"Finds an exact packing of polycube pieces\n"+
					"into a 3x3x3 cube by backtracking search.\n\n"+
					"Version 1.0.0",
				a.window,
			)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, toolsMenu, helpMenu))
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	piecesTab := container.NewTabItem("Pieces", a.buildPiecesPanel())
	solutionTab := container.NewTabItem("Solution", a.buildSolutionPanel())

	a.tabs = container.NewAppTabs(piecesTab, solutionTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

func (a *App) buildPiecesPanel() fyne.CanvasObject {
	a.piecesContainer = container.NewVBox()
	a.refreshPiecesList()

	setSelect := widget.NewSelect(model.GetPieceSetNames(), func(name string) {
		a.project.Settings.PieceSet = name
		a.project.Pieces = model.GetPieceSet(name).Pieces
		a.refreshPiecesList()
	})
	setSelect.SetSelected(a.project.Settings.PieceSet)

	solveButton := widget.NewButton("Solve", func() {
		a.runSolve()
		a.tabs.SelectIndex(1)
	})
	solveButton.Importance = widget.HighImportance

	top := container.NewVBox(
		widget.NewLabelWithStyle("Piece Set", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		setSelect,
		solveButton,
		widget.NewSeparator(),
	)

	return container.NewBorder(top, nil, nil, nil, container.NewVScroll(a.piecesContainer))
}

func (a *App) buildSolutionPanel() fyne.CanvasObject {
	a.statusLabel = widget.NewLabel("")
	a.resultContainer = container.NewStack()
	a.refreshResults()
	return container.NewBorder(a.statusLabel, nil, nil, nil, a.resultContainer)
}

func (a *App) refreshPiecesList() {
	if a.piecesContainer == nil {
		return
	}
	a.piecesContainer.Objects = nil

	total := 0
	for _, p := range a.project.Pieces {
		total += p.Size()
		a.piecesContainer.Add(widget.NewLabel(fmt.Sprintf("%s — %d cells", p.Name, p.Size())))
	}
	a.piecesContainer.Add(widget.NewSeparator())
	totalLabel := widget.NewLabel(fmt.Sprintf("%d pieces, %d cells total (volume holds %d)",
		len(a.project.Pieces), total, model.CubeCells))
	totalLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.piecesContainer.Add(totalLabel)
	a.piecesContainer.Refresh()
}

func (a *App) refreshResults() {
	if a.resultContainer == nil {
		return
	}
	a.resultContainer.Objects = []fyne.CanvasObject{widgets.RenderSolveResult(a.project.Result)}
	a.resultContainer.Refresh()

	if a.statusLabel != nil {
		if a.project.Result == nil {
			a.statusLabel.SetText("Not solved yet.")
		} else {
			a.statusLabel.SetText(fmt.Sprintf("%d placement attempts in %s",
				a.stats.Attempts, a.stats.Duration))
		}
	}
}

func (a *App) runSolve() {
	solver := engine.New(a.project.Settings)
	final, stats := solver.Solve(engine.NewState(a.project.Pieces))

	result := final.Result()
	a.project.Result = &result
	a.stats = stats
	a.refreshResults()
}

func (a *App) loadProject() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		p, err := project.LoadProject(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.project = p
		a.rememberProject(reader.URI().Path())
		a.refreshPiecesList()
		a.refreshResults()
	}, a.window)
}

func (a *App) saveProject() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := project.SaveProject(writer.URI().Path(), a.project); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberProject(writer.URI().Path())
	}, a.window)
}

func (a *App) importPieces(format string) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		var result pieceimporter.ImportResult
		switch format {
		case "xlsx":
			result = pieceimporter.ImportExcel(reader.URI().Path())
		case "yaml":
			result = pieceimporter.ImportYAML(reader.URI().Path())
		default:
			result = pieceimporter.ImportCSV(reader.URI().Path())
		}

		if len(result.Errors) > 0 {
			dialog.ShowInformation("Import Problems",
				fmt.Sprintf("%d rows could not be imported:\n%s",
					len(result.Errors), result.Errors[0]), a.window)
		}
		if len(result.Pieces) > 0 {
			a.project.Pieces = result.Pieces
			a.project.Result = nil
			a.refreshPiecesList()
			a.refreshResults()
		}
	}, a.window)
}

func (a *App) exportSolution(format string) {
	if a.project.Result == nil || len(a.project.Result.Placements) == 0 {
		dialog.ShowInformation("Nothing to Export", "Solve the puzzle first.", a.window)
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		path := writer.URI().Path()
		switch format {
		case "dxf":
			err = export.ExportDXF(path, *a.project.Result)
		case "labels":
			err = export.ExportLabels(path, *a.project.Result)
		default:
			err = export.ExportPDF(path, *a.project.Result)
		}
		if err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}
