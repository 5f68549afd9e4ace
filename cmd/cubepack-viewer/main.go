// CubePack Viewer — 3x3x3 Polycube Packing Solver
//
// A cross-platform desktop application for solving the 3x3x3 polycube
// packing puzzle and inspecting the solution layer by layer.
//
// Build:
//   go build -o cubepack-viewer ./cmd/cubepack-viewer
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o cubepack-viewer.exe ./cmd/cubepack-viewer
//   GOOS=darwin  GOARCH=amd64 go build -o cubepack-viewer-darwin ./cmd/cubepack-viewer
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/CubePack/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.cubepack")
	application.Settings().SetTheme(ui.NewCubePackTheme())

	window := application.NewWindow("CubePack — 3x3x3 Packing Solver")

	appUI := ui.NewApp(window)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(900, 650))
	window.CenterOnScreen()
	window.ShowAndRun()
}
