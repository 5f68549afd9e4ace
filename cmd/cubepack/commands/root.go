// Package commands wires up the cubepack CLI subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs the root command
func Execute(version, commit, buildDate string) error {
	return newRootCommand(version, commit, buildDate).Execute()
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cubepack",
		Short: "CubePack - 3x3x3 polycube packing solver",
		Long: `CubePack finds an exact packing of rigid polycube pieces into a
3x3x3 cube: every cell filled, no overlaps, no gaps.

The search is a deterministic backtracking over piece placements:
pieces are consumed in reverse declaration order, anchors are scanned
in raster order, and each piece is tried in all 24 proper rotations.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	rootCmd.AddCommand(newSolveCommand())
	rootCmd.AddCommand(newPiecesCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}
