package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/CubePack/internal/engine"
	"github.com/piwi3910/CubePack/internal/importer"
	"github.com/piwi3910/CubePack/internal/model"
	"github.com/piwi3910/CubePack/internal/project"
	"github.com/piwi3910/CubePack/internal/report"
)

// loadPieces resolves the pieces to solve: an explicit piece file
// (CSV/Excel/YAML by extension), a project file, or a built-in set.
func loadPieces(path, setName string) ([]model.Piece, error) {
	if path == "" {
		return model.GetPieceSet(setName).Pieces, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		p, err := project.LoadProject(path)
		if err != nil {
			return nil, err
		}
		return p.Pieces, nil
	case ".xlsx", ".xls":
		return piecesFromImport(importer.ImportExcel(path))
	case ".yaml", ".yml":
		return piecesFromImport(importer.ImportYAML(path))
	default:
		return piecesFromImport(importer.ImportCSV(path))
	}
}

func piecesFromImport(result importer.ImportResult) ([]model.Piece, error) {
	for _, w := range result.Warnings {
		log.Warn().Msg(w)
	}
	for _, e := range result.Errors {
		log.Error().Msg(e)
	}
	if len(result.Pieces) == 0 {
		return nil, fmt.Errorf("no pieces imported")
	}
	return result.Pieces, nil
}

func newSolveCommand() *cobra.Command {
	var (
		setName     string
		maxAttempts int64
		showLayers  bool
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "solve [piece-file]",
		Short: "Solve the 3x3x3 packing puzzle",
		Long: `Solve the packing puzzle for a piece set and print the outcome.

Without arguments the built-in Classic set is solved. A piece file may
be given in CSV, Excel, or YAML form, or a saved project (.json).`,
		Example: `  # Solve the built-in classic set
  cubepack solve

  # Solve pieces from a YAML file, show the layer grids
  cubepack solve pieces.yaml --layers

  # Solve and save the result as a project
  cubepack solve --out solved.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			pieces, err := loadPieces(path, setName)
			if err != nil {
				return err
			}

			settings := model.DefaultSolveSettings()
			settings.PieceSet = setName
			settings.MaxAttempts = maxAttempts

			log.Info().
				Int("pieces", len(pieces)).
				Int64("max_attempts", maxAttempts).
				Msg("Starting search")

			solver := engine.New(settings)
			final, stats := solver.Solve(engine.NewState(pieces))
			result := final.Result()

			log.Info().
				Bool("solved", result.Solved).
				Int64("attempts", stats.Attempts).
				Dur("duration", stats.Duration).
				Msg("Search finished")

			fmt.Print(report.Summary(result, stats))
			if showLayers {
				fmt.Println()
				fmt.Print(report.Layers(result))
				fmt.Println()
				fmt.Print(report.Legend(result))
			}

			if outPath != "" {
				p := model.NewProject()
				p.Name = strings.TrimSuffix(filepath.Base(outPath), filepath.Ext(outPath))
				p.Pieces = pieces
				p.Settings = settings
				p.Result = &result
				if err := project.SaveProject(outPath, p); err != nil {
					return err
				}
				log.Info().Str("path", outPath).Msg("Project saved")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&setName, "set", "Classic", "built-in piece set to solve when no file is given")
	cmd.Flags().Int64Var(&maxAttempts, "max-attempts", 0, "stop after this many placement attempts (0 = unlimited)")
	cmd.Flags().BoolVar(&showLayers, "layers", false, "print the solution as per-layer grids")
	cmd.Flags().StringVar(&outPath, "out", "", "save pieces and result as a project file")

	return cmd
}
