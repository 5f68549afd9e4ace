package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/CubePack/internal/importer"
	"github.com/piwi3910/CubePack/internal/model"
	"github.com/piwi3910/CubePack/internal/project"
)

func newImportCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "import <piece-file>",
		Short: "Import a piece set into a project file",
		Long: `Import pieces from a CSV, Excel, or YAML file and write them to a
project file ready for solving. The format is chosen by file extension.`,
		Example: `  cubepack import pieces.csv --out puzzle.json
  cubepack import pieces.xlsx --out puzzle.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var result importer.ImportResult
			switch strings.ToLower(filepath.Ext(path)) {
			case ".xlsx", ".xls":
				result = importer.ImportExcel(path)
			case ".yaml", ".yml":
				result = importer.ImportYAML(path)
			default:
				result = importer.ImportCSV(path)
			}

			for _, w := range result.Warnings {
				log.Warn().Msg(w)
			}
			for _, e := range result.Errors {
				log.Error().Msg(e)
			}
			if len(result.Pieces) == 0 {
				return fmt.Errorf("no pieces imported from %s", path)
			}

			total := 0
			for _, p := range result.Pieces {
				total += p.Size()
			}
			log.Info().
				Int("pieces", len(result.Pieces)).
				Int("cells", total).
				Msg("Pieces imported")
			if total != model.CubeCells {
				log.Warn().
					Int("cells", total).
					Int("volume", model.CubeCells).
					Msg("Cell count does not match the volume; the set cannot tile it exactly")
			}

			p := model.NewProject()
			p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			p.Pieces = result.Pieces
			if err := project.SaveProject(outPath, p); err != nil {
				return err
			}
			log.Info().Str("path", outPath).Msg("Project saved")

			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "puzzle.json", "project file to write")

	return cmd
}
