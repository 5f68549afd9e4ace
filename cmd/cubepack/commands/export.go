package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/CubePack/internal/export"
	"github.com/piwi3910/CubePack/internal/importer"
	"github.com/piwi3910/CubePack/internal/project"
)

func newExportCommand() *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export <project-file>",
		Short: "Export a solved project to PDF, DXF, labels, or YAML",
		Long: `Export a project's solution to a document format:

  pdf     layer diagrams plus a placement summary
  dxf     3D wireframe of the placed pieces
  labels  QR-coded assembly labels
  yaml    the piece set (no solution) as a YAML file`,
		Example: `  cubepack export solved.json --format pdf --out solution.pdf
  cubepack export solved.json --format dxf --out solution.dxf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.LoadProject(args[0])
			if err != nil {
				return err
			}

			if format == "yaml" {
				if err := importer.ExportYAML(outPath, p.Name, p.Pieces); err != nil {
					return err
				}
				log.Info().Str("path", outPath).Msg("Piece set exported")
				return nil
			}

			if p.Result == nil {
				return fmt.Errorf("project has no solution; run solve first")
			}

			switch format {
			case "pdf":
				err = export.ExportPDF(outPath, *p.Result)
			case "dxf":
				err = export.ExportDXF(outPath, *p.Result)
			case "labels":
				err = export.ExportLabels(outPath, *p.Result)
			default:
				return fmt.Errorf("unknown format %q (want pdf, dxf, labels, or yaml)", format)
			}
			if err != nil {
				return err
			}

			log.Info().Str("path", outPath).Str("format", format).Msg("Solution exported")
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "pdf", "output format: pdf, dxf, labels, or yaml")
	cmd.Flags().StringVar(&outPath, "out", "solution.pdf", "output file path")

	return cmd
}
