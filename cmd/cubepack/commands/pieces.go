package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CubePack/internal/model"
)

func newPiecesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pieces",
		Short: "List the built-in piece sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, set := range model.PieceSets {
				fmt.Printf("%s — %s\n", set.Name, set.Description)
				for _, p := range set.Pieces {
					fmt.Printf("  %-4s %d cells:", p.Name, p.Size())
					for _, c := range p.Cells {
						fmt.Printf(" %s", c)
					}
					fmt.Println()
				}
				fmt.Printf("  total %d cells (volume holds %d)\n", set.TotalCells(), model.CubeCells)
			}
			return nil
		},
	}
	return cmd
}
