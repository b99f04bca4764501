package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/visioncraft/workbook/internal/cli/formatter"
)

func newRenderCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "render <document.json>",
		Short: "Render a document file to a print-ready PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			artifact, err := app.Pipeline.Render(context.Background(), doc)
			if err != nil {
				return err
			}

			if err := os.WriteFile(outPath, artifact.PDF, 0644); err != nil {
				return fmt.Errorf("writing pdf: %w", err)
			}

			fmt.Printf("%s %s\n", formatter.Bold(outPath),
				formatter.Dim(fmt.Sprintf("(%d pages, %.0f×%.0f mm)",
					artifact.PageCount, artifact.WidthMm, artifact.HeightMm)))
			if artifact.PaddingAdded {
				fmt.Println(formatter.StyleYellow.Render(
					"A blank page was appended for sheet parity; re-run validation upstream"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "workbook.pdf", "Output PDF path")

	return cmd
}
