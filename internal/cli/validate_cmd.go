package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/visioncraft/workbook/internal/cli/formatter"
	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/printcheck"
)

func newValidateCmd(app *App) *cobra.Command {
	var product string

	cmd := &cobra.Command{
		Use:   "validate <document.json>",
		Short: "Run print validation over a document file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			report, err := app.Pipeline.Validate(context.Background(), doc, domain.ProductClass(product))
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatReport(report))
			if report.Status != printcheck.StatusValid {
				return fmt.Errorf("document failed print validation with %d error(s)", len(report.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&product, "product", "paper", "Product class: paper or canvas")

	return cmd
}

// readDocument loads and validates a document JSON file.
func readDocument(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc, err := domain.UnmarshalDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}
