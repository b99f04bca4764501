package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visioncraft/workbook/internal/cli/formatter"
	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/sequence"
	"github.com/visioncraft/workbook/internal/service"
)

func newBuildCmd(app *App) *cobra.Command {
	var (
		edition     string
		trim        string
		binding     string
		title       string
		subtitle    string
		themeID     string
		userName    string
		goals       []string
		habits      []string
		images      []string
		visionText  string
		target      string
		foreword    bool
		product     string
		outPath     string
		pdfPath     string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble a workbook document and validate it for print",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sequence.BuildOptions{
				Edition:         domain.Edition(strings.ToUpper(edition)),
				Trim:            domain.TrimSizeID(strings.ToUpper(trim)),
				Binding:         domain.BindingType(strings.ToLower(binding)),
				Title:           title,
				Subtitle:        subtitle,
				CoverThemeID:    themeID,
				IncludeForeword: foreword,
				UserName:        userName,
				Goals:           goals,
				VisionText:      visionText,
				FinancialTarget: target,
			}
			for _, h := range habits {
				name, desc, _ := strings.Cut(h, ":")
				opts.Habits = append(opts.Habits, domain.Habit{
					Name:        strings.TrimSpace(name),
					Description: strings.TrimSpace(desc),
				})
			}
			for _, url := range images {
				opts.VisionImages = append(opts.VisionImages, sequence.VisionImage{URL: url})
			}

			if interactive {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				if err := runBuildForm(app, &opts); err != nil {
					return err
				}
			}

			params := service.BuildParams{
				Product: domain.ProductClass(product),
				Render:  pdfPath != "",
			}
			outcome, err := app.Pipeline.Build(context.Background(), opts, params)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatBuildSummary(
				outcome.Document, outcome.FallbackCount, outcome.DegradedCount, outcome.PaddingApplied))
			fmt.Println()
			fmt.Print(formatter.FormatReport(outcome.Report))

			if outPath != "" {
				data, err := outcome.Document.Marshal()
				if err != nil {
					return err
				}
				if err := os.WriteFile(outPath, data, 0644); err != nil {
					return fmt.Errorf("writing document: %w", err)
				}
				fmt.Println(formatter.Dim("Document written to " + outPath))
			}
			if outcome.Artifact != nil && pdfPath != "" {
				if err := os.WriteFile(pdfPath, outcome.Artifact.PDF, 0644); err != nil {
					return fmt.Errorf("writing pdf: %w", err)
				}
				if outcome.Record != nil {
					if err := app.Pipeline.RecordArtifact(context.Background(), outcome.Record.ID, pdfPath); err != nil {
						return err
					}
				}
				fmt.Println(formatter.Dim("PDF written to " + pdfPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&edition, "edition", "STARTER", "Edition: STARTER, EXECUTIVE or DELUXE")
	cmd.Flags().StringVar(&trim, "trim", "TRADE_6X9", "Trim size ID (see 'workbook trims')")
	cmd.Flags().StringVar(&binding, "binding", "softcover", "Binding: softcover, hardcover, spiral or saddle_stitch")
	cmd.Flags().StringVar(&title, "title", "", "Workbook title")
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "Workbook subtitle")
	cmd.Flags().StringVar(&themeID, "theme", "midnight-garden", "Cover theme ID (see 'workbook themes')")
	cmd.Flags().StringVar(&userName, "name", "", "Name the content is personalized for")
	cmd.Flags().StringArrayVar(&goals, "goal", nil, "Goal (repeatable)")
	cmd.Flags().StringArrayVar(&habits, "habit", nil, "Habit as name[:description] (repeatable)")
	cmd.Flags().StringArrayVar(&images, "image", nil, "Vision image URL (repeatable)")
	cmd.Flags().StringVar(&visionText, "vision", "", "Free-form vision statement")
	cmd.Flags().StringVar(&target, "financial-target", "", "Financial target, e.g. '$12,000'")
	cmd.Flags().BoolVar(&foreword, "foreword", false, "Include a generated foreword")
	cmd.Flags().StringVar(&product, "product", "paper", "Product class: paper or canvas")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the document JSON to this path")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Render and write the PDF to this path")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in build options with a form")

	return cmd
}
