package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visioncraft/workbook/internal/cli/formatter"
	"github.com/visioncraft/workbook/internal/domain"
)

func newThemesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available cover themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatThemes(app.Themes.List()))
			return nil
		},
	}
}

func newTrimsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trims",
		Short: "List supported trim sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatTrims(domain.TrimSizes()))
			return nil
		},
	}
}

func newLogCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Pipeline.History(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatBuildLog(records))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of records to show")

	return cmd
}
