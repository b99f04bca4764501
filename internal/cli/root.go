// Package cli implements the workbook command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/visioncraft/workbook/internal/service"
	"github.com/visioncraft/workbook/internal/theme"
)

// App holds the services CLI commands run against.
type App struct {
	Pipeline service.PipelineService
	Themes   *theme.Registry

	// IsInteractive reports whether stdin is an interactive terminal;
	// the build form is only offered when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "workbook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "workbook",
		Short: "Build, validate and render print-ready workbooks",
	}

	root.AddCommand(
		newBuildCmd(app),
		newValidateCmd(app),
		newRenderCmd(app),
		newThemesCmd(app),
		newTrimsCmd(app),
		newLogCmd(app),
	)

	return root
}
