package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/visioncraft/workbook/internal/assets"
	"github.com/visioncraft/workbook/internal/cli"
	"github.com/visioncraft/workbook/internal/db"
	"github.com/visioncraft/workbook/internal/genai"
	"github.com/visioncraft/workbook/internal/printcheck"
	"github.com/visioncraft/workbook/internal/render"
	"github.com/visioncraft/workbook/internal/repository"
	"github.com/visioncraft/workbook/internal/sequence"
	"github.com/visioncraft/workbook/internal/service"
	"github.com/visioncraft/workbook/internal/theme"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine build-log path: env var or default ~/.workbook/workbook.db
	dbPath := os.Getenv("WORKBOOK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".workbook", "workbook.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening build log: %w", err)
	}
	defer database.Close()

	// Theme packs: built-ins, optionally merged with a user theme file.
	themes := theme.DefaultRegistry()
	if themeFile := os.Getenv("WORKBOOK_THEMES"); themeFile != "" {
		themes, err = theme.LoadRegistry(themeFile)
		if err != nil {
			return fmt.Errorf("loading themes: %w", err)
		}
	}

	// Content generation with structured call logging to stderr when asked.
	aiCfg := genai.LoadConfig()
	var observer genai.Observer = genai.NoopObserver{}
	if aiCfg.LogCalls {
		observer = genai.NewLogObserver(os.Stderr)
	}
	generator := genai.NewGenerator(aiCfg, observer)

	fetcher := assets.NewFetcher(30 * time.Second)

	builder := sequence.NewBuilder(generator, themes)
	engine := printcheck.NewEngine(fetcher)
	renderer := render.NewRenderer(fetcher, themes)
	log := repository.NewSQLiteBuildLogRepo(database)

	app := &cli.App{
		Pipeline: service.NewPipelineService(builder, engine, renderer, log),
		Themes:   themes,
	}

	// Detect interactive terminal for the build form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
