package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/sequence"
)

// runBuildForm fills in build options interactively. Values already set by
// flags become the form's starting values.
func runBuildForm(app *App, opts *sequence.BuildOptions) error {
	edition := string(opts.Edition)
	trim := string(opts.Trim)
	binding := string(opts.Binding)
	themeID := opts.CoverThemeID
	goals := strings.Join(opts.Goals, ", ")

	themeOptions := make([]huh.Option[string], 0)
	for _, p := range app.Themes.List() {
		themeOptions = append(themeOptions, huh.NewOption(p.Cover.Name, p.Cover.ID))
	}

	trimOptions := make([]huh.Option[string], 0)
	for _, t := range domain.TrimSizes() {
		trimOptions = append(trimOptions, huh.NewOption(t.Label, string(t.ID)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("2027 Vision Workbook").
				Value(&opts.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("a title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Subtitle (optional)").
				Value(&opts.Subtitle),
			huh.NewInput().
				Title("Your name (optional)").
				Value(&opts.UserName),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Edition").
				Options(
					huh.NewOption("Starter — 3 months", string(domain.EditionStarter)),
					huh.NewOption("Executive — full year", string(domain.EditionExecutive)),
					huh.NewOption("Deluxe — full year, everything", string(domain.EditionDeluxe)),
				).
				Value(&edition),
			huh.NewSelect[string]().
				Title("Trim size").
				Options(trimOptions...).
				Value(&trim),
			huh.NewSelect[string]().
				Title("Binding").
				Options(
					huh.NewOption("Softcover", string(domain.BindingSoftcover)),
					huh.NewOption("Hardcover", string(domain.BindingHardcover)),
					huh.NewOption("Spiral", string(domain.BindingSpiral)),
					huh.NewOption("Saddle stitch", string(domain.BindingSaddleStitch)),
				).
				Value(&binding),
			huh.NewSelect[string]().
				Title("Cover theme").
				Options(themeOptions...).
				Value(&themeID),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Goals (comma separated)").
				Placeholder("run a marathon, learn Spanish").
				Value(&goals),
			huh.NewInput().
				Title("Financial target (optional)").
				Placeholder("$12,000").
				Value(&opts.FinancialTarget),
			huh.NewConfirm().
				Title("Include a generated foreword?").
				Value(&opts.IncludeForeword),
		),
	).WithTheme(workbookHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	opts.Edition = domain.Edition(edition)
	opts.Trim = domain.TrimSizeID(trim)
	opts.Binding = domain.BindingType(binding)
	opts.CoverThemeID = themeID
	opts.Goals = splitList(goals)
	return nil
}

// splitList parses a comma separated input into trimmed non-empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
