package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/printcheck"
	"github.com/visioncraft/workbook/internal/theme"
)

// FormatReport renders a print validation report for the terminal.
func FormatReport(r *printcheck.Report) string {
	var b strings.Builder

	b.WriteString(Header("Print Validation"))
	b.WriteString("\n")
	b.WriteString(StatusIndicator(r.Status))
	b.WriteString("\n\n")

	pc := r.PageCount
	b.WriteString(fmt.Sprintf("Pages: %s  %s\n",
		Bold(fmt.Sprintf("%d", pc.Current)),
		Dim(fmt.Sprintf("(min %d, max %d)", pc.Min, pc.Max))))
	if pc.PaddingNeeded > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  needs %d padding page(s)", pc.PaddingNeeded)))
		b.WriteString("\n")
	}

	for _, issue := range r.Errors {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			StyleRed.Render("✗"), Dim(issue.Code), issue.Message))
	}
	for _, issue := range r.Warnings {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			StyleYellow.Render("!"), Dim(issue.Code), issue.Message))
	}

	if len(r.ImageResolutions) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Images"))
		b.WriteString("\n")
		rows := make([][]string, len(r.ImageResolutions))
		for i, img := range r.ImageResolutions {
			rows[i] = []string{
				fmt.Sprintf("p.%d", img.PageNumber),
				fmt.Sprintf("%.0f DPI", img.EffectiveDPI),
				BandStyle(img.Band).Render(string(img.Band)),
			}
		}
		b.WriteString(RenderTable([]string{"Page", "Effective", "Band"}, rows))
	}

	return b.String()
}

// FormatBuildSummary renders the post-build one-screen summary.
func FormatBuildSummary(doc *domain.Document, fallbacks, degraded, padded int) string {
	var b strings.Builder

	b.WriteString(Header("Build"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold(doc.Title), Dim(doc.ID)))
	b.WriteString(fmt.Sprintf("%s · %s · %s · theme %s\n",
		string(doc.Edition), string(doc.Trim), string(doc.Binding), doc.ThemeID))
	b.WriteString(fmt.Sprintf("Pages: %s", Bold(fmt.Sprintf("%d", doc.PageCount()))))
	if padded > 0 {
		b.WriteString(Dim(fmt.Sprintf(" (%d padding)", padded)))
	}
	b.WriteString("\n")

	switch {
	case fallbacks > 0:
		b.WriteString(StyleYellow.Render(
			fmt.Sprintf("%d section(s) used fallback content; review before printing", fallbacks)))
		b.WriteString("\n")
	case degraded > 0:
		b.WriteString(StyleYellow.Render(
			fmt.Sprintf("%d section(s) carry unparsed raw text", degraded)))
		b.WriteString("\n")
	default:
		b.WriteString(StyleGreen.Render("All content generated cleanly"))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatThemes renders the theme pack listing.
func FormatThemes(packs []theme.Pack) string {
	rows := make([][]string, len(packs))
	for i, p := range packs {
		variant := ""
		if p.Cover.UseVisionImage {
			variant = StylePurple.Render("vision image cover")
		}
		rows[i] = []string{
			StyleGreen.Render(p.Cover.ID),
			p.Cover.Name,
			Dim(strings.Join(p.Cover.Background, " → ")),
			variant,
		}
	}
	return Header("Cover Themes") + "\n" +
		RenderTable([]string{"ID", "Name", "Background", ""}, rows)
}

// FormatTrims renders the trim size catalog with resolved pixel geometry.
func FormatTrims(sizes []domain.TrimSize) string {
	rows := make([][]string, len(sizes))
	for i, s := range sizes {
		rows[i] = []string{
			StyleGreen.Render(string(s.ID)),
			s.Label,
			fmt.Sprintf("%.1f × %.1f mm", s.WidthMm, s.HeightMm),
			Dim(fmt.Sprintf("%d × %d px @ %d DPI", s.WidthPx, s.HeightPx, domain.ReferenceDPI)),
		}
	}
	return Header("Trim Sizes") + "\n" +
		RenderTable([]string{"ID", "Label", "Physical", "Reference"}, rows)
}

// FormatBuildLog renders recent build records, newest first.
func FormatBuildLog(records []*domain.BuildRecord) string {
	if len(records) == 0 {
		return Dim("No builds recorded yet.") + "\n"
	}
	rows := make([][]string, len(records))
	for i, r := range records {
		status := StyleGreen.Render(r.ValidationStatus)
		if r.ValidationStatus != "valid" {
			status = StyleRed.Render(r.ValidationStatus)
		}
		notes := []string{}
		if r.FallbackCount > 0 {
			notes = append(notes, fmt.Sprintf("%d fallback", r.FallbackCount))
		}
		if r.PaddingAdded {
			notes = append(notes, "padded")
		}
		rows[i] = []string{
			r.CreatedAt.Format(time.DateTime),
			r.Title,
			string(r.Edition),
			fmt.Sprintf("%d", r.PageCount),
			status,
			Dim(strings.Join(notes, ", ")),
		}
	}
	return Header("Build Log") + "\n" +
		RenderTable([]string{"When", "Title", "Edition", "Pages", "Status", ""}, rows)
}
