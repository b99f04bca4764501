package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/printcheck"
	"github.com/visioncraft/workbook/internal/theme"
)

func TestFormatReport_Valid(t *testing.T) {
	r := &printcheck.Report{
		Status: printcheck.StatusValid,
		PageCount: printcheck.PageCountCheck{
			Current: 24, Min: 20, Max: 300, IsEven: true,
		},
	}

	out := FormatReport(r)
	assert.Contains(t, out, "VALID")
	assert.Contains(t, out, "24")
	assert.Contains(t, out, "min 20, max 300")
	assert.NotContains(t, out, "padding")
}

func TestFormatReport_ErrorsAndImages(t *testing.T) {
	r := &printcheck.Report{
		Status: printcheck.StatusInvalid,
		Errors: []printcheck.Issue{
			{Code: printcheck.CodePageCountLow, Message: "15 pages is below the hardcover minimum of 24"},
		},
		Warnings: []printcheck.Issue{
			{Code: printcheck.CodeImageResolution, Message: "image on page 3 prints at 180 DPI", PageNumber: 3},
		},
		ImageResolutions: []printcheck.ImageResolution{
			{PageNumber: 3, EffectiveDPI: 180, Band: printcheck.BandAcceptable},
		},
		PageCount: printcheck.PageCountCheck{Current: 15, Min: 24, Max: 300, PaddingNeeded: 9},
	}

	out := FormatReport(r)
	assert.Contains(t, out, "INVALID")
	assert.Contains(t, out, "PAGE_COUNT_BELOW_MIN")
	assert.Contains(t, out, "needs 9 padding page(s)")
	assert.Contains(t, out, "180 DPI")
	assert.Contains(t, out, "acceptable")
}

func TestFormatBuildSummary(t *testing.T) {
	doc := &domain.Document{
		ID:      "doc-1",
		Edition: domain.EditionExecutive,
		Trim:    domain.TrimTrade6x9,
		Binding: domain.BindingSoftcover,
		ThemeID: "golden-hour",
		Title:   "My Workbook",
		Pages:   []*domain.Page{{Kind: domain.PageCoverFront}, {Kind: domain.PageCoverBack}},
	}

	clean := FormatBuildSummary(doc, 0, 0, 0)
	assert.Contains(t, clean, "My Workbook")
	assert.Contains(t, clean, "generated cleanly")

	withFallback := FormatBuildSummary(doc, 2, 0, 4)
	assert.Contains(t, withFallback, "2 section(s) used fallback content")
	assert.Contains(t, withFallback, "(4 padding)")
}

func TestFormatThemes(t *testing.T) {
	out := FormatThemes(theme.DefaultRegistry().List())
	assert.Contains(t, out, "midnight-garden")
	assert.Contains(t, out, "vision-canvas")
	assert.Contains(t, out, "vision image cover")
}

func TestFormatTrims(t *testing.T) {
	out := FormatTrims(domain.TrimSizes())
	for _, s := range domain.TrimSizes() {
		assert.Contains(t, out, string(s.ID))
	}
}

func TestFormatBuildLog(t *testing.T) {
	assert.Contains(t, FormatBuildLog(nil), "No builds recorded yet")

	records := []*domain.BuildRecord{{
		Title:            "Logged Workbook",
		Edition:          domain.EditionDeluxe,
		PageCount:        48,
		ValidationStatus: "valid",
		FallbackCount:    1,
		PaddingAdded:     true,
		CreatedAt:        time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
	}}
	out := FormatBuildLog(records)
	assert.Contains(t, out, "Logged Workbook")
	assert.Contains(t, out, "48")
	assert.Contains(t, out, "1 fallback, padded")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"ID", "Name"}, [][]string{
		{"a", "short"},
		{"longer-id", "x"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)

	// Second column starts at the same offset in every row.
	assert.Contains(t, lines[2], "a          short")
	assert.Contains(t, lines[3], "longer-id  x")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
