package sequence

import (
	"github.com/google/uuid"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/printcheck"
)

// ApplyPadding appends the blank padding pages a validation report asked
// for and renumbers the document. This is the single authoritative padding
// step in the pipeline: the renderer only self-checks parity, it does not
// decide padding on its own.
func ApplyPadding(doc *domain.Document, report *printcheck.Report) int {
	if report == nil || report.PageCount.PaddingNeeded <= 0 {
		return 0
	}

	var layoutMeta domain.LayoutMeta
	if len(doc.Pages) > 0 {
		layoutMeta = doc.Pages[len(doc.Pages)-1].Layout
	}

	n := report.PageCount.PaddingNeeded
	for i := 0; i < n; i++ {
		doc.Pages = append(doc.Pages, &domain.Page{
			ID:     uuid.New().String(),
			Kind:   domain.PageBlankPadding,
			Layout: layoutMeta,
		})
	}
	doc.Renumber()
	return n
}
