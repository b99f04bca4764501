// Package render turns a validated workbook document into print-ready PDF
// bytes. Page geometry comes from the document's resolved layout metadata;
// the renderer adds no padding decisions of its own beyond a final parity
// self-check.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/layout"
	"github.com/visioncraft/workbook/internal/theme"
)

// AssetFetcher retrieves image bytes for embedding. Satisfied by
// *assets.Fetcher.
type AssetFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Artifact is the rendering output.
type Artifact struct {
	PDF          []byte
	PageCount    int
	ThemeID      string
	Trim         domain.TrimSizeID
	WidthMm      float64
	HeightMm     float64
	WidthPx      int
	HeightPx     int
	SafeMarginMm float64

	// PaddingAdded reports that the parity self-check appended one blank
	// page. Sequencing should already have padded the document; this flag
	// firing means a step upstream was skipped.
	PaddingAdded bool
}

// Renderer produces PDF artifacts from documents. It is safe for reuse
// across documents.
type Renderer struct {
	fetcher AssetFetcher
	themes  *theme.Registry
}

// NewRenderer creates a Renderer. fetcher may be nil, in which case every
// image renders as a labeled placeholder.
func NewRenderer(fetcher AssetFetcher, themes *theme.Registry) *Renderer {
	if themes == nil {
		themes = theme.DefaultRegistry()
	}
	return &Renderer{fetcher: fetcher, themes: themes}
}

// page-level drawing context threaded through the draw routines.
type pageCtx struct {
	pdf  *fpdf.Fpdf
	page *domain.Page
	pack theme.Pack

	widthMm  float64
	heightMm float64

	marginL float64
	marginR float64
	marginT float64
	marginB float64

	// y is the flow cursor for routines that stack content top to bottom.
	y float64
}

func (pc *pageCtx) contentWidth() float64 {
	return pc.widthMm - pc.marginL - pc.marginR
}

// rect converts a fractional position into absolute page millimeters.
func (pc *pageCtx) rect(pos domain.Position) (x, y, w, h float64) {
	return pos.X * pc.widthMm, pos.Y * pc.heightMm, pos.W * pc.widthMm, pos.H * pc.heightMm
}

type drawFunc func(ctx context.Context, r *Renderer, pc *pageCtx)

// drawFuncs routes each page kind to its drawing routine. Kinds absent
// from the table fall through to the generic text page.
var drawFuncs = map[domain.PageKind]drawFunc{
	domain.PageCoverFront:      drawCoverFront,
	domain.PageCoverBack:       drawCoverBack,
	domain.PageTitle:           drawTitlePage,
	domain.PageVisionSpread:    drawVisionSpread,
	domain.PageGoalOverview:    drawTablePage,
	domain.PageRoadmap:         drawRoadmap,
	domain.PageMonthlyCalendar: drawMonthlyCalendar,
	domain.PageWeeklyPlanner:   drawWeeklyPlanner,
	domain.PageHabitTracker:    drawHabitTracker,
	domain.PageMoodTracker:     drawMoodTracker,
	domain.PageBudgetOverview:  drawBudget,
	domain.PageSavingsTracker:  drawSavings,
	domain.PageNotes:           drawNotes,
	domain.PageBlankPadding:    drawBlank,
}

// Render produces the PDF artifact for a document. The document must have
// passed print validation; rendering malformed pages is undefined.
func (r *Renderer) Render(ctx context.Context, doc *domain.Document) (*Artifact, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, fmt.Errorf("nothing to render: document has no pages")
	}
	size, err := domain.TrimSizeByID(doc.Trim)
	if err != nil {
		return nil, err
	}
	pack, err := r.themes.Get(doc.ThemeID)
	if err != nil {
		// Documents that predate a theme still render, just unstyled.
		pack = theme.Pack{}
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: size.WidthMm, Ht: size.HeightMm},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("workbook", true)

	for _, page := range doc.Pages {
		pdf.AddPage()

		pc := &pageCtx{
			pdf:      pdf,
			page:     page,
			pack:     pack,
			widthMm:  size.WidthMm,
			heightMm: size.HeightMm,
		}
		r.applyMargins(pc)
		pc.y = pc.marginT

		draw, ok := drawFuncs[page.Kind]
		if !ok {
			draw = drawTextPage
		}
		draw(ctx, r, pc)
	}

	// Parity self-check. Padding belongs to the sequencing step; if an odd
	// count still reaches us, one blank page keeps the sheet math valid.
	padded := false
	if pdf.PageCount()%2 == 1 {
		pdf.AddPage()
		padded = true
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}

	meta := doc.Pages[0].Layout
	return &Artifact{
		PDF:          buf.Bytes(),
		PageCount:    len(doc.Pages) + boolToInt(padded),
		ThemeID:      doc.ThemeID,
		Trim:         doc.Trim,
		WidthMm:      size.WidthMm,
		HeightMm:     size.HeightMm,
		WidthPx:      meta.WidthPx,
		HeightPx:     meta.HeightPx,
		SafeMarginMm: pxToMm(meta.SafeMarginPx, meta.DPI),
		PaddingAdded: padded,
	}, nil
}

// applyMargins derives the page's effective margins from its layout
// metadata. Spiral bindings put the wider clearance on the binding edge,
// which alternates between left and right hand pages.
func (r *Renderer) applyMargins(pc *pageCtx) {
	meta := pc.page.Layout
	safe := pxToMm(meta.SafeMarginPx, meta.DPI)
	if safe <= 0 {
		safe = 10
	}
	pc.marginL, pc.marginR, pc.marginT, pc.marginB = safe, safe, safe, safe

	if meta.Binding == domain.BindingSpiral && meta.SpiralEdgeMarginPx > 0 {
		gutter := pxToMm(meta.SpiralEdgeMarginPx, meta.DPI)
		if layout.GutterEdge(pc.page.PageNumber) == layout.EdgeLeft {
			pc.marginL = gutter
		} else {
			pc.marginR = gutter
		}
	}
}

func pxToMm(px, dpi int) float64 {
	if dpi <= 0 {
		return 0
	}
	return float64(px) / float64(dpi) * 25.4
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
