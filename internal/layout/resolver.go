// Package layout converts named trim sizes and binding types into pixel
// geometry. Everything here is pure arithmetic: no I/O, deterministic for a
// given input pair.
package layout

import (
	"fmt"
	"math"

	"github.com/visioncraft/workbook/internal/domain"
)

const (
	// mmPerInch is the exact millimeter length of one inch.
	mmPerInch = 25.4

	// safeMarginMm is the vendor-guaranteed distance from the trim edge
	// within which content is never cut off.
	safeMarginMm = 10

	// spiralEdgeMarginMm is the extra clearance on the binding edge of
	// spiral-bound pages.
	spiralEdgeMarginMm = 12
)

// Edge names a horizontal page edge.
type Edge string

const (
	EdgeLeft  Edge = "left"
	EdgeRight Edge = "right"
)

// MmToPx converts a physical length to pixels at the given DPI, rounded to
// the nearest integer.
func MmToPx(mm float64, dpi int) int {
	return int(math.Round(mm / mmPerInch * float64(dpi)))
}

// Resolve computes the layout geometry for one trim size and binding type
// at the reference 300 DPI.
func Resolve(trim domain.TrimSizeID, binding domain.BindingType) (domain.LayoutMeta, error) {
	return ResolveAtDPI(trim, binding, domain.ReferenceDPI)
}

// ResolveAtDPI is Resolve with an explicit target DPI. No bleed is added:
// bleed is the print vendor's responsibility, and adding it here would clip
// visible content.
func ResolveAtDPI(trim domain.TrimSizeID, binding domain.BindingType, dpi int) (domain.LayoutMeta, error) {
	if dpi <= 0 {
		return domain.LayoutMeta{}, fmt.Errorf("dpi must be positive, got %d", dpi)
	}
	size, err := domain.TrimSizeByID(trim)
	if err != nil {
		return domain.LayoutMeta{}, err
	}

	meta := domain.LayoutMeta{
		Trim:         trim,
		WidthPx:      MmToPx(size.WidthMm, dpi),
		HeightPx:     MmToPx(size.HeightMm, dpi),
		SafeMarginPx: MmToPx(safeMarginMm, dpi),
		Binding:      binding,
		DPI:          dpi,
	}
	if binding == domain.BindingSpiral {
		meta.SpiralEdgeMarginPx = MmToPx(spiralEdgeMarginMm, dpi)
	}
	return meta, nil
}

// GutterEdge returns the page edge that carries the spiral binding margin.
// Odd pages are right-hand pages in an open spread, so their binding edge
// is the left one; even pages are left-hand pages and bind on the right.
func GutterEdge(pageNumber int) Edge {
	if pageNumber%2 == 1 {
		return EdgeLeft
	}
	return EdgeRight
}
