package printcheck

import (
	"fmt"

	"github.com/visioncraft/workbook/internal/domain"
)

// PageBounds is the vendor's hard page-count window for one binding type.
type PageBounds struct {
	Min int
	Max int
}

// bindingBounds is the fixed vendor rule table.
var bindingBounds = map[domain.BindingType]PageBounds{
	domain.BindingSoftcover:    {Min: 20, Max: 300},
	domain.BindingHardcover:    {Min: 24, Max: 300},
	domain.BindingSpiral:       {Min: 2, Max: 200},
	domain.BindingSaddleStitch: {Min: 4, Max: 48},
}

// BoundsFor returns the page-count bounds for a binding type.
func BoundsFor(binding domain.BindingType) (PageBounds, error) {
	b, ok := bindingBounds[binding]
	if !ok {
		return PageBounds{}, fmt.Errorf("unknown binding type %q", binding)
	}
	return b, nil
}

// PaddingNeeded computes how many pages must be appended to reach the
// binding minimum and an even total. Padding is reported, never applied
// here: appending pages is the caller's decision.
func PaddingNeeded(current, min int) int {
	padding := 0
	if current < min {
		padding = min - current
	}
	if (current+padding)%2 != 0 {
		padding++
	}
	return padding
}

// QualityBand classifies an image's effective print resolution.
type QualityBand string

const (
	BandExcellent    QualityBand = "excellent"    // >= 300 DPI
	BandGood         QualityBand = "good"         // >= 200 DPI
	BandAcceptable   QualityBand = "acceptable"   // >= 150 DPI, warning
	BandUnacceptable QualityBand = "unacceptable" // < 150 DPI, error
)

// DPI thresholds for the quality bands.
const (
	DPIExcellent  = 300
	DPIGood       = 200
	DPIAcceptable = 150
)

// BandFor returns the quality band for an effective DPI.
func BandFor(effectiveDPI float64) QualityBand {
	switch {
	case effectiveDPI >= DPIExcellent:
		return BandExcellent
	case effectiveDPI >= DPIGood:
		return BandGood
	case effectiveDPI >= DPIAcceptable:
		return BandAcceptable
	default:
		return BandUnacceptable
	}
}

// EffectiveDPI computes the binding resolution of an image printed at the
// given physical size: the smaller of the two per-axis densities, since the
// worse axis is what the eye sees.
func EffectiveDPI(widthPx, heightPx int, targetWidthMm, targetHeightMm float64) float64 {
	if targetWidthMm <= 0 || targetHeightMm <= 0 {
		return 0
	}
	widthIn := targetWidthMm / 25.4
	heightIn := targetHeightMm / 25.4

	wDPI := float64(widthPx) / widthIn
	hDPI := float64(heightPx) / heightIn
	if wDPI < hDPI {
		return wDPI
	}
	return hDPI
}

// bandFails reports whether a band is a hard failure for the product class.
// Canvas products tighten the floor: an image that is merely acceptable on
// paper fails on canvas.
func bandFails(band QualityBand, product domain.ProductClass) bool {
	if band == BandUnacceptable {
		return true
	}
	return product == domain.ProductCanvas && band == BandAcceptable
}
