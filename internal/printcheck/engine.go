// Package printcheck validates a finished document against the print
// vendor's hard physical constraints: page-count bounds per binding and
// minimum effective image resolution per print size.
package printcheck

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/visioncraft/workbook/internal/assets"
	"github.com/visioncraft/workbook/internal/domain"
)

// Prober resolves image pixel dimensions for candidate assets.
type Prober interface {
	ProbeAll(ctx context.Context, urls []string) []assets.ProbeResult
}

// TargetSize is the physical print size the document will be produced at.
// A zero value means "use the document's trim size".
type TargetSize struct {
	WidthMm  float64
	HeightMm float64
}

// Engine runs pre-submission checks. It is read-only over the document.
type Engine struct {
	prober Prober
}

// NewEngine creates a validation engine backed by the given prober.
func NewEngine(prober Prober) *Engine {
	return &Engine{prober: prober}
}

// imageRef ties a probed URL back to its page and block.
type imageRef struct {
	pageNumber int
	block      domain.ImageBlock
}

// Validate checks page count and image resolutions and returns a report.
// The returned error covers structural problems only (malformed pages, nil
// document); rule violations are reported, not returned.
func (e *Engine) Validate(
	ctx context.Context,
	doc *domain.Document,
	target TargetSize,
	binding domain.BindingType,
	product domain.ProductClass,
) (*Report, error) {
	if doc == nil {
		return nil, fmt.Errorf("validating nil document")
	}

	// Payload/type mismatches are programmer errors, surfaced as an error
	// rather than folded into the vendor report.
	var structural error
	for i, p := range doc.Pages {
		if err := p.Validate(); err != nil {
			structural = multierr.Append(structural, fmt.Errorf("page %d: %w", i+1, err))
		}
	}
	if structural != nil {
		return nil, structural
	}

	if target.WidthMm <= 0 || target.HeightMm <= 0 {
		size, err := domain.TrimSizeByID(doc.Trim)
		if err != nil {
			return nil, err
		}
		target = TargetSize{WidthMm: size.WidthMm, HeightMm: size.HeightMm}
	}

	report := &Report{Status: StatusValid}
	e.checkPageCount(doc, binding, report)
	if err := e.checkImages(ctx, doc, target, product, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (e *Engine) checkPageCount(doc *domain.Document, binding domain.BindingType, report *Report) {
	bounds, err := BoundsFor(binding)
	if err != nil {
		report.addError(Issue{Code: CodePageCountLow, Message: err.Error()})
		return
	}

	current := doc.PageCount()
	check := PageCountCheck{
		Current: current,
		Min:     bounds.Min,
		Max:     bounds.Max,
		IsEven:  current%2 == 0,
	}
	check.PaddingNeeded = PaddingNeeded(current, bounds.Min)

	if current < bounds.Min {
		report.addError(Issue{
			Code: CodePageCountLow,
			Message: fmt.Sprintf("%d pages is below the %s minimum of %d; %d padding pages needed",
				current, binding, bounds.Min, check.PaddingNeeded),
		})
	}
	if current > bounds.Max {
		report.addError(Issue{
			Code: CodePageCountHigh,
			Message: fmt.Sprintf("%d pages exceeds the %s maximum of %d",
				current, binding, bounds.Max),
		})
	}
	if current >= bounds.Min && !check.IsEven {
		report.addError(Issue{
			Code:    CodePageCountOdd,
			Message: fmt.Sprintf("%d pages is odd; print sheets require an even count", current),
		})
	}

	report.PageCount = check
}

func (e *Engine) checkImages(
	ctx context.Context,
	doc *domain.Document,
	target TargetSize,
	product domain.ProductClass,
	report *Report,
) error {
	var refs []imageRef
	var urls []string
	for _, page := range doc.Pages {
		for _, block := range page.ImageBlocks {
			refs = append(refs, imageRef{pageNumber: page.PageNumber, block: block})
			urls = append(urls, block.URL)
		}
	}
	if len(urls) == 0 {
		return nil
	}

	results := e.prober.ProbeAll(ctx, urls)
	if len(results) != len(refs) {
		return fmt.Errorf("prober returned %d results for %d images", len(results), len(refs))
	}

	for i, res := range results {
		ref := refs[i]
		detail := ImageResolution{
			PageNumber: ref.pageNumber,
			BlockID:    ref.block.ID,
			URL:        ref.block.URL,
		}

		// The block's fractional extents scale the physical target; a
		// zero extent means the image fills the page.
		detail.TargetWidthMm = target.WidthMm
		detail.TargetHeightMm = target.HeightMm
		if ref.block.Position.W > 0 && ref.block.Position.H > 0 {
			detail.TargetWidthMm = target.WidthMm * ref.block.Position.W
			detail.TargetHeightMm = target.HeightMm * ref.block.Position.H
		}

		if res.Err != nil {
			detail.ProbeError = res.Err.Error()
			report.ImageResolutions = append(report.ImageResolutions, detail)
			report.addError(Issue{
				Code:       CodeImageUnreadable,
				PageNumber: ref.pageNumber,
				Message:    fmt.Sprintf("image %s could not be read: %v", ref.block.URL, res.Err),
			})
			continue
		}

		detail.WidthPx = res.Dimensions.WidthPx
		detail.HeightPx = res.Dimensions.HeightPx
		detail.EffectiveDPI = EffectiveDPI(
			detail.WidthPx, detail.HeightPx,
			detail.TargetWidthMm, detail.TargetHeightMm,
		)
		detail.Band = BandFor(detail.EffectiveDPI)
		report.ImageResolutions = append(report.ImageResolutions, detail)

		issue := Issue{
			Code:       CodeImageResolution,
			PageNumber: ref.pageNumber,
			Message: fmt.Sprintf("image %s prints at %.0f DPI (%s) for %.0fx%.0f mm",
				ref.block.URL, detail.EffectiveDPI, detail.Band,
				detail.TargetWidthMm, detail.TargetHeightMm),
		}
		switch {
		case bandFails(detail.Band, product):
			report.addError(issue)
		case detail.Band == BandAcceptable:
			report.addWarning(issue)
		}
	}
	return nil
}
