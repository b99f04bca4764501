package render

import (
	"bytes"
	"context"

	"github.com/go-pdf/fpdf"

	"github.com/visioncraft/workbook/internal/domain"
)

// placeImage fetches and embeds one image block. A fetch or decode failure
// never fails the render: the reserved box gets a labeled placeholder so
// the missing asset is visible in the proof.
func (r *Renderer) placeImage(ctx context.Context, pc *pageCtx, block domain.ImageBlock) {
	var x, y, w, h float64
	if block.Layout == domain.LayoutFullBleed {
		x, y, w, h = 0, 0, pc.widthMm, pc.heightMm
	} else {
		x, y, w, h = pc.rect(block.Position)
	}

	if r.fetcher == nil {
		drawPlaceholder(pc, x, y, w, h)
		return
	}
	data, err := r.fetcher.Fetch(ctx, block.URL)
	if err != nil {
		drawPlaceholder(pc, x, y, w, h)
		return
	}
	kind := sniffImageType(data)
	if kind == "" {
		drawPlaceholder(pc, x, y, w, h)
		return
	}

	opts := fpdf.ImageOptions{ImageType: kind}
	info := pc.pdf.RegisterImageOptionsReader(block.ID, opts, bytes.NewReader(data))
	if pc.pdf.Err() || info == nil || info.Width() <= 0 || info.Height() <= 0 {
		pc.pdf.ClearError()
		drawPlaceholder(pc, x, y, w, h)
		return
	}

	imgRatio := info.Width() / info.Height()
	boxRatio := w / h

	switch block.Layout {
	case domain.LayoutContain:
		// Fit entirely inside the box, centered.
		fw, fh := w, h
		if imgRatio > boxRatio {
			fh = w / imgRatio
		} else {
			fw = h * imgRatio
		}
		pc.pdf.ImageOptions(block.ID, x+(w-fw)/2, y+(h-fh)/2, fw, fh, false, opts, 0, "")
	default:
		// cover and full_bleed: fill the box, cropping the overflow.
		fw, fh := w, h
		if imgRatio > boxRatio {
			fw = h * imgRatio
		} else {
			fh = w / imgRatio
		}
		pc.pdf.ClipRect(x, y, w, h, false)
		pc.pdf.ImageOptions(block.ID, x+(w-fw)/2, y+(h-fh)/2, fw, fh, false, opts, 0, "")
		pc.pdf.ClipEnd()
	}
}

// sniffImageType identifies the image container from its magic bytes.
func sniffImageType(data []byte) string {
	switch {
	case len(data) >= 8 && bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n")):
		return "PNG"
	case len(data) >= 3 && bytes.Equal(data[:3], []byte{0xff, 0xd8, 0xff}):
		return "JPG"
	case len(data) >= 6 && (bytes.Equal(data[:6], []byte("GIF87a")) || bytes.Equal(data[:6], []byte("GIF89a"))):
		return "GIF"
	default:
		return ""
	}
}

func drawPlaceholder(pc *pageCtx, x, y, w, h float64) {
	pc.pdf.SetFillColor(236, 236, 236)
	pc.pdf.SetDrawColor(180, 180, 180)
	pc.pdf.SetLineWidth(0.3)
	pc.pdf.Rect(x, y, w, h, "FD")
	pc.pdf.Line(x, y, x+w, y+h)
	pc.pdf.Line(x+w, y, x, y+h)

	pc.pdf.SetFont("Helvetica", "I", 9)
	pc.pdf.SetTextColor(120, 120, 120)
	label := "image unavailable"
	pc.pdf.Text(x+(w-pc.pdf.GetStringWidth(label))/2, y+h/2, label)
}
