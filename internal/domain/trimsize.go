package domain

import "fmt"

// ReferenceDPI is the resolution at which the pixel dimensions in the trim
// table are expressed, and the DPI print vendors treat as "ideal".
const ReferenceDPI = 300

// TrimSizeID names an entry in the fixed trim-size table.
type TrimSizeID string

const (
	TrimLetter       TrimSizeID = "LETTER"
	TrimA4           TrimSizeID = "A4"
	TrimA5           TrimSizeID = "A5"
	TrimTrade6x9     TrimSizeID = "TRADE_6X9"
	TrimExecutive7x9 TrimSizeID = "EXECUTIVE_7X9"
	TrimCard3x5      TrimSizeID = "CARD_3X5"
)

// TrimSize is a named physical page size. Pixel dimensions are derived from
// the millimeter dimensions at ReferenceDPI and stored for convenience; the
// layout resolver recomputes them for other DPIs.
type TrimSize struct {
	ID       TrimSizeID `json:"id"`
	Label    string     `json:"label"`
	WidthMm  float64    `json:"widthMm"`
	HeightMm float64    `json:"heightMm"`
	WidthPx  int        `json:"widthPx"`
	HeightPx int        `json:"heightPx"`
}

// trimTable is the fixed trim-size enumeration, defined once at process
// start and never mutated.
var trimTable = []TrimSize{
	{ID: TrimLetter, Label: "US Letter 8.5″ × 11″", WidthMm: 215.9, HeightMm: 279.4, WidthPx: 2550, HeightPx: 3300},
	{ID: TrimA4, Label: "A4 210 × 297 mm", WidthMm: 210, HeightMm: 297, WidthPx: 2480, HeightPx: 3508},
	{ID: TrimA5, Label: "A5 148 × 210 mm", WidthMm: 148, HeightMm: 210, WidthPx: 1748, HeightPx: 2480},
	{ID: TrimTrade6x9, Label: "Trade 6″ × 9″", WidthMm: 152.4, HeightMm: 228.6, WidthPx: 1800, HeightPx: 2700},
	{ID: TrimExecutive7x9, Label: "Executive 7″ × 9″", WidthMm: 177.8, HeightMm: 228.6, WidthPx: 2100, HeightPx: 2700},
	{ID: TrimCard3x5, Label: "Card 3″ × 5″", WidthMm: 76.2, HeightMm: 127, WidthPx: 900, HeightPx: 1500},
}

// TrimSizes returns a copy of the trim-size table.
func TrimSizes() []TrimSize {
	out := make([]TrimSize, len(trimTable))
	copy(out, trimTable)
	return out
}

// TrimSizeByID looks up a trim size by its identifier.
func TrimSizeByID(id TrimSizeID) (TrimSize, error) {
	for _, t := range trimTable {
		if t.ID == id {
			return t, nil
		}
	}
	return TrimSize{}, fmt.Errorf("unknown trim size %q", id)
}
