package domain

// Position places a block on its page in fractional page coordinates:
// X and Y are offsets from the top-left corner, W and H are extents, all as
// fractions of the page dimension in [0, 1]. Fractional coordinates keep
// block placement independent of the resolved DPI.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// TextStyle carries the optional per-block style overrides. Zero values
// defer to the cover theme's per-role defaults.
type TextStyle struct {
	FontFamily string  `json:"fontFamily,omitempty"`
	SizePt     float64 `json:"sizePt,omitempty"`
	Color      string  `json:"color,omitempty"`
	Align      string  `json:"align,omitempty"` // "left", "center", "right"
}

// TextBlock is a positioned run of text with a styling role.
type TextBlock struct {
	ID          string    `json:"id"`
	Role        TextRole  `json:"role"`
	Content     string    `json:"content"`
	Position    *Position `json:"position,omitempty"`
	Style       TextStyle `json:"style,omitempty"`
	AIGenerated bool      `json:"aiGenerated,omitempty"`
	Editable    bool      `json:"editable,omitempty"`
}

// ImageBlock is a positioned raster image reference. The asset bytes are
// fetched lazily by validation (dimensions) and rendering (embedding).
type ImageBlock struct {
	ID         string      `json:"id"`
	SourceType ImageSource `json:"sourceType"`
	URL        string      `json:"url"`
	Layout     ImageLayout `json:"layout"`
	Position   Position    `json:"position"`
}

// TableBlock is a simple grid of header and data cells.
type TableBlock struct {
	Kind    string     `json:"kind"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
