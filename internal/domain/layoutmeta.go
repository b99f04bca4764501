package domain

// LayoutMeta holds the resolved pixel geometry for one document. It is
// derived by the layout resolver from a trim size and binding type and is
// never hand-edited afterwards.
type LayoutMeta struct {
	Trim               TrimSizeID  `json:"trim"`
	WidthPx            int         `json:"widthPx"`
	HeightPx           int         `json:"heightPx"`
	SafeMarginPx       int         `json:"safeMarginPx"`
	SpiralEdgeMarginPx int         `json:"spiralEdgeMarginPx,omitempty"`
	Binding            BindingType `json:"binding"`
	DPI                int         `json:"dpi"`
}
