package domain

// CoverTheme is a named style record applied to the cover and carried
// through page styling. One reserved variant (UseVisionImage) puts the
// user's first selected vision image behind the cover instead of a flat
// background.
type CoverTheme struct {
	ID             string   `yaml:"id" json:"id"`
	Name           string   `yaml:"name" json:"name"`
	Background     []string `yaml:"background" json:"background"` // one color, or two for a gradient
	TitleColor     string   `yaml:"titleColor" json:"titleColor"`
	SubtitleColor  string   `yaml:"subtitleColor" json:"subtitleColor"`
	AccentColor    string   `yaml:"accentColor" json:"accentColor"`
	TitleFont      string   `yaml:"titleFont" json:"titleFont"`
	BodyFont       string   `yaml:"bodyFont" json:"bodyFont"`
	Overlay        bool     `yaml:"overlay" json:"overlay"`
	OverlayOpacity float64  `yaml:"overlayOpacity" json:"overlayOpacity"`
	UseVisionImage bool     `yaml:"useVisionImage" json:"useVisionImage"`
}
