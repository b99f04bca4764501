package render

import (
	"strconv"
	"strings"

	"github.com/visioncraft/workbook/internal/domain"
)

// roleStyle is the default typography for one text role. Block-level style
// overrides win over these.
type roleStyle struct {
	family string
	style  string // "", "B", "I", "BI"
	sizePt float64
}

var roleStyles = map[domain.TextRole]roleStyle{
	domain.RoleTitle:    {family: "Times", style: "B", sizePt: 32},
	domain.RoleSubtitle: {family: "Times", style: "I", sizePt: 18},
	domain.RoleBody:     {family: "Helvetica", style: "", sizePt: 11},
	domain.RoleQuote:    {family: "Times", style: "I", sizePt: 16},
	domain.RoleCaption:  {family: "Helvetica", style: "I", sizePt: 9},
	domain.RoleLabel:    {family: "Helvetica", style: "B", sizePt: 12},
}

// styleFor resolves the effective typography for a text block.
func styleFor(b domain.TextBlock) roleStyle {
	s, ok := roleStyles[b.Role]
	if !ok {
		s = roleStyles[domain.RoleBody]
	}
	if b.Style.FontFamily != "" {
		s.family = coreFont(b.Style.FontFamily)
	}
	if b.Style.SizePt > 0 {
		s.sizePt = b.Style.SizePt
	}
	return s
}

// coreFont maps a theme font name onto one of the PDF core font families.
// Custom font embedding is out of scope for print drafts; serif-looking
// names render as Times, everything else as Helvetica.
func coreFont(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "courier"), strings.Contains(lower, "mono"):
		return "Courier"
	case strings.Contains(lower, "times"),
		strings.Contains(lower, "serif") && !strings.Contains(lower, "sans"),
		strings.Contains(lower, "garamond"),
		strings.Contains(lower, "playfair"),
		strings.Contains(lower, "georgia"):
		return "Times"
	default:
		return "Helvetica"
	}
}

// hexColor parses "#rrggbb" (or "rrggbb") into RGB components. Anything
// unparseable comes back as near-black so text stays legible.
func hexColor(s string) (r, g, b int) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 20, 20, 20
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 20, 20, 20
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
