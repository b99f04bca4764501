package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/visioncraft/workbook/internal/domain"
)

// ptToMm converts a font size in points to millimeters.
const ptToMm = 25.4 / 72.0

// lineSpacing is the leading multiplier applied to the font size.
const lineSpacing = 1.45

func (pc *pageCtx) setFont(s roleStyle, colorHex string) {
	pc.pdf.SetFont(s.family, s.style, s.sizePt)
	r, g, b := hexColor(colorHex)
	pc.pdf.SetTextColor(r, g, b)
}

func (pc *pageCtx) lineHeight(s roleStyle) float64 {
	return s.sizePt * ptToMm * lineSpacing
}

// writeLines writes pre-wrapped lines starting at (x, pc.y) inside a box of
// the given width, advancing the flow cursor. Alignment is per the style.
func (pc *pageCtx) writeLines(lines []string, x, width float64, s roleStyle, align string) {
	lh := pc.lineHeight(s)
	for _, line := range lines {
		if pc.y+lh > pc.heightMm-pc.marginB {
			return
		}
		lx := x
		switch align {
		case "center":
			lx = x + (width-pc.pdf.GetStringWidth(line))/2
		case "right":
			lx = x + width - pc.pdf.GetStringWidth(line)
		}
		pc.pdf.Text(lx, pc.y+lh*0.8, line)
		pc.y += lh
	}
}

// flowBlock renders one text block. Positioned blocks draw inside their
// fractional box without touching the flow cursor; unpositioned blocks
// stack at the cursor across the content width.
func (pc *pageCtx) flowBlock(b domain.TextBlock) {
	s := styleFor(b)
	pc.setFont(s, b.Style.Color)

	if b.Position != nil {
		x, y, w, _ := pc.rect(*b.Position)
		lines := Wrap(b.Content, w, pc.pdf.GetStringWidth)
		savedY := pc.y
		pc.y = y
		pc.writeLines(lines, x, w, s, b.Style.Align)
		pc.y = savedY
		return
	}

	lines := Wrap(b.Content, pc.contentWidth(), pc.pdf.GetStringWidth)
	pc.writeLines(lines, pc.marginL, pc.contentWidth(), s, b.Style.Align)
	pc.y += pc.lineHeight(s) * 0.5
}

// heading draws the page title (and optional subtitle) at the top of the
// content area and advances the cursor past it.
func (pc *pageCtx) heading() {
	if pc.page.Title == "" {
		return
	}
	s := roleStyle{family: "Times", style: "B", sizePt: 20}
	pc.setFont(s, pc.pack.Cover.AccentColor)
	lines := Wrap(pc.page.Title, pc.contentWidth(), pc.pdf.GetStringWidth)
	pc.writeLines(lines, pc.marginL, pc.contentWidth(), s, "left")

	if pc.page.Subtitle != "" {
		sub := roleStyle{family: "Times", style: "I", sizePt: 12}
		pc.setFont(sub, pc.pack.Cover.SubtitleColor)
		lines := Wrap(pc.page.Subtitle, pc.contentWidth(), pc.pdf.GetStringWidth)
		pc.writeLines(lines, pc.marginL, pc.contentWidth(), sub, "left")
	}

	pc.y += 3
	ar, ag, ab := hexColor(pc.pack.Cover.AccentColor)
	pc.pdf.SetDrawColor(ar, ag, ab)
	pc.pdf.SetLineWidth(0.4)
	pc.pdf.Line(pc.marginL, pc.y, pc.marginL+pc.contentWidth(), pc.y)
	pc.y += 6
}

// drawTextPage is the generic routine: heading, then image blocks, then
// text blocks in order. It also backs every kind without a dedicated
// routine.
func drawTextPage(ctx context.Context, r *Renderer, pc *pageCtx) {
	pc.heading()
	for _, img := range pc.page.ImageBlocks {
		r.placeImage(ctx, pc, img)
	}
	for _, b := range pc.page.TextBlocks {
		pc.flowBlock(b)
	}
	for _, t := range pc.page.Tables {
		pc.drawTable(t)
	}
}

func drawCoverFront(ctx context.Context, r *Renderer, pc *pageCtx) {
	cover := pc.pack.Cover

	// Background: vision image if the theme calls for one and the page
	// carries it, otherwise the theme's flat or gradient fill.
	if len(pc.page.ImageBlocks) > 0 {
		r.placeImage(ctx, pc, pc.page.ImageBlocks[0])
		if cover.Overlay {
			// Solid scrim; fpdf has no alpha-free gradient overlay, a
			// tinted band behind the title keeps it readable.
			br, bg, bb := hexColor(firstColor(cover.Background))
			pc.pdf.SetFillColor(br, bg, bb)
			pc.pdf.Rect(0, pc.heightMm*0.30, pc.widthMm, pc.heightMm*0.26, "F")
		}
	} else {
		br, bg, bb := hexColor(firstColor(cover.Background))
		pc.pdf.SetFillColor(br, bg, bb)
		pc.pdf.Rect(0, 0, pc.widthMm, pc.heightMm, "F")
		if len(cover.Background) > 1 {
			gr, gg, gb := hexColor(cover.Background[1])
			pc.pdf.SetFillColor(gr, gg, gb)
			pc.pdf.Rect(0, pc.heightMm/2, pc.widthMm, pc.heightMm/2, "F")
		}
	}

	title := roleStyle{family: coreFont(cover.TitleFont), style: "B", sizePt: 30}
	pc.setFont(title, cover.TitleColor)
	pc.y = pc.heightMm * 0.34
	lines := Wrap(pc.page.Title, pc.contentWidth(), pc.pdf.GetStringWidth)
	pc.writeLines(lines, pc.marginL, pc.contentWidth(), title, "center")

	if pc.page.Subtitle != "" {
		sub := roleStyle{family: coreFont(cover.BodyFont), style: "I", sizePt: 14}
		pc.setFont(sub, cover.SubtitleColor)
		pc.y += 4
		lines := Wrap(pc.page.Subtitle, pc.contentWidth(), pc.pdf.GetStringWidth)
		pc.writeLines(lines, pc.marginL, pc.contentWidth(), sub, "center")
	}
}

func drawCoverBack(_ context.Context, _ *Renderer, pc *pageCtx) {
	br, bg, bb := hexColor(firstColor(pc.pack.Cover.Background))
	pc.pdf.SetFillColor(br, bg, bb)
	pc.pdf.Rect(0, 0, pc.widthMm, pc.heightMm, "F")

	ar, ag, ab := hexColor(pc.pack.Cover.AccentColor)
	pc.pdf.SetDrawColor(ar, ag, ab)
	pc.pdf.SetLineWidth(0.6)
	mid := pc.heightMm / 2
	pc.pdf.Line(pc.widthMm*0.35, mid, pc.widthMm*0.65, mid)
}

func drawTitlePage(ctx context.Context, r *Renderer, pc *pageCtx) {
	title := roleStyle{family: coreFont(pc.pack.Cover.TitleFont), style: "B", sizePt: 24}
	pc.setFont(title, pc.pack.Cover.TitleColor)
	pc.y = pc.heightMm * 0.28
	lines := Wrap(pc.page.Title, pc.contentWidth(), pc.pdf.GetStringWidth)
	pc.writeLines(lines, pc.marginL, pc.contentWidth(), title, "center")

	if pc.page.Subtitle != "" {
		sub := roleStyle{family: "Times", style: "I", sizePt: 13}
		pc.setFont(sub, pc.pack.Cover.SubtitleColor)
		pc.y += 3
		lines := Wrap(pc.page.Subtitle, pc.contentWidth(), pc.pdf.GetStringWidth)
		pc.writeLines(lines, pc.marginL, pc.contentWidth(), sub, "center")
	}

	pc.y = pc.heightMm * 0.62
	for _, b := range pc.page.TextBlocks {
		pc.flowBlock(b)
	}
}

func drawVisionSpread(ctx context.Context, r *Renderer, pc *pageCtx) {
	for _, img := range pc.page.ImageBlocks {
		r.placeImage(ctx, pc, img)
	}
	data := pc.page.VisionSpread
	if data == nil {
		return
	}

	pc.y = pc.heightMm * 0.74
	if data.Caption != "" {
		s := roleStyles[domain.RoleCaption]
		pc.setFont(s, pc.pack.Cover.SubtitleColor)
		lines := Wrap(data.Caption, pc.contentWidth()*0.8, pc.pdf.GetStringWidth)
		pc.writeLines(lines, pc.marginL+pc.contentWidth()*0.1, pc.contentWidth()*0.8, s, "center")
	}
	if data.Affirmation != "" && data.Affirmation != data.Caption {
		pc.y += 2
		s := roleStyles[domain.RoleQuote]
		pc.setFont(s, pc.pack.Cover.AccentColor)
		lines := Wrap(data.Affirmation, pc.contentWidth()*0.8, pc.pdf.GetStringWidth)
		pc.writeLines(lines, pc.marginL+pc.contentWidth()*0.1, pc.contentWidth()*0.8, s, "center")
	}
}

func drawTablePage(ctx context.Context, r *Renderer, pc *pageCtx) {
	pc.heading()
	for _, b := range pc.page.TextBlocks {
		pc.flowBlock(b)
	}
	for _, t := range pc.page.Tables {
		pc.drawTable(t)
	}
}

func (pc *pageCtx) drawTable(t domain.TableBlock) {
	if len(t.Headers) == 0 {
		return
	}
	colW := pc.contentWidth() / float64(len(t.Headers))
	rowH := 9.0

	head := roleStyles[domain.RoleLabel]
	pc.setFont(head, pc.pack.Cover.AccentColor)
	pc.pdf.SetDrawColor(150, 150, 150)
	pc.pdf.SetLineWidth(0.2)

	x := pc.marginL
	for _, h := range t.Headers {
		pc.pdf.Rect(x, pc.y, colW, rowH, "D")
		pc.pdf.Text(x+2, pc.y+rowH*0.65, h)
		x += colW
	}
	pc.y += rowH

	body := roleStyles[domain.RoleBody]
	pc.setFont(body, "")
	for _, row := range t.Rows {
		if pc.y+rowH > pc.heightMm-pc.marginB {
			return
		}
		x = pc.marginL
		for c := 0; c < len(t.Headers); c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			pc.pdf.Rect(x, pc.y, colW, rowH, "D")
			pc.pdf.Text(x+2, pc.y+rowH*0.65, truncateToWidth(cell, colW-4, pc.pdf.GetStringWidth))
			x += colW
		}
		pc.y += rowH
	}
	pc.y += 4
}

func drawRoadmap(ctx context.Context, r *Renderer, pc *pageCtx) {
	pc.heading()
	data := pc.page.Roadmap
	if data == nil {
		return
	}

	label := roleStyles[domain.RoleLabel]
	body := roleStyles[domain.RoleBody]
	for _, m := range data.Milestones {
		pc.setFont(label, pc.pack.Cover.AccentColor)
		pc.writeLines([]string{m.Label}, pc.marginL, pc.contentWidth(), label, "left")

		pc.setFont(body, "")
		for _, g := range m.Goals {
			pc.writeLines([]string{"• " + g}, pc.marginL+4, pc.contentWidth()-4, body, "left")
		}
		pc.y += 4
	}
}

func drawMonthlyCalendar(ctx context.Context, r *Renderer, pc *pageCtx) {
	pc.heading()
	data := pc.page.Calendar
	if data == nil {
		return
	}

	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	colW := pc.contentWidth() / 7

	head := roleStyle{family: "Helvetica", style: "B", sizePt: 9}
	pc.setFont(head, pc.pack.Cover.AccentColor)
	for i, d := range days {
		pc.pdf.Text(pc.marginL+float64(i)*colW+2, pc.y+4, d)
	}
	pc.y += 7

	rowH := (pc.heightMm - pc.marginB - pc.y) / float64(len(data.Weeks))
	num := roleStyle{family: "Helvetica", style: "", sizePt: 9}
	pc.setFont(num, "")
	pc.pdf.SetDrawColor(170, 170, 170)
	pc.pdf.SetLineWidth(0.2)

	for _, week := range data.Weeks {
		for col, day := range week {
			x := pc.marginL + float64(col)*colW
			pc.pdf.Rect(x, pc.y, colW, rowH, "D")
			if day != 0 {
				pc.pdf.Text(x+2, pc.y+4.5, fmt.Sprintf("%d", day))
			}
		}
		pc.y += rowH
	}
}

func drawWeeklyPlanner(ctx context.Context, r *Renderer, pc *pageCtx) {
	pc.heading()
	data := pc.page.Weekly
	if data == nil {
		return
	}

	if data.FocusPrompt != "" {
		s := roleStyles[domain.RoleQuote]
		pc.setFont(s, pc.pack.Cover.AccentColor)
		lines := Wrap(data.FocusPrompt, pc.contentWidth(), pc.pdf.GetStringWidth)
		pc.writeLines(lines, pc.marginL, pc.contentWidth(), s, "left")
		pc.y += 3
	}

	rowH := (pc.heightMm - pc.marginB - pc.y) / float64(len(data.Days))
	label := roleStyles[domain.RoleLabel]
	pc.pdf.SetDrawColor(170, 170, 170)
	pc.pdf.SetLineWidth(0.2)
	for _, day := range data.Days {
		pc.pdf.Rect(pc.marginL, pc.y, pc.contentWidth(), rowH, "D")
		pc.setFont(label, "")
		pc.pdf.Text(pc.marginL+2, pc.y+5, day)
		pc.y += rowH
	}
}

func drawHabitTracker(ctx context.Context, r *Renderer, pc *pageCtx) {
	pc.heading()
	data := pc.page.HabitTracker
	if data == nil || len(data.Habits) == 0 {
		return
	}

	days := data.GridDays
	if days <= 0 {
		days = 31
	}
	nameW := pc.contentWidth() * 0.3
	cellW := (pc.contentWidth() - nameW) / float64(days)
	rowH := 8.0

	label := roleStyles[domain.RoleLabel]
	caption := roleStyles[domain.RoleCaption]
	pc.pdf.SetDrawColor(170, 170, 170)
	pc.pdf.SetLineWidth(0.2)

	for _, h := range data.Habits {
		pc.setFont(label, "")
		pc.pdf.Text(pc.marginL, pc.y+rowH*0.6, truncateToWidth(h.Name, nameW-2, pc.pdf.GetStringWidth))
		for d := 0; d < days; d++ {
			pc.pdf.Rect(pc.marginL+nameW+float64(d)*cellW, pc.y, cellW, rowH, "D")
		}
		pc.y += rowH
		if h.Description != "" {
			pc.setFont(caption, "")
			pc.writeLines(Wrap(h.Description, nameW, pc.pdf.GetStringWidth), pc.marginL, nameW, caption, "left")
		}
		pc.y += 3
	}
}

func drawMoodTracker(ctx context.Context, r *Renderer, pc *pageCtx) {
	pc.heading()

	// A month of circles, one per day.
	cols, rows := 7, 5
	cellW := pc.contentWidth() / float64(cols)
	cellH := (pc.heightMm - pc.marginB - pc.y) / float64(rows)
	radius := minFloat(cellW, cellH) * 0.28

	num := roleStyle{family: "Helvetica", style: "", sizePt: 8}
	pc.setFont(num, "")
	pc.pdf.SetDrawColor(170, 170, 170)
	pc.pdf.SetLineWidth(0.2)

	day := 1
	for row := 0; row < rows && day <= 31; row++ {
		for col := 0; col < cols && day <= 31; col++ {
			cx := pc.marginL + float64(col)*cellW + cellW/2
			cy := pc.y + float64(row)*cellH + cellH/2
			pc.pdf.Circle(cx, cy, radius, "D")
			pc.pdf.Text(cx-1.5, cy-radius-1.5, fmt.Sprintf("%d", day))
			day++
		}
	}
}

func drawBudget(ctx context.Context, r *Renderer, pc *pageCtx) {
	pc.heading()
	data := pc.page.Budget
	if data == nil {
		return
	}

	if data.TargetAmount > 0 {
		s := roleStyle{family: "Helvetica", style: "B", sizePt: 16}
		pc.setFont(s, pc.pack.Cover.AccentColor)
		target := fmt.Sprintf("Target: %s %.2f", data.Currency, data.TargetAmount)
		pc.writeLines([]string{target}, pc.marginL, pc.contentWidth(), s, "left")
		pc.y += 4
	}

	if len(data.Lines) > 0 {
		body := roleStyles[domain.RoleBody]
		pc.setFont(body, "")
		for _, line := range data.Lines {
			text := line.Label
			if line.Note != "" {
				text += " — " + line.Note
			}
			pc.writeLines(Wrap("• "+text, pc.contentWidth(), pc.pdf.GetStringWidth), pc.marginL, pc.contentWidth(), body, "left")
		}
		pc.y += 4
	}

	// Planned/actual grid for the user to fill in by hand.
	pc.drawTable(domain.TableBlock{
		Kind:    "budget",
		Headers: []string{"Category", "Planned", "Actual", "Diff"},
		Rows:    make([][]string, 10),
	})
}

func drawSavings(ctx context.Context, r *Renderer, pc *pageCtx) {
	pc.heading()
	data := pc.page.Budget
	if data == nil {
		return
	}

	if data.TargetAmount > 0 {
		s := roleStyle{family: "Helvetica", style: "B", sizePt: 16}
		pc.setFont(s, pc.pack.Cover.AccentColor)
		pc.writeLines([]string{fmt.Sprintf("Goal: %s %.2f", data.Currency, data.TargetAmount)},
			pc.marginL, pc.contentWidth(), s, "left")
		pc.y += 6
	}

	// Milestone boxes at 10% increments, to be colored in as savings grow.
	cols := 5
	cellW := pc.contentWidth() / float64(cols)
	cellH := 16.0
	caption := roleStyles[domain.RoleCaption]
	pc.pdf.SetDrawColor(170, 170, 170)
	pc.pdf.SetLineWidth(0.3)
	for i := 0; i < 10; i++ {
		col := i % cols
		x := pc.marginL + float64(col)*cellW
		pc.pdf.Rect(x+1, pc.y, cellW-2, cellH, "D")
		pc.setFont(caption, "")
		pc.pdf.Text(x+3, pc.y+cellH-2, fmt.Sprintf("%d%%", (i+1)*10))
		if col == cols-1 {
			pc.y += cellH + 3
		}
	}
}

func drawNotes(ctx context.Context, r *Renderer, pc *pageCtx) {
	pc.heading()
	pc.pdf.SetDrawColor(190, 190, 190)
	pc.pdf.SetLineWidth(0.2)
	for y := pc.y + 8; y < pc.heightMm-pc.marginB; y += 9 {
		pc.pdf.Line(pc.marginL, y, pc.marginL+pc.contentWidth(), y)
	}
}

func drawBlank(_ context.Context, _ *Renderer, _ *pageCtx) {}

func firstColor(colors []string) string {
	if len(colors) == 0 {
		return "#fafafa"
	}
	return colors[0]
}

// truncateToWidth trims text with an ellipsis so it fits in the given
// width.
func truncateToWidth(s string, maxWidth float64, measure func(string) float64) string {
	if measure(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + "…"
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return "…"
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
