// Package sequence assembles an ordered workbook document from user
// selections: it resolves layout geometry once, generates page content, and
// owns pagination and padding.
package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/genai"
	"github.com/visioncraft/workbook/internal/layout"
	"github.com/visioncraft/workbook/internal/theme"
)

// ContentGenerator produces page content. Satisfied by *genai.Generator.
type ContentGenerator interface {
	Generate(ctx context.Context, cctx genai.ContentContext, pack theme.Pack, kind genai.ContentKind) *genai.Result
}

// BuildResult pairs the assembled document with generation statistics.
// Degradation never drops a page; the counts exist so calling layers can
// surface quality to the user if they choose to.
type BuildResult struct {
	Document      *domain.Document
	FallbackCount int
	DegradedCount int
}

// Builder assembles documents. It is stateless across builds.
type Builder struct {
	gen    ContentGenerator
	themes *theme.Registry

	// Now is replaceable for deterministic calendar tests.
	Now func() time.Time
}

// NewBuilder creates a Builder over the given generator and theme registry.
func NewBuilder(gen ContentGenerator, themes *theme.Registry) *Builder {
	return &Builder{gen: gen, themes: themes, Now: time.Now}
}

// generated collects the results of the concurrent generation pass,
// aggregated by field and index rather than arrival order.
type generated struct {
	foreword     *genai.Result
	coachLetter  *genai.Result
	affirmations *genai.Result
	reflections  *genai.Result
	budget       *genai.Result
	visions      []*genai.Result
}

// Build assembles the full page sequence for the selected edition. Page
// numbers are assigned only after the complete sequence is known.
func (b *Builder) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid build options: %w", err)
	}

	meta, err := layout.Resolve(opts.Trim, opts.Binding)
	if err != nil {
		return nil, err
	}
	pack, err := b.themes.Get(opts.CoverThemeID)
	if err != nil {
		return nil, err
	}
	spec := editionSpecs[opts.Edition]

	habitNames := make([]string, len(opts.Habits))
	for i, h := range opts.Habits {
		habitNames[i] = h.Name
	}
	cctx := genai.ContentContext{
		ThemeID:         opts.CoverThemeID,
		UserName:        opts.UserName,
		FinancialTarget: opts.FinancialTarget,
		Goals:           opts.Goals,
		Habits:          habitNames,
		VisionText:      opts.VisionText,
	}

	images := opts.VisionImages
	if len(images) > MaxVisionSpreads {
		images = images[:MaxVisionSpreads]
	}

	gen := b.generateAll(ctx, cctx, pack, spec, opts, len(images))

	doc := &domain.Document{
		ID:        uuid.New().String(),
		Edition:   opts.Edition,
		Trim:      opts.Trim,
		Binding:   opts.Binding,
		ThemeID:   opts.CoverThemeID,
		Title:     opts.Title,
		Subtitle:  opts.Subtitle,
		CreatedAt: b.Now().UTC(),
	}

	add := func(p *domain.Page) {
		p.ID = uuid.New().String()
		p.Layout = meta
		doc.Pages = append(doc.Pages, p)
	}

	add(b.coverPage(opts, pack, images))
	add(titlePage(opts, pack))

	if opts.IncludeForeword {
		add(textPage(domain.PageDedication, "Dedication", gen.foreword.Blocks()))
	}
	if spec.coachLetter {
		add(textPage(domain.PageCoachLetter, "A Letter From Your Coach", gen.coachLetter.Blocks()))
	}

	// One spread per image, in selection order.
	for i, img := range images {
		add(visionSpreadPage(img, gen.visions[i]))
	}

	add(goalOverviewPage(opts.Goals, gen.affirmations))
	if spec.goalDetails {
		for i, goal := range opts.Goals {
			add(goalDetailPage(i, goal, gen.affirmations))
		}
	}
	if spec.roadmap {
		add(roadmapPage(opts.Goals, b.Now()))
	}

	start := b.Now().UTC()
	for i := 0; i < spec.months; i++ {
		data := monthlyCalendarData(start, i)
		add(&domain.Page{
			Kind:     domain.PageMonthlyCalendar,
			Title:    fmt.Sprintf("%s %d", data.Month, data.Year),
			Calendar: data,
		})
	}

	for i := 0; i < spec.weeklyPages; i++ {
		add(weeklyPlannerPage(i, gen.reflections))
	}

	// Habit tracker only when the user supplied habits; its payload must
	// list every one of them.
	if len(opts.Habits) > 0 {
		add(&domain.Page{
			Kind:  domain.PageHabitTracker,
			Title: "Habit Tracker",
			HabitTracker: &domain.HabitTrackerData{
				Habits:   opts.Habits,
				GridDays: 31,
			},
		})
	}
	if spec.moodTracker {
		add(&domain.Page{Kind: domain.PageMoodTracker, Title: "Mood Tracker"})
	}

	if opts.FinancialTarget != "" {
		add(budgetPage(domain.PageBudgetOverview, "Budget Overview", opts.FinancialTarget, gen.budget))
		if spec.savings {
			add(budgetPage(domain.PageSavingsTracker, "Savings Tracker", opts.FinancialTarget, nil))
		}
	}

	for i := 0; i < spec.reflectionPgs; i++ {
		add(reflectionPage(i, spec.reflectionPgs, gen.reflections))
	}
	if spec.quotePage {
		add(quotePage(gen.affirmations, pack))
	}
	for i := 0; i < spec.notesPages; i++ {
		add(&domain.Page{Kind: domain.PageNotes, Title: "Notes"})
	}
	if spec.backCover {
		add(&domain.Page{Kind: domain.PageCoverBack})
	}

	// Pagination: a single sequential pass once all contents resolved.
	doc.Renumber()

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	result := &BuildResult{Document: doc}
	for _, r := range gen.all() {
		switch r.Outcome {
		case genai.OutcomeFallback:
			result.FallbackCount++
		case genai.OutcomeDegraded:
			result.DegradedCount++
		}
	}
	return result, nil
}

// generateAll fans out the independent generation calls and waits for all
// of them. Results land in fixed fields and index slots, so there is no
// ordering race.
func (b *Builder) generateAll(
	ctx context.Context,
	cctx genai.ContentContext,
	pack theme.Pack,
	spec editionSpec,
	opts BuildOptions,
	visionCount int,
) *generated {
	gen := &generated{visions: make([]*genai.Result, visionCount)}

	var wg sync.WaitGroup
	launch := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	if opts.IncludeForeword {
		launch(func() { gen.foreword = b.gen.Generate(ctx, cctx, pack, genai.KindForeword) })
	}
	if spec.coachLetter {
		launch(func() { gen.coachLetter = b.gen.Generate(ctx, cctx, pack, genai.KindCoachLetter) })
	}
	launch(func() { gen.affirmations = b.gen.Generate(ctx, cctx, pack, genai.KindGoalAffirmations) })
	launch(func() { gen.reflections = b.gen.Generate(ctx, cctx, pack, genai.KindReflectionPrompts) })
	if opts.FinancialTarget != "" {
		launch(func() { gen.budget = b.gen.Generate(ctx, cctx, pack, genai.KindBudgetNotes) })
	}
	for i := 0; i < visionCount; i++ {
		i := i
		launch(func() { gen.visions[i] = b.gen.Generate(ctx, cctx, pack, genai.KindVisionCaptions) })
	}

	wg.Wait()
	return gen
}

func (g *generated) all() []*genai.Result {
	results := []*genai.Result{}
	for _, r := range []*genai.Result{g.foreword, g.coachLetter, g.affirmations, g.reflections, g.budget} {
		if r != nil {
			results = append(results, r)
		}
	}
	for _, r := range g.visions {
		if r != nil {
			results = append(results, r)
		}
	}
	return results
}

func (b *Builder) coverPage(opts BuildOptions, pack theme.Pack, images []VisionImage) *domain.Page {
	page := &domain.Page{
		Kind:     domain.PageCoverFront,
		Title:    opts.Title,
		Subtitle: opts.Subtitle,
	}
	// The vision-board cover variant carries the first selected image as
	// the cover background.
	if pack.Cover.UseVisionImage && len(images) > 0 {
		page.ImageBlocks = append(page.ImageBlocks, domain.ImageBlock{
			ID:         uuid.New().String(),
			SourceType: domain.SourceGenerated,
			URL:        images[0].URL,
			Layout:     domain.LayoutFullBleed,
			Position:   domain.Position{X: 0, Y: 0, W: 1, H: 1},
		})
	}
	return page
}

func titlePage(opts BuildOptions, pack theme.Pack) *domain.Page {
	page := &domain.Page{
		Kind:     domain.PageTitle,
		Title:    opts.Title,
		Subtitle: opts.Subtitle,
	}
	if opts.UserName != "" {
		page.TextBlocks = append(page.TextBlocks, domain.TextBlock{
			ID:      uuid.New().String(),
			Role:    domain.RoleLabel,
			Content: "Prepared for " + opts.UserName,
			Style:   domain.TextStyle{Align: "center"},
		})
	}
	page.TextBlocks = append(page.TextBlocks, domain.TextBlock{
		ID:      uuid.New().String(),
		Role:    domain.RoleCaption,
		Content: pack.Cover.Name + " edition",
		Style:   domain.TextStyle{Align: "center"},
	})
	return page
}

func textPage(kind domain.PageKind, title string, blocks []domain.TextBlock) *domain.Page {
	return &domain.Page{Kind: kind, Title: title, TextBlocks: blocks}
}

func visionSpreadPage(img VisionImage, result *genai.Result) *domain.Page {
	caption := img.Caption
	affirmation := ""
	if prompts := result.Prompts("vision"); len(prompts) > 0 {
		if caption == "" {
			caption = prompts[0]
		}
		affirmation = prompts[0]
	}

	page := &domain.Page{
		Kind: domain.PageVisionSpread,
		VisionSpread: &domain.VisionSpreadData{
			ImageURL:    img.URL,
			Caption:     caption,
			Affirmation: affirmation,
		},
		ImageBlocks: []domain.ImageBlock{{
			ID:         uuid.New().String(),
			SourceType: domain.SourceGenerated,
			URL:        img.URL,
			Layout:     domain.LayoutContain,
			Position:   domain.Position{X: 0.1, Y: 0.08, W: 0.8, H: 0.62},
		}},
	}
	if caption != "" {
		page.TextBlocks = append(page.TextBlocks, domain.TextBlock{
			ID:       uuid.New().String(),
			Role:     domain.RoleCaption,
			Content:  caption,
			Position: &domain.Position{X: 0.1, Y: 0.74, W: 0.8, H: 0.08},
			Style:    domain.TextStyle{Align: "center"},
		})
	}
	return page
}

func goalOverviewPage(goals []string, affirmations *genai.Result) *domain.Page {
	prompts := affirmations.Prompts("goals")
	rows := make([][]string, len(goals))
	for i, g := range goals {
		affirmation := ""
		if i < len(prompts) {
			affirmation = prompts[i]
		}
		rows[i] = []string{g, affirmation}
	}
	return &domain.Page{
		Kind:  domain.PageGoalOverview,
		Title: "Your Goals",
		Tables: []domain.TableBlock{{
			Kind:    "goals",
			Headers: []string{"Goal", "Affirmation"},
			Rows:    rows,
		}},
	}
}

func goalDetailPage(index int, goal string, affirmations *genai.Result) *domain.Page {
	page := &domain.Page{
		Kind:  domain.PageGoalDetail,
		Title: goal,
	}
	if prompts := affirmations.Prompts("goals"); index < len(prompts) {
		page.TextBlocks = append(page.TextBlocks, domain.TextBlock{
			ID:          uuid.New().String(),
			Role:        domain.RoleQuote,
			Content:     prompts[index],
			AIGenerated: affirmations.Outcome == genai.OutcomeParsed,
			Editable:    true,
		})
	}
	return page
}

func roadmapPage(goals []string, now time.Time) *domain.Page {
	quarters := []string{"Q1", "Q2", "Q3", "Q4"}
	milestones := make([]domain.RoadmapMilestone, len(quarters))
	for i, q := range quarters {
		milestones[i] = domain.RoadmapMilestone{Label: fmt.Sprintf("%s %d", q, now.Year()+1)}
	}
	// Round-robin goals across the quarters so every quarter has focus.
	for i, g := range goals {
		q := i % len(quarters)
		milestones[q].Goals = append(milestones[q].Goals, g)
	}
	return &domain.Page{
		Kind:    domain.PageRoadmap,
		Title:   "Roadmap",
		Roadmap: &domain.RoadmapData{Milestones: milestones},
	}
}

func weeklyPlannerPage(index int, reflections *genai.Result) *domain.Page {
	focus := ""
	if prompts := reflections.Content.ReflectionPrompts; len(prompts) > 0 {
		focus = prompts[index%len(prompts)]
	}
	return &domain.Page{
		Kind:  domain.PageWeeklyPlanner,
		Title: fmt.Sprintf("Week %d", index+1),
		Weekly: &domain.WeeklyPlannerData{
			Label:       fmt.Sprintf("Week %d", index+1),
			FocusPrompt: focus,
			Days:        []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		},
	}
}

func budgetPage(kind domain.PageKind, title, target string, notes *genai.Result) *domain.Page {
	data := &domain.BudgetData{
		TargetAmount: parseAmount(target),
		Currency:     "USD",
	}
	if notes != nil {
		for _, note := range notes.Prompts("budget") {
			data.Lines = append(data.Lines, domain.BudgetLine{Label: note})
		}
	}
	return &domain.Page{Kind: kind, Title: title, Budget: data}
}

func reflectionPage(index, total int, reflections *genai.Result) *domain.Page {
	page := &domain.Page{
		Kind:  domain.PageReflection,
		Title: "Reflection",
	}
	prompts := reflections.Content.ReflectionPrompts
	if len(prompts) == 0 {
		// Degraded output: carry the raw blocks on the first page.
		if index == 0 {
			page.TextBlocks = reflections.Blocks()
		}
		return page
	}
	// Spread the prompts evenly across the reflection pages.
	for i, p := range prompts {
		if i%total == index {
			page.TextBlocks = append(page.TextBlocks, domain.TextBlock{
				ID:          uuid.New().String(),
				Role:        domain.RoleLabel,
				Content:     p,
				AIGenerated: reflections.Outcome == genai.OutcomeParsed,
				Editable:    true,
			})
		}
	}
	return page
}

func quotePage(affirmations *genai.Result, pack theme.Pack) *domain.Page {
	quote := "Small steps, taken daily, become the distance."
	if prompts := affirmations.Prompts("goals"); len(prompts) > 0 {
		quote = prompts[0]
	}
	return &domain.Page{
		Kind: domain.PageQuote,
		TextBlocks: []domain.TextBlock{{
			ID:      uuid.New().String(),
			Role:    domain.RoleQuote,
			Content: quote,
			Style:   domain.TextStyle{Align: "center", Color: pack.Cover.AccentColor},
		}},
	}
}

// parseAmount pulls a numeric amount out of a free-form target string such
// as "$12,000". Unparseable targets yield zero; the string form is still
// shown to the user elsewhere.
func parseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return amount
}
