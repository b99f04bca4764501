package sequence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/genai"
	"github.com/visioncraft/workbook/internal/theme"
)

// scriptedGen returns canned results per content kind, optionally
// simulating total provider failure.
type scriptedGen struct {
	failAll bool
}

func (s *scriptedGen) Generate(ctx context.Context, cctx genai.ContentContext, pack theme.Pack, kind genai.ContentKind) *genai.Result {
	if s.failAll {
		return &genai.Result{
			Kind:     kind,
			Provider: genai.RouteKind(kind),
			Outcome:  genai.OutcomeFallback,
			Content:  genai.FallbackContent(kind, pack, cctx),
		}
	}

	content := genai.GeneratedContent{}
	switch kind {
	case genai.KindForeword:
		content.Foreword = "Welcome to your year, " + cctx.UserName + "."
	case genai.KindCoachLetter:
		content.CoachLetter = "Dear " + cctx.UserName + ", begin."
	case genai.KindReflectionPrompts:
		content.ReflectionPrompts = []string{"What changed?", "What stayed?", "What next?"}
	case genai.KindGoalAffirmations:
		prompts := make([]string, len(cctx.Goals))
		for i, g := range cctx.Goals {
			prompts[i] = "I am moving toward " + g + "."
		}
		content.ThemePrompts = map[string][]string{"goals": prompts}
	case genai.KindVisionCaptions:
		content.ThemePrompts = map[string][]string{"vision": {"This is the life you are building."}}
	case genai.KindBudgetNotes:
		content.ThemePrompts = map[string][]string{"budget": {"Plan the month before it starts."}}
	}
	return &genai.Result{
		Kind:     kind,
		Provider: genai.RouteKind(kind),
		Outcome:  genai.OutcomeParsed,
		Content:  content,
	}
}

func executiveOptions() BuildOptions {
	return BuildOptions{
		Edition:         domain.EditionExecutive,
		Trim:            domain.TrimTrade6x9,
		Binding:         domain.BindingSoftcover,
		Title:           "2027 Vision Workbook",
		Subtitle:        "A year of deliberate progress",
		CoverThemeID:    "midnight-garden",
		IncludeForeword: true,
		UserName:        "Maya",
		Goals:           []string{"run a marathon", "learn Spanish"},
		Habits: []domain.Habit{
			{Name: "Morning run"},
			{Name: "Flashcards", Description: "15 minutes of vocabulary"},
		},
		VisionImages: []VisionImage{
			{URL: "https://assets.test/vision-1.png"},
			{URL: "https://assets.test/vision-2.png", Caption: "The finish line"},
		},
	}
}

func countKind(doc *domain.Document, kind domain.PageKind) int {
	n := 0
	for _, p := range doc.Pages {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func pagesOfKind(doc *domain.Document, kind domain.PageKind) []*domain.Page {
	var out []*domain.Page
	for _, p := range doc.Pages {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

func TestBuild_ExecutiveEndToEnd(t *testing.T) {
	b := NewBuilder(&scriptedGen{}, theme.DefaultRegistry())
	b.Now = func() time.Time { return time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC) }

	result, err := b.Build(context.Background(), executiveOptions())
	require.NoError(t, err)
	doc := result.Document

	assert.Equal(t, 1, countKind(doc, domain.PageCoverFront))
	assert.Equal(t, 1, countKind(doc, domain.PageTitle))
	assert.Equal(t, 1, countKind(doc, domain.PageDedication))
	assert.Equal(t, 2, countKind(doc, domain.PageVisionSpread))
	assert.Equal(t, 1, countKind(doc, domain.PageGoalOverview))
	assert.Equal(t, 1, countKind(doc, domain.PageHabitTracker))
	assert.Equal(t, 12, countKind(doc, domain.PageMonthlyCalendar))

	// Vision spreads carry the image URLs in selection order.
	spreads := pagesOfKind(doc, domain.PageVisionSpread)
	assert.Equal(t, "https://assets.test/vision-1.png", spreads[0].VisionSpread.ImageURL)
	assert.Equal(t, "https://assets.test/vision-2.png", spreads[1].VisionSpread.ImageURL)
	assert.Equal(t, "The finish line", spreads[1].VisionSpread.Caption)

	// The habit tracker payload lists every supplied habit.
	tracker := pagesOfKind(doc, domain.PageHabitTracker)[0]
	require.NotNil(t, tracker.HabitTracker)
	require.Len(t, tracker.HabitTracker.Habits, 2)
	assert.Equal(t, "Morning run", tracker.HabitTracker.Habits[0].Name)
	assert.Equal(t, "Flashcards", tracker.HabitTracker.Habits[1].Name)

	// Page numbers are 1-based with no gaps.
	for i, p := range doc.Pages {
		assert.Equal(t, i+1, p.PageNumber)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, domain.TrimTrade6x9, p.Layout.Trim)
	}

	require.NoError(t, doc.Validate())
	assert.Zero(t, result.FallbackCount)
}

func TestBuild_VisionSpreadsCappedAtFour(t *testing.T) {
	opts := executiveOptions()
	opts.VisionImages = nil
	for i := 0; i < 7; i++ {
		opts.VisionImages = append(opts.VisionImages, VisionImage{
			URL: fmt.Sprintf("https://assets.test/vision-%d.png", i+1),
		})
	}

	b := NewBuilder(&scriptedGen{}, theme.DefaultRegistry())
	result, err := b.Build(context.Background(), opts)
	require.NoError(t, err)

	spreads := pagesOfKind(result.Document, domain.PageVisionSpread)
	require.Len(t, spreads, MaxVisionSpreads)
	for i, p := range spreads {
		assert.Equal(t, fmt.Sprintf("https://assets.test/vision-%d.png", i+1), p.VisionSpread.ImageURL)
	}
}

func TestBuild_NoHabitsMeansNoTrackerPage(t *testing.T) {
	opts := executiveOptions()
	opts.Habits = nil

	b := NewBuilder(&scriptedGen{}, theme.DefaultRegistry())
	result, err := b.Build(context.Background(), opts)
	require.NoError(t, err)

	assert.Zero(t, countKind(result.Document, domain.PageHabitTracker))
}

func TestBuild_NoForewordMeansNoDedication(t *testing.T) {
	opts := executiveOptions()
	opts.IncludeForeword = false

	b := NewBuilder(&scriptedGen{}, theme.DefaultRegistry())
	result, err := b.Build(context.Background(), opts)
	require.NoError(t, err)

	assert.Zero(t, countKind(result.Document, domain.PageDedication))
}

func TestBuild_VisionBoardCoverAttachesFirstImage(t *testing.T) {
	opts := executiveOptions()
	opts.CoverThemeID = "vision-canvas"

	b := NewBuilder(&scriptedGen{}, theme.DefaultRegistry())
	result, err := b.Build(context.Background(), opts)
	require.NoError(t, err)

	cover := pagesOfKind(result.Document, domain.PageCoverFront)[0]
	require.Len(t, cover.ImageBlocks, 1)
	assert.Equal(t, "https://assets.test/vision-1.png", cover.ImageBlocks[0].URL)
	assert.Equal(t, domain.LayoutFullBleed, cover.ImageBlocks[0].Layout)
}

func TestBuild_FlatCoverHasNoImage(t *testing.T) {
	b := NewBuilder(&scriptedGen{}, theme.DefaultRegistry())
	result, err := b.Build(context.Background(), executiveOptions())
	require.NoError(t, err)

	cover := pagesOfKind(result.Document, domain.PageCoverFront)[0]
	assert.Empty(t, cover.ImageBlocks)
}

func TestBuild_GenerationFailureDropsNoPages(t *testing.T) {
	okBuilder := NewBuilder(&scriptedGen{}, theme.DefaultRegistry())
	okBuilder.Now = func() time.Time { return time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC) }
	failBuilder := NewBuilder(&scriptedGen{failAll: true}, theme.DefaultRegistry())
	failBuilder.Now = okBuilder.Now

	okResult, err := okBuilder.Build(context.Background(), executiveOptions())
	require.NoError(t, err)
	failResult, err := failBuilder.Build(context.Background(), executiveOptions())
	require.NoError(t, err)

	assert.Equal(t, okResult.Document.PageCount(), failResult.Document.PageCount())
	assert.Positive(t, failResult.FallbackCount)

	// Fallback content is still real text on the dedication page.
	dedication := pagesOfKind(failResult.Document, domain.PageDedication)[0]
	require.NotEmpty(t, dedication.TextBlocks)
	assert.NotEmpty(t, dedication.TextBlocks[0].Content)
	assert.False(t, dedication.TextBlocks[0].AIGenerated)
}

func TestBuild_BudgetPagesOnlyWithTarget(t *testing.T) {
	b := NewBuilder(&scriptedGen{}, theme.DefaultRegistry())

	noTarget, err := b.Build(context.Background(), executiveOptions())
	require.NoError(t, err)
	assert.Zero(t, countKind(noTarget.Document, domain.PageBudgetOverview))

	opts := executiveOptions()
	opts.FinancialTarget = "$12,000"
	withTarget, err := b.Build(context.Background(), opts)
	require.NoError(t, err)

	budgets := pagesOfKind(withTarget.Document, domain.PageBudgetOverview)
	require.Len(t, budgets, 1)
	assert.InDelta(t, 12000, budgets[0].Budget.TargetAmount, 0.01)
	assert.NotEmpty(t, budgets[0].Budget.Lines)
}

func TestBuild_SerializedRoundTripPreservesOrdering(t *testing.T) {
	b := NewBuilder(&scriptedGen{}, theme.DefaultRegistry())
	b.Now = func() time.Time { return time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC) }

	result, err := b.Build(context.Background(), executiveOptions())
	require.NoError(t, err)
	doc := result.Document

	data, err := doc.Marshal()
	require.NoError(t, err)
	parsed, err := domain.UnmarshalDocument(data)
	require.NoError(t, err)

	require.Equal(t, doc.PageCount(), parsed.PageCount())
	for i := range doc.Pages {
		assert.Equal(t, doc.Pages[i].Kind, parsed.Pages[i].Kind)
		assert.Equal(t, doc.Pages[i].PageNumber, parsed.Pages[i].PageNumber)
		assert.Equal(t, doc.Pages[i].TextBlocks, parsed.Pages[i].TextBlocks)
		assert.Equal(t, doc.Pages[i].Layout, parsed.Pages[i].Layout)
	}
}

func TestBuild_InvalidOptions(t *testing.T) {
	b := NewBuilder(&scriptedGen{}, theme.DefaultRegistry())

	_, err := b.Build(context.Background(), BuildOptions{})
	assert.Error(t, err)

	opts := executiveOptions()
	opts.CoverThemeID = "does-not-exist"
	_, err = b.Build(context.Background(), opts)
	assert.Error(t, err)

	opts = executiveOptions()
	opts.Edition = domain.Edition("PLATINUM")
	_, err = b.Build(context.Background(), opts)
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	assert.InDelta(t, 12000, parseAmount("$12,000"), 0.01)
	assert.InDelta(t, 500.50, parseAmount("500.50 EUR"), 0.01)
	assert.Zero(t, parseAmount("a comfortable cushion"))
}
