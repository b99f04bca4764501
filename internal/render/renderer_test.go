package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/layout"
	"github.com/visioncraft/workbook/internal/theme"
)

type stubFetcher struct {
	data []byte
	err  error
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	return s.data, s.err
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func renderFixture(t *testing.T, binding domain.BindingType, pages ...*domain.Page) *domain.Document {
	t.Helper()
	meta, err := layout.Resolve(domain.TrimTrade6x9, binding)
	require.NoError(t, err)

	doc := &domain.Document{
		ID:        "doc-1",
		Edition:   domain.EditionStarter,
		Trim:      domain.TrimTrade6x9,
		Binding:   binding,
		ThemeID:   "midnight-garden",
		Title:     "Test Workbook",
		CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, p := range pages {
		p.ID = "page"
		p.PageNumber = i + 1
		p.Layout = meta
		doc.Pages = append(doc.Pages, p)
	}
	return doc
}

func allKindsPages() []*domain.Page {
	return []*domain.Page{
		{Kind: domain.PageCoverFront, Title: "Test Workbook", Subtitle: "A year of progress"},
		{Kind: domain.PageTitle, Title: "Test Workbook"},
		{Kind: domain.PageDedication, Title: "Dedication", TextBlocks: []domain.TextBlock{
			{ID: "t1", Role: domain.RoleBody, Content: "For everyone who starts."},
		}},
		{Kind: domain.PageVisionSpread, VisionSpread: &domain.VisionSpreadData{
			ImageURL: "https://assets.test/v.png", Caption: "The view ahead",
		}, ImageBlocks: []domain.ImageBlock{{
			ID: "img-1", SourceType: domain.SourceGenerated, URL: "https://assets.test/v.png",
			Layout: domain.LayoutContain, Position: domain.Position{X: 0.1, Y: 0.1, W: 0.8, H: 0.6},
		}}},
		{Kind: domain.PageGoalOverview, Title: "Your Goals", Tables: []domain.TableBlock{{
			Kind: "goals", Headers: []string{"Goal", "Affirmation"},
			Rows: [][]string{{"run a marathon", "I am building endurance."}},
		}}},
		{Kind: domain.PageRoadmap, Title: "Roadmap", Roadmap: &domain.RoadmapData{
			Milestones: []domain.RoadmapMilestone{{Label: "Q1 2027", Goals: []string{"base mileage"}}},
		}},
		{Kind: domain.PageMonthlyCalendar, Title: "August 2026", Calendar: &domain.MonthlyCalendarData{
			Year: 2026, Month: time.August,
			Weeks: [][7]int{{0, 0, 0, 0, 0, 1, 2}, {3, 4, 5, 6, 7, 8, 9}},
		}},
		{Kind: domain.PageWeeklyPlanner, Title: "Week 1", Weekly: &domain.WeeklyPlannerData{
			Label: "Week 1", Days: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		}},
		{Kind: domain.PageHabitTracker, Title: "Habit Tracker", HabitTracker: &domain.HabitTrackerData{
			Habits: []domain.Habit{{Name: "Morning run"}}, GridDays: 31,
		}},
		{Kind: domain.PageMoodTracker, Title: "Mood Tracker"},
		{Kind: domain.PageBudgetOverview, Title: "Budget", Budget: &domain.BudgetData{
			TargetAmount: 12000, Currency: "USD",
			Lines: []domain.BudgetLine{{Label: "Plan the month before it starts."}},
		}},
		{Kind: domain.PageSavingsTracker, Title: "Savings", Budget: &domain.BudgetData{
			TargetAmount: 12000, Currency: "USD",
		}},
		{Kind: domain.PageQuote, TextBlocks: []domain.TextBlock{
			{ID: "q1", Role: domain.RoleQuote, Content: "Small steps.", Style: domain.TextStyle{Align: "center"}},
		}},
		{Kind: domain.PageNotes, Title: "Notes"},
		{Kind: domain.PageReflection, Title: "Reflection"},
		{Kind: domain.PageCoverBack},
	}
}

func TestRender_EveryPageKind(t *testing.T) {
	fetcher := &stubFetcher{data: pngBytes(t, 1800, 1350)}
	r := NewRenderer(fetcher, theme.DefaultRegistry())
	doc := renderFixture(t, domain.BindingSoftcover, allKindsPages()...)

	artifact, err := r.Render(context.Background(), doc)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(artifact.PDF, []byte("%PDF")), "output is not a PDF")
	assert.Equal(t, 16, artifact.PageCount)
	assert.False(t, artifact.PaddingAdded)
	assert.Equal(t, domain.TrimTrade6x9, artifact.Trim)
	assert.InDelta(t, 152.4, artifact.WidthMm, 0.001)
	assert.InDelta(t, 10, artifact.SafeMarginMm, 0.1)
}

func TestRender_ParitySelfCheck(t *testing.T) {
	r := NewRenderer(nil, theme.DefaultRegistry())
	doc := renderFixture(t, domain.BindingSoftcover,
		&domain.Page{Kind: domain.PageTitle, Title: "Odd"},
		&domain.Page{Kind: domain.PageNotes, Title: "Notes"},
		&domain.Page{Kind: domain.PageNotes, Title: "Notes"},
	)

	artifact, err := r.Render(context.Background(), doc)
	require.NoError(t, err)

	assert.True(t, artifact.PaddingAdded)
	assert.Equal(t, 4, artifact.PageCount)
}

func TestRender_FailedFetchRendersPlaceholder(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	r := NewRenderer(fetcher, theme.DefaultRegistry())
	doc := renderFixture(t, domain.BindingSoftcover,
		&domain.Page{
			Kind: domain.PageVisionSpread,
			VisionSpread: &domain.VisionSpreadData{ImageURL: "https://assets.test/gone.png"},
			ImageBlocks: []domain.ImageBlock{{
				ID: "img-1", URL: "https://assets.test/gone.png",
				Layout: domain.LayoutContain, Position: domain.Position{X: 0.1, Y: 0.1, W: 0.8, H: 0.6},
			}},
		},
		&domain.Page{Kind: domain.PageNotes, Title: "Notes"},
	)

	artifact, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, 2, artifact.PageCount)
}

func TestRender_UndecodableImageRendersPlaceholder(t *testing.T) {
	fetcher := &stubFetcher{data: []byte("<html>not found</html>")}
	r := NewRenderer(fetcher, theme.DefaultRegistry())
	doc := renderFixture(t, domain.BindingSoftcover,
		&domain.Page{
			Kind: domain.PageVisionSpread,
			VisionSpread: &domain.VisionSpreadData{ImageURL: "https://assets.test/bad"},
			ImageBlocks: []domain.ImageBlock{{
				ID: "img-1", URL: "https://assets.test/bad",
				Layout: domain.LayoutCover, Position: domain.Position{X: 0, Y: 0, W: 1, H: 0.7},
			}},
		},
		&domain.Page{Kind: domain.PageNotes, Title: "Notes"},
	)

	artifact, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(artifact.PDF, []byte("%PDF")))
}

func TestRender_EmptyDocument(t *testing.T) {
	r := NewRenderer(nil, theme.DefaultRegistry())

	_, err := r.Render(context.Background(), nil)
	assert.Error(t, err)

	_, err = r.Render(context.Background(), &domain.Document{Trim: domain.TrimTrade6x9})
	assert.Error(t, err)
}

func TestApplyMargins_SpiralGutterAlternates(t *testing.T) {
	meta, err := layout.Resolve(domain.TrimTrade6x9, domain.BindingSpiral)
	require.NoError(t, err)
	r := NewRenderer(nil, theme.DefaultRegistry())

	odd := &pageCtx{page: &domain.Page{PageNumber: 1, Layout: meta}, widthMm: 152.4, heightMm: 228.6}
	r.applyMargins(odd)
	assert.InDelta(t, 12, odd.marginL, 0.1)
	assert.InDelta(t, 10, odd.marginR, 0.1)

	even := &pageCtx{page: &domain.Page{PageNumber: 2, Layout: meta}, widthMm: 152.4, heightMm: 228.6}
	r.applyMargins(even)
	assert.InDelta(t, 10, even.marginL, 0.1)
	assert.InDelta(t, 12, even.marginR, 0.1)
}

func TestApplyMargins_SoftcoverUniform(t *testing.T) {
	meta, err := layout.Resolve(domain.TrimTrade6x9, domain.BindingSoftcover)
	require.NoError(t, err)
	r := NewRenderer(nil, theme.DefaultRegistry())

	pc := &pageCtx{page: &domain.Page{PageNumber: 1, Layout: meta}, widthMm: 152.4, heightMm: 228.6}
	r.applyMargins(pc)
	assert.Equal(t, pc.marginL, pc.marginR)
	assert.InDelta(t, 10, pc.marginL, 0.1)
}
