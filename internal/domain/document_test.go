package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	layout := LayoutMeta{
		Trim:         TrimTrade6x9,
		WidthPx:      1800,
		HeightPx:     2700,
		SafeMarginPx: 118,
		Binding:      BindingSoftcover,
		DPI:          300,
	}

	doc := &Document{
		ID:        "doc-1",
		Edition:   EditionExecutive,
		Trim:      TrimTrade6x9,
		Binding:   BindingSoftcover,
		ThemeID:   "midnight-garden",
		Title:     "2027 Vision Workbook",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Pages: []*Page{
			{
				ID: "p-cover", Kind: PageCoverFront, PageNumber: 1, Layout: layout,
				Title: "2027 Vision Workbook",
				ImageBlocks: []ImageBlock{{
					ID: "img-1", SourceType: SourceGenerated,
					URL:    "https://assets.test/cover.png",
					Layout: LayoutFullBleed,
					Position: Position{X: 0, Y: 0, W: 1, H: 1},
				}},
			},
			{
				ID: "p-habits", Kind: PageHabitTracker, PageNumber: 2, Layout: layout,
				Title: "Habit Tracker",
				HabitTracker: &HabitTrackerData{
					GridDays: 31,
					Habits:   []Habit{{Name: "Read"}, {Name: "Stretch", Description: "10 minutes"}},
				},
				TextBlocks: []TextBlock{{
					ID: "t-1", Role: RoleBody, Content: "Mark each day you follow through.",
					AIGenerated: true, Editable: true,
				}},
			},
		},
	}

	data, err := doc.Marshal()
	require.NoError(t, err)

	parsed, err := UnmarshalDocument(data)
	require.NoError(t, err)

	assert.Equal(t, doc.ID, parsed.ID)
	assert.Equal(t, doc.Edition, parsed.Edition)
	require.Len(t, parsed.Pages, 2)
	assert.Equal(t, doc.Pages[0].Kind, parsed.Pages[0].Kind)
	assert.Equal(t, doc.Pages[0].ImageBlocks, parsed.Pages[0].ImageBlocks)
	assert.Equal(t, doc.Pages[1].HabitTracker, parsed.Pages[1].HabitTracker)
	assert.Equal(t, doc.Pages[1].TextBlocks, parsed.Pages[1].TextBlocks)
	assert.Equal(t, doc.Pages[1].Layout, parsed.Pages[1].Layout)
}

func TestUnmarshalDocument_RejectsMalformedPage(t *testing.T) {
	raw := []byte(`{"id":"doc-x","edition":"STARTER","trim":"A5","binding":"spiral",
		"themeId":"t","title":"T","createdAt":"2026-08-01T00:00:00Z",
		"pages":[{"id":"p1","kind":"HABIT_TRACKER","pageNumber":1}]}`)

	_, err := UnmarshalDocument(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "habitTracker")
}

func TestDocumentRenumber(t *testing.T) {
	doc := &Document{Pages: []*Page{
		{ID: "a", Kind: PageCoverFront},
		{ID: "b", Kind: PageNotes},
		{ID: "c", Kind: PageBlankPadding},
	}}
	doc.Renumber()

	for i, p := range doc.Pages {
		assert.Equal(t, i+1, p.PageNumber)
	}
}
