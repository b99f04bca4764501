package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageValidate_PayloadMatchesKind(t *testing.T) {
	tests := []struct {
		name    string
		page    Page
		wantErr bool
	}{
		{
			name: "habit tracker with payload",
			page: Page{Kind: PageHabitTracker, HabitTracker: &HabitTrackerData{
				Habits: []Habit{{Name: "Morning run"}},
			}},
		},
		{
			name:    "habit tracker missing payload",
			page:    Page{Kind: PageHabitTracker},
			wantErr: true,
		},
		{
			name:    "notes page with stray calendar payload",
			page:    Page{Kind: PageNotes, Calendar: &MonthlyCalendarData{Year: 2026}},
			wantErr: true,
		},
		{
			name: "vision spread with payload",
			page: Page{Kind: PageVisionSpread, VisionSpread: &VisionSpreadData{
				ImageURL: "https://assets.test/vision-1.png",
			}},
		},
		{
			name: "vision spread carrying two payloads",
			page: Page{
				Kind:         PageVisionSpread,
				VisionSpread: &VisionSpreadData{ImageURL: "https://assets.test/v.png"},
				Budget:       &BudgetData{TargetAmount: 500},
			},
			wantErr: true,
		},
		{
			name: "savings tracker reuses budget payload",
			page: Page{Kind: PageSavingsTracker, Budget: &BudgetData{TargetAmount: 10000, Currency: "USD"}},
		},
		{
			name: "cover page with no payload",
			page: Page{Kind: PageCoverFront},
		},
		{
			name:    "unknown kind",
			page:    Page{Kind: PageKind("STICKER_SHEET")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.page.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var malformed *MalformedPageError
				assert.True(t, errors.As(err, &malformed))
				assert.False(t, IsPageTypeConsistent(&tt.page))
			} else {
				require.NoError(t, err)
				assert.True(t, IsPageTypeConsistent(&tt.page))
			}
		})
	}
}

func TestTrimSizeByID(t *testing.T) {
	trade, err := TrimSizeByID(TrimTrade6x9)
	require.NoError(t, err)
	assert.Equal(t, 1800, trade.WidthPx)
	assert.Equal(t, 2700, trade.HeightPx)
	assert.InDelta(t, 152.4, trade.WidthMm, 0.001)

	_, err = TrimSizeByID(TrimSizeID("TABLOID"))
	assert.Error(t, err)
}

func TestTrimSizes_CopyIsUnaliased(t *testing.T) {
	a := TrimSizes()
	a[0].WidthPx = 1

	b := TrimSizes()
	assert.NotEqual(t, 1, b[0].WidthPx)
}
