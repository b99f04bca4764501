package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteKind(t *testing.T) {
	tests := []struct {
		kind ContentKind
		want ProviderID
	}{
		{KindVisionCaptions, ProviderGallery},
		{ContentKind("gallery_headline"), ProviderGallery},
		{KindBudgetNotes, ProviderFinance},
		{ContentKind("savings_milestones"), ProviderFinance},
		{KindReflectionPrompts, ProviderJournal},
		{ContentKind("journal_opening"), ProviderJournal},
		{KindForeword, ProviderGallery},
		{KindCoachLetter, ProviderGallery},
		{ContentKind("something_else"), ProviderGallery},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, RouteKind(tt.kind))
		})
	}
}

func TestRouteKind_IsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, ProviderFinance, RouteKind(KindBudgetNotes))
	}
}
