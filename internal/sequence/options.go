package sequence

import (
	"fmt"

	"github.com/visioncraft/workbook/internal/domain"
)

// MaxVisionSpreads caps the number of vision-spread pages regardless of how
// many images were selected upstream.
const MaxVisionSpreads = 4

// VisionImage is one user-selected image reference.
type VisionImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// BuildOptions is the build-options record handed over by the wizard
// collaborator.
type BuildOptions struct {
	Edition         domain.Edition     `json:"edition"`
	Trim            domain.TrimSizeID  `json:"trim"`
	Binding         domain.BindingType `json:"binding"`
	Title           string             `json:"title"`
	Subtitle        string             `json:"subtitle,omitempty"`
	CoverThemeID    string             `json:"coverThemeId"`
	IncludeForeword bool               `json:"includeForeword"`
	UserName        string             `json:"userName,omitempty"`
	Goals           []string           `json:"goals,omitempty"`
	Habits          []domain.Habit     `json:"habits,omitempty"`
	VisionImages    []VisionImage      `json:"visionImages,omitempty"`
	VisionText      string             `json:"visionText,omitempty"`
	FinancialTarget string             `json:"financialTarget,omitempty"`
}

// Validate checks the fields the builder cannot default.
func (o BuildOptions) Validate() error {
	if o.Edition == "" {
		return fmt.Errorf("edition is required")
	}
	if _, ok := editionSpecs[o.Edition]; !ok {
		return fmt.Errorf("unknown edition %q", o.Edition)
	}
	if o.Trim == "" {
		return fmt.Errorf("trim size is required")
	}
	if o.Binding == "" {
		return fmt.Errorf("binding type is required")
	}
	if o.Title == "" {
		return fmt.Errorf("title is required")
	}
	if o.CoverThemeID == "" {
		return fmt.Errorf("cover theme is required")
	}
	return nil
}
