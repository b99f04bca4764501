package genai

import (
	"fmt"

	"github.com/visioncraft/workbook/internal/theme"
)

// FallbackContent builds deterministic, theme-keyed content for a kind when
// every provider attempt has failed. The result always carries
// FallbackUsed=true and non-empty text, so page assembly can proceed with
// degraded content instead of aborting the document.
func FallbackContent(kind ContentKind, pack theme.Pack, cctx ContentContext) GeneratedContent {
	vars := theme.Vars{
		UserName:        cctx.UserName,
		ThemeName:       pack.Cover.Name,
		GoalList:        cctx.GoalList(),
		FinancialTarget: cctx.FinancialTarget,
	}

	content := GeneratedContent{FallbackUsed: true}

	switch kind {
	case KindForeword:
		content.Foreword = theme.Substitute(pack.FallbackForeword, vars)
	case KindCoachLetter:
		content.CoachLetter = theme.Substitute(pack.FallbackCoachLetter, vars)
	case KindReflectionPrompts:
		prompts := make([]string, len(pack.FallbackReflections))
		for i, p := range pack.FallbackReflections {
			prompts[i] = theme.Substitute(p, vars)
		}
		content.ReflectionPrompts = prompts
	case KindVisionCaptions:
		captions := make([]string, 0, len(cctx.Goals))
		for _, g := range cctx.Goals {
			captions = append(captions, fmt.Sprintf("This is where %s becomes real.", g))
		}
		if len(captions) == 0 {
			captions = append(captions, "This is the life you are building.")
		}
		content.ThemePrompts = map[string][]string{"vision": captions}
	case KindGoalAffirmations:
		affirmations := make([]string, 0, len(cctx.Goals))
		for _, g := range cctx.Goals {
			affirmations = append(affirmations, fmt.Sprintf("I am making steady progress toward %s.", g))
		}
		if len(affirmations) == 0 {
			affirmations = append(affirmations, "I am making steady progress toward what matters to me.")
		}
		content.ThemePrompts = map[string][]string{"goals": affirmations}
	case KindBudgetNotes:
		target := cctx.FinancialTarget
		if target == "" {
			target = "your savings target"
		}
		content.ThemePrompts = map[string][]string{"budget": {
			fmt.Sprintf("Break %s into a monthly amount and write it at the top of each budget page.", target),
			"Record every planned expense before the month starts, then track the actuals beside it.",
			"Review the gap between planned and actual at the end of each month before setting the next one.",
		}}
	default:
		content.Foreword = theme.Substitute(pack.FallbackForeword, vars)
	}

	return content
}
