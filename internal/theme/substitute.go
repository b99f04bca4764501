package theme

import "strings"

// Vars holds the placeholder values substituted into fallback templates.
type Vars struct {
	UserName        string
	ThemeName       string
	GoalList        string
	FinancialTarget string
}

// Substitute replaces the {userName}, {themeName}, {goalList} and
// {financialTarget} placeholders in a fallback template. Unknown
// placeholders are left untouched; empty values substitute to neutral
// wording so the result never reads as broken.
func Substitute(tmpl string, vars Vars) string {
	name := vars.UserName
	if name == "" {
		name = "friend"
	}
	goals := vars.GoalList
	if goals == "" {
		goals = "your goals"
	}
	target := vars.FinancialTarget
	if target == "" {
		target = "your target"
	}

	return strings.NewReplacer(
		"{userName}", name,
		"{themeName}", vars.ThemeName,
		"{goalList}", goals,
		"{financialTarget}", target,
	).Replace(tmpl)
}
