package genai

import (
	"fmt"
	"strings"
)

// ContentContext is the only input generation needs. It carries no
// transport concerns.
type ContentContext struct {
	ThemeID         string   `json:"themeId"`
	UserName        string   `json:"userName,omitempty"`
	FinancialTarget string   `json:"financialTarget,omitempty"`
	Goals           []string `json:"goals,omitempty"`
	Habits          []string `json:"habits,omitempty"`
	VisionText      string   `json:"visionText,omitempty"`
}

// GoalList renders the goals as a short comma-joined phrase for prompt and
// fallback substitution.
func (c ContentContext) GoalList() string {
	switch len(c.Goals) {
	case 0:
		return ""
	case 1:
		return c.Goals[0]
	default:
		return strings.Join(c.Goals[:len(c.Goals)-1], ", ") + " and " + c.Goals[len(c.Goals)-1]
	}
}

// GeneratedContent is the structured result of one generation call.
// FallbackUsed=true is a hard signal that the content is deterministic
// template text, not personalized output; downstream consumers must not
// present it as such.
type GeneratedContent struct {
	Foreword          string              `json:"foreword,omitempty"`
	CoachLetter       string              `json:"coachLetter,omitempty"`
	ThemePrompts      map[string][]string `json:"themePrompts,omitempty"`
	ReflectionPrompts []string            `json:"reflectionPrompts,omitempty"`
	FallbackUsed      bool                `json:"fallbackUsed"`
}

// empty reports whether the content carries nothing usable.
func (c GeneratedContent) empty() bool {
	return c.Foreword == "" && c.CoachLetter == "" &&
		len(c.ThemePrompts) == 0 && len(c.ReflectionPrompts) == 0
}

// BodyText flattens the content into one displayable string, used when a
// caller wants a single prose blob (foreword, coach letter).
func (c GeneratedContent) BodyText() string {
	var parts []string
	if c.Foreword != "" {
		parts = append(parts, c.Foreword)
	}
	if c.CoachLetter != "" {
		parts = append(parts, c.CoachLetter)
	}
	for _, p := range c.ReflectionPrompts {
		parts = append(parts, p)
	}
	for category, prompts := range c.ThemePrompts {
		for _, p := range prompts {
			parts = append(parts, fmt.Sprintf("%s: %s", category, p))
		}
	}
	return strings.Join(parts, "\n\n")
}
