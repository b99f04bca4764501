package genai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// outputFormatInstructions closes every prompt. The single-object
// requirement is what makes parse-or-degrade tractable.
const outputFormatInstructions = `Output ONLY a single JSON object, no markdown fences and no prose around it, with these fields (omit fields that do not apply):
- foreword: string
- coachLetter: string
- themePrompts: object mapping a category name to an array of strings
- reflectionPrompts: array of strings`

// kindInstructions is the fixed system instruction per content kind.
var kindInstructions = map[ContentKind]string{
	KindForeword: `You write the opening foreword of a personalized printed goal workbook.
Write 2-3 short paragraphs addressed directly to the reader by name.
Put the text in the "foreword" field.`,

	KindCoachLetter: `You write a one-page letter from a supportive coach, printed near the front of a goal workbook.
Address the reader by name and reference their stated goals concretely.
Put the text in the "coachLetter" field.`,

	KindVisionCaptions: `You write short gallery captions and affirmations for the reader's vision board images.
One line each, present tense, second person.
Put them in themePrompts under the "vision" category.`,

	KindGoalAffirmations: `You write one affirmation per stated goal, each a single sentence in the present tense.
Put them in themePrompts under the "goals" category.`,

	KindReflectionPrompts: `You write monthly reflection questions for a printed journal.
Each question is open-ended and answerable in a few written lines.
Put 3-6 questions in the "reflectionPrompts" array.`,

	KindBudgetNotes: `You write brief, practical guidance notes for the budget pages of a printed planner.
Reference the reader's financial target when one is given. No investment advice.
Put 3-5 notes in themePrompts under the "budget" category.`,
}

// BuildPrompt assembles the system and user prompts for one generation
// call: fixed kind instructions, theme guidance, the serialized user
// context, and the output-format contract. The same pair is used for every
// retry attempt.
func BuildPrompt(kind ContentKind, themeGuidance string, cctx ContentContext) (system, user string) {
	instructions, ok := kindInstructions[kind]
	if !ok {
		instructions = fmt.Sprintf("You write %q content for a personalized printed goal workbook.",
			strings.ReplaceAll(string(kind), "_", " "))
	}

	system = instructions + "\n\n" + outputFormatInstructions

	var b strings.Builder
	if themeGuidance != "" {
		b.WriteString("Theme guidance: ")
		b.WriteString(themeGuidance)
		b.WriteString("\n\n")
	}
	b.WriteString("Reader context:\n")
	ctxJSON, err := json.MarshalIndent(cctx, "", "  ")
	if err != nil {
		// ContentContext is plain data; marshal failure is a bug, but the
		// prompt can still carry something useful.
		b.WriteString(fmt.Sprintf("theme=%s user=%s", cctx.ThemeID, cctx.UserName))
	} else {
		b.Write(ctxJSON)
	}
	return system, b.String()
}
