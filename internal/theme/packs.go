package theme

import "github.com/visioncraft/workbook/internal/domain"

// defaultPacks is the built-in theme table. IDs are stable: documents
// reference them by ID and the build log stores them.
var defaultPacks = []Pack{
	{
		Cover: domain.CoverTheme{
			ID:            "midnight-garden",
			Name:          "Midnight Garden",
			Background:    []string{"#1a1a2e", "#16213e"},
			TitleColor:    "#e8d5b7",
			SubtitleColor: "#b8a88a",
			AccentColor:   "#0f3460",
			TitleFont:     "Times",
			BodyFont:      "Helvetica",
		},
		Guidance: "Write in a calm, reflective voice. Favor imagery of growth, " +
			"seasons, and quiet persistence. Avoid hustle language.",
		FallbackForeword: "Welcome, {userName}. This workbook is your garden: " +
			"tend it a little every day and watch {goalList} take root through the seasons ahead.",
		FallbackCoachLetter: "Dear {userName},\n\nGrowth is rarely loud. The {themeName} " +
			"path asks only that you return to these pages, season after season, and note " +
			"what has quietly changed.\n\nYour coach",
		FallbackReflections: []string{
			"What grew this month that you did not plant on purpose?",
			"Which habit felt most like rain, and which like weeding?",
			"What will you prune to make room for what matters?",
		},
	},
	{
		Cover: domain.CoverTheme{
			ID:            "golden-hour",
			Name:          "Golden Hour",
			Background:    []string{"#f6d365", "#fda085"},
			TitleColor:    "#4a2c2a",
			SubtitleColor: "#6b4423",
			AccentColor:   "#c06014",
			TitleFont:     "Helvetica",
			BodyFont:      "Helvetica",
		},
		Guidance: "Write with warmth and optimism. Use light and morning " +
			"metaphors. Keep sentences short and energizing.",
		FallbackForeword: "Good morning, {userName}. Every page here is a fresh " +
			"sunrise on {goalList} — small light, steadily gathered.",
		FallbackCoachLetter: "Dear {userName},\n\nThe best hour is the one you " +
			"show up for. Open this {themeName} workbook when the day is new and " +
			"give your goals the first light.\n\nYour coach",
		FallbackReflections: []string{
			"What felt bright this week?",
			"Where did you show up before you felt ready?",
			"What is one small win worth savoring?",
		},
	},
	{
		Cover: domain.CoverTheme{
			ID:            "bold-horizon",
			Name:          "Bold Horizon",
			Background:    []string{"#0f2027"},
			TitleColor:    "#ffffff",
			SubtitleColor: "#c9d6df",
			AccentColor:   "#fb4934",
			TitleFont:     "Helvetica",
			BodyFont:      "Helvetica",
		},
		Guidance: "Write in a direct, ambitious voice. Frame goals as summits " +
			"and deadlines as checkpoints. Numbers over adjectives; mention " +
			"{financialTarget} when a financial target is present.",
		FallbackForeword: "{userName}, this is your expedition plan. The summit: " +
			"{goalList}. The route: one tracked day at a time.",
		FallbackCoachLetter: "{userName},\n\nAmbition without a ledger is a wish. " +
			"This {themeName} workbook is your ledger — log the climb, measure " +
			"the gain, adjust the route.\n\nYour coach",
		FallbackReflections: []string{
			"What checkpoint did you pass this month?",
			"Where did the route need re-plotting?",
			"What number moved, and why?",
		},
	},
	{
		Cover: domain.CoverTheme{
			ID:             "vision-canvas",
			Name:           "Vision Canvas",
			Background:     []string{"#222222"},
			TitleColor:     "#ffffff",
			SubtitleColor:  "#dddddd",
			AccentColor:    "#e8d5b7",
			TitleFont:      "Times",
			BodyFont:       "Helvetica",
			Overlay:        true,
			OverlayOpacity: 0.35,
			UseVisionImage: true,
		},
		Guidance: "Write as if captioning a gallery of the reader's own future. " +
			"Reference their vision imagery directly and keep prose spare.",
		FallbackForeword: "{userName}, the images in these pages are not " +
			"decoration — they are destinations. Walk toward {goalList}.",
		FallbackCoachLetter: "Dear {userName},\n\nYou already painted the picture. " +
			"The {themeName} workbook exists to close the distance between the image " +
			"and the day you live.\n\nYour coach",
		FallbackReflections: []string{
			"Which image feels closer than it did last month?",
			"What did you do this week that belongs in the picture?",
			"Which image needs repainting?",
		},
	},
}
