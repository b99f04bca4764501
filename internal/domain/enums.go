package domain

// PageKind identifies the kind of a workbook page. Every kind maps to a
// renderer routine and, for some kinds, a required typed payload.
type PageKind string

const (
	PageCoverFront      PageKind = "COVER_FRONT"
	PageCoverBack       PageKind = "COVER_BACK"
	PageTitle           PageKind = "TITLE_PAGE"
	PageDedication      PageKind = "DEDICATION"
	PageForeword        PageKind = "FOREWORD"
	PageCoachLetter     PageKind = "COACH_LETTER"
	PageTableOfContents PageKind = "TABLE_OF_CONTENTS"
	PageVisionSpread    PageKind = "VISION_BOARD_SPREAD"
	PageGoalOverview    PageKind = "GOAL_OVERVIEW"
	PageGoalDetail      PageKind = "GOAL_DETAIL"
	PageRoadmap         PageKind = "ROADMAP"
	PageMonthlyCalendar PageKind = "MONTHLY_CALENDAR"
	PageWeeklyPlanner   PageKind = "WEEKLY_PLANNER"
	PageDailyPlanner    PageKind = "DAILY_PLANNER"
	PageHabitTracker    PageKind = "HABIT_TRACKER"
	PageMoodTracker     PageKind = "MOOD_TRACKER"
	PageBudgetOverview  PageKind = "BUDGET_OVERVIEW"
	PageSavingsTracker  PageKind = "SAVINGS_TRACKER"
	PageReflection      PageKind = "REFLECTION"
	PageQuote           PageKind = "QUOTE_PAGE"
	PageNotes           PageKind = "NOTES"
	PageBlankPadding    PageKind = "BLANK_PADDING"
)

// ValidPageKinds is the canonical set of accepted page kind strings.
var ValidPageKinds = map[PageKind]bool{
	PageCoverFront: true, PageCoverBack: true, PageTitle: true,
	PageDedication: true, PageForeword: true, PageCoachLetter: true,
	PageTableOfContents: true, PageVisionSpread: true, PageGoalOverview: true,
	PageGoalDetail: true, PageRoadmap: true, PageMonthlyCalendar: true,
	PageWeeklyPlanner: true, PageDailyPlanner: true, PageHabitTracker: true,
	PageMoodTracker: true, PageBudgetOverview: true, PageSavingsTracker: true,
	PageReflection: true, PageQuote: true, PageNotes: true,
	PageBlankPadding: true,
}

// IsValidPageKind returns true if the given kind is known.
func IsValidPageKind(k PageKind) bool {
	return ValidPageKinds[k]
}

// BindingType identifies the physical binding of the printed workbook.
type BindingType string

const (
	BindingSoftcover    BindingType = "softcover"
	BindingHardcover    BindingType = "hardcover"
	BindingSpiral       BindingType = "spiral"
	BindingSaddleStitch BindingType = "saddle_stitch"
)

// ProductClass distinguishes print substrates with different resolution
// tolerances. Canvas products reject images that paper products would
// merely warn about.
type ProductClass string

const (
	ProductPaper  ProductClass = "paper"
	ProductCanvas ProductClass = "canvas"
)

// Edition selects one of the fixed workbook page templates.
type Edition string

const (
	EditionStarter   Edition = "STARTER"
	EditionExecutive Edition = "EXECUTIVE"
	EditionDeluxe    Edition = "DELUXE"
)

// TextRole classifies a text block for styling and font selection.
type TextRole string

const (
	RoleTitle    TextRole = "TITLE"
	RoleSubtitle TextRole = "SUBTITLE"
	RoleBody     TextRole = "BODY"
	RoleQuote    TextRole = "QUOTE"
	RoleCaption  TextRole = "CAPTION"
	RoleLabel    TextRole = "LABEL"
)

// ImageSource records where an image block's asset came from.
type ImageSource string

const (
	SourceGenerated ImageSource = "generated"
	SourceUpload    ImageSource = "upload"
	SourceStock     ImageSource = "stock"
)

// ImageLayout controls how an image is fitted into its reserved box.
type ImageLayout string

const (
	LayoutContain   ImageLayout = "contain"
	LayoutCover     ImageLayout = "cover"
	LayoutFullBleed ImageLayout = "full_bleed"
)
