package domain

import "time"

// MonthlyCalendarData is the typed payload of a MONTHLY_CALENDAR page.
// Weeks holds the day grid row by row; a zero cell is a blank slot before
// the first or after the last day of the month.
type MonthlyCalendarData struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Weeks [][7]int   `json:"weeks"`
}

// WeeklyPlannerData is the typed payload of a WEEKLY_PLANNER page.
type WeeklyPlannerData struct {
	Label       string   `json:"label"`
	FocusPrompt string   `json:"focusPrompt,omitempty"`
	Days        []string `json:"days"`
}

// Habit is one tracked habit with its display name and optional description.
type Habit struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// HabitTrackerData is the typed payload of a HABIT_TRACKER page. It lists
// every habit the user supplied; the grid column count is a rendering
// concern, not data.
type HabitTrackerData struct {
	Habits   []Habit `json:"habits"`
	GridDays int     `json:"gridDays"`
}

// RoadmapMilestone is one labeled milestone on the roadmap page.
type RoadmapMilestone struct {
	Label string   `json:"label"`
	Goals []string `json:"goals"`
}

// RoadmapData is the typed payload of a ROADMAP page.
type RoadmapData struct {
	Milestones []RoadmapMilestone `json:"milestones"`
}

// BudgetLine is one row of the budget overview table.
type BudgetLine struct {
	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
}

// BudgetData is the typed payload of BUDGET_OVERVIEW and SAVINGS_TRACKER
// pages.
type BudgetData struct {
	TargetAmount float64      `json:"targetAmount"`
	Currency     string       `json:"currency"`
	Lines        []BudgetLine `json:"lines,omitempty"`
}

// VisionSpreadData is the typed payload of a VISION_BOARD_SPREAD page.
type VisionSpreadData struct {
	ImageURL    string `json:"imageUrl"`
	Caption     string `json:"caption,omitempty"`
	Affirmation string `json:"affirmation,omitempty"`
}
