package sequence

import (
	"time"

	"github.com/visioncraft/workbook/internal/domain"
)

// MonthGrid lays out a month as Monday-start weeks. Cells outside the
// month are zero.
func MonthGrid(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Weekday with Monday as 0.
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][7]int
	week := [7]int{}
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// monthlyCalendarData builds the payload for the n-th calendar month after
// the start date.
func monthlyCalendarData(start time.Time, n int) *domain.MonthlyCalendarData {
	m := start.AddDate(0, n, 0)
	return &domain.MonthlyCalendarData{
		Year:  m.Year(),
		Month: m.Month(),
		Weeks: MonthGrid(m.Year(), m.Month()),
	}
}
