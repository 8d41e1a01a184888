package calendar

import (
	"time"

	"inkdesk/internal/domain"
)

const DayLayout = "2006-01-02"

// Bounds returns the first and last day of the month grid that contains anchor.
// The grid starts on weekStart and is padded with days of the neighbouring
// months to whole weeks.
func Bounds(anchor time.Time, weekStart time.Weekday) domain.CalendarRange {
	y, m, _ := anchor.Date()
	loc := anchor.Location()

	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, loc)

	back := (int(first.Weekday()) - int(weekStart) + 7) % 7
	weekEnd := (weekStart + 6) % 7
	forward := (int(weekEnd) - int(last.Weekday()) + 7) % 7

	return domain.CalendarRange{
		FirstDay: first.AddDate(0, 0, -back).Format(DayLayout),
		LastDay:  last.AddDate(0, 0, forward).Format(DayLayout),
	}
}

// ParseDay reads a YYYY-MM-DD date in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DayLayout, s, loc)
}
