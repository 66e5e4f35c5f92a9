// Package calendar derives the rolling day window that drives the meal
// plan and its labels.
package calendar

import (
	"fmt"
	"time"

	"github.com/nhle/mealplanner/internal/model"
)

// DateLayout is the canonical FullDate key format.
const DateLayout = "2006-01-02"

// DefaultWindow is the number of days shown when none is configured.
const DefaultWindow = 14

// midnight truncates t to the start of its day in t's location.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FullDate returns the canonical key of t's calendar date.
func FullDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Parse reads a FullDate key as midnight in loc.
func Parse(fullDate string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, fullDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", fullDate, err)
	}
	return t, nil
}

// Window returns size consecutive days starting at today. The time of
// day is ignored, so the first element is always today and never past.
func Window(today time.Time, size int) []model.CalendarDay {
	if size <= 0 {
		return nil
	}

	start := midnight(today)
	days := make([]model.CalendarDay, size)
	for i := range size {
		d := start.AddDate(0, 0, i)
		days[i] = model.CalendarDay{
			Date:     d.Day(),
			Weekday:  d.Weekday().String()[:2],
			FullDate: FullDate(d),
			IsPast:   d.Before(start),
		}
	}
	return days
}

// DayLabel returns "Today", "Tomorrow" or the full weekday name of
// fullDate relative to today. Unparsable keys are returned unchanged.
func DayLabel(fullDate string, today time.Time) string {
	d, err := Parse(fullDate, today.Location())
	if err != nil {
		return fullDate
	}

	start := midnight(today)
	switch {
	case d.Equal(start):
		return "Today"
	case d.Equal(start.AddDate(0, 0, 1)):
		return "Tomorrow"
	}
	return d.Weekday().String()
}

// Heading renders fullDate as "Monday, 23. November".
func Heading(fullDate string) string {
	d, err := Parse(fullDate, time.UTC)
	if err != nil {
		return fullDate
	}
	return fmt.Sprintf("%s, %d. %s", d.Weekday(), d.Day(), d.Month())
}

// RangeLabel renders the span between two FullDate keys as "22.11 - 28.11".
func RangeLabel(first, last string) string {
	a, err := Parse(first, time.UTC)
	if err != nil {
		return ""
	}
	b, err := Parse(last, time.UTC)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%02d.%02d - %02d.%02d", a.Day(), int(a.Month()), b.Day(), int(b.Month()))
}
