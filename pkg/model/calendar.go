package model

import (
	"fmt"
	"slices"
	"time"
)

const dateLayout = "2006-01-02"

// NewWorkingDay normalizes out-of-range values the way time.Date does (e.g. January 32 is February 1)
func NewWorkingDay(year int, month time.Month, day int) WorkingDay {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf keeps the date of t as seen in t's own location and drops everything else
func DayOf(t time.Time) WorkingDay {
	year, month, day := t.Date()
	return WorkingDay{Year: year, Month: month, Day: day}
}

func ParseWorkingDay(text string) (WorkingDay, error) {
	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return WorkingDay{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", text, err)
	}
	return DayOf(t), nil
}

// Time returns midnight UTC of the day. UTC has no daylight-saving transitions, so day arithmetic is exact
func (day WorkingDay) Time() time.Time {
	return time.Date(day.Year, day.Month, day.Day, 0, 0, 0, 0, time.UTC)
}

func (day WorkingDay) Weekday() time.Weekday {
	return day.Time().Weekday()
}

func (day WorkingDay) AddDays(days int) WorkingDay {
	return NewWorkingDay(day.Year, day.Month, day.Day+days)
}

func (day WorkingDay) Before(other WorkingDay) bool {
	return day.Time().Before(other.Time())
}

func (day WorkingDay) String() string {
	return day.Time().Format(dateLayout)
}

// WorkingDays enumerates every date from start to end (both inclusive) whose weekday is not excluded
func WorkingDays(start, end WorkingDay, excluded []time.Weekday) []WorkingDay {
	days := make([]WorkingDay, 0)
	for current := start; !end.Before(current); current = current.AddDays(1) {
		if !slices.Contains(excluded, current.Weekday()) {
			days = append(days, current)
		}
	}
	return days
}
