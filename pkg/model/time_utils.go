package model

import (
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

// MinutesOfDay parses "HH:MM" into minutes since midnight. "24:00" is accepted as the end of the day
func MinutesOfDay(text string) (int, error) {
	hoursStr, minutesStr, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return 0, &FormatError{Input: text, Reason: "expected HH:MM"}
	} else if len(hoursStr) == 0 || len(hoursStr) > 2 || !digits(hoursStr) {
		return 0, &FormatError{Input: text, Reason: "hour must have one or two digits"}
	} else if len(minutesStr) != 2 || !digits(minutesStr) {
		return 0, &FormatError{Input: text, Reason: "minute must have two digits"}
	}

	hours, _ := strconv.Atoi(hoursStr)
	minutes, _ := strconv.Atoi(minutesStr)

	if hours > 24 || minutes > 59 || (hours == 24 && minutes > 0) {
		return 0, &FormatError{Input: text, Reason: "out of range"}
	}
	return hours*60 + minutes, nil
}

// FormatMinutes renders minutes since midnight as "HH:MM"
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Checks whether the half-open intervals [startA, endA) and [startB, endB) overlap. Touching endpoints do not overlap
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}

func SameDay(day1, day2 WorkingDay) bool {
	return day1.Year == day2.Year && day1.Month == day2.Month && day1.Day == day2.Day
}

func digits(text string) bool {
	for _, char := range text {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
