package model

import (
	"github.com/samber/lo"
)

// ProfessorAvailable reports whether the professor's daily window fully contains [slotStart, slotStart+duration).
// A name missing from professors is treated as available.
func ProfessorAvailable(professor string, slotStart, duration int, professors []Professor) bool {
	return newPredicateEvaluator(professors).ProfessorAvailable(professor, slotStart, duration)
}

// TeamAvailable reports whether every professor of the team passes ProfessorAvailable.
func TeamAvailable(team Team, slotStart, duration int, professors []Professor) bool {
	return newPredicateEvaluator(professors).TeamAvailable(team, slotStart, duration)
}

// ProfessorBusy reports whether an entry of the same day overlapping the slot shares a professor with professors.
func ProfessorBusy(professors []string, schedule []ScheduleEntry, day WorkingDay, slotStart, duration int) bool {
	slotEnd := slotStart + duration
	return lo.SomeBy(schedule, func(entry ScheduleEntry) bool {
		return SameDay(entry.Day, day) &&
			Overlaps(entry.StartMinute, entry.EndMinute, slotStart, slotEnd) &&
			lo.SomeBy(professors, func(professor string) bool {
				return lo.Contains(entry.Team.Professors, professor)
			})
	})
}

// ConcurrentCount counts the entries of the same day overlapping the slot, regardless of their professors.
func ConcurrentCount(schedule []ScheduleEntry, day WorkingDay, slotStart, duration int) int {
	slotEnd := slotStart + duration
	return lo.CountBy(schedule, func(entry ScheduleEntry) bool {
		return SameDay(entry.Day, day) && Overlaps(entry.StartMinute, entry.EndMinute, slotStart, slotEnd)
	})
}
