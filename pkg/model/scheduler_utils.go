package model

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// SlotStep is the distance in minutes between two consecutive candidate start times
const SlotStep = 30

type schedulingState struct {
	config    SchedulingConfig
	evaluator predicateEvaluator
}

func newSchedulingState(config SchedulingConfig) schedulingState {
	return schedulingState{
		config:    config,
		evaluator: newPredicateEvaluator(config.Professors),
	}
}

func validateConfig(config SchedulingConfig) error {
	if config.Duration <= 0 {
		return &ConfigError{Field: "duration", Reason: "must be greater than 0"}
	} else if config.MaxConcurrent <= 0 {
		return &ConfigError{Field: "maxConcurrent", Reason: "must be greater than 0"}
	} else if config.AppStart < 0 || config.AppEnd > MinutesPerDay {
		return &ConfigError{Field: "application window", Reason: "must lie within a single day"}
	} else if config.AppStart > config.AppEnd {
		return &ConfigError{Field: "application window", Reason: "must start before it ends"}
	}

	if config.UnknownProfessors == UnknownProfessorStrict {
		evaluator := newPredicateEvaluator(config.Professors)
		for _, team := range config.Teams {
			if unknown, ok := lo.Find(team.Professors, func(professor string) bool { return !evaluator.Known(professor) }); ok {
				return &DataIntegrityError{Team: team.Id, Professor: unknown}
			}
		}
	}
	return nil
}

// Places the team into the first valid slot of schedule, scanning days in order and start times in SlotStep increments
func (state schedulingState) place(team Team, schedule []ScheduleEntry) ([]ScheduleEntry, bool) {
	// A professor cannot sit twice in the same interview
	if hasDuplicateProfessors(team) {
		return schedule, false
	}

	for _, day := range state.config.WorkingDays {
		for start := state.config.AppStart; start+state.config.Duration <= state.config.AppEnd; start += SlotStep {
			if room, ok := state.fits(team, day, start, schedule); ok {
				return append(schedule, ScheduleEntry{
					Team:        team,
					Day:         day,
					StartMinute: start,
					EndMinute:   start + state.config.Duration,
					RoomIndex:   room,
				}), true
			}
		}
	}
	return schedule, false
}

// Checks every constraint for the slot and returns the room index the entry would take
func (state schedulingState) fits(team Team, day WorkingDay, start int, schedule []ScheduleEntry) (int, bool) {
	duration := state.config.Duration

	// Application window
	if start < state.config.AppStart || start+duration > state.config.AppEnd {
		return 0, false
	}

	// Professors' windows
	if !state.evaluator.TeamAvailable(team, start, duration) {
		return 0, false
	}

	// Concurrency limit
	concurrent := ConcurrentCount(schedule, day, start, duration)
	if concurrent >= state.config.MaxConcurrent {
		return 0, false
	}

	// Professors already interviewing
	if ProfessorBusy(team.Professors, schedule, day, start, duration) {
		return 0, false
	}

	// Entries overlapping the slot must stay within the limit once the slot is taken
	if lo.SomeBy(schedule, func(entry ScheduleEntry) bool {
		return SameDay(entry.Day, day) &&
			Overlaps(entry.StartMinute, entry.EndMinute, start, start+duration) &&
			ConcurrentCount(schedule, entry.Day, entry.StartMinute, entry.EndMinute-entry.StartMinute) >= state.config.MaxConcurrent
	}) {
		return 0, false
	}

	return concurrent + 1, true
}

// Orders teams by the length of their professors' common window, narrowest first. Ties keep the input order
func (state schedulingState) prioritize(teams []Team) []Team {
	prioritized := slices.Clone(teams)
	slices.SortStableFunc(prioritized, func(team1, team2 Team) int {
		return cmp.Compare(state.priority(team1), state.priority(team2))
	})
	return prioritized
}

func (state schedulingState) priority(team Team) int {
	start, end, _ := state.evaluator.CommonWindow(team)
	return end - start
}

func hasDuplicateProfessors(team Team) bool {
	return len(lo.Uniq(team.Professors)) != len(team.Professors)
}

func verify(result SchedulingResult, config SchedulingConfig) bool {
	evaluator := newPredicateEvaluator(config.Professors)

	//** Partition: every input team appears exactly once across scheduled and unscheduled
	pending := lo.CountValuesBy(config.Teams, func(team Team) uint64 { return team.Id })
	for _, id := range append(
		lo.Map(result.Scheduled, func(entry ScheduleEntry, _ int) uint64 { return entry.Team.Id }),
		lo.Map(result.Unscheduled, func(team Team, _ int) uint64 { return team.Id })...,
	) {
		if pending[id] == 0 {
			return false
		}
		pending[id]--
	}
	if lo.SomeBy(lo.Values(pending), func(count int) bool { return count != 0 }) {
		return false
	}

	for i, entry := range result.Scheduled {
		// Check that:
		// - The entry lasts exactly the configured duration
		// - The entry lies within the application window
		// - The entry lies within every professor's window
		// - The day is a working day
		// - No professor appears twice in the team
		if entry.EndMinute-entry.StartMinute != config.Duration ||
			entry.StartMinute < config.AppStart || entry.EndMinute > config.AppEnd ||
			!evaluator.TeamAvailable(entry.Team, entry.StartMinute, config.Duration) ||
			!lo.Contains(config.WorkingDays, entry.Day) ||
			hasDuplicateProfessors(entry.Team) {
			return false
		}

		// Concurrency bound (the entry overlaps itself)
		if ConcurrentCount(result.Scheduled, entry.Day, entry.StartMinute, config.Duration) > config.MaxConcurrent {
			return false
		}

		// No professor in two overlapping interviews
		others := slices.Delete(slices.Clone(result.Scheduled), i, i+1)
		if ProfessorBusy(entry.Team.Professors, others, entry.Day, entry.StartMinute, config.Duration) {
			return false
		}
	}
	return true
}
