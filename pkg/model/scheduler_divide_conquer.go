package model

type divideAndConquerScheduler struct{}

// NewDivideAndConquerScheduler splits the teams in halves, schedules each half on its own and merges both
// partial schedules, re-attempting the teams that could not be placed against the combined schedule
func NewDivideAndConquerScheduler() Scheduler {
	return &divideAndConquerScheduler{}
}

func (scheduler *divideAndConquerScheduler) Schedule(config SchedulingConfig) (SchedulingResult, error) {
	//** Validate configuration
	if err := validateConfig(config); err != nil {
		return SchedulingResult{}, err
	}

	state := newSchedulingState(config)
	return scheduler.solve(state, config.Teams), nil
}

func (scheduler *divideAndConquerScheduler) Verify(result SchedulingResult, config SchedulingConfig) bool {
	return verify(result, config)
}

func (scheduler *divideAndConquerScheduler) solve(state schedulingState, teams []Team) SchedulingResult {
	//** Base cases
	switch len(teams) {
	case 0:
		return SchedulingResult{Scheduled: []ScheduleEntry{}, Unscheduled: []Team{}}
	case 1:
		schedule, placed := state.place(teams[0], make([]ScheduleEntry, 0, 1))
		if !placed {
			return SchedulingResult{Scheduled: []ScheduleEntry{}, Unscheduled: []Team{teams[0]}}
		}
		return SchedulingResult{Scheduled: schedule, Unscheduled: []Team{}}
	}

	//** Divide
	middle := len(teams) / 2

	//** Conquer: each half ignores the other one
	left := scheduler.solve(state, teams[:middle])
	right := scheduler.solve(state, teams[middle:])

	//** Combine
	return merge(state, left, right)
}

func merge(state schedulingState, left, right SchedulingResult) SchedulingResult {
	combined := make([]ScheduleEntry, 0, len(left.Scheduled)+len(right.Scheduled))
	combined = append(combined, left.Scheduled...)

	repairs := make([]Team, 0, len(left.Unscheduled)+len(right.Unscheduled))
	repairs = append(repairs, left.Unscheduled...)
	repairs = append(repairs, right.Unscheduled...)

	// The right half never saw the left one: keep its entries that still fit and send the rest to repair
	evicted := make([]Team, 0)
	for _, entry := range right.Scheduled {
		room, ok := state.fits(entry.Team, entry.Day, entry.StartMinute, combined)
		if !ok {
			evicted = append(evicted, entry.Team)
			continue
		}
		entry.RoomIndex = room
		combined = append(combined, entry)
	}
	repairs = append(repairs, evicted...)

	//** Repair against the combined schedule, which grows with every success
	unscheduled := make([]Team, 0)
	for _, team := range repairs {
		var placed bool
		if combined, placed = state.place(team, combined); !placed {
			unscheduled = append(unscheduled, team)
		}
	}

	return SchedulingResult{Scheduled: combined, Unscheduled: unscheduled}
}
