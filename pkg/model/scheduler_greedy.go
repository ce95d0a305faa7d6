package model

type greedyScheduler struct{}

// NewGreedyScheduler places teams one by one, narrowest common window first, into the first valid slot found
func NewGreedyScheduler() Scheduler {
	return &greedyScheduler{}
}

func (scheduler *greedyScheduler) Schedule(config SchedulingConfig) (SchedulingResult, error) {
	//** Validate configuration
	if err := validateConfig(config); err != nil {
		return SchedulingResult{}, err
	}

	//** Initialize dependencies
	state := newSchedulingState(config)
	teams := state.prioritize(config.Teams)

	//** Place teams
	schedule := make([]ScheduleEntry, 0, len(teams))
	unscheduled := make([]Team, 0)
	for _, team := range teams {
		var placed bool
		// A team that fails never blocks the following ones
		if schedule, placed = state.place(team, schedule); !placed {
			unscheduled = append(unscheduled, team)
		}
	}

	return SchedulingResult{Scheduled: schedule, Unscheduled: unscheduled}, nil
}

func (scheduler *greedyScheduler) Verify(result SchedulingResult, config SchedulingConfig) bool {
	return verify(result, config)
}
