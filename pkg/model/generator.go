package model

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samber/lo"
)

// InstanceShape describes the size of a randomly generated scheduling instance
type InstanceShape struct {
	Professors    int
	Teams         int
	Days          int
	Duration      int
	MaxConcurrent int
}

// RandomInstance builds a reproducible instance: the same rng seed and shape always yield the same config.
// Windows are aligned to SlotStep between 07:00 and 21:00 and the application window is 08:00 - 18:00
func RandomInstance(rng *rand.Rand, shape InstanceShape) SchedulingConfig {
	const earliest, latest = 7 * 60, 21 * 60
	steps := (latest - earliest) / SlotStep

	professors := make([]Professor, shape.Professors)
	for i := range professors {
		first, last := rng.Intn(steps), rng.Intn(steps)
		if first > last {
			first, last = last, first
		}
		if first == last {
			last++
		}
		professors[i] = Professor{
			Name:           fmt.Sprintf("professor-%d", i+1),
			AvailableStart: earliest + first*SlotStep,
			AvailableEnd:   earliest + last*SlotStep,
		}
	}

	names := lo.Map(professors, func(professor Professor, _ int) string { return professor.Name })
	teams := make([]Team, shape.Teams)
	for i := range teams {
		members := make([]string, TeamSize)
		for j := range members {
			members[j] = names[rng.Intn(len(names))]
		}
		teams[i] = Team{Id: uint64(i + 1), Professors: members}
	}

	// Start on a Monday so every strategy sees the same calendar
	start := NewWorkingDay(2025, time.March, 3)
	return SchedulingConfig{
		WorkingDays:   WorkingDays(start, start.AddDays(shape.Days-1), nil),
		AppStart:      8 * 60,
		AppEnd:        18 * 60,
		Duration:      shape.Duration,
		MaxConcurrent: shape.MaxConcurrent,
		Teams:         teams,
		Professors:    professors,
	}
}
