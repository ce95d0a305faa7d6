package report

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

type Interview struct {
	Team       uint64   `json:"team" yaml:"team"`
	Professors []string `json:"professors" yaml:"professors"`
	Start      string   `json:"start" yaml:"start"`
	End        string   `json:"end" yaml:"end"`
	Room       int      `json:"room" yaml:"room"`
}

type Day struct {
	Date       string      `json:"date" yaml:"date"`
	Weekday    string      `json:"weekday" yaml:"weekday"`
	Interviews []Interview `json:"interviews" yaml:"interviews"`
}

type Unscheduled struct {
	Team        uint64   `json:"team" yaml:"team"`
	Professors  []string `json:"professors" yaml:"professors"`
	Reason      string   `json:"reason" yaml:"reason"`
	CommonStart string   `json:"commonStart" yaml:"commonStart"`
	CommonEnd   string   `json:"commonEnd" yaml:"commonEnd"`
	Message     string   `json:"message" yaml:"message"`
}

type Stats struct {
	Teams       int     `json:"teams" yaml:"teams"`
	Scheduled   int     `json:"scheduled" yaml:"scheduled"`
	Unscheduled int     `json:"unscheduled" yaml:"unscheduled"`
	WorkingDays int     `json:"workingDays" yaml:"workingDays"`
	ElapsedMs   float64 `json:"elapsedMs" yaml:"elapsedMs"`
}

// Report is the presentation of a scheduling run: interviews grouped by day in start order, then the teams left out
type Report struct {
	RunID       string        `json:"runId" yaml:"runId"`
	Strategy    string        `json:"strategy" yaml:"strategy"`
	Verified    bool          `json:"verified" yaml:"verified"`
	Days        []Day         `json:"days" yaml:"days"`
	Unscheduled []Unscheduled `json:"unscheduled" yaml:"unscheduled"`
	Stats       Stats         `json:"stats" yaml:"stats"`
}

// Run is everything a report is built from
type Run struct {
	ID       string
	Strategy model.Strategy
	Config   model.SchedulingConfig
	Result   model.SchedulingResult
	Verified bool
	Elapsed  time.Duration
}

func New(run Run) (Report, error) {
	//** Rooms
	rooms, err := model.AssignRooms(run.Result.Scheduled, run.Config.MaxConcurrent)
	if err != nil {
		return Report{}, fmt.Errorf("assign rooms: %w", err)
	}

	//** Group interviews by day
	indexes := lo.Range(len(run.Result.Scheduled))
	slices.SortStableFunc(indexes, func(i, j int) int {
		first, second := run.Result.Scheduled[i], run.Result.Scheduled[j]
		if c := first.Day.Time().Compare(second.Day.Time()); c != 0 {
			return c
		}
		return cmp.Compare(first.StartMinute, second.StartMinute)
	})

	days := make([]Day, 0)
	for _, index := range indexes {
		entry := run.Result.Scheduled[index]
		if len(days) == 0 || days[len(days)-1].Date != entry.Day.String() {
			days = append(days, Day{Date: entry.Day.String(), Weekday: entry.Day.Weekday().String(), Interviews: make([]Interview, 0)})
		}
		day := &days[len(days)-1]
		day.Interviews = append(day.Interviews, Interview{
			Team:       entry.Team.Id,
			Professors: entry.Team.Professors,
			Start:      model.FormatMinutes(entry.StartMinute),
			End:        model.FormatMinutes(entry.EndMinute),
			Room:       rooms[index],
		})
	}

	//** Explain failures
	unscheduled := lo.Map(model.Explain(run.Result, run.Config), func(diagnosis model.Diagnosis, _ int) Unscheduled {
		return Unscheduled{
			Team:        diagnosis.Team.Id,
			Professors:  diagnosis.Team.Professors,
			Reason:      string(diagnosis.Reason),
			CommonStart: model.FormatMinutes(diagnosis.CommonStart),
			CommonEnd:   model.FormatMinutes(diagnosis.CommonEnd),
			Message:     diagnosis.Message,
		}
	})

	return Report{
		RunID:       run.ID,
		Strategy:    string(run.Strategy),
		Verified:    run.Verified,
		Days:        days,
		Unscheduled: unscheduled,
		Stats: Stats{
			Teams:       len(run.Config.Teams),
			Scheduled:   len(run.Result.Scheduled),
			Unscheduled: len(run.Result.Unscheduled),
			WorkingDays: len(run.Config.WorkingDays),
			ElapsedMs:   float64(run.Elapsed.Microseconds()) / 1000,
		},
	}, nil
}
