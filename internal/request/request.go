package request

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

// ScheduleRequest is the user-facing description of a scheduling run, as read from flags or an HTTP body
type ScheduleRequest struct {
	StartDate         string `json:"startDate" yaml:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate           string `json:"endDate" yaml:"endDate" validate:"required,datetime=2006-01-02"`
	ExcludedWeekdays  []int  `json:"excludedWeekdays,omitempty" yaml:"excludedWeekdays,omitempty" validate:"omitempty,dive,min=0,max=6"`
	ApplicationStart  string `json:"applicationStart" yaml:"applicationStart" validate:"required"`
	ApplicationEnd    string `json:"applicationEnd" yaml:"applicationEnd" validate:"required"`
	DurationMinutes   int    `json:"durationMinutes" yaml:"durationMinutes" validate:"gt=0,lte=1440"`
	MaxConcurrent     int    `json:"maxConcurrent" yaml:"maxConcurrent" validate:"gt=0"`
	Strategy          string `json:"strategy,omitempty" yaml:"strategy,omitempty" validate:"omitempty,oneof=greedy divide-and-conquer"`
	UnknownProfessors string `json:"unknownProfessors,omitempty" yaml:"unknownProfessors,omitempty" validate:"omitempty,oneof=permissive strict"`
}

// Defaults fill the request fields left empty
type Defaults struct {
	Strategy          model.Strategy
	UnknownProfessors model.UnknownProfessorPolicy
	ExcludedWeekdays  []time.Weekday
}

// Plan is a validated run: the scheduler to use and the configuration to give it
type Plan struct {
	Strategy model.Strategy
	Config   model.SchedulingConfig
}

// ValidationError reports a request that must not reach the scheduler
type ValidationError struct {
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %v %v", err.Field, err.Reason)
}

var validate = validator.New()

// Build validates request against roster and turns it into a Plan
func Build(request ScheduleRequest, roster model.RosterInput, defaults Defaults) (Plan, error) {
	//** Field validation
	if err := validate.Struct(request); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return Plan{}, &ValidationError{Field: fieldErrors[0].Field(), Reason: fmt.Sprintf("failed on %q", fieldErrors[0].Tag())}
		}
		return Plan{}, err
	}

	//** Times
	appStart, err := model.MinutesOfDay(request.ApplicationStart)
	if err != nil {
		return Plan{}, &ValidationError{Field: "ApplicationStart", Reason: err.Error()}
	}
	appEnd, err := model.MinutesOfDay(request.ApplicationEnd)
	if err != nil {
		return Plan{}, &ValidationError{Field: "ApplicationEnd", Reason: err.Error()}
	}
	if appStart >= appEnd {
		return Plan{}, &ValidationError{Field: "ApplicationEnd", Reason: "must be after the application start"}
	}

	//** Calendar
	start, _ := model.ParseWorkingDay(request.StartDate)
	end, _ := model.ParseWorkingDay(request.EndDate)
	if end.Before(start) {
		return Plan{}, &ValidationError{Field: "EndDate", Reason: "must not be before the start date"}
	}

	strategy := defaults.Strategy
	if request.Strategy != "" {
		strategy = model.Strategy(request.Strategy)
	}
	excluded := defaults.ExcludedWeekdays
	if request.ExcludedWeekdays != nil {
		excluded = lo.Map(request.ExcludedWeekdays, func(day int, _ int) time.Weekday { return time.Weekday(day) })
	}
	workingDays := strategy.WorkingDays(start, end, excluded)
	if len(workingDays) == 0 {
		return Plan{}, &ValidationError{Field: "EndDate", Reason: "the date range holds no working day"}
	}

	//** Roster
	if len(roster.Teams) == 0 {
		return Plan{}, &ValidationError{Field: "Teams", Reason: "at least one team is required"}
	}

	policy := defaults.UnknownProfessors
	if request.UnknownProfessors != "" {
		policy, _ = model.ParseUnknownProfessorPolicy(request.UnknownProfessors)
	}

	return Plan{
		Strategy: strategy,
		Config: model.SchedulingConfig{
			WorkingDays:       workingDays,
			AppStart:          appStart,
			AppEnd:            appEnd,
			Duration:          request.DurationMinutes,
			MaxConcurrent:     request.MaxConcurrent,
			Teams:             roster.Teams,
			Professors:        roster.Professors,
			UnknownProfessors: policy,
		},
	}, nil
}

// ParseWeekdays reads a comma separated list of weekday numbers (0 is Sunday)
func ParseWeekdays(text string) ([]time.Weekday, error) {
	weekdays := make([]time.Weekday, 0)
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		day, err := strconv.Atoi(field)
		if err != nil || day < 0 || day > 6 {
			return nil, &ValidationError{Field: "ExcludedWeekdays", Reason: fmt.Sprintf("%q is not a weekday number between 0 and 6", field)}
		}
		weekdays = append(weekdays, time.Weekday(day))
	}
	return lo.Uniq(weekdays), nil
}
