package request

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

var defaults = Defaults{
	Strategy:          model.StrategyGreedy,
	UnknownProfessors: model.UnknownProfessorPermissive,
	ExcludedWeekdays:  []time.Weekday{time.Saturday, time.Sunday},
}

func validRequest() ScheduleRequest {
	return ScheduleRequest{
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-09",
		ApplicationStart: "08:00",
		ApplicationEnd:   "19:00",
		DurationMinutes:  120,
		MaxConcurrent:    2,
	}
}

func testRoster() model.RosterInput {
	return model.RosterInput{
		Professors: []model.Professor{{Name: "A", AvailableStart: 480, AvailableEnd: 720}},
		Teams:      []model.Team{{Id: 1, Professors: []string{"A", "B", "C"}}},
	}
}

func TestBuild(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		//** Act
		plan, err := Build(validRequest(), testRoster(), defaults)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, model.StrategyGreedy, plan.Strategy)
		assert.Equal(t, 480, plan.Config.AppStart)
		assert.Equal(t, 1140, plan.Config.AppEnd)
		assert.Equal(t, 120, plan.Config.Duration)
		assert.Equal(t, 2, plan.Config.MaxConcurrent)
		assert.Len(t, plan.Config.WorkingDays, 5)
		assert.Equal(t, model.NewWorkingDay(2025, time.March, 3), plan.Config.WorkingDays[0])
		assert.Equal(t, testRoster().Teams, plan.Config.Teams)
	})

	t.Run("Request overrides defaults", func(t *testing.T) {
		request := validRequest()
		request.ExcludedWeekdays = []int{}
		request.UnknownProfessors = "strict"

		plan, err := Build(request, testRoster(), defaults)

		require.NoError(t, err)
		assert.Len(t, plan.Config.WorkingDays, 9)
		assert.Equal(t, model.UnknownProfessorStrict, plan.Config.UnknownProfessors)
	})

	t.Run("Divide and conquer uses its own calendar", func(t *testing.T) {
		request := validRequest()
		request.Strategy = string(model.StrategyDivideAndConquer)
		request.ExcludedWeekdays = []int{}

		plan, err := Build(request, testRoster(), defaults)

		require.NoError(t, err)
		assert.Equal(t, model.StrategyDivideAndConquer, plan.Strategy)
		assert.Len(t, plan.Config.WorkingDays, 5)
	})
}

func TestBuildRejects(t *testing.T) {
	scenarios := map[string]struct {
		mutate func(request *ScheduleRequest)
		field  string
	}{
		"Missing start date":    {func(request *ScheduleRequest) { request.StartDate = "" }, "StartDate"},
		"Malformed date":        {func(request *ScheduleRequest) { request.EndDate = "09/03/2025" }, "EndDate"},
		"Inverted dates":        {func(request *ScheduleRequest) { request.StartDate, request.EndDate = "2025-03-09", "2025-03-01" }, "EndDate"},
		"Weekend only":          {func(request *ScheduleRequest) { request.StartDate, request.EndDate = "2025-03-01", "2025-03-02" }, "EndDate"},
		"Weekday out of range":  {func(request *ScheduleRequest) { request.ExcludedWeekdays = []int{7} }, "ExcludedWeekdays[0]"},
		"Malformed time":        {func(request *ScheduleRequest) { request.ApplicationStart = "8am" }, "ApplicationStart"},
		"Inverted window":       {func(request *ScheduleRequest) { request.ApplicationStart = "19:00" }, "ApplicationEnd"},
		"Zero duration":         {func(request *ScheduleRequest) { request.DurationMinutes = 0 }, "DurationMinutes"},
		"Zero concurrency":      {func(request *ScheduleRequest) { request.MaxConcurrent = 0 }, "MaxConcurrent"},
		"Unknown strategy":      {func(request *ScheduleRequest) { request.Strategy = "genetic" }, "Strategy"},
		"Unknown policy":        {func(request *ScheduleRequest) { request.UnknownProfessors = "lenient" }, "UnknownProfessors"},
	}

	for name, scenario := range scenarios {
		t.Run(name, func(t *testing.T) {
			request := validRequest()
			scenario.mutate(&request)

			_, err := Build(request, testRoster(), defaults)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, scenario.field, validationErr.Field)
		})
	}

	t.Run("Empty roster", func(t *testing.T) {
		_, err := Build(validRequest(), model.RosterInput{}, defaults)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "Teams", validationErr.Field)
	})
}

func TestParseWeekdays(t *testing.T) {
	weekdays, err := ParseWeekdays("0, 6,6")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, weekdays)

	weekdays, err = ParseWeekdays("")
	require.NoError(t, err)
	assert.Empty(t, weekdays)

	_, err = ParseWeekdays("1x")
	assert.Error(t, err)
	_, err = ParseWeekdays("7")
	assert.Error(t, err)
}
