package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/limaJavier/interview-scheduling/internal/metrics"
	"github.com/limaJavier/interview-scheduling/internal/request"
	"github.com/limaJavier/interview-scheduling/internal/roster"
	"github.com/limaJavier/interview-scheduling/pkg/model"
)

var defaults = request.Defaults{
	Strategy:          model.StrategyGreedy,
	UnknownProfessors: model.UnknownProfessorPermissive,
	ExcludedWeekdays:  []time.Weekday{time.Saturday, time.Sunday},
}

func weekRequest() request.ScheduleRequest {
	return request.ScheduleRequest{
		StartDate:        "2025-03-03",
		EndDate:          "2025-03-09",
		ApplicationStart: "08:00",
		ApplicationEnd:   "19:00",
		DurationMinutes:  120,
		MaxConcurrent:    2,
	}
}

func newTestService(t *testing.T) (*Service, *metrics.Recorder, *observer.ObservedLogs) {
	repository := roster.NewMemoryRepository()
	_, err := roster.Seed(context.Background(), repository, roster.DefaultProfessors(), roster.DefaultTeams())
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	recorder := metrics.NewRecorder()
	return NewService(repository, defaults, recorder, zap.New(core)), recorder, logs
}

func TestRun(t *testing.T) {
	for _, strategy := range model.Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			//** Arrange
			service, recorder, logs := newTestService(t)
			req := weekRequest()
			req.Strategy = string(strategy)

			//** Act
			rep, err := service.Run(context.Background(), req)

			//** Assert
			require.NoError(t, err)
			assert.NotEmpty(t, rep.RunID)
			assert.True(t, rep.Verified)
			assert.Equal(t, 8, rep.Stats.Scheduled)
			assert.Empty(t, rep.Unscheduled)
			count, err := testutil.GatherAndCount(recorder.Gatherer(), "scheduling_runs_total")
			require.NoError(t, err)
			assert.Equal(t, 1, count)
			assert.Equal(t, 1, logs.FilterMessage("scheduling_run").Len())
		})
	}
}

func TestRunRosterReportsFailures(t *testing.T) {
	//** Arrange
	service, _, _ := newTestService(t)
	input := model.RosterInput{
		Professors: []model.Professor{
			{Name: "A", AvailableStart: 420, AvailableEnd: 480},
			{Name: "B", AvailableStart: 600, AvailableEnd: 660},
		},
		Teams: []model.Team{{Id: 1, Professors: []string{"A", "B", "A"}}},
	}

	//** Act
	rep, err := service.RunRoster(context.Background(), weekRequest(), input)

	//** Assert
	require.NoError(t, err)
	require.Len(t, rep.Unscheduled, 1)
	assert.Equal(t, string(model.ReasonInsufficientProfessorOverlap), rep.Unscheduled[0].Reason)
}

func TestRunReportsStoredRepeatedProfessor(t *testing.T) {
	//** Arrange
	repository := roster.NewMemoryRepository()
	_, err := roster.Seed(context.Background(), repository, roster.DefaultProfessors(), roster.DefaultTeams())
	require.NoError(t, err)
	team, err := repository.AddTeam(context.Background(), []string{"Lucas", "Anselmo", "Lucas"})
	require.NoError(t, err)
	service := NewService(repository, defaults, metrics.NewRecorder(), zap.NewNop())

	//** Act
	rep, err := service.Run(context.Background(), weekRequest())

	//** Assert
	require.NoError(t, err)
	assert.True(t, rep.Verified)
	assert.Equal(t, 8, rep.Stats.Scheduled)
	require.Len(t, rep.Unscheduled, 1)
	assert.Equal(t, team.Id, rep.Unscheduled[0].Team)
	assert.Equal(t, string(model.ReasonDuplicateProfessor), rep.Unscheduled[0].Reason)
}

func TestRunRejects(t *testing.T) {
	service, _, _ := newTestService(t)

	t.Run("Invalid request", func(t *testing.T) {
		req := weekRequest()
		req.MaxConcurrent = 0

		_, err := service.Run(context.Background(), req)

		var validationErr *request.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("Strict unknown professors", func(t *testing.T) {
		req := weekRequest()
		req.UnknownProfessors = "strict"
		input := model.RosterInput{Teams: []model.Team{{Id: 1, Professors: []string{"X", "Y", "Z"}}}}

		_, err := service.RunRoster(context.Background(), req, input)

		var integrityErr *model.DataIntegrityError
		assert.True(t, errors.As(err, &integrityErr))
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.Run(ctx, weekRequest())

		assert.ErrorIs(t, err, context.Canceled)
	})
}
