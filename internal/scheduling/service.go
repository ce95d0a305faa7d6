package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/limaJavier/interview-scheduling/internal/metrics"
	"github.com/limaJavier/interview-scheduling/internal/report"
	"github.com/limaJavier/interview-scheduling/internal/request"
	"github.com/limaJavier/interview-scheduling/internal/roster"
	"github.com/limaJavier/interview-scheduling/pkg/model"
)

// Service runs scheduling requests end to end: validation, scheduling, verification, reporting and instrumentation
type Service struct {
	repository roster.Repository
	defaults   request.Defaults
	recorder   *metrics.Recorder
	logger     *zap.Logger
}

func NewService(repository roster.Repository, defaults request.Defaults, recorder *metrics.Recorder, logger *zap.Logger) *Service {
	return &Service{
		repository: repository,
		defaults:   defaults,
		recorder:   recorder,
		logger:     logger.With(zap.String("component", "scheduling")),
	}
}

// Run schedules the teams stored in the repository
func (service *Service) Run(ctx context.Context, req request.ScheduleRequest) (report.Report, error) {
	input, err := roster.Roster(ctx, service.repository)
	if err != nil {
		return report.Report{}, err
	}
	return service.RunRoster(ctx, req, input)
}

// RunRoster schedules the teams of input, ignoring the repository
func (service *Service) RunRoster(ctx context.Context, req request.ScheduleRequest, input model.RosterInput) (report.Report, error) {
	//** Validate request
	plan, err := request.Build(req, input, service.defaults)
	if err != nil {
		return report.Report{}, err
	}
	scheduler, err := model.NewScheduler(plan.Strategy)
	if err != nil {
		return report.Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return report.Report{}, err
	}

	//** Schedule
	runID := uuid.NewString()
	start := time.Now()
	result, err := scheduler.Schedule(plan.Config)
	elapsed := time.Since(start)
	if err != nil {
		service.logger.Warn("scheduling_rejected", zap.String("run_id", runID), zap.Error(err))
		return report.Report{}, err
	}

	//** Verify and report
	verified := scheduler.Verify(result, plan.Config)
	if !verified {
		service.logger.Error("scheduling_verification_failed", zap.String("run_id", runID), zap.String("strategy", string(plan.Strategy)))
	}

	rep, err := report.New(report.Run{
		ID:       runID,
		Strategy: plan.Strategy,
		Config:   plan.Config,
		Result:   result,
		Verified: verified,
		Elapsed:  elapsed,
	})
	if err != nil {
		return report.Report{}, err
	}

	reasons := lo.CountValuesBy(rep.Unscheduled, func(team report.Unscheduled) string { return team.Reason })
	service.recorder.ObserveRun(string(plan.Strategy), verified, len(result.Scheduled), reasons, elapsed)
	service.logger.Info("scheduling_run",
		zap.String("run_id", runID),
		zap.String("strategy", string(plan.Strategy)),
		zap.Int("placed", len(result.Scheduled)),
		zap.Int("unplaced", len(result.Unscheduled)),
		zap.Int("working_days", len(plan.Config.WorkingDays)),
		zap.Duration("elapsed", elapsed),
	)

	return rep, nil
}
