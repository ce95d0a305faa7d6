package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/interview-scheduling/internal/config"
	"github.com/limaJavier/interview-scheduling/internal/logger"
	"github.com/limaJavier/interview-scheduling/internal/metrics"
	"github.com/limaJavier/interview-scheduling/internal/request"
	"github.com/limaJavier/interview-scheduling/internal/roster"
)

const (
	// ExitUnverified is returned when a schedule fails its own verification
	ExitUnverified = 15
	// ExitUnscheduled is returned by --fail-on-unscheduled when some team is left without a slot
	ExitUnscheduled = 20
)

// ExitError carries a process exit code up to main
type ExitError struct {
	Code    int
	Message string
}

func (err *ExitError) Error() string {
	return err.Message
}

var (
	flagEnvFile   string
	flagLogLevel  string
	flagLogFormat string

	cfg *config.Config
	log *zap.Logger
)

// NewRootCmd creates the root cobra command for the interview scheduler
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "interviews",
		Short: "Interview slot scheduler",
		Long:  "Schedules three-professor interview teams into time slots over a range of working days.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.LoadFile(flagEnvFile); err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if flagLogLevel != "" {
				cfg.Log.Level = flagLogLevel
			}
			if flagLogFormat != "" {
				cfg.Log.Format = flagLogFormat
			}
			if log, err = logger.New(cfg); err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				log.Sync()
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Path to an optional .env file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error), overrides LOG_LEVEL")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (json, console), overrides LOG_FORMAT")

	root.AddCommand(
		newScheduleCmd(),
		newServeCmd(),
		newProfessorsCmd(),
		newTeamsCmd(),
	)

	return root
}

// ExitCode maps an error returned by the root command to a process exit code
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func requestDefaults() request.Defaults {
	return request.Defaults{
		Strategy:          cfg.Scheduler.Strategy,
		UnknownProfessors: cfg.Scheduler.UnknownProfessors,
		ExcludedWeekdays:  cfg.Scheduler.ExcludedWeekdays,
	}
}

func newRecorder() *metrics.Recorder {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.NewRecorder()
}

// openRepository opens the configured roster store, seeding it with the demo roster when enabled
func openRepository(ctx context.Context) (roster.Repository, func(), error) {
	var (
		repository roster.Repository
		closer     = func() {}
	)

	switch cfg.Database.Driver {
	case "memory":
		repository = roster.NewMemoryRepository()
	default:
		db, err := roster.OpenDatabase(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.MaxOpenConns)
		if err != nil {
			return nil, nil, err
		}
		if err := roster.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		repository = roster.NewSQLRepository(db, log)
		closer = func() { db.Close() }
	}

	if cfg.Scheduler.SeedRoster {
		seeded, err := roster.Seed(ctx, repository, roster.DefaultProfessors(), roster.DefaultTeams())
		if err != nil {
			closer()
			return nil, nil, err
		}
		if seeded {
			log.Info("roster seeded", zap.String("driver", cfg.Database.Driver))
		}
	}

	return repository, closer, nil
}
