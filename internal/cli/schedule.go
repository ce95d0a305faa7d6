package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/interview-scheduling/internal/report"
	"github.com/limaJavier/interview-scheduling/internal/request"
	"github.com/limaJavier/interview-scheduling/internal/scheduling"
	"github.com/limaJavier/interview-scheduling/pkg/model"
)

func newScheduleCmd() *cobra.Command {
	var (
		flagRoster            string
		flagFrom              string
		flagTo                string
		flagStart             string
		flagEnd               string
		flagDuration          int
		flagConcurrent        int
		flagStrategy          string
		flagExclude           string
		flagUnknown           string
		flagFormat            string
		flagOut               string
		flagMetricsFile       string
		flagFailOnUnscheduled bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule every team and print the report",
		Example: `  interviews schedule --from 2025-03-03 --to 2025-03-07 --start 08:00 --end 18:00 --duration 120 --concurrent 2
  interviews schedule --roster roster.yaml --from 2025-03-03 --to 2025-03-14 --strategy divide-and-conquer --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(flagFormat)
			if err != nil {
				return err
			}

			//** Build request
			req := request.ScheduleRequest{
				StartDate:         flagFrom,
				EndDate:           flagTo,
				ApplicationStart:  flagStart,
				ApplicationEnd:    flagEnd,
				DurationMinutes:   flagDuration,
				MaxConcurrent:     flagConcurrent,
				Strategy:          flagStrategy,
				UnknownProfessors: flagUnknown,
			}
			if cmd.Flags().Changed("exclude") {
				weekdays, err := request.ParseWeekdays(flagExclude)
				if err != nil {
					return err
				}
				req.ExcludedWeekdays = make([]int, 0, len(weekdays))
				for _, weekday := range weekdays {
					req.ExcludedWeekdays = append(req.ExcludedWeekdays, int(weekday))
				}
			}

			//** Run
			repository, closeRepository, err := openRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer closeRepository()

			recorder := newRecorder()
			service := scheduling.NewService(repository, requestDefaults(), recorder, log)

			var rep report.Report
			if flagRoster != "" {
				input, err := model.InputFromFile(flagRoster)
				if err != nil {
					return fmt.Errorf("cannot parse roster file: %w", err)
				}
				rep, err = service.RunRoster(cmd.Context(), req, input)
				if err != nil {
					return err
				}
			} else if rep, err = service.Run(cmd.Context(), req); err != nil {
				return err
			}

			//** Write report
			var out io.Writer = cmd.OutOrStdout()
			if flagOut != "" {
				file, err := os.Create(flagOut)
				if err != nil {
					return fmt.Errorf("cannot create output file: %w", err)
				}
				defer file.Close()
				out = file
			}
			if err := report.Write(out, rep, format); err != nil {
				return fmt.Errorf("cannot write report: %w", err)
			}

			textfile := cfg.Metrics.Textfile
			if flagMetricsFile != "" {
				textfile = flagMetricsFile
			}
			if textfile != "" {
				if err := recorder.WriteTextfile(textfile); err != nil {
					log.Warn("cannot write metrics textfile", zap.String("path", textfile), zap.Error(err))
				}
			}

			if !rep.Verified {
				return &ExitError{Code: ExitUnverified, Message: "the schedule failed verification"}
			} else if flagFailOnUnscheduled && len(rep.Unscheduled) > 0 {
				return &ExitError{Code: ExitUnscheduled, Message: fmt.Sprintf("%d teams could not be scheduled", len(rep.Unscheduled))}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagRoster, "roster", "", "JSON or YAML roster file; the configured repository is used when empty")
	cmd.Flags().StringVar(&flagFrom, "from", "", "First date of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagTo, "to", "", "Last date of the range (YYYY-MM-DD), inclusive")
	cmd.Flags().StringVar(&flagStart, "start", "08:00", "Application window start (HH:MM)")
	cmd.Flags().StringVar(&flagEnd, "end", "18:00", "Application window end (HH:MM)")
	cmd.Flags().IntVar(&flagDuration, "duration", 120, "Interview duration in minutes")
	cmd.Flags().IntVar(&flagConcurrent, "concurrent", 1, "Maximum number of simultaneous interviews")
	cmd.Flags().StringVar(&flagStrategy, "strategy", "", fmt.Sprintf("Scheduling strategy %v, overrides SCHEDULER_STRATEGY", model.Strategies))
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "Comma separated weekday numbers to skip (0 is Sunday), overrides SCHEDULER_EXCLUDED_WEEKDAYS")
	cmd.Flags().StringVar(&flagUnknown, "unknown-professors", "", "How to treat professors missing from the roster (permissive, strict)")
	cmd.Flags().StringVar(&flagFormat, "format", string(report.FormatJSON), fmt.Sprintf("Report format %v", report.Formats))
	cmd.Flags().StringVar(&flagOut, "out", "", "File where the report is written; standard output when empty")
	cmd.Flags().StringVar(&flagMetricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file, overrides METRICS_TEXTFILE")
	cmd.Flags().BoolVar(&flagFailOnUnscheduled, "fail-on-unscheduled", false, fmt.Sprintf("Exit with code %d when some team is left without a slot", ExitUnscheduled))
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}
