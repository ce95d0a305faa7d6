package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/interview-scheduling/internal/report"
)

// execute runs the root command with args against an isolated environment and returns its standard output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), ".env"), "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func useSQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "roster.db"))
	t.Setenv("METRICS_TEXTFILE", "")
}

func TestScheduleStoredRoster(t *testing.T) {
	useSQLite(t)

	//** Act
	out, err := execute(t, "schedule", "--from", "2025-03-03", "--to", "2025-03-09", "--end", "19:00", "--concurrent", "2")

	//** Assert
	require.NoError(t, err)
	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.Verified)
	assert.Equal(t, 8, rep.Stats.Scheduled)
	assert.Equal(t, 5, rep.Stats.WorkingDays)
}

func TestScheduleRosterFile(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	metricsFile := filepath.Join(t.TempDir(), "scheduler.prom")

	//** Act
	out, err := execute(t, "schedule",
		"--roster", "testdata/roster.yaml",
		"--from", "2025-03-03", "--to", "2025-03-03",
		"--exclude", "",
		"--strategy", "divide-and-conquer",
		"--format", "csv",
		"--metrics-file", metricsFile,
	)

	//** Assert
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	content, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "scheduling_runs_total")
}

func TestScheduleFailOnUnscheduled(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")

	_, err := execute(t, "schedule", "--from", "2025-03-03", "--to", "2025-03-03", "--concurrent", "1", "--fail-on-unscheduled")

	require.Error(t, err)
	assert.Equal(t, ExitUnscheduled, ExitCode(err))
}

func TestScheduleRejectsInvalidInput(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")

	_, err := execute(t, "schedule", "--from", "2025-03-07", "--to", "2025-03-03")
	assert.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))

	_, err = execute(t, "schedule", "--from", "2025-03-03", "--to", "2025-03-07", "--format", "pdf")
	assert.Error(t, err)
}

func TestRosterCommands(t *testing.T) {
	useSQLite(t)

	_, err := execute(t, "professors", "add", "Ana", "08:00", "12:30")
	require.NoError(t, err)
	_, err = execute(t, "professors", "add", "Ana", "08:00", "12:30")
	assert.Error(t, err)

	out, err := execute(t, "teams", "add", "Ana", "Lucas", "Renato")
	require.NoError(t, err)
	assert.Equal(t, "team 9 added\n", out)

	out, err = execute(t, "professors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "12:30")

	_, err = execute(t, "teams", "remove", "9")
	require.NoError(t, err)
	_, err = execute(t, "teams", "remove", "9")
	assert.Error(t, err)

	out, err = execute(t, "teams", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lucrecia, Renato, Lucas")
	assert.NotContains(t, out, "Ana")
}
