package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

func TestLoadDefaults(t *testing.T) {
	//** Act
	cfg, err := LoadFile(filepath.Join(t.TempDir(), ".env"))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, model.StrategyGreedy, cfg.Scheduler.Strategy)
	assert.Equal(t, model.UnknownProfessorPermissive, cfg.Scheduler.UnknownProfessors)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, cfg.Scheduler.ExcludedWeekdays)
	assert.True(t, cfg.Scheduler.SeedRoster)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	//** Arrange
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_DSN", "roster.db")
	t.Setenv("SCHEDULER_STRATEGY", "divide-and-conquer")
	t.Setenv("SCHEDULER_UNKNOWN_PROFESSORS", "strict")
	t.Setenv("SCHEDULER_EXCLUDED_WEEKDAYS", "")
	t.Setenv("METRICS_TEXTFILE", "/tmp/scheduler.prom")

	//** Act
	cfg, err := LoadFile(filepath.Join(t.TempDir(), ".env"))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "roster.db", cfg.Database.DSN)
	assert.Equal(t, model.StrategyDivideAndConquer, cfg.Scheduler.Strategy)
	assert.Equal(t, model.UnknownProfessorStrict, cfg.Scheduler.UnknownProfessors)
	assert.Empty(t, cfg.Scheduler.ExcludedWeekdays)
	assert.Equal(t, "/tmp/scheduler.prom", cfg.Metrics.Textfile)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:9090\nLOG_FORMAT=console\nSEED_ROSTER=false\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("LOG_FORMAT")
		os.Unsetenv("SEED_ROSTER")
	})

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Scheduler.SeedRoster)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	scenarios := map[string][2]string{
		"Driver":   {"DB_DRIVER", "mysql"},
		"Strategy": {"SCHEDULER_STRATEGY", "genetic"},
		"Policy":   {"SCHEDULER_UNKNOWN_PROFESSORS", "lenient"},
		"Weekdays": {"SCHEDULER_EXCLUDED_WEEKDAYS", "0,9"},
	}
	for name, variable := range scenarios {
		t.Run(name, func(t *testing.T) {
			t.Setenv(variable[0], variable[1])

			_, err := LoadFile(filepath.Join(t.TempDir(), ".env"))

			assert.Error(t, err)
		})
	}
}
