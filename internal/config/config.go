package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env      string
	HTTPAddr string

	Log       LogConfig
	Database  DatabaseConfig
	Scheduler SchedulerConfig
	Metrics   MetricsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	Driver       string // memory, sqlite or postgres
	DSN          string
	MaxOpenConns int
}

type SchedulerConfig struct {
	Strategy          model.Strategy
	UnknownProfessors model.UnknownProfessorPolicy
	ExcludedWeekdays  []time.Weekday
	SeedRoster        bool
}

type MetricsConfig struct {
	Enabled  bool
	Textfile string
}

// Load reads the configuration from the environment and an optional .env file in the working directory
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit .env path. Environment variables win over the file
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load(path)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.HTTPAddr = v.GetString("HTTP_ADDR")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Database = DatabaseConfig{
		Driver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DSN:          v.GetString("DB_DSN"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
	}
	switch cfg.Database.Driver {
	case "memory", "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("DB_DRIVER must be memory, sqlite or postgres: %q", cfg.Database.Driver)
	}

	strategy, err := model.ParseStrategy(v.GetString("SCHEDULER_STRATEGY"))
	if err != nil {
		return nil, fmt.Errorf("SCHEDULER_STRATEGY: %w", err)
	}
	policy, err := model.ParseUnknownProfessorPolicy(v.GetString("SCHEDULER_UNKNOWN_PROFESSORS"))
	if err != nil {
		return nil, fmt.Errorf("SCHEDULER_UNKNOWN_PROFESSORS: %w", err)
	}
	weekdays, err := parseWeekdays(v.GetString("SCHEDULER_EXCLUDED_WEEKDAYS"))
	if err != nil {
		return nil, fmt.Errorf("SCHEDULER_EXCLUDED_WEEKDAYS: %w", err)
	}
	cfg.Scheduler = SchedulerConfig{
		Strategy:          strategy,
		UnknownProfessors: policy,
		ExcludedWeekdays:  weekdays,
		SeedRoster:        v.GetBool("SEED_ROSTER"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled:  v.GetBool("METRICS_ENABLED"),
		Textfile: v.GetString("METRICS_TEXTFILE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("HTTP_ADDR", ":8080")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("DB_DRIVER", "memory")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)

	v.SetDefault("SCHEDULER_STRATEGY", string(model.StrategyGreedy))
	v.SetDefault("SCHEDULER_UNKNOWN_PROFESSORS", "permissive")
	v.SetDefault("SCHEDULER_EXCLUDED_WEEKDAYS", "0,6")
	v.SetDefault("SEED_ROSTER", true)

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_TEXTFILE", "")
}

func parseWeekdays(raw string) ([]time.Weekday, error) {
	parts := splitAndTrim(raw)
	weekdays := make([]time.Weekday, 0, len(parts))
	for _, part := range parts {
		day, err := strconv.Atoi(part)
		if err != nil || day < 0 || day > 6 {
			return nil, fmt.Errorf("%q is not a weekday number between 0 and 6", part)
		}
		weekdays = append(weekdays, time.Weekday(day))
	}
	return weekdays, nil
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
