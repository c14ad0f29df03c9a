package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort      string
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel string

	// AdlClockSkew is how far a capture time may lie past the ingestion time.
	AdlClockSkew time.Duration
	// AutoAssignSchedule is a cron spec with seconds; empty disables the job.
	AutoAssignSchedule string
	CORSOrigins        []string
}

// LoadConfig builds the configuration from an optional .env file, the
// process environment and finally the command-line flags in args.
func LoadConfig(envFile string, args []string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	skew, err := durationEnv("ADL_CLOCK_SKEW", 0)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	flags := pflag.NewFlagSet("dispatch", pflag.ContinueOnError)
	flags.StringVar(&cfg.HTTPPort, "http-port", stringEnv("HTTP_PORT", "8080"), "HTTP listen port")
	flags.StringVar(&cfg.StorageDriver, "storage", stringEnv("STORAGE_DRIVER", StoragePostgres),
		"storage driver: postgres or memory")
	flags.StringVar(&cfg.DBHost, "db-host", stringEnv("DB_HOST", "localhost"), "database host")
	flags.StringVar(&cfg.DBPort, "db-port", stringEnv("DB_PORT", "5432"), "database port")
	flags.StringVar(&cfg.DBUser, "db-user", stringEnv("DB_USER", ""), "database user")
	flags.StringVar(&cfg.DBPassword, "db-password", stringEnv("DB_PASSWORD", ""), "database password")
	flags.StringVar(&cfg.DBName, "db-name", stringEnv("DB_NAME", ""), "database name")
	flags.StringVar(&cfg.DBSslMode, "db-sslmode", stringEnv("DB_SSLMODE", "disable"), "database sslmode")
	flags.StringVar(&cfg.LogLevel, "log-level", stringEnv("LOG_LEVEL", "info"), "debug, info, warn or error")
	flags.DurationVar(&cfg.AdlClockSkew, "adl-clock-skew", skew, "tolerated device clock skew for evidence")
	flags.StringVar(&cfg.AutoAssignSchedule, "auto-assign-schedule", stringEnv("AUTO_ASSIGN_SCHEDULE", ""),
		"cron spec (with seconds) of the auto assign job, empty to disable")
	flags.StringSliceVar(&cfg.CORSOrigins, "cors-origins", listEnv("CORS_ORIGINS"), "allowed CORS origins")

	if err = flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values that have a closed set of options.
func (c Config) Validate() error {
	var errList []error

	if c.StorageDriver != StoragePostgres && c.StorageDriver != StorageMemory {
		errList = append(errList, fmt.Errorf("unknown storage driver %q", c.StorageDriver))
	}
	if c.AdlClockSkew < 0 {
		errList = append(errList, fmt.Errorf("adl clock skew %s is negative", c.AdlClockSkew))
	}
	if _, err := c.SlogLevel(); err != nil {
		errList = append(errList, err)
	}

	return errors.Join(errList...)
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

func stringEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func listEnv(key string) []string {
	var list []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
