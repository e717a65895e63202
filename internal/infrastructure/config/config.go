package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"barberapp/internal/infrastructure/i18n"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
	StorageBolt     = "bolt"

	// DevJWTSecret is only meant for local runs; Load keeps it when JWT_SECRET is unset.
	DevJWTSecret = "barberapp-dev-secret"
)

// Config holds application configuration
type Config struct {
	Port              string
	StorageDriver     string
	BoltPath          string
	ServicesTable     string
	AppointmentsTable string
	SeedData          bool

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	LatencyMin         time.Duration
	LatencyMax         time.Duration
	LatencyFailureRate float64

	DefaultLocale string

	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	JWTExpiry     time.Duration

	// parseErrs collects variables that were set but could not be parsed.
	parseErrs []error
}

func Load() *Config {
	env := &envReader{}
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		StorageDriver:     strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", StorageMemory))),
		BoltPath:          getEnv("BOLT_PATH", "barberapp.db"),
		ServicesTable:     getEnv("SERVICES_TABLE", "services"),
		AppointmentsTable: getEnv("APPOINTMENTS_TABLE", "appointments"),
		SeedData:          env.getAsBool("SEED_DATA", false),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   getEnv("DYNAMODB_ENDPOINT", ""),

		LatencyMin:         env.getAsDuration("LATENCY_MIN", 150*time.Millisecond),
		LatencyMax:         env.getAsDuration("LATENCY_MAX", 500*time.Millisecond),
		LatencyFailureRate: env.getAsFloat("LATENCY_FAILURE_RATE", 0),

		DefaultLocale: strings.ToLower(getEnv("DEFAULT_LOCALE", "en")),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@admin.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "123123"),
		JWTSecret:     getEnv("JWT_SECRET", DevJWTSecret),
		JWTExpiry:     time.Duration(env.getAsInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
	}
	cfg.parseErrs = env.errs
	return cfg
}

// Validate reports every setting the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	switch c.StorageDriver {
	case StorageMemory, StorageDynamoDB, StorageBolt:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q is not one of memory, dynamodb, bolt", c.StorageDriver))
	}
	if c.StorageDriver == StorageBolt && strings.TrimSpace(c.BoltPath) == "" {
		errs = append(errs, errors.New("BOLT_PATH is required for the bolt driver"))
	}
	if c.LatencyMin < 0 || c.LatencyMax < 0 {
		errs = append(errs, errors.New("LATENCY_MIN and LATENCY_MAX must not be negative"))
	}
	if c.LatencyFailureRate < 0 || c.LatencyFailureRate > 1 {
		errs = append(errs, fmt.Errorf("LATENCY_FAILURE_RATE %v must be within [0, 1]", c.LatencyFailureRate))
	}
	if c.JWTExpiry <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRY_HOURS must be positive"))
	}
	if len(c.AdminPassword) < 6 {
		errs = append(errs, errors.New("ADMIN_PASSWORD must be at least 6 characters"))
	}
	if base, _, _ := strings.Cut(c.DefaultLocale, "-"); !slices.Contains(i18n.Locales(), base) {
		errs = append(errs, fmt.Errorf("DEFAULT_LOCALE %q is not one of %s", c.DefaultLocale, strings.Join(i18n.Locales(), ", ")))
	}
	errs = append(errs, c.parseErrs...)
	return errors.Join(errs...)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envReader parses typed variables. A set but malformed value keeps the
// default and is recorded for Validate.
type envReader struct {
	errs []error
}

func (r *envReader) fail(key, value, want string) {
	r.errs = append(r.errs, fmt.Errorf("%s %q is not a valid %s", key, value, want))
}

func (r *envReader) getAsInt(key string, defaultValue int) int {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.fail(key, valueStr, "integer")
		return defaultValue
	}
	return value
}

func (r *envReader) getAsFloat(key string, defaultValue float64) float64 {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		r.fail(key, valueStr, "number")
		return defaultValue
	}
	return value
}

func (r *envReader) getAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		r.fail(key, valueStr, "boolean")
		return defaultValue
	}
	return value
}

// getAsDuration accepts Go durations ("250ms") or a bare number of milliseconds.
func (r *envReader) getAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	r.fail(key, valueStr, "duration")
	return defaultValue
}
