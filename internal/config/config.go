// Package config loads and validates application configuration from an
// optional YAML file and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // BOOKING_TIMEZONE must resolve in minimal images

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the API server.
// Values are populated by Load: defaults, then the YAML file named by
// CONFIG_PATH (if any), then environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `yaml:"port"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `yaml:"database_url"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `yaml:"cors_origins"`

	// MaxBodyBytes caps request bodies. Defaults to 5 MiB.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// BookingTimezone is the IANA zone used for dateTime values submitted
	// without an offset. Defaults to "UTC".
	BookingTimezone string `yaml:"booking_timezone"`

	// Location is BookingTimezone resolved by Load.
	Location *time.Location `yaml:"-"`

	// MigrateOnStart applies pending migrations before serving. Defaults to true.
	MigrateOnStart bool `yaml:"migrate_on_start"`

	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig configures the optional Redis cache. An empty Addr disables it.
type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	ListCacheTTL   time.Duration `yaml:"list_cache_ttl"`
	ContactLockTTL time.Duration `yaml:"contact_lock_ttl"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool { return r.Addr != "" }

func defaults() Config {
	return Config{
		Port:            "8080",
		LogLevel:        "info",
		CORSOrigins:     []string{"http://localhost:5173"},
		MaxBodyBytes:    5 << 20,
		BookingTimezone: "UTC",
		MigrateOnStart:  true,
		Redis: RedisConfig{
			ListCacheTTL:   30 * time.Second,
			ContactLockTTL: 10 * time.Second,
		},
	}
}

// Load builds the Config. It returns an error listing every required
// variable that is not set and every value that cannot be parsed.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	var problems []error

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}
	cfg.BookingTimezone = getEnv("BOOKING_TIMEZONE", cfg.BookingTimezone)
	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)

	parseEnv(&problems, "MAX_BODY_BYTES", &cfg.MaxBodyBytes, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
	parseEnv(&problems, "MIGRATE_ON_START", &cfg.MigrateOnStart, strconv.ParseBool)
	parseEnv(&problems, "REDIS_DB", &cfg.Redis.DB, strconv.Atoi)
	parseEnv(&problems, "LIST_CACHE_TTL", &cfg.Redis.ListCacheTTL, time.ParseDuration)
	parseEnv(&problems, "CONTACT_LOCK_TTL", &cfg.Redis.ContactLockTTL, time.ParseDuration)

	if cfg.DatabaseURL == "" {
		problems = append(problems, errors.New("required environment variables not set: DATABASE_URL"))
	}

	loc, err := time.LoadLocation(cfg.BookingTimezone)
	if err != nil {
		problems = append(problems, fmt.Errorf("BOOKING_TIMEZONE: %w", err))
	}
	cfg.Location = loc

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("config.Load: %w", errors.Join(problems...))
	}
	return cfg, nil
}

// loadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config.Load: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config.Load: parse %s: %w", path, err)
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseEnv parses the variable named key into dst when it is set, recording
// a problem instead when the value is malformed.
func parseEnv[T any](problems *[]error, key string, dst *T, parse func(string) (T, error)) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	parsed, err := parse(v)
	if err != nil {
		*problems = append(*problems, fmt.Errorf("%s: invalid value %q", key, v))
		return
	}
	*dst = parsed
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
