// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings for the lead archive.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// RedisConfig provides connection settings for the lead slot and task broker.
type RedisConfig interface {
	GetRedisURL() string
}

// LeadStoreConfig provides settings for the consume-once lead slot.
type LeadStoreConfig interface {
	RedisConfig
	GetLeadSlotTTL() time.Duration
}

// LocationConfig provides settings for the external ZIP place-name lookup.
type LocationConfig interface {
	GetZipLookupBaseURL() string
	GetZipLookupTimeout() time.Duration
}

// IntakeConfig provides settings for the intake conversation.
type IntakeConfig interface {
	GetNarrationDelay() time.Duration
	GetSessionTTL() time.Duration
	GetDefaultFlow() string
}

// HandoffConfig provides the three completion targets of the funnel.
type HandoffConfig interface {
	GetSpecialistPhoneURI() string
	GetBookingURL() string
	GetInventoryURL() string
}

// SchedulerConfig provides settings for follow-up task scheduling.
type SchedulerConfig interface {
	RedisConfig
	GetAsynqQueueName() string
	GetFollowUpDelay() time.Duration
}

// =============================================================================
// Config
// =============================================================================

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll bool
	CORSOrigins  []string

	RedisURL    string
	LeadSlotTTL time.Duration

	// DatabaseURL is optional: when empty the lead archive is disabled and
	// the funnel runs on Redis alone.
	DatabaseURL string

	ZipLookupBaseURL string
	ZipLookupTimeout time.Duration

	NarrationDelay time.Duration
	SessionTTL     time.Duration
	DefaultFlow    string

	SpecialistPhoneURI string
	BookingURL         string
	InventoryURL       string

	AsynqQueue    string
	FollowUpDelay time.Duration
}

// Load reads configuration from the environment (and an optional .env file)
// and validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	leadSlotTTL, err := getDuration("LEAD_SLOT_TTL", "24h")
	if err != nil {
		return nil, err
	}
	zipLookupTimeout, err := getDuration("ZIP_LOOKUP_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	narrationDelay, err := getDuration("NARRATION_DELAY", "900ms")
	if err != nil {
		return nil, err
	}
	sessionTTL, err := getDuration("SESSION_TTL", "2h")
	if err != nil {
		return nil, err
	}
	followUpDelay, err := getDuration("FOLLOW_UP_DELAY", "15m")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		CORSAllowAll: corsAllowAll,
		CORSOrigins:  corsOrigins,

		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		LeadSlotTTL: leadSlotTTL,

		DatabaseURL: getEnv("DATABASE_URL", ""),

		ZipLookupBaseURL: getEnv("ZIP_LOOKUP_BASE_URL", "https://api.zippopotam.us/us"),
		ZipLookupTimeout: zipLookupTimeout,

		NarrationDelay: narrationDelay,
		SessionTTL:     sessionTTL,
		DefaultFlow:    getEnv("DEFAULT_FLOW", "scripted"),

		SpecialistPhoneURI: getEnv("SPECIALIST_PHONE_URI", "tel:+18005550139"),
		BookingURL:         getEnv("BOOKING_URL", "/book-virtual-survey"),
		InventoryURL:       getEnv("INVENTORY_URL", "/moving-details"),

		AsynqQueue:    getEnv("ASYNQ_QUEUE", "default"),
		FollowUpDelay: followUpDelay,
	}

	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}
	if cfg.DefaultFlow != "scripted" && cfg.DefaultFlow != "focus" {
		return nil, fmt.Errorf("DEFAULT_FLOW must be 'scripted' or 'focus', got %q", cfg.DefaultFlow)
	}
	if cfg.LeadSlotTTL <= 0 {
		return nil, fmt.Errorf("LEAD_SLOT_TTL must be a positive duration")
	}
	if cfg.ZipLookupTimeout <= 0 {
		return nil, fmt.Errorf("ZIP_LOOKUP_TIMEOUT must be a positive duration")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be a positive duration")
	}
	if cfg.FollowUpDelay <= 0 {
		return nil, fmt.Errorf("FOLLOW_UP_DELAY must be a positive duration")
	}
	if cfg.NarrationDelay < 0 {
		return nil, fmt.Errorf("NARRATION_DELAY must not be negative")
	}

	return cfg, nil
}

// =============================================================================
// Interface implementations
// =============================================================================

func (c *Config) GetHTTPAddr() string     { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool   { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

func (c *Config) GetRedisURL() string          { return c.RedisURL }
func (c *Config) GetLeadSlotTTL() time.Duration { return c.LeadSlotTTL }

func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// IsArchiveEnabled reports whether completed leads should also be written to
// Postgres.
func (c *Config) IsArchiveEnabled() bool { return c.DatabaseURL != "" }

func (c *Config) GetZipLookupBaseURL() string        { return c.ZipLookupBaseURL }
func (c *Config) GetZipLookupTimeout() time.Duration { return c.ZipLookupTimeout }

func (c *Config) GetNarrationDelay() time.Duration { return c.NarrationDelay }
func (c *Config) GetSessionTTL() time.Duration     { return c.SessionTTL }
func (c *Config) GetDefaultFlow() string           { return c.DefaultFlow }

func (c *Config) GetSpecialistPhoneURI() string { return c.SpecialistPhoneURI }
func (c *Config) GetBookingURL() string         { return c.BookingURL }
func (c *Config) GetInventoryURL() string       { return c.InventoryURL }

func (c *Config) GetAsynqQueueName() string       { return c.AsynqQueue }
func (c *Config) GetFollowUpDelay() time.Duration { return c.FollowUpDelay }

// =============================================================================
// Helpers
// =============================================================================

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getDuration(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
