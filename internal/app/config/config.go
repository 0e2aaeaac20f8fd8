// Package config builds the process-wide configuration from environment
// variables. The resulting Config value is constructed once in main and
// passed to every component that needs it; no package reads the environment
// on its own.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates all runtime settings for the server process.
type Config struct {
	ServerAddr string
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Session    SessionConfig
	Mail       MailConfig
	Tracking   TrackingConfig
}

// DBConfig holds the MySQL connection settings.
type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	// Migrate runs GORM auto-migration on startup when true.
	Migrate bool
}

// RedisConfig holds the Redis connection settings. An empty Host disables
// Redis; the server then falls back to MySQL sessions and uncached reads.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// JWTConfig holds the access token signing settings.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// SessionConfig holds the refresh-token session settings.
type SessionConfig struct {
	TTL time.Duration
	// MaxPerUser caps concurrent active sessions; the oldest is evicted
	// when a login would exceed it.
	MaxPerUser int
}

// MailConfig holds the SES sender settings. Leaving Region or From empty
// switches the mailer to the log-only fallback.
type MailConfig struct {
	Region string
	From   string
	// SendsPerMinute throttles outbound reset-code emails.
	SendsPerMinute int
}

// TrackingConfig holds the daily-record settings.
type TrackingConfig struct {
	// Timezone is the IANA zone name used to compute the calendar-day
	// boundary for daily records.
	Timezone string
	// WeeklyCacheTTL bounds how long the trailing-week read may be served
	// from cache.
	WeeklyCacheTTL time.Duration
}

// Location resolves the configured timezone name.
func (t TrackingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid tracking timezone %q: %w", t.Timezone, err)
	}
	return loc, nil
}

// Load reads configuration from the environment, applying defaults for
// everything except credentials.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_NAME", "wellness")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("JWT_EXPIRATION", 15*time.Minute)
	v.SetDefault("SESSION_TTL", 7*24*time.Hour)
	v.SetDefault("SESSION_MAX_PER_USER", 5)
	v.SetDefault("MAIL_SENDS_PER_MINUTE", 30)
	v.SetDefault("TRACKING_TIMEZONE", "UTC")
	v.SetDefault("TRACKING_WEEKLY_CACHE_TTL", time.Minute)
	v.AutomaticEnv()

	cfg := Config{
		ServerAddr: v.GetString("SERVER_ADDR"),
		DB: DBConfig{
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			Migrate:  v.GetBool("RUN_MIGRATIONS"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetDuration("JWT_EXPIRATION"),
		},
		Session: SessionConfig{
			TTL:        v.GetDuration("SESSION_TTL"),
			MaxPerUser: v.GetInt("SESSION_MAX_PER_USER"),
		},
		Mail: MailConfig{
			Region:         v.GetString("AWS_REGION"),
			From:           v.GetString("SES_EMAIL"),
			SendsPerMinute: v.GetInt("MAIL_SENDS_PER_MINUTE"),
		},
		Tracking: TrackingConfig{
			Timezone:       v.GetString("TRACKING_TIMEZONE"),
			WeeklyCacheTTL: v.GetDuration("TRACKING_WEEKLY_CACHE_TTL"),
		},
	}

	if _, err := cfg.Tracking.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
