// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Output   OutputConfig
	Password PasswordConfig
	Audit    AuditConfig
}

// AppConfig holds general application configuration.
type AppConfig struct {
	Environment          string
	AllowNamePunctuation bool
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level slog.Level
	// File receives the JSON log. Empty means stderr.
	File string
}

// OutputConfig holds transcript output configuration.
type OutputConfig struct {
	Dir  string `validate:"required"`
	Mode string `validate:"oneof=both file console"`
}

// PasswordConfig holds password hashing configuration.
type PasswordConfig struct {
	Hasher        string `validate:"oneof=bcrypt argon2id"`
	BcryptCost    int    `validate:"min=4,max=31"`
	Argon2Time    uint32 `validate:"min=1"`
	Argon2Memory  uint32 `validate:"min=8"`
	Argon2Threads uint8  `validate:"min=1"`
}

// AuditConfig holds the rejection audit database configuration.
type AuditConfig struct {
	Enabled         bool
	URL             string `validate:"required_if=Enabled true"`
	MaxOpenConns    int    `validate:"min=1"`
	MaxIdleConns    int    `validate:"min=0"`
	ConnMaxLifetime time.Duration
	WriteTimeout    time.Duration
}

// IsPostgres reports whether URL points at a PostgreSQL server rather than a SQLite file.
func (c AuditConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://")
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment:          getEnv("ENV", "development"),
			AllowNamePunctuation: getEnvAsBool("NAME_ALLOW_PUNCTUATION", false),
		},
		Log: LogConfig{
			Level: getEnvAsLogLevel("LOG_LEVEL", slog.LevelInfo),
			File:  getEnv("LOG_FILE", "logs/form.log"),
		},
		Output: OutputConfig{
			Dir:  getEnv("OUTPUT_DIR", "output"),
			Mode: strings.ToLower(getEnv("OUTPUT_MODE", "both")),
		},
		Password: PasswordConfig{
			Hasher:        strings.ToLower(getEnv("PASSWORD_HASHER", "bcrypt")),
			BcryptCost:    getEnvAsInt("BCRYPT_COST", 10),
			Argon2Time:    uint32(getEnvAsInt("ARGON2_TIME", 1)),
			Argon2Memory:  uint32(getEnvAsInt("ARGON2_MEMORY_KB", 64*1024)),
			Argon2Threads: uint8(getEnvAsInt("ARGON2_THREADS", 4)),
		},
		Audit: AuditConfig{
			Enabled:         getEnvAsBool("AUDIT_ENABLED", false),
			URL:             getEnv("AUDIT_DATABASE_URL", "logs/audit.db"),
			MaxOpenConns:    getEnvAsInt("AUDIT_DB_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    getEnvAsInt("AUDIT_DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("AUDIT_DB_CONN_MAX_LIFETIME", 5*time.Minute),
			WriteTimeout:    getEnvAsDuration("AUDIT_WRITE_TIMEOUT", 2*time.Second),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsLogLevel(key string, defaultValue slog.Level) slog.Level {
	if value, exists := os.LookupEnv(key); exists {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
