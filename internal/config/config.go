package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds the PostgreSQL connection and pool settings.
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string
	Output string // "stdout", "stderr", or a file path
	Pretty bool
}

// AppConfig is the single configuration struct for the application. It is
// populated once from environment variables and injected explicitly into
// the components that need it; nothing reads the environment after startup.
type AppConfig struct {
	AppHost     string
	Port        string
	AdminAPIKey string
	Database    DatabaseConfig
	Log         LogConfig
}

// Load builds the configuration from the process environment. A .env file
// is picked up when main imports godotenv/autoload; real environment
// variables always win over .env entries. AdminAPIKey has no default on
// purpose: the server refuses to start without it.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     envString("APP_HOST", "localhost:8080"),
		Port:        envString("PORT", "8080"),
		AdminAPIKey: envString("ADMIN_API_KEY", ""),
		Database: DatabaseConfig{
			Host:            envString("DB_HOST", ""),
			Port:            envString("DB_PORT", "5432"),
			User:            envString("DB_USER", ""),
			Password:        envString("DB_PASSWORD", ""),
			Name:            envString("DB_NAME", ""),
			SSLMode:         envString("DB_SSLMODE", "disable"),
			MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(envInt("DB_CONN_MAX_LIFETIME_SEC", 300)) * time.Second,
		},
		Log: LogConfig{
			Level:  envString("LOG_LEVEL", "info"),
			Output: envString("LOG_OUTPUT", "stdout"),
			Pretty: envBool("LOG_PRETTY", false),
		},
	}
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
