package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	Env           string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func Load() Config {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Port:          getenv("PORT", "5000"),
		DatabaseURL:   normalizeDatabaseURL(os.Getenv("DATABASE_URL")),
		SessionSecret: getenv("SESSION_SECRET", "dev-secret-change-me"),
		Env:           getenv("APP_ENV", "dev"),
	}
}

// Hosted postgres add-ons still hand out URLs with the legacy postgres://
// scheme; lib/pq documents postgresql://.
func normalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

// DriverName selects the database/sql driver for the configured URL.
func (c Config) DriverName() string {
	if strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return "postgres"
	}
	return "sqlite3"
}

// DSN is the data source handed to sql.Open. Without DATABASE_URL the server
// runs against a local sqlite file, which keeps the zero-config path working.
func (c Config) DSN() string {
	if c.DatabaseURL == "" {
		return "peerchat.db"
	}
	return c.DatabaseURL
}
