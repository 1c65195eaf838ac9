// Package config provides application configuration loaded from environment
// variables, with .env support for local development.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// DatabaseDSN selects the storage backend. The default keeps every
	// collection in a shared in-memory sqlite database; a postgres:// or
	// key=value DSN switches to the postgres driver.
	DatabaseDSN string
	// SessionFile is where the signed session state is persisted so a
	// restart does not require re-authentication.
	SessionFile string
	// SessionSecret keys the HMAC signature over the persisted session.
	SessionSecret string
	Env           string
	Seed          bool
}

// Load reads configuration from the environment with sensible defaults.
// Precedence: explicit env var > .env file > default.
func Load() Config {
	_ = godotenv.Load()
	cfg := Config{}
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "file::memory:?cache=shared")
	cfg.SessionFile = getEnv("SESSION_FILE", filepath.Join(".rentdesk", "rental_auth"))
	cfg.SessionSecret = getEnv("SESSION_SECRET", "devsessionsecret")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.Seed = ParseBool("DB_SEED", true)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
