package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Port               string
	Store              string
	DatabaseURL        string
	DBMaxOpen          int
	DBMaxIdle          int
	DBMaxLifetime      time.Duration
	AutoMigrate        bool
	CorsAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// Load reads the process environment, after an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from lookup, which returns "" for unset keys.
func FromEnv(lookup func(string) string) (Config, error) {
	get := func(key, def string) string {
		v := strings.TrimSpace(lookup(key))
		if v == "" {
			return def
		}
		return v
	}

	var errs []error
	atoi := func(key, def string) int {
		n, err := strconv.Atoi(get(key, def))
		if err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("%s must be a non-negative integer", key))
		}
		return n
	}
	seconds := func(key, def string) time.Duration {
		return time.Duration(atoi(key, def)) * time.Second
	}

	cfg := Config{
		Port:               get("PORT", "4000"),
		Store:              strings.ToLower(get("STORE", StorePostgres)),
		DatabaseURL:        get("DATABASE_URL", ""),
		DBMaxOpen:          atoi("DB_MAX_OPEN", "25"),
		DBMaxIdle:          atoi("DB_MAX_IDLE", "25"),
		DBMaxLifetime:      seconds("DB_MAX_LIFETIME", "300"),
		CorsAllowedOrigins: splitCSV(get("CORS_ALLOWED_ORIGINS", "*")),
		ShutdownTimeout:    seconds("SHUTDOWN_TIMEOUT", "5"),
	}

	migrate, err := strconv.ParseBool(get("DB_AUTO_MIGRATE", "true"))
	if err != nil {
		errs = append(errs, errors.New("DB_AUTO_MIGRATE must be a boolean"))
	}
	cfg.AutoMigrate = migrate

	switch cfg.Store {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE must be %q or %q", StorePostgres, StoreMemory))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
