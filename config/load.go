package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads the environment, after pulling in ./.env when it exists.
// Variables already set in the process environment win over .env.
func Load() App {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("read .env failed", "err", err)
	}

	cfg := App{
		Addr:         getenv("APP_ADDR", "127.0.0.1:8080"),
		DBPath:       getenv("DB_PATH", "CarGoOwner.db"),
		DeletePolicy: getenv("DELETE_POLICY", "atomic"),
		SeedOnStart:  getbool("SEED_ON_START", true),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		Env:          getenv("APP_ENV", "dev"),
	}
	return cfg
}

// SlogLevel maps LOG_LEVEL onto slog levels; unknown values fall back to info.
func (a App) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env, using default", "key", k, "value", v)
		return def
	}
	return b
}
