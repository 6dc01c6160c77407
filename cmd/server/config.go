package main

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gamecodex/internal/gamedata"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type config struct {
	Addr          string
	DBDSN         string
	SQLitePath    string
	MigrationsDir string
	AutoMigrate   bool
	DataDir       string
	LogLevel      string
	MaxBodyKB     int
}

func loadConfig() config {
	return config{
		Addr:          stringEnv("CODEX_ADDR", ":8080"),
		DBDSN:         stringEnv("CODEX_DB_DSN", ""),
		SQLitePath:    stringEnv("CODEX_SQLITE_PATH", ""),
		MigrationsDir: stringEnv("CODEX_MIGRATIONS_DIR", "./migrations"),
		AutoMigrate:   boolEnv("CODEX_AUTO_MIGRATE", true),
		DataDir:       stringEnv("CODEX_DATA_DIR", ""),
		LogLevel:      stringEnv("CODEX_LOG_LEVEL", "info"),
		MaxBodyKB:     intEnv("CODEX_MAX_BODY_KB", 64),
	}
}

// resolveDataFS prefers tables on disk so they can be edited without a rebuild.
func resolveDataFS(dir string) fs.FS {
	if dir == "" {
		return gamedata.Embedded()
	}
	return os.DirFS(dir)
}

func parseLogLevel(raw string) hlog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "warn", "warning":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
