package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"gamecodex/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"CODEX_ADDR", "CODEX_DB_DSN", "CODEX_SQLITE_PATH", "CODEX_AUTO_MIGRATE", "CODEX_MAX_BODY_KB"} {
		t.Setenv(key, "")
	}
	cfg := loadConfig()
	if cfg.Addr != ":8080" || cfg.MigrationsDir != "./migrations" || !cfg.AutoMigrate || cfg.MaxBodyKB != 64 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("CODEX_ADDR", "127.0.0.1:9000")
	t.Setenv("CODEX_AUTO_MIGRATE", "false")
	t.Setenv("CODEX_MAX_BODY_KB", "not-a-number")
	cfg := loadConfig()
	if cfg.Addr != "127.0.0.1:9000" || cfg.AutoMigrate {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.MaxBodyKB != 64 {
		t.Fatalf("invalid int should fall back: got=%d want=64", cfg.MaxBodyKB)
	}
}

func TestResolveDataFS_UsesDirWhenSet(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "monsters.yaml"), []byte("[]\n"), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	if _, err := fs.Stat(resolveDataFS(dir), "monsters.yaml"); err != nil {
		t.Fatalf("expected table from dir: %v", err)
	}
	if _, err := fs.Stat(resolveDataFS(""), "potions.yaml"); err != nil {
		t.Fatalf("expected embedded tables: %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]hlog.Level{
		"":      hlog.LevelInfo,
		"DEBUG": hlog.LevelDebug,
		"warn":  hlog.LevelWarn,
		"error": hlog.LevelError,
		"bogus": hlog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestBuildSettingsStore_Precedence(t *testing.T) {
	ctx := context.Background()
	store, err := buildSettingsStore(ctx, config{})
	if err != nil || store.name != "memory" {
		t.Fatalf("expected memory store, got %q err=%v", store.name, err)
	}

	path := filepath.Join(t.TempDir(), "codex.db")
	store, err = buildSettingsStore(ctx, config{SQLitePath: path, AutoMigrate: true, MigrationsDir: "../../migrations"})
	if err != nil || store.name != "sqlite "+path {
		t.Fatalf("expected sqlite store, got %q err=%v", store.name, err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sqlite file not created: %v", err)
	}
	if _, err := store.repo.GetByProfileID(ctx, "nobody"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected migrated empty table, got %v", err)
	}
}
