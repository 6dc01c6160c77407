package gormrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gamecodex/internal/app/ports"
	settingsapp "gamecodex/internal/app/settings"
	settingsdomain "gamecodex/internal/domain/settings"

	"gorm.io/gorm"
)

func openSQLiteForTest(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "codex.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if _, err := ApplyMigrations(context.Background(), db, os.DirFS("../../../../migrations")); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestApplyMigrations_SQLiteIsIdempotent(t *testing.T) {
	db := openSQLiteForTest(t)
	applied, err := ApplyMigrations(context.Background(), db, os.DirFS("../../../../migrations"))
	if err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("expected nothing to apply twice, got %v", applied)
	}
}

func TestGameSettingsRepo_SQLiteRoundTrip(t *testing.T) {
	repo := NewGameSettingsRepo(openSQLiteForTest(t))
	ctx := context.Background()

	if _, err := repo.GetByProfileID(ctx, "p1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	gs := settingsdomain.GameSettings{
		ProfileID:     "p1",
		TotalPlots:    120,
		Fertilised:    true,
		CauldronLevel: 3,
		Version:       1,
		UpdatedAt:     time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC),
	}
	if err := repo.SaveWithVersion(ctx, gs, 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.GetByProfileID(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.UpdatedAt.Equal(gs.UpdatedAt) {
		t.Fatalf("updated_at mismatch: got=%v want=%v", got.UpdatedAt, gs.UpdatedAt)
	}
	got.UpdatedAt = gs.UpdatedAt
	if got != gs {
		t.Fatalf("round trip mismatch: got=%+v want=%+v", got, gs)
	}
}

func TestGameSettingsRepo_SQLiteConflicts(t *testing.T) {
	repo := NewGameSettingsRepo(openSQLiteForTest(t))
	ctx := context.Background()
	gs := settingsdomain.Defaults("p1")
	gs.Version = 1
	gs.UpdatedAt = time.Now().UTC()
	if err := repo.SaveWithVersion(ctx, gs, 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, gs, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on duplicate create, got %v", err)
	}
	gs.Version = 2
	if err := repo.SaveWithVersion(ctx, gs, 7); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on stale version, got %v", err)
	}
	if err := repo.SaveWithVersion(ctx, gs, 1); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestGameSettingsRepo_SQLiteEnforcesSchemaChecks(t *testing.T) {
	repo := NewGameSettingsRepo(openSQLiteForTest(t))
	gs := settingsdomain.Defaults("p1")
	gs.TotalPlots = 0
	gs.Version = 1
	gs.UpdatedAt = time.Now().UTC()
	err := repo.SaveWithVersion(context.Background(), gs, 0)
	if err == nil || errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected check constraint failure, got %v", err)
	}
}

func TestTxManager_SQLiteRollbackAndUseCase(t *testing.T) {
	db := openSQLiteForTest(t)
	repo := NewGameSettingsRepo(db)
	txm := NewTxManager(db)
	ctx := context.Background()

	wantErr := errors.New("abort")
	err := txm.RunInTx(ctx, func(txCtx context.Context) error {
		gs := settingsdomain.Defaults("p1")
		gs.Version = 1
		gs.UpdatedAt = time.Now().UTC()
		if err := repo.SaveWithVersion(txCtx, gs, 0); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected abort error, got %v", err)
	}
	if _, err := repo.GetByProfileID(ctx, "p1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected rollback, got %v", err)
	}

	uc := settingsapp.UseCase{TxManager: txm, Repo: repo}
	plots := 40
	resp, err := uc.Update(ctx, settingsapp.UpdateRequest{ProfileID: "p1", Patch: settingsdomain.Patch{TotalPlots: &plots}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.Settings.Version != 1 || resp.Settings.TotalPlots != 40 {
		t.Fatalf("unexpected settings: %+v", resp.Settings)
	}
	if _, err := uc.Update(ctx, settingsapp.UpdateRequest{ProfileID: "p1", Patch: settingsdomain.Patch{TotalPlots: &plots}}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict for stale version 0, got %v", err)
	}
}
