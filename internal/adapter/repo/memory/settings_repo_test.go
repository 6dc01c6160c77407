package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gamecodex/internal/app/ports"
	settingsapp "gamecodex/internal/app/settings"
	settingsdomain "gamecodex/internal/domain/settings"
)

func TestGameSettingsRepo_OptimisticVersion(t *testing.T) {
	store := NewStore()
	repo := NewGameSettingsRepo(store)
	ctx := context.Background()

	if _, err := repo.GetByProfileID(ctx, "p1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	gs := settingsdomain.Defaults("p1")
	gs.Version = 1
	if err := repo.SaveWithVersion(ctx, gs, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict creating with version 1, got %v", err)
	}
	if err := repo.SaveWithVersion(ctx, gs, 0); err != nil {
		t.Fatalf("create error: %v", err)
	}
	gs.Version = 2
	if err := repo.SaveWithVersion(ctx, gs, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected stale conflict, got %v", err)
	}
	if err := repo.SaveWithVersion(ctx, gs, 1); err != nil {
		t.Fatalf("update error: %v", err)
	}
	got, err := repo.GetByProfileID(ctx, "p1")
	if err != nil || got.Version != 2 {
		t.Fatalf("unexpected stored settings: %+v err=%v", got, err)
	}
}

func TestTxManager_SerialisesConcurrentUpdates(t *testing.T) {
	store := NewStore()
	uc := settingsapp.UseCase{TxManager: NewTxManager(store), Repo: NewGameSettingsRepo(store)}
	ctx := context.Background()

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(level int) {
			defer wg.Done()
			_, err := uc.Update(ctx, settingsapp.UpdateRequest{
				ProfileID: "p1",
				Patch:     settingsdomain.Patch{CauldronLevel: &level},
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else if !errors.Is(err, ports.ErrConflict) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i%3 + 1)
	}
	wg.Wait()
	if succeeded != 1 {
		t.Fatalf("expected exactly one writer at version 0 to win, got %d", succeeded)
	}
}
