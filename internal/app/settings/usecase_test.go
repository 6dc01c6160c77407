package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamecodex/internal/app/ports"
	settingsdomain "gamecodex/internal/domain/settings"
)

func TestUseCase_GetReturnsDefaultsWhenMissing(t *testing.T) {
	uc := UseCase{Repo: newSettingsRepo()}
	resp, err := uc.Get(context.Background(), GetRequest{ProfileID: "p1"})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	want := settingsdomain.Defaults("p1")
	if resp.Settings != want {
		t.Fatalf("settings mismatch: got=%+v want=%+v", resp.Settings, want)
	}
	if _, err := uc.Get(context.Background(), GetRequest{ProfileID: " "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_UpdateCreatesThenBumpsVersion(t *testing.T) {
	repo := newSettingsRepo()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := UseCase{TxManager: txManager{}, Repo: repo, Now: func() time.Time { return now }}

	fert := true
	resp, err := uc.Update(context.Background(), UpdateRequest{ProfileID: "p1", Patch: settingsdomain.Patch{Fertilised: &fert}})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if resp.Settings.Version != 1 || !resp.Settings.Fertilised || !resp.Settings.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected first update: %+v", resp.Settings)
	}

	plots := 9999
	resp, err = uc.Update(context.Background(), UpdateRequest{ProfileID: "p1", Version: 1, Patch: settingsdomain.Patch{TotalPlots: &plots}})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if resp.Settings.Version != 2 || resp.Settings.TotalPlots != settingsdomain.MaxTotalPlots || !resp.Settings.Fertilised {
		t.Fatalf("unexpected second update: %+v", resp.Settings)
	}
	if repo.saved["p1"].Version != 2 {
		t.Fatalf("stored version mismatch: got=%d want=2", repo.saved["p1"].Version)
	}
}

func TestUseCase_UpdateRejectsStaleVersion(t *testing.T) {
	repo := newSettingsRepo()
	repo.saved["p1"] = settingsdomain.GameSettings{ProfileID: "p1", TotalPlots: 10, CauldronLevel: 1, Version: 4}
	metrics := &settingsMetrics{}
	uc := UseCase{TxManager: txManager{}, Repo: repo, Metrics: metrics}

	level := 3
	_, err := uc.Update(context.Background(), UpdateRequest{ProfileID: "p1", Version: 3, Patch: settingsdomain.Patch{CauldronLevel: &level}})
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if metrics.conflicts != 1 {
		t.Fatalf("expected one conflict, got %d", metrics.conflicts)
	}
	if repo.saved["p1"].CauldronLevel != 1 {
		t.Fatalf("stale update must not persist")
	}
}

func TestUseCase_UpdateValidatesRequest(t *testing.T) {
	uc := UseCase{TxManager: txManager{}, Repo: newSettingsRepo()}
	level := 2
	cases := []UpdateRequest{
		{ProfileID: "", Patch: settingsdomain.Patch{CauldronLevel: &level}},
		{ProfileID: "p1"},
		{ProfileID: "p1", Version: -1, Patch: settingsdomain.Patch{CauldronLevel: &level}},
	}
	for _, req := range cases {
		if _, err := uc.Update(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest for %+v, got %v", req, err)
		}
	}
}

func TestUseCase_PropagatesRepoError(t *testing.T) {
	wantErr := errors.New("db down")
	repo := newSettingsRepo()
	repo.getErr = wantErr
	uc := UseCase{TxManager: txManager{}, Repo: repo}
	if _, err := uc.Get(context.Background(), GetRequest{ProfileID: "p1"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

type settingsRepo struct {
	saved  map[string]settingsdomain.GameSettings
	getErr error
}

func newSettingsRepo() *settingsRepo {
	return &settingsRepo{saved: map[string]settingsdomain.GameSettings{}}
}

func (r *settingsRepo) GetByProfileID(_ context.Context, profileID string) (settingsdomain.GameSettings, error) {
	if r.getErr != nil {
		return settingsdomain.GameSettings{}, r.getErr
	}
	s, ok := r.saved[profileID]
	if !ok {
		return settingsdomain.GameSettings{}, ports.ErrNotFound
	}
	return s, nil
}

func (r *settingsRepo) SaveWithVersion(_ context.Context, s settingsdomain.GameSettings, expectedVersion int64) error {
	if r.saved[s.ProfileID].Version != expectedVersion {
		return ports.ErrConflict
	}
	r.saved[s.ProfileID] = s
	return nil
}

type txManager struct{}

func (txManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type settingsMetrics struct{ conflicts int }

func (m *settingsMetrics) RecordConflict() { m.conflicts++ }

var (
	_ ports.GameSettingsRepository = (*settingsRepo)(nil)
	_ ports.TxManager              = txManager{}
	_ ports.SettingsMetrics        = (*settingsMetrics)(nil)
)
