package memory

import (
	"context"

	"gamecodex/internal/app/ports"
	settingsdomain "gamecodex/internal/domain/settings"
)

type GameSettingsRepo struct {
	store *Store
}

func NewGameSettingsRepo(store *Store) GameSettingsRepo {
	return GameSettingsRepo{store: store}
}

func (r GameSettingsRepo) GetByProfileID(_ context.Context, profileID string) (settingsdomain.GameSettings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	gs, ok := r.store.settings[profileID]
	if !ok {
		return settingsdomain.GameSettings{}, ports.ErrNotFound
	}
	return gs, nil
}

func (r GameSettingsRepo) SaveWithVersion(_ context.Context, gs settingsdomain.GameSettings, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.settings[gs.ProfileID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.settings[gs.ProfileID] = gs
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.settings[gs.ProfileID] = gs
	return nil
}
