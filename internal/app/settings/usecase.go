package settings

import (
	"context"
	"errors"
	"strings"
	"time"

	"gamecodex/internal/app/ports"
	settingsdomain "gamecodex/internal/domain/settings"
)

var ErrInvalidRequest = errors.New("invalid settings request")

type UseCase struct {
	TxManager ports.TxManager
	Repo      ports.GameSettingsRepository
	Metrics   ports.SettingsMetrics
	Now       func() time.Time
}

// Get returns the stored settings, or defaults at version 0 when the profile
// has never been saved.
func (u UseCase) Get(ctx context.Context, req GetRequest) (GetResponse, error) {
	profileID := strings.TrimSpace(req.ProfileID)
	if profileID == "" {
		return GetResponse{}, ErrInvalidRequest
	}
	s, err := u.load(ctx, profileID)
	if err != nil {
		return GetResponse{}, err
	}
	return GetResponse{Settings: s}, nil
}

func (u UseCase) Update(ctx context.Context, req UpdateRequest) (UpdateResponse, error) {
	profileID := strings.TrimSpace(req.ProfileID)
	if profileID == "" || req.Version < 0 || req.Patch.Empty() {
		return UpdateResponse{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out UpdateResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := u.load(txCtx, profileID)
		if err != nil {
			return err
		}
		if current.Version != req.Version {
			return ports.ErrConflict
		}
		next := current.Apply(req.Patch)
		next.Version = current.Version + 1
		next.UpdatedAt = nowFn().UTC()
		if err := u.Repo.SaveWithVersion(txCtx, next, current.Version); err != nil {
			return err
		}
		out = UpdateResponse{Settings: next}
		return nil
	})
	if err != nil {
		if u.Metrics != nil && errors.Is(err, ports.ErrConflict) {
			u.Metrics.RecordConflict()
		}
		return UpdateResponse{}, err
	}
	return out, nil
}

func (u UseCase) load(ctx context.Context, profileID string) (settingsdomain.GameSettings, error) {
	s, err := u.Repo.GetByProfileID(ctx, profileID)
	if errors.Is(err, ports.ErrNotFound) {
		return settingsdomain.Defaults(profileID), nil
	}
	if err != nil {
		return settingsdomain.GameSettings{}, err
	}
	return s.Clamp(), nil
}
