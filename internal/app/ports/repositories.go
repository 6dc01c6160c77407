package ports

import (
	"context"

	"gamecodex/internal/domain/settings"
)

type GameSettingsRepository interface {
	GetByProfileID(ctx context.Context, profileID string) (settings.GameSettings, error)
	SaveWithVersion(ctx context.Context, s settings.GameSettings, expectedVersion int64) error
}
