package gormrepo

import (
	"context"
	"errors"

	"gamecodex/internal/adapter/repo/gorm/model"
	"gamecodex/internal/app/ports"
	settingsdomain "gamecodex/internal/domain/settings"

	"gorm.io/gorm"
)

type GameSettingsRepo struct {
	db *gorm.DB
}

func NewGameSettingsRepo(db *gorm.DB) GameSettingsRepo {
	return GameSettingsRepo{db: db}
}

func (r GameSettingsRepo) GetByProfileID(ctx context.Context, profileID string) (settingsdomain.GameSettings, error) {
	var m model.GameSetting
	if err := getDBFromCtx(ctx, r.db).WithContext(ctx).Where("profile_id = ?", profileID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settingsdomain.GameSettings{}, ports.ErrNotFound
		}
		return settingsdomain.GameSettings{}, err
	}
	return settingsdomain.GameSettings{
		ProfileID:     m.ProfileID,
		TotalPlots:    int(m.TotalPlots),
		Fertilised:    m.Fertilised,
		CauldronLevel: int(m.CauldronLevel),
		Version:       m.Version,
		UpdatedAt:     m.UpdatedAt.UTC(),
	}, nil
}

// SaveWithVersion inserts when expectedVersion is 0, otherwise updates only
// the row still at expectedVersion.
func (r GameSettingsRepo) SaveWithVersion(ctx context.Context, gs settingsdomain.GameSettings, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db).WithContext(ctx)
	if expectedVersion == 0 {
		m := model.GameSetting{
			ProfileID:     gs.ProfileID,
			TotalPlots:    int32(gs.TotalPlots),
			Fertilised:    gs.Fertilised,
			CauldronLevel: int32(gs.CauldronLevel),
			Version:       gs.Version,
			UpdatedAt:     gs.UpdatedAt,
		}
		if err := db.Create(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ports.ErrConflict
			}
			return err
		}
		return nil
	}

	updates := map[string]any{
		"total_plots":    int32(gs.TotalPlots),
		"fertilised":     gs.Fertilised,
		"cauldron_level": int32(gs.CauldronLevel),
		"version":        gs.Version,
		"updated_at":     gs.UpdatedAt,
	}
	res := db.Model(&model.GameSetting{}).
		Where("profile_id = ? AND version = ?", gs.ProfileID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
