package farming

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamecodex/internal/app/ports"
	catalogdomain "gamecodex/internal/domain/catalog"
	farmingdomain "gamecodex/internal/domain/farming"
	settingsdomain "gamecodex/internal/domain/settings"
)

var ErrInvalidRequest = errors.New("invalid farming request")

type UseCase struct {
	Registry *catalogdomain.Registry
	Settings ports.GameSettingsRepository
	Metrics  ports.AnalysisMetrics
}

func (u UseCase) Analyze(ctx context.Context, req Request) (Response, error) {
	out, err := u.analyze(ctx, req)
	if u.Metrics != nil {
		if err != nil {
			u.Metrics.RecordFailure()
		} else {
			u.Metrics.RecordAnalysis(len(out.Ranking))
		}
	}
	return out, err
}

func (u UseCase) analyze(ctx context.Context, req Request) (Response, error) {
	out := Response{}
	if req.Config != nil {
		out.Config = *req.Config
	} else {
		profileID := strings.TrimSpace(req.ProfileID)
		if profileID == "" {
			profileID = settingsdomain.DefaultProfileID
		}
		stored, err := u.loadSettings(ctx, profileID)
		if err != nil {
			return Response{}, err
		}
		out.ProfileID = profileID
		out.Config = stored.FarmConfig()
	}

	out.Crops = farmingdomain.JoinVegetablesToPotions(u.Registry)
	ranking, err := farmingdomain.Analyze(out.Crops, out.Config)
	if err != nil {
		if errors.Is(err, farmingdomain.ErrInvalidFarmConfig) || errors.Is(err, farmingdomain.ErrInvalidCrop) {
			return Response{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return Response{}, err
	}
	out.Ranking = ranking
	if best, ok := farmingdomain.Best(ranking); ok {
		out.Best = &best
	}
	return out, nil
}

func (u UseCase) loadSettings(ctx context.Context, profileID string) (settingsdomain.GameSettings, error) {
	if u.Settings == nil {
		return settingsdomain.Defaults(profileID), nil
	}
	stored, err := u.Settings.GetByProfileID(ctx, profileID)
	if errors.Is(err, ports.ErrNotFound) {
		return settingsdomain.Defaults(profileID), nil
	}
	if err != nil {
		return settingsdomain.GameSettings{}, err
	}
	return stored.Clamp(), nil
}
