package settings

import (
	"time"

	"gamecodex/internal/domain/farming"
)

const (
	DefaultProfileID = "default"

	DefaultTotalPlots    = 75
	DefaultCauldronLevel = 1

	MinTotalPlots    = 1
	MaxTotalPlots    = farming.MaxTotalPlots
	MinCauldronLevel = 1
	MaxCauldronLevel = farming.MaxCauldronLevel
)

// GameSettings are the player-adjustable values the calculators read. The
// cauldron level comes from house upgrades.
type GameSettings struct {
	ProfileID     string    `json:"profile_id"`
	TotalPlots    int       `json:"total_plots"`
	Fertilised    bool      `json:"fertilised"`
	CauldronLevel int       `json:"cauldron_level"`
	Version       int64     `json:"version"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func Defaults(profileID string) GameSettings {
	return GameSettings{
		ProfileID:     profileID,
		TotalPlots:    DefaultTotalPlots,
		CauldronLevel: DefaultCauldronLevel,
	}
}

// Clamp pulls every numeric field into its supported range.
func (s GameSettings) Clamp() GameSettings {
	s.TotalPlots = clampInt(s.TotalPlots, MinTotalPlots, MaxTotalPlots)
	s.CauldronLevel = clampInt(s.CauldronLevel, MinCauldronLevel, MaxCauldronLevel)
	return s
}

func (s GameSettings) FarmConfig() farming.FarmConfig {
	return farming.FarmConfig{
		TotalPlots:    s.TotalPlots,
		Fertilised:    s.Fertilised,
		CauldronLevel: s.CauldronLevel,
	}
}

// Patch holds a partial update; nil fields are left unchanged.
type Patch struct {
	TotalPlots    *int  `json:"total_plots,omitempty"`
	Fertilised    *bool `json:"fertilised,omitempty"`
	CauldronLevel *int  `json:"cauldron_level,omitempty"`
}

func (p Patch) Empty() bool {
	return p.TotalPlots == nil && p.Fertilised == nil && p.CauldronLevel == nil
}

func (s GameSettings) Apply(p Patch) GameSettings {
	if p.TotalPlots != nil {
		s.TotalPlots = *p.TotalPlots
	}
	if p.Fertilised != nil {
		s.Fertilised = *p.Fertilised
	}
	if p.CauldronLevel != nil {
		s.CauldronLevel = *p.CauldronLevel
	}
	return s.Clamp()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
