package settings

import settingsdomain "gamecodex/internal/domain/settings"

type GetRequest struct {
	ProfileID string
}

type GetResponse struct {
	Settings settingsdomain.GameSettings `json:"settings"`
}

type UpdateRequest struct {
	ProfileID string
	Patch     settingsdomain.Patch
	// Version is the version the caller last read. Zero creates the profile.
	Version int64
}

type UpdateResponse struct {
	Settings settingsdomain.GameSettings `json:"settings"`
}
