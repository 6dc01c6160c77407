package farming

import farmingdomain "gamecodex/internal/domain/farming"

type Request struct {
	ProfileID string
	// Config, when set, replaces the stored settings for this call only.
	Config *farmingdomain.FarmConfig
}

type Response struct {
	ProfileID string                       `json:"profile_id,omitempty"`
	Config    farmingdomain.FarmConfig     `json:"config"`
	Crops     []farmingdomain.Crop         `json:"crops"`
	Ranking   []farmingdomain.CropAnalysis `json:"ranking"`
	Best      *farmingdomain.CropAnalysis  `json:"best"`
}
