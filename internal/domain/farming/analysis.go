package farming

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidFarmConfig = errors.New("invalid farm config")
	ErrInvalidCrop       = errors.New("invalid crop")
)

const (
	VegetablesPerPlot           = 1
	FertilisedVegetablesPerPlot = 2

	// Upper bounds keep plots*perPlot*cauldron*price inside int64.
	MaxTotalPlots    = 500
	MaxCauldronLevel = 10
	MaxPotionPrice   = 1_000_000_000
)

type FarmConfig struct {
	TotalPlots    int  `json:"total_plots"`
	Fertilised    bool `json:"fertilised"`
	CauldronLevel int  `json:"cauldron_level"`
}

func (c FarmConfig) Validate() error {
	if c.TotalPlots <= 0 || c.TotalPlots > MaxTotalPlots {
		return fmt.Errorf("%w: total_plots must be in [1, %d], got %d", ErrInvalidFarmConfig, MaxTotalPlots, c.TotalPlots)
	}
	if c.CauldronLevel <= 0 || c.CauldronLevel > MaxCauldronLevel {
		return fmt.Errorf("%w: cauldron_level must be in [1, %d], got %d", ErrInvalidFarmConfig, MaxCauldronLevel, c.CauldronLevel)
	}
	return nil
}

func (c FarmConfig) VegetablesPerPlot() int {
	if c.Fertilised {
		return FertilisedVegetablesPerPlot
	}
	return VegetablesPerPlot
}

// Crop is one vegetable paired with the potion it is sold through.
type Crop struct {
	Name         string `json:"name"`
	VegetableID  string `json:"vegetable_id,omitempty"`
	GrowTime     int    `json:"grow_time"`
	AmountNeeded int    `json:"amount_needed"`
	PotionID     string `json:"potion_id,omitempty"`
	PotionName   string `json:"potion_name"`
	PotionPrice  int    `json:"potion_price"`
}

func (c Crop) Validate() error {
	switch {
	case c.GrowTime <= 0:
		return fmt.Errorf("%w %q: grow_time must be positive, got %d", ErrInvalidCrop, c.Name, c.GrowTime)
	case c.AmountNeeded <= 0:
		return fmt.Errorf("%w %q: amount_needed must be positive, got %d", ErrInvalidCrop, c.Name, c.AmountNeeded)
	case c.PotionPrice < 0:
		return fmt.Errorf("%w %q: potion_price must not be negative, got %d", ErrInvalidCrop, c.Name, c.PotionPrice)
	case c.PotionPrice > MaxPotionPrice:
		return fmt.Errorf("%w %q: potion_price above %d, got %d", ErrInvalidCrop, c.Name, MaxPotionPrice, c.PotionPrice)
	}
	return nil
}

type CropAnalysis struct {
	Name                string  `json:"name"`
	VegetableID         string  `json:"vegetable_id,omitempty"`
	GrowTime            int     `json:"grow_time"`
	PlotsNeeded         float64 `json:"plots_needed"`
	MaxPotions          int     `json:"max_potions"`
	ActualPotions       int     `json:"actual_potions"`
	TotalProfitPerCycle int     `json:"total_profit_per_cycle"`
	ProfitPerMinute     float64 `json:"profit_per_minute"`
	PotionName          string  `json:"potion_name"`
	PotionPrice         int     `json:"potion_price"`
}

// AnalyzeCrop scores a single crop. Inputs are assumed valid; Analyze checks them.
func AnalyzeCrop(crop Crop, cfg FarmConfig) CropAnalysis {
	perPlot := cfg.VegetablesPerPlot()
	plotsNeeded := float64(crop.AmountNeeded) / float64(perPlot)
	// floor(plots / (amount/perPlot)) kept in integers to avoid float rounding.
	maxPotions := cfg.TotalPlots * perPlot / crop.AmountNeeded
	actual := maxPotions * cfg.CauldronLevel
	total := actual * crop.PotionPrice
	return CropAnalysis{
		Name:                crop.Name,
		VegetableID:         crop.VegetableID,
		GrowTime:            crop.GrowTime,
		PlotsNeeded:         plotsNeeded,
		MaxPotions:          maxPotions,
		ActualPotions:       actual,
		TotalProfitPerCycle: total,
		ProfitPerMinute:     float64(total) / float64(crop.GrowTime),
		PotionName:          crop.PotionName,
		PotionPrice:         crop.PotionPrice,
	}
}

// Analyze scores every crop against cfg and ranks them by profit per minute,
// best first. The result does not depend on the order of crops.
func Analyze(crops []Crop, cfg FarmConfig) ([]CropAnalysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, c := range crops {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	out := make([]CropAnalysis, 0, len(crops))
	for _, c := range crops {
		out = append(out, AnalyzeCrop(c, cfg))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ranksBefore(out[i], out[j])
	})
	return out, nil
}

func ranksBefore(a, b CropAnalysis) bool {
	if a.ProfitPerMinute != b.ProfitPerMinute {
		return a.ProfitPerMinute > b.ProfitPerMinute
	}
	if a.TotalProfitPerCycle != b.TotalProfitPerCycle {
		return a.TotalProfitPerCycle > b.TotalProfitPerCycle
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	if a.PotionName != b.PotionName {
		return a.PotionName < b.PotionName
	}
	return a.VegetableID < b.VegetableID
}

// Best returns the top-ranked crop.
func Best(ranked []CropAnalysis) (CropAnalysis, bool) {
	if len(ranked) == 0 {
		return CropAnalysis{}, false
	}
	return ranked[0], true
}
