package settings

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name         string
		in           GameSettings
		wantPlots    int
		wantCauldron int
	}{
		{name: "in range", in: GameSettings{TotalPlots: 75, CauldronLevel: 2}, wantPlots: 75, wantCauldron: 2},
		{name: "zero", in: GameSettings{}, wantPlots: MinTotalPlots, wantCauldron: MinCauldronLevel},
		{name: "negative", in: GameSettings{TotalPlots: -3, CauldronLevel: -1}, wantPlots: MinTotalPlots, wantCauldron: MinCauldronLevel},
		{name: "too large", in: GameSettings{TotalPlots: 9999, CauldronLevel: 99}, wantPlots: MaxTotalPlots, wantCauldron: MaxCauldronLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Clamp()
			if got.TotalPlots != tc.wantPlots || got.CauldronLevel != tc.wantCauldron {
				t.Fatalf("clamp mismatch: got=%d/%d want=%d/%d", got.TotalPlots, got.CauldronLevel, tc.wantPlots, tc.wantCauldron)
			}
		})
	}
}

func TestApply_OnlyTouchesSetFields(t *testing.T) {
	base := Defaults("p1")
	fert := true
	got := base.Apply(Patch{Fertilised: &fert})
	if !got.Fertilised {
		t.Fatalf("expected fertilised true")
	}
	if got.TotalPlots != DefaultTotalPlots || got.CauldronLevel != DefaultCauldronLevel {
		t.Fatalf("unexpected change to untouched fields: %+v", got)
	}

	plots := 1000
	got = got.Apply(Patch{TotalPlots: &plots})
	if got.TotalPlots != MaxTotalPlots {
		t.Fatalf("expected clamped plots, got %d", got.TotalPlots)
	}
	if (Patch{}).Empty() != true {
		t.Fatalf("expected empty patch")
	}
}

func TestDefaults_ProduceValidFarmConfig(t *testing.T) {
	cfg := Defaults("p1").FarmConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.TotalPlots != DefaultTotalPlots || cfg.Fertilised || cfg.CauldronLevel != DefaultCauldronLevel {
		t.Fatalf("unexpected default config: %+v", cfg)
	}
}
