package services

import "testing"

func TestResolveBuildingKind(t *testing.T) {
	tests := []struct {
		name         string
		buildingType string
		expect       BuildingKind
	}{
		{"standard office", "1", KindStandard},
		{"historic", "13", KindStandard},
		{"landscape built", "14", KindLandscapeBuilt},
		{"landscape natural", "15", KindLandscapeNatural},
		{"act ceiling", "16", KindACT},
		{"legacy landscape alias", "landscape", KindLandscapeMixed},
		{"legacy built alias", "landscapeBuilt", KindLandscapeBuilt},
		{"legacy act alias", "ceilingTile", KindACT},
		{"unknown code degrades to standard", "99", KindStandard},
		{"empty degrades to standard", "", KindStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveBuildingKind(tt.buildingType); got != tt.expect {
				t.Errorf("ResolveBuildingKind(%q) = %q, want %q", tt.buildingType, got, tt.expect)
			}
		})
	}
}

func TestAreaTierMultiplier_BoundaryBelongsToUpperBand(t *testing.T) {
	tests := []struct {
		name   string
		sqft   float64
		expect float64
	}{
		{"zero", 0, 1.0},
		{"inside first band", 4999, 1.0},
		{"exactly 5k joins upper band", 5000, 0.95},
		{"exactly 50k joins 50k-75k band", 50000, 0.78},
		{"just under 50k stays in 40k-50k band", 49999.99, 0.82},
		{"exactly 100k joins top band", 100000, 0.72},
		{"huge", 2500000, 0.72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreaTierMultiplier(tt.sqft); got != tt.expect {
				t.Errorf("AreaTierMultiplier(%v) = %v, want %v", tt.sqft, got, tt.expect)
			}
		})
	}
}

func TestAreaTierMultiplier_Monotonic(t *testing.T) {
	prev := AreaTierMultiplier(0)
	for _, sqft := range []float64{5000, 10000, 20000, 30000, 40000, 50000, 75000, 100000} {
		cur := AreaTierMultiplier(sqft)
		if cur > prev {
			t.Errorf("tier multiplier increased at %v sqft: %v > %v", sqft, cur, prev)
		}
		prev = cur
	}
}

func TestGetPricingRate(t *testing.T) {
	tests := []struct {
		name         string
		buildingType string
		sqft         float64
		discipline   Discipline
		lod          string
		expect       float64
	}{
		{"office arch nominal", "1", 3000, DisciplineArchitecture, "200", 0.17},
		{"office arch lod 300", "1", 3000, DisciplineArchitecture, "300", 0.221},
		{"office arch 20k tier", "1", 20000, DisciplineArchitecture, "200", 0.1496},
		{"unknown building type falls back to office", "42", 3000, DisciplineArchitecture, "200", 0.17},
		{"unknown discipline falls back to 0.25", "1", 3000, Discipline("survey"), "200", 0.25},
		{"unknown lod multiplies by 1.0", "1", 3000, DisciplineArchitecture, "275", 0.17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetPricingRate(tt.buildingType, tt.sqft, tt.discipline, tt.lod)
			if !floatClose(got*1000, tt.expect*1000) {
				t.Errorf("GetPricingRate(%q, %v, %q, %q) = %v, want %v",
					tt.buildingType, tt.sqft, tt.discipline, tt.lod, got, tt.expect)
			}
		})
	}
}

func TestGetUpteamPricingRate(t *testing.T) {
	client := GetPricingRate("1", 3000, DisciplineArchitecture, "200")
	upteam := GetUpteamPricingRate("1", 3000, DisciplineArchitecture, "200")
	if !floatClose(upteam*1000, client*0.65*1000) {
		t.Errorf("upteam rate = %v, want %v", upteam, client*0.65)
	}
}

func TestLandscapePerAcreRate(t *testing.T) {
	tests := []struct {
		name   string
		kind   BuildingKind
		acres  float64
		expect float64
	}{
		{"built small parcel", KindLandscapeBuilt, 1, 1800},
		{"built mid parcel", KindLandscapeBuilt, 5, 1500},
		{"built large parcel", KindLandscapeBuilt, 25, 1200},
		{"natural small parcel", KindLandscapeNatural, 1, 1200},
		{"mixed averages built and natural", KindLandscapeMixed, 1, 1500},
		{"boundary joins upper band", KindLandscapeBuilt, 2, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LandscapePerAcreRate(tt.kind, tt.acres); got != tt.expect {
				t.Errorf("LandscapePerAcreRate(%q, %v) = %v, want %v", tt.kind, tt.acres, got, tt.expect)
			}
		})
	}
}

func TestGetCadPackageType(t *testing.T) {
	tests := []struct {
		count  int
		expect string
	}{
		{0, "basic"},
		{1, "basic"},
		{2, "standard"},
		{3, "premium"},
		{4, "premium"},
	}

	for _, tt := range tests {
		if got := GetCadPackageType(tt.count); got != tt.expect {
			t.Errorf("GetCadPackageType(%d) = %q, want %q", tt.count, got, tt.expect)
		}
	}
}

func TestPaymentTermAdjustmentRate(t *testing.T) {
	tests := []struct {
		term   string
		expect float64
	}{
		{"partner", -0.10},
		{"prepaid", -0.05},
		{"net30", 0.05},
		{"net45", 0.07},
		{"net60", 0.10},
		{"net90", 0.15},
		{"50/50", 0},
		{"net15", 0},
		{"standard", 0},
		{"", 0},
		{"net180", 0}, // unrecognized terms never guess a rate
	}

	for _, tt := range tests {
		if got := PaymentTermAdjustmentRate(tt.term); got != tt.expect {
			t.Errorf("PaymentTermAdjustmentRate(%q) = %v, want %v", tt.term, got, tt.expect)
		}
	}
}
