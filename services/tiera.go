package services

// Tier A pricing: projects at or above the sqft threshold skip the per-area
// engine entirely and are priced as scanning + modeling times a named
// margin multiplier.

// TierAThresholdSqft is the acreage-adjusted project size at which Tier A
// pricing applies.
const TierAThresholdSqft = 50000.0

// tierAScanningPresets maps preset ids to fixed scanning costs. The "other"
// preset defers to the user-entered value.
var tierAScanningPresets = map[string]float64{
	"halfDay":  3500,
	"fullDay":  7000,
	"multiDay": 13000,
}

// tierAMarginMultipliers maps named margin levels to their multiplier.
var tierAMarginMultipliers = map[string]float64{
	"baseline":   2.352,
	"standard":   2.5,
	"aggressive": 3.0,
	"premium":    4.0,
}

// TierAConfig is the caller-supplied input for Tier A pricing.
type TierAConfig struct {
	// ScanningCost is a preset id ("halfDay", "fullDay", "multiDay") or
	// "other" to use ScanningCostOther.
	ScanningCost      string  `json:"scanningCost"`
	ScanningCostOther float64 `json:"scanningCostOther,omitempty"`
	ModelingCost      float64 `json:"modelingCost"`
	// Margin is a named multiplier level; unknown names fall back to
	// "standard".
	Margin string `json:"margin"`
}

// TierAPricingResult is the Tier A engine output.
type TierAPricingResult struct {
	ScanningCost     float64 `json:"scanningCost"`
	ModelingCost     float64 `json:"modelingCost"`
	MarginMultiplier float64 `json:"marginMultiplier"`
	ClientPrice      float64 `json:"clientPrice"`
	TravelCost       float64 `json:"travelCost"`
	TotalWithTravel  float64 `json:"totalWithTravel"`
}

// IsTierAProject reports whether the acreage-adjusted total project sqft
// meets the Tier A threshold.
func IsTierAProject(areas []Area) bool {
	return ProjectTotalSquareFeet(areas) >= TierAThresholdSqft
}

func resolveTierAScanningCost(cfg TierAConfig) float64 {
	if cfg.ScanningCost == "other" {
		return cfg.ScanningCostOther
	}
	if preset, ok := tierAScanningPresets[cfg.ScanningCost]; ok {
		return preset
	}
	return cfg.ScanningCostOther
}

func resolveTierAMarginMultiplier(name string) float64 {
	if m, ok := tierAMarginMultipliers[name]; ok {
		return m
	}
	return tierAMarginMultipliers["standard"]
}

// CalculateTierAPricing prices a Tier A project: (scanning + modeling) times
// the margin multiplier, with Tier A travel added on top. Same purity
// contract as CalculatePricing.
func CalculateTierAPricing(cfg TierAConfig, distanceMiles float64) TierAPricingResult {
	scanning := resolveTierAScanningCost(cfg)
	multiplier := resolveTierAMarginMultiplier(cfg.Margin)

	clientPrice := Round2((scanning + cfg.ModelingCost) * multiplier)
	travel := Round2(CalculateTierATravelCost(distanceMiles))

	return TierAPricingResult{
		ScanningCost:     scanning,
		ModelingCost:     cfg.ModelingCost,
		MarginMultiplier: multiplier,
		ClientPrice:      clientPrice,
		TravelCost:       travel,
		TotalWithTravel:  Round2(clientPrice + travel),
	}
}
