package services

import (
	"math"
	"strings"
)

// TravelConfig carries the dispatch inputs for the travel line item.
// A positive CustomCost overrides any computed cost.
type TravelConfig struct {
	DispatchLocation string  `json:"dispatchLocation"`
	Distance         float64 `json:"distance"`
	CustomCost       float64 `json:"customCost,omitempty"`
}

const (
	// brooklynHub is the one dispatch location with tiered travel pricing.
	brooklynHub = "brooklyn"

	brooklynFreeRadiusMiles = 20.0
	brooklynPerMile         = 4.0
	flatPerMile             = 3.0

	// TravelUpteamRatio is the vendor-cost share of the travel line. Travel
	// carries a higher margin than modeling work.
	TravelUpteamRatio = 0.80
)

// brooklynBaseFee returns the tiered base fee for Brooklyn dispatches.
// Larger projects absorb the base fee into the modeling price.
func brooklynBaseFee(projectTotalSqft float64) float64 {
	switch {
	case projectTotalSqft >= 50000:
		return 0
	case projectTotalSqft >= 10000:
		return 300
	default:
		return 150
	}
}

// CalculateTravelCost computes the client travel price. Brooklyn dispatches
// (matched case-insensitively as a substring) pay a sqft-tiered base fee
// plus a per-mile rate beyond the free radius; every other dispatch pays a
// flat per-mile rate from mile zero with no base fee.
func CalculateTravelCost(distance float64, dispatchLocation string, projectTotalSqft float64, customCost float64) float64 {
	if customCost > 0 {
		return customCost
	}
	if strings.Contains(strings.ToLower(dispatchLocation), brooklynHub) {
		extraMiles := math.Max(0, distance-brooklynFreeRadiusMiles)
		return brooklynBaseFee(projectTotalSqft) + extraMiles*brooklynPerMile
	}
	return distance * flatPerMile
}

// CalculateTierATravelCost is the travel formula for Tier A projects:
// per-mile beyond the free radius, no base fee, regardless of dispatch
// location.
func CalculateTierATravelCost(distance float64) float64 {
	return math.Max(0, distance-brooklynFreeRadiusMiles) * brooklynPerMile
}

// ProjectTotalSquareFeet sums the raw entered square footage across all
// areas, converting landscape acreage at 43,560 sqft per acre. The
// rate-lookup floor never applies here: this figure drives travel tiering,
// Tier A detection and the scanning estimate.
func ProjectTotalSquareFeet(areas []Area) float64 {
	var total float64
	for _, a := range areas {
		v := ParseSquareFeet(a.SquareFeet)
		if IsLandscapeKind(ResolveBuildingKind(a.BuildingType)) {
			total += math.Round(v * SquareFeetPerAcre)
		} else {
			total += v
		}
	}
	return total
}
