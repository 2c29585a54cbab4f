package services

import (
	"math"
	"strconv"
)

// ScopeWeights holds the interior/exterior weighting a scope applies to a
// discipline's rate. Full scope is exactly interior + exterior, not a
// nominal 100% of the LOD rate.
type ScopeWeights struct {
	Interior float64
	Exterior float64
}

var scopeWeights = map[Scope]ScopeWeights{
	ScopeFull:     {Interior: 0.65, Exterior: 0.35},
	ScopeInterior: {Interior: 0.65, Exterior: 0},
	ScopeExterior: {Interior: 0, Exterior: 0.35},
	ScopeRoof:     {Interior: 0, Exterior: 0.35},
	ScopeFacade:   {Interior: 0, Exterior: 0.25},
}

// ResolveScopeWeights returns the weights for a scope, falling back to full
// scope for unknown ids.
func ResolveScopeWeights(scope Scope) ScopeWeights {
	if w, ok := scopeWeights[scope]; ok {
		return w
	}
	return scopeWeights[ScopeFull]
}

// ParseSquareFeet parses a string-encoded measurement. Empty or malformed
// input resolves to 0 and negative input is clamped to 0; the engine never
// propagates a parse failure.
func ParseSquareFeet(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// EffectiveDisciplines returns the disciplines an area is actually priced
// for, in canonical order. Landscape parcels are always site-only and ACT
// pseudo-areas are always MEP/F-only regardless of what the caller selected.
func EffectiveDisciplines(a Area) []Discipline {
	kind := ResolveBuildingKind(a.BuildingType)
	if IsLandscapeKind(kind) {
		return []Discipline{DisciplineSite}
	}
	if kind == KindACT {
		return []Discipline{DisciplineMEPF}
	}

	selected := make(map[Discipline]bool, len(a.Disciplines))
	for _, d := range a.Disciplines {
		selected[d] = true
	}
	var out []Discipline
	for _, d := range AllDisciplines {
		if selected[d] {
			out = append(out, d)
		}
	}
	return out
}

// resolveLODScope resolves the effective LOD and scope for one discipline:
// per-discipline override first, then the area default, then the engine
// defaults (LOD 200, full scope).
func resolveLODScope(a Area, d Discipline) (string, Scope) {
	lod := a.LOD
	scope := a.Scope
	if ov, ok := a.DisciplineLODs[d]; ok {
		if ov.LOD != "" {
			lod = ov.LOD
		}
		if ov.Scope != "" {
			scope = ov.Scope
		}
	}
	if lod == "" {
		lod = DefaultLOD
	}
	if scope == "" {
		scope = ScopeFull
	}
	return lod, scope
}

func lodMultiplier(lod string) float64 {
	if m, ok := lodMultipliers[lod]; ok {
		return m
	}
	return 1.0
}

// rateLookupSqft applies the minimum-sqft floor used for rate lookup and
// line cost on standard and ACT areas.
func rateLookupSqft(a Area) float64 {
	sqft := ParseSquareFeet(a.SquareFeet)
	if sqft < RateLookupFloorSqft {
		return RateLookupFloorSqft
	}
	return sqft
}

// PriceAreaDiscipline computes the client price and vendor cost for one
// (area, discipline) pair, both rounded to cents.
func PriceAreaDiscipline(a Area, d Discipline) (value, upteamCost float64) {
	kind := ResolveBuildingKind(a.BuildingType)
	lod, scope := resolveLODScope(a, d)

	switch {
	case IsLandscapeKind(kind):
		acres := ParseSquareFeet(a.SquareFeet)
		perAcre := LandscapePerAcreRate(kind, acres) * lodMultiplier(lod)
		value = acres * perAcre
	case kind == KindACT:
		value = rateLookupSqft(a) * ACTRatePerSqft
	default:
		value = priceStandardBuilding(a, d, lod, scope)
	}

	return Round2(value), Round2(value * UpteamRateRatio)
}

// priceStandardBuilding prices one discipline on a standard building. When
// the area carries distinct interior and exterior LOD overrides and the
// scope has weight on both sides, each side is priced at its own LOD;
// otherwise a single rate covers the combined weight.
func priceStandardBuilding(a Area, d Discipline, lod string, scope Scope) float64 {
	sqft := rateLookupSqft(a)
	w := ResolveScopeWeights(scope)

	mixed := a.MixedInteriorLOD != "" && a.MixedExteriorLOD != "" &&
		a.MixedInteriorLOD != a.MixedExteriorLOD &&
		w.Interior > 0 && w.Exterior > 0
	if mixed {
		interior := sqft * GetPricingRate(a.BuildingType, sqft, d, a.MixedInteriorLOD) * w.Interior
		exterior := sqft * GetPricingRate(a.BuildingType, sqft, d, a.MixedExteriorLOD) * w.Exterior
		return interior + exterior
	}

	return sqft * GetPricingRate(a.BuildingType, sqft, d, lod) * (w.Interior + w.Exterior)
}
