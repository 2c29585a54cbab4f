package services

// CalcCadDeliverableCost prices the CAD deliverable for an area: package
// rate by discipline count, scaled by the area-tier multiplier and the
// rate-lookup sqft, floored at the deliverable minimum.
func CalcCadDeliverableCost(a Area) float64 {
	sqft := rateLookupSqft(a)
	pkg := GetCadPackageType(len(EffectiveDisciplines(a)))
	cost := sqft * cadPackageRates[pkg] * AreaTierMultiplier(sqft)
	if cost < CadDeliverableMinimum {
		cost = CadDeliverableMinimum
	}
	return Round2(cost)
}

// CalcElevationsCost prices additional elevations with standard marginal
// tiering: each unit is billed at the rate of the band it falls in, and the
// total is the sum across bands actually consumed.
func CalcElevationsCost(count int) float64 {
	if count <= 0 {
		return 0
	}
	var total float64
	for _, tier := range elevationTiers {
		if count < tier.From {
			break
		}
		upper := tier.To
		if upper == 0 || count < upper {
			upper = count
		}
		total += float64(upper-tier.From+1) * tier.Rate
	}
	return Round2(total)
}

// CalcFacadeCost prices one facade as a fixed share of the area's
// architecture base total, computed before any facade lines are added.
func CalcFacadeCost(areaArchitectureBase float64) float64 {
	return Round2(areaArchitectureBase * FacadeRateOfArchBase)
}

// CalcServiceCost prices one additional service line. Unknown service ids
// and non-positive quantities price to zero and emit no line.
func CalcServiceCost(serviceID string, quantity float64) float64 {
	if quantity <= 0 {
		return 0
	}
	rate, ok := serviceRates[serviceID]
	if !ok {
		return 0
	}
	return Round2(quantity * rate)
}
