package services

import (
	"fmt"
	"math"
	"sort"
)

// DisciplineOverride lets one discipline on an area deviate from the area's
// default LOD and scope.
type DisciplineOverride struct {
	LOD   string `json:"lod,omitempty"`
	Scope Scope  `json:"scope,omitempty"`
}

// Area is one billable zone of a project. The engine never mutates it.
// SquareFeet is string-encoded; its unit is square feet for standard and
// ACT categories and acres for landscape categories.
type Area struct {
	Name                  string                            `json:"name,omitempty"`
	BuildingType          string                            `json:"buildingType"`
	SquareFeet            string                            `json:"squareFeet"`
	LOD                   string                            `json:"lod,omitempty"`
	Disciplines           []Discipline                      `json:"disciplines,omitempty"`
	Scope                 Scope                             `json:"scope,omitempty"`
	DisciplineLODs        map[Discipline]DisciplineOverride `json:"disciplineLods,omitempty"`
	MixedInteriorLOD      string                            `json:"mixedInteriorLod,omitempty"`
	MixedExteriorLOD      string                            `json:"mixedExteriorLod,omitempty"`
	IncludeCadDeliverable bool                              `json:"includeCadDeliverable,omitempty"`
	AdditionalElevations  int                               `json:"additionalElevations,omitempty"`
	Facades               []string                          `json:"facades,omitempty"`
	// Boundary is the parcel polygon for landscape areas. It is carried for
	// the map UI and never priced.
	Boundary [][]float64 `json:"boundary,omitempty"`
}

// PricingLineItem is one priced contribution on the quote. Value is the
// client-facing price; UpteamCost is the internal vendor cost used for
// margin accounting.
type PricingLineItem struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	UpteamCost float64 `json:"upteamCost,omitempty"`
	IsDiscount bool    `json:"isDiscount,omitempty"`
	IsTotal    bool    `json:"isTotal,omitempty"`
}

// DisciplineTotals is the per-category client-price rollup stored alongside
// a quote for the external accounting sync. Scanning holds the internal
// scanning estimate, not a client price.
type DisciplineTotals struct {
	Architecture float64 `json:"architecture"`
	MEP          float64 `json:"mep"`
	Structural   float64 `json:"structural"`
	Site         float64 `json:"site"`
	Travel       float64 `json:"travel"`
	Services     float64 `json:"services"`
	Risk         float64 `json:"risk"`
	Scanning     float64 `json:"scanning"`
}

// PricingResult is the full engine output for one quote.
type PricingResult struct {
	Items            []PricingLineItem `json:"items"`
	Subtotal         float64           `json:"subtotal"`
	TotalClientPrice float64           `json:"totalClientPrice"`
	TotalUpteamCost  float64           `json:"totalUpteamCost"`
	ProfitMargin     float64           `json:"profitMargin"`
	MarginTarget     float64           `json:"marginTarget,omitempty"`
	MarginWarnings   []string          `json:"marginWarnings,omitempty"`
	DisciplineTotals DisciplineTotals  `json:"disciplineTotals"`
	ScanningEstimate ScanningEstimate  `json:"scanningEstimate"`
}

// Round2 rounds to cents. Applied at every accumulation the quote displays,
// not only at the final total, so float drift across line items stays out
// of the stored result.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func areaLabel(a Area, index int) string {
	if a.Name != "" {
		return a.Name
	}
	return fmt.Sprintf("Area %d", index+1)
}

func travelLabel(travel *TravelConfig) string {
	if travel.CustomCost > 0 {
		return "Travel (custom quote)"
	}
	if travel.DispatchLocation == "" {
		return fmt.Sprintf("Travel (%.0f mi)", travel.Distance)
	}
	return fmt.Sprintf("Travel (%s dispatch, %.0f mi)", travel.DispatchLocation, travel.Distance)
}

// CalculatePricing converts project inputs into a fully itemized quote.
// It is deterministic and side-effect free: identical inputs always produce
// an identical result, and map-typed inputs are iterated in sorted order.
//
// Margin-target re-pricing is not part of this pass; see ApplyMarginTarget.
func CalculatePricing(areas []Area, additionalServices map[string]float64, travel *TravelConfig, riskIDs []string, paymentTerms string) PricingResult {
	var items []PricingLineItem
	var archBase, mepfTotal, structureTotal, siteTotal, otherTotal float64
	var upteamTotal float64

	for i, a := range areas {
		label := areaLabel(a, i)
		var areaArchBase float64

		for _, d := range EffectiveDisciplines(a) {
			value, upteam := PriceAreaDiscipline(a, d)
			if value == 0 {
				continue
			}
			lod, scope := resolveLODScope(a, d)
			items = append(items, PricingLineItem{
				Label:      fmt.Sprintf("%s %s (LOD %s, %s scope)", label, DisciplineLabels[d], lod, scope),
				Value:      value,
				UpteamCost: upteam,
			})
			upteamTotal += upteam

			switch d {
			case DisciplineArchitecture:
				archBase += value
				areaArchBase += value
			case DisciplineMEPF:
				mepfTotal += value
			case DisciplineStructure:
				structureTotal += value
			case DisciplineSite:
				siteTotal += value
			default:
				otherTotal += value
			}
		}

		if a.IncludeCadDeliverable && ResolveBuildingKind(a.BuildingType) == KindStandard {
			cost := CalcCadDeliverableCost(a)
			upteam := Round2(cost * UpteamRateRatio)
			pkg := GetCadPackageType(len(EffectiveDisciplines(a)))
			items = append(items, PricingLineItem{
				Label:      fmt.Sprintf("%s CAD Deliverable (%s package)", label, pkg),
				Value:      cost,
				UpteamCost: upteam,
			})
			otherTotal += cost
			upteamTotal += upteam
		}

		if cost := CalcElevationsCost(a.AdditionalElevations); cost > 0 {
			upteam := Round2(cost * UpteamRateRatio)
			items = append(items, PricingLineItem{
				Label:      fmt.Sprintf("%s Additional Elevations (%d)", label, a.AdditionalElevations),
				Value:      cost,
				UpteamCost: upteam,
			})
			otherTotal += cost
			upteamTotal += upteam
		}

		// Facades are only priced on roof-scope areas, each at a fixed share
		// of the area's architecture base before facades.
		if a.Scope == ScopeRoof {
			for j, facade := range a.Facades {
				cost := CalcFacadeCost(areaArchBase)
				if cost == 0 {
					continue
				}
				upteam := Round2(cost * UpteamRateRatio)
				facadeLabel := fmt.Sprintf("%s Facade %d", label, j+1)
				if facade != "" {
					facadeLabel = fmt.Sprintf("%s Facade: %s", label, facade)
				}
				items = append(items, PricingLineItem{Label: facadeLabel, Value: cost, UpteamCost: upteam})
				otherTotal += cost
				upteamTotal += upteam
			}
		}
	}

	serviceIDs := make([]string, 0, len(additionalServices))
	for id := range additionalServices {
		serviceIDs = append(serviceIDs, id)
	}
	sort.Strings(serviceIDs)
	for _, id := range serviceIDs {
		qty := additionalServices[id]
		cost := CalcServiceCost(id, qty)
		if cost == 0 {
			continue
		}
		upteam := Round2(cost * UpteamRateRatio)
		serviceLabel, ok := ServiceLabels[id]
		if !ok {
			serviceLabel = id
		}
		items = append(items, PricingLineItem{
			Label:      fmt.Sprintf("%s x %g", serviceLabel, qty),
			Value:      cost,
			UpteamCost: upteam,
		})
		otherTotal += cost
		upteamTotal += upteam
	}

	var riskTotal float64
	for _, line := range CalculateRiskPremiums(riskIDs, archBase) {
		items = append(items, PricingLineItem{Label: riskPremiumLabel(line.Risk), Value: line.Premium})
		riskTotal += line.Premium
	}

	projectSqft := ProjectTotalSquareFeet(areas)

	var travelTotal float64
	if travel != nil && (travel.Distance > 0 || travel.CustomCost > 0) {
		cost := Round2(CalculateTravelCost(travel.Distance, travel.DispatchLocation, projectSqft, travel.CustomCost))
		if cost > 0 {
			upteam := Round2(cost * TravelUpteamRatio)
			items = append(items, PricingLineItem{Label: travelLabel(travel), Value: cost, UpteamCost: upteam})
			travelTotal = cost
			upteamTotal += upteam
		}
	}

	scanning := CalculateScanningEstimate(projectSqft)
	upteamTotal += scanning.TotalCost

	subtotal := Round2(archBase + riskTotal + mepfTotal + structureTotal + siteTotal + otherTotal + travelTotal)
	if subtotal > 0 && subtotal < MinimumProjectCharge {
		shortfall := Round2(MinimumProjectCharge - subtotal)
		items = append(items, PricingLineItem{Label: "Minimum Project Charge Adjustment", Value: shortfall})
		subtotal = MinimumProjectCharge
	}

	var adjustment float64
	if rate := PaymentTermAdjustmentRate(paymentTerms); rate != 0 {
		adjustment = Round2(subtotal * rate)
		item := PricingLineItem{
			Label: fmt.Sprintf("Payment Terms Adjustment (%s %+.0f%%)", paymentTerms, rate*100),
			Value: adjustment,
		}
		if adjustment < 0 {
			item.IsDiscount = true
		}
		items = append(items, item)
	}

	totalClient := Round2(subtotal + adjustment)
	totalUpteam := Round2(upteamTotal)

	items = append(items, PricingLineItem{Label: "Total", Value: totalClient, IsTotal: true})

	return PricingResult{
		Items:            items,
		Subtotal:         subtotal,
		TotalClientPrice: totalClient,
		TotalUpteamCost:  totalUpteam,
		ProfitMargin:     Round2(totalClient - totalUpteam),
		DisciplineTotals: DisciplineTotals{
			Architecture: Round2(archBase),
			MEP:          Round2(mepfTotal),
			Structural:   Round2(structureTotal),
			Site:         Round2(siteTotal),
			Travel:       travelTotal,
			Services:     Round2(otherTotal),
			Risk:         Round2(riskTotal),
			Scanning:     scanning.TotalCost,
		},
		ScanningEstimate: scanning,
	}
}
