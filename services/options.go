package services

import (
	"sort"
	"strconv"
)

// Option is a generic id/label pair for client-side dropdowns.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// BuildingTypeOptions returns all building types in numeric order.
func BuildingTypeOptions() []Option {
	ids := make([]string, 0, len(BuildingTypeLabels))
	for id := range BuildingTypeLabels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})

	options := make([]Option, 0, len(ids))
	for _, id := range ids {
		options = append(options, Option{ID: id, Label: BuildingTypeLabels[id]})
	}
	return options
}

// LODOptions returns the supported levels of development in ascending order.
func LODOptions() []string {
	lods := make([]string, 0, len(lodMultipliers))
	for lod := range lodMultipliers {
		lods = append(lods, lod)
	}
	sort.Slice(lods, func(i, j int) bool {
		a, _ := strconv.Atoi(lods[i])
		b, _ := strconv.Atoi(lods[j])
		return a < b
	})
	return lods
}

// PaymentTermOptions returns the payment terms that carry a price adjustment,
// plus the zero-adjustment defaults, sorted by adjustment rate.
func PaymentTermOptions() []Option {
	options := []Option{
		{ID: "partner", Label: "Partner (-10%)"},
		{ID: "prepaid", Label: "Prepaid (-5%)"},
		{ID: "50/50", Label: "50/50 Split"},
		{ID: "net15", Label: "Net 15"},
		{ID: "standard", Label: "Standard"},
		{ID: "net30", Label: "Net 30 (+5%)"},
		{ID: "net45", Label: "Net 45 (+7%)"},
		{ID: "net60", Label: "Net 60 (+10%)"},
		{ID: "net90", Label: "Net 90 (+15%)"},
	}
	return options
}

// ServiceOptions returns the additional services in sorted id order.
func ServiceOptions() []Option {
	ids := make([]string, 0, len(serviceRates))
	for id := range serviceRates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	options := make([]Option, 0, len(ids))
	for _, id := range ids {
		options = append(options, Option{ID: id, Label: ServiceLabels[id]})
	}
	return options
}

// RiskOptions returns the risk factors in sorted id order.
func RiskOptions() []Option {
	ids := make([]string, 0, len(riskFactors))
	for id := range riskFactors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	options := make([]Option, 0, len(ids))
	for _, id := range ids {
		options = append(options, Option{ID: id, Label: riskFactors[id].Label})
	}
	return options
}
