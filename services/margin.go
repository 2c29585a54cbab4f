package services

import (
	"fmt"
	"math"
)

// Governance margin constants shared between the retarget transform and the
// margin gate.
const (
	// MarginGateFloorPercent is the hard governance floor: quotes below this
	// margin percent must not be finalized.
	MarginGateFloorPercent = 40.0
	// MarginGuardrailPercent is the soft threshold below which a margin
	// target needs leadership sign-off.
	MarginGuardrailPercent = 45.0

	marginTargetMin = 0.35
	marginTargetMax = 0.60

	// marginEpsilon absorbs float noise on threshold comparisons.
	marginEpsilon = 0.0001
)

// Margin warning codes emitted by ApplyMarginTarget.
const (
	WarningBelowGuardrail = "BELOW_GUARDRAIL"
	WarningBelowFloor     = "BELOW_FLOOR"
)

// ApplyMarginTarget re-prices a finished result to hit a margin target.
// The target is clamped to [0.35, 0.60]; targets below the guardrail and
// floor thresholds produce advisory warnings but still re-price. The input
// result is not modified. When the price moves by more than one cent an
// explicit Margin Target Adjustment line is inserted before the Total line.
func ApplyMarginTarget(r PricingResult, target float64) PricingResult {
	clamped := target
	if clamped < marginTargetMin {
		clamped = marginTargetMin
	}
	if clamped > marginTargetMax {
		clamped = marginTargetMax
	}

	var warnings []string
	if clamped < MarginGuardrailPercent/100-marginEpsilon {
		warnings = append(warnings, WarningBelowGuardrail)
	}
	if clamped < MarginGateFloorPercent/100-marginEpsilon {
		warnings = append(warnings, WarningBelowFloor)
	}

	adjustedPrice := Round2(r.TotalUpteamCost / (1 - clamped))
	delta := Round2(adjustedPrice - r.TotalClientPrice)

	items := make([]PricingLineItem, len(r.Items))
	copy(items, r.Items)

	if math.Abs(delta) > 0.01 {
		adjustment := PricingLineItem{Label: "Margin Target Adjustment", Value: delta}
		if delta < 0 {
			adjustment.IsDiscount = true
		}
		// Insert before the trailing Total line when present.
		if n := len(items); n > 0 && items[n-1].IsTotal {
			items = append(items[:n-1], adjustment, items[n-1])
		} else {
			items = append(items, adjustment)
		}
	}
	// The price is always replaced; only the line item is gated on the
	// one-cent threshold.
	r.TotalClientPrice = adjustedPrice

	if n := len(items); n > 0 && items[n-1].IsTotal {
		items[n-1].Value = r.TotalClientPrice
	}

	r.Items = items
	r.MarginTarget = clamped
	r.MarginWarnings = warnings
	r.ProfitMargin = Round2(r.TotalClientPrice - r.TotalUpteamCost)
	return r
}

// CalculateMarginPercent returns the margin percent of a result, or 0 when
// the client price is not positive.
func CalculateMarginPercent(r PricingResult) float64 {
	if r.TotalClientPrice <= 0 {
		return 0
	}
	return (r.TotalClientPrice - r.TotalUpteamCost) / r.TotalClientPrice * 100
}

// PassesMarginGate reports whether a result clears the governance floor.
func PassesMarginGate(r PricingResult) bool {
	return CalculateMarginPercent(r) >= MarginGateFloorPercent
}

// GetMarginGateError returns a descriptive error string when the result
// fails the margin gate, or "" when it passes. It is advisory: callers
// decide whether to block a save or send on it.
func GetMarginGateError(r PricingResult) string {
	percent := CalculateMarginPercent(r)
	if percent >= MarginGateFloorPercent {
		return ""
	}
	return fmt.Sprintf("margin %.1f%% is below the %.0f%% floor; adjust pricing before sending", percent, MarginGateFloorPercent)
}
