package services

import "fmt"

// RiskPremiumLine is one applied risk surcharge.
type RiskPremiumLine struct {
	Risk    RiskFactor
	Premium float64
}

// CalculateRiskPremiums applies the named risk surcharges to the
// architecture base total. Each premium is computed independently against
// the original base, so stacked risks add instead of compounding. Unknown
// risk ids are ignored.
func CalculateRiskPremiums(riskIDs []string, architectureBaseTotal float64) []RiskPremiumLine {
	if architectureBaseTotal <= 0 {
		return nil
	}
	var lines []RiskPremiumLine
	for _, id := range riskIDs {
		risk, ok := riskFactors[id]
		if !ok {
			continue
		}
		lines = append(lines, RiskPremiumLine{
			Risk:    risk,
			Premium: Round2(architectureBaseTotal * risk.Premium),
		})
	}
	return lines
}

// riskPremiumLabel renders the line item label, making the
// architecture-only exclusion explicit on the quote.
func riskPremiumLabel(risk RiskFactor) string {
	return fmt.Sprintf("%s Risk Premium (+%.0f%%, Architecture only)", risk.Label, risk.Premium*100)
}
