package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// PricingRequest is the JSON body accepted by the pricing endpoint.
type PricingRequest struct {
	Areas              []services.Area        `json:"areas"`
	AdditionalServices map[string]float64     `json:"additionalServices,omitempty"`
	Travel             *services.TravelConfig `json:"travel,omitempty"`
	RiskFactors        []string               `json:"riskFactors,omitempty"`
	PaymentTerms       string                 `json:"paymentTerms,omitempty"`
	// MarginTarget re-prices the result when set to a non-zero fraction.
	MarginTarget float64 `json:"marginTarget,omitempty"`
}

// HandlePricingCalculate returns a handler that prices a quote configuration
// and returns the full line-item breakdown as JSON.
func HandlePricingCalculate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req PricingRequest
		if err := e.BindBody(&req); err != nil {
			log.Printf("pricing: could not parse body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		result := services.CalculatePricing(req.Areas, req.AdditionalServices, req.Travel, req.RiskFactors, req.PaymentTerms)
		if req.MarginTarget != 0 {
			result = services.ApplyMarginTarget(result, req.MarginTarget)
		}

		return e.JSON(http.StatusOK, result)
	}
}

// TierAPricingRequest is the JSON body accepted by the Tier A pricing endpoint.
type TierAPricingRequest struct {
	services.TierAConfig
	DistanceMiles float64 `json:"distanceMiles,omitempty"`
}

// HandleTierAPricing returns a handler that prices a large project with the
// simplified scanning + modeling multiplier model.
func HandleTierAPricing(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req TierAPricingRequest
		if err := e.BindBody(&req); err != nil {
			log.Printf("pricing_tier_a: could not parse body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		result := services.CalculateTierAPricing(req.TierAConfig, req.DistanceMiles)
		return e.JSON(http.StatusOK, result)
	}
}
