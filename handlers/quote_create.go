package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// QuoteCreateRequest is the JSON body accepted by the quote creation endpoint.
type QuoteCreateRequest struct {
	Title  string `json:"title"`
	LeadID string `json:"leadId,omitempty"`
	PricingRequest
}

// QuoteCreateResponse echoes the saved quote along with its pricing result.
type QuoteCreateResponse struct {
	ID            string                 `json:"id"`
	QuoteNumber   string                 `json:"quoteNumber"`
	Pricing       services.PricingResult `json:"pricing"`
	MarginGateErr string                 `json:"marginGateError,omitempty"`
}

// HandleQuoteCreate returns a handler that prices a quote configuration and
// persists it with a frozen pricing snapshot. A quote that fails the margin
// gate is still saved as a draft; the gate error is advisory and returned to
// the caller.
func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req QuoteCreateRequest
		if err := e.BindBody(&req); err != nil {
			log.Printf("quote_create: could not parse body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		title := strings.TrimSpace(req.Title)
		if title == "" {
			return e.String(http.StatusBadRequest, "Quote title is required")
		}
		if len(req.Areas) == 0 {
			return e.String(http.StatusBadRequest, "At least one area is required")
		}

		if req.LeadID != "" {
			if _, err := app.FindRecordById("leads", req.LeadID); err != nil {
				return e.String(http.StatusBadRequest, "Lead not found")
			}
		}

		result := services.CalculatePricing(req.Areas, req.AdditionalServices, req.Travel, req.RiskFactors, req.PaymentTerms)
		if req.MarginTarget != 0 {
			result = services.ApplyMarginTarget(result, req.MarginTarget)
		}

		quoteNumber, err := services.GenerateQuoteNumber(app, time.Now())
		if err != nil {
			log.Printf("quote_create: could not generate quote number: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_create: could not find quotes collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		areasCol, err := app.FindCollectionByNameOrId("quote_areas")
		if err != nil {
			log.Printf("quote_create: could not find quote_areas collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		snapshot, err := json.Marshal(result)
		if err != nil {
			log.Printf("quote_create: could not marshal snapshot: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		quote := core.NewRecord(quotesCol)
		quote.Set("title", title)
		quote.Set("quote_number", quoteNumber)
		if req.LeadID != "" {
			quote.Set("lead", req.LeadID)
		}
		quote.Set("status", "draft")
		quote.Set("payment_terms", req.PaymentTerms)
		quote.Set("margin_target", result.MarginTarget)
		if req.Travel != nil {
			quote.Set("travel_dispatch", req.Travel.DispatchLocation)
			quote.Set("travel_distance", req.Travel.Distance)
			quote.Set("travel_custom_cost", req.Travel.CustomCost)
		}
		if riskJSON, err := json.Marshal(req.RiskFactors); err == nil {
			quote.Set("risk_factors", string(riskJSON))
		}
		if svcJSON, err := json.Marshal(req.AdditionalServices); err == nil {
			quote.Set("additional_services", string(svcJSON))
		}
		quote.Set("pricing_snapshot", string(snapshot))
		quote.Set("subtotal", result.Subtotal)
		quote.Set("total_client_price", result.TotalClientPrice)
		quote.Set("total_upteam_cost", result.TotalUpteamCost)
		quote.Set("profit_margin_percent", services.CalculateMarginPercent(result))

		if err := app.Save(quote); err != nil {
			log.Printf("quote_create: could not save quote: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		for i, area := range req.Areas {
			ar := core.NewRecord(areasCol)
			ar.Set("quote", quote.Id)
			ar.Set("sort_order", i+1)
			ar.Set("name", area.Name)
			ar.Set("building_type", area.BuildingType)
			ar.Set("square_feet", area.SquareFeet)
			ar.Set("lod", area.LOD)
			ar.Set("scope", string(area.Scope))
			if len(area.Disciplines) > 0 {
				if dJSON, err := json.Marshal(area.Disciplines); err == nil {
					ar.Set("disciplines", string(dJSON))
				}
			}
			if len(area.DisciplineLODs) > 0 {
				if oJSON, err := json.Marshal(area.DisciplineLODs); err == nil {
					ar.Set("discipline_lods", string(oJSON))
				}
			}
			ar.Set("mixed_interior_lod", area.MixedInteriorLOD)
			ar.Set("mixed_exterior_lod", area.MixedExteriorLOD)
			ar.Set("include_cad_deliverable", area.IncludeCadDeliverable)
			ar.Set("additional_elevations", area.AdditionalElevations)
			if len(area.Facades) > 0 {
				if fJSON, err := json.Marshal(area.Facades); err == nil {
					ar.Set("facades", string(fJSON))
				}
			}
			if err := app.Save(ar); err != nil {
				log.Printf("quote_create: could not save area %d: %v", i+1, err)
			}
		}

		return e.JSON(http.StatusOK, QuoteCreateResponse{
			ID:            quote.Id,
			QuoteNumber:   quoteNumber,
			Pricing:       result,
			MarginGateErr: services.GetMarginGateError(result),
		})
	}
}
