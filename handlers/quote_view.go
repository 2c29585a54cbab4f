package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// QuoteAreaDetail is one stored area in the quote detail response.
type QuoteAreaDetail struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	BuildingType          string   `json:"buildingType"`
	SquareFeet            string   `json:"squareFeet"`
	LOD                   string   `json:"lod"`
	Scope                 string   `json:"scope"`
	Disciplines           []string `json:"disciplines,omitempty"`
	IncludeCadDeliverable bool     `json:"includeCadDeliverable"`
	AdditionalElevations  int      `json:"additionalElevations"`
	Facades               []string `json:"facades,omitempty"`
}

// QuoteDetail is the full quote detail response, including the pricing
// snapshot frozen at save time.
type QuoteDetail struct {
	ID            string                  `json:"id"`
	QuoteNumber   string                  `json:"quoteNumber"`
	Title         string                  `json:"title"`
	Status        string                  `json:"status"`
	LeadID        string                  `json:"leadId,omitempty"`
	PaymentTerms  string                  `json:"paymentTerms"`
	MarginTarget  float64                 `json:"marginTarget"`
	Areas         []QuoteAreaDetail       `json:"areas"`
	Pricing       *services.PricingResult `json:"pricing,omitempty"`
	MarginGateErr string                  `json:"marginGateError,omitempty"`
	Created       string                  `json:"created"`
}

// HandleQuoteView returns a handler that serves a single quote with its
// stored areas and pricing snapshot.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		areasCol, err := app.FindCollectionByNameOrId("quote_areas")
		if err != nil {
			log.Printf("quote_view: could not find quote_areas collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		areaRecords, err := app.FindRecordsByFilter(areasCol, "quote = {:quoteId}", "sort_order", 0, 0, map[string]any{"quoteId": quoteID})
		if err != nil {
			areaRecords = nil
		}

		areas := make([]QuoteAreaDetail, 0, len(areaRecords))
		for _, r := range areaRecords {
			detail := QuoteAreaDetail{
				ID:                    r.Id,
				Name:                  r.GetString("name"),
				BuildingType:          r.GetString("building_type"),
				SquareFeet:            r.GetString("square_feet"),
				LOD:                   r.GetString("lod"),
				Scope:                 r.GetString("scope"),
				IncludeCadDeliverable: r.GetBool("include_cad_deliverable"),
				AdditionalElevations:  int(r.GetFloat("additional_elevations")),
			}
			if raw := r.GetString("disciplines"); raw != "" {
				if err := json.Unmarshal([]byte(raw), &detail.Disciplines); err != nil {
					log.Printf("quote_view: bad disciplines JSON on area %s: %v", r.Id, err)
				}
			}
			if raw := r.GetString("facades"); raw != "" {
				if err := json.Unmarshal([]byte(raw), &detail.Facades); err != nil {
					log.Printf("quote_view: bad facades JSON on area %s: %v", r.Id, err)
				}
			}
			areas = append(areas, detail)
		}

		detail := QuoteDetail{
			ID:           quote.Id,
			QuoteNumber:  quote.GetString("quote_number"),
			Title:        quote.GetString("title"),
			Status:       quote.GetString("status"),
			LeadID:       quote.GetString("lead"),
			PaymentTerms: quote.GetString("payment_terms"),
			MarginTarget: quote.GetFloat("margin_target"),
			Areas:        areas,
			Created:      quote.GetString("created"),
		}

		// An unset JSON field reads back as the literal string "null".
	if raw := quote.GetString("pricing_snapshot"); raw != "" && raw != "null" {
			var snapshot services.PricingResult
			if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
				log.Printf("quote_view: bad pricing snapshot on quote %s: %v", quoteID, err)
			} else {
				detail.Pricing = &snapshot
				detail.MarginGateErr = services.GetMarginGateError(snapshot)
			}
		}

		return e.JSON(http.StatusOK, detail)
	}
}
