package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// QuoteSummary is one row in the quote list response.
type QuoteSummary struct {
	ID               string  `json:"id"`
	QuoteNumber      string  `json:"quoteNumber"`
	Title            string  `json:"title"`
	Status           string  `json:"status"`
	LeadID           string  `json:"leadId,omitempty"`
	TotalClientPrice float64 `json:"totalClientPrice"`
	ProfitMargin     float64 `json:"profitMarginPercent"`
	Created          string  `json:"created"`
}

// HandleQuoteList returns a handler that lists all quotes, newest first.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_list: could not find quotes collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		records, err := app.FindRecordsByFilter(quotesCol, "id != ''", "-created", 0, 0, nil)
		if err != nil {
			records = nil
		}

		summaries := make([]QuoteSummary, 0, len(records))
		for _, r := range records {
			summaries = append(summaries, QuoteSummary{
				ID:               r.Id,
				QuoteNumber:      r.GetString("quote_number"),
				Title:            r.GetString("title"),
				Status:           r.GetString("status"),
				LeadID:           r.GetString("lead"),
				TotalClientPrice: r.GetFloat("total_client_price"),
				ProfitMargin:     r.GetFloat("profit_margin_percent"),
				Created:          r.GetString("created"),
			})
		}

		return e.JSON(http.StatusOK, summaries)
	}
}
