package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// LeadSummary is one row in the lead list response.
type LeadSummary struct {
	ID           string `json:"id"`
	CompanyName  string `json:"companyName"`
	ContactName  string `json:"contactName,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	BuildingType string `json:"buildingType,omitempty"`
	SquareFeet   string `json:"squareFeet,omitempty"`
	Status       string `json:"status"`
	Created      string `json:"created"`
}

// HandleLeadList returns a handler that lists all leads, newest first. An
// optional status query parameter filters by lead status.
func HandleLeadList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leadsCol, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			log.Printf("lead_list: could not find leads collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		filter := "id != ''"
		params := map[string]any{}
		if status := e.Request.URL.Query().Get("status"); status != "" {
			filter = "status = {:status}"
			params["status"] = status
		}

		records, err := app.FindRecordsByFilter(leadsCol, filter, "-created", 0, 0, params)
		if err != nil {
			records = nil
		}

		summaries := make([]LeadSummary, 0, len(records))
		for _, r := range records {
			summaries = append(summaries, LeadSummary{
				ID:           r.Id,
				CompanyName:  r.GetString("company_name"),
				ContactName:  r.GetString("contact_name"),
				Email:        r.GetString("email"),
				Phone:        r.GetString("phone"),
				BuildingType: r.GetString("building_type"),
				SquareFeet:   r.GetString("square_feet"),
				Status:       r.GetString("status"),
				Created:      r.GetString("created"),
			})
		}

		return e.JSON(http.StatusOK, summaries)
	}
}
