package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// buildQuoteExportData loads a quote with its frozen pricing snapshot and
// flattens it for the Excel generator.
func buildQuoteExportData(app *pocketbase.PocketBase, quoteID string) (services.QuoteExportData, error) {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return services.QuoteExportData{}, fmt.Errorf("quote not found: %w", err)
	}

	// An unset JSON field reads back as the literal string "null".
	raw := quote.GetString("pricing_snapshot")
	if raw == "" || raw == "null" {
		return services.QuoteExportData{}, fmt.Errorf("quote %s has no pricing snapshot", quoteID)
	}

	var snapshot services.PricingResult
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return services.QuoteExportData{}, fmt.Errorf("bad pricing snapshot: %w", err)
	}

	clientName := ""
	if leadID := quote.GetString("lead"); leadID != "" {
		if lead, err := app.FindRecordById("leads", leadID); err == nil {
			clientName = lead.GetString("company_name")
		}
	}

	createdDate := ""
	if dt := quote.GetDateTime("created"); !dt.IsZero() {
		createdDate = dt.Time().Format("02 Jan 2006")
	}

	return services.BuildQuoteExportData(
		quote.GetString("title"),
		quote.GetString("quote_number"),
		clientName,
		createdDate,
		quote.GetString("payment_terms"),
		snapshot,
	), nil
}

// HandleQuoteExportExcel returns a handler that generates and downloads an
// Excel rendering of a saved quote.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := buildQuoteExportData(app, quoteID)
		if err != nil {
			log.Printf("quote_export: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("quote_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Quote_%s_%d.xlsx", sanitizeFilename(data.Title), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
