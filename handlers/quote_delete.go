package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteDelete returns a handler that deletes a quote. Its areas are
// removed by the cascade on the quote relation.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		if err := app.Delete(quote); err != nil {
			log.Printf("quote_delete: could not delete quote %s: %v", quoteID, err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.NoContent(http.StatusNoContent)
	}
}
