package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"scanquote/testhelpers"
)

func TestHandleLeadList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestLead(t, app, "Hudson Development Group")
	quoted := testhelpers.CreateTestLead(t, app, "Catskill Hospitality Partners")
	quoted.Set("status", "quoted")
	if err := app.Save(quoted); err != nil {
		t.Fatalf("failed to update lead status: %v", err)
	}

	handler := HandleLeadList(app)

	t.Run("all leads", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		rec := httptest.NewRecorder()
		if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}

		var summaries []LeadSummary
		decodeJSON(t, rec, &summaries)
		if len(summaries) != 2 {
			t.Errorf("expected 2 leads, got %d", len(summaries))
		}
	})

	t.Run("status filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/leads?status=quoted", nil)
		rec := httptest.NewRecorder()
		if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}

		var summaries []LeadSummary
		decodeJSON(t, rec, &summaries)
		if len(summaries) != 1 {
			t.Fatalf("expected 1 quoted lead, got %d", len(summaries))
		}
		if summaries[0].CompanyName != "Catskill Hospitality Partners" {
			t.Errorf("CompanyName = %q", summaries[0].CompanyName)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/leads?status=lost", nil)
		rec := httptest.NewRecorder()
		if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}

		var summaries []LeadSummary
		decodeJSON(t, rec, &summaries)
		if len(summaries) != 0 {
			t.Errorf("expected 0 leads, got %d", len(summaries))
		}
	})
}
