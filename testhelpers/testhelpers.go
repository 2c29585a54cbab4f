// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestLead creates a lead record with the given company name and returns it.
func CreateTestLead(t *testing.T, app *pocketbase.PocketBase, companyName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		t.Fatalf("failed to find leads collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company_name", companyName)
	record.Set("email", "contact@example.com")
	record.Set("status", "new")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test lead: %v", err)
	}

	return record
}

// CreateTestQuote creates a quote record linked to a lead and returns it.
// Pass an empty leadID to create an unattached quote.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, leadID, title string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("title", title)
	record.Set("status", "draft")
	if leadID != "" {
		record.Set("lead", leadID)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteArea creates a quote area record linked to a quote.
func CreateTestQuoteArea(t *testing.T, app *pocketbase.PocketBase, quoteID, name, buildingType, squareFeet string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_areas")
	if err != nil {
		t.Fatalf("failed to find quote_areas collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", 1)
	record.Set("name", name)
	record.Set("building_type", buildingType)
	record.Set("square_feet", squareFeet)
	record.Set("lod", "200")
	record.Set("scope", "full")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote area: %v", err)
	}

	return record
}
