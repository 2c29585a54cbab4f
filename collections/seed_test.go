package collections_test

import (
	"encoding/json"
	"testing"

	"scanquote/collections"
	"scanquote/services"
	"scanquote/testhelpers"
)

func TestSeed_PopulatesCollections(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	leads, err := app.FindAllRecords("leads")
	if err != nil {
		t.Fatalf("query leads: %v", err)
	}
	if len(leads) != 2 {
		t.Errorf("expected 2 seeded leads, got %d", len(leads))
	}

	quotes, err := app.FindAllRecords("quotes")
	if err != nil {
		t.Fatalf("query quotes: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("expected 1 seeded quote, got %d", len(quotes))
	}

	areas, err := app.FindAllRecords("quote_areas")
	if err != nil {
		t.Fatalf("query quote_areas: %v", err)
	}
	if len(areas) != 2 {
		t.Errorf("expected 2 seeded quote areas, got %d", len(areas))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error = %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}

	leads, _ := app.FindAllRecords("leads")
	if len(leads) != 2 {
		t.Errorf("expected 2 leads after double seed, got %d", len(leads))
	}
	quotes, _ := app.FindAllRecords("quotes")
	if len(quotes) != 1 {
		t.Errorf("expected 1 quote after double seed, got %d", len(quotes))
	}
}

func TestSeed_QuoteSnapshotMatchesEngine(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	quotes, err := app.FindAllRecords("quotes")
	if err != nil || len(quotes) == 0 {
		t.Fatalf("query quotes: %v", err)
	}
	quote := quotes[0]

	raw := quote.GetString("pricing_snapshot")
	if raw == "" {
		t.Fatal("pricing_snapshot is empty")
	}

	var snapshot services.PricingResult
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		t.Fatalf("pricing_snapshot is not valid JSON: %v", err)
	}

	if snapshot.TotalClientPrice != quote.GetFloat("total_client_price") {
		t.Errorf("snapshot total %v does not match quote field %v",
			snapshot.TotalClientPrice, quote.GetFloat("total_client_price"))
	}
	if len(snapshot.Items) == 0 {
		t.Error("snapshot has no line items")
	}
	if !snapshot.Items[len(snapshot.Items)-1].IsTotal {
		t.Error("snapshot's last line item should be the Total line")
	}
}
