package collections

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type leadDef struct {
	companyName  string
	contactName  string
	email        string
	phone        string
	buildingType string
	squareFeet   string
	address      string
	source       string
	notes        string
	status       string
}

type areaDef struct {
	sortOrder int
	area      services.Area
}

type quoteDef struct {
	title        string
	quoteNumber  string
	status       string
	paymentTerms string
	travel       *services.TravelConfig
	riskFactors  []string
	services     map[string]float64
	areas        []areaDef
}

// Seed populates the collections with a realistic demo lead and quote. It is
// safe to call on every startup because it returns early if any lead records
// already exist.
func Seed(app *pocketbase.PocketBase) error {
	leadsCol, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		return fmt.Errorf("seed: could not find leads collection: %w", err)
	}
	existing, err := app.FindAllRecords(leadsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query leads: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: leads collection is empty, inserting seed data")

	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("seed: could not find quotes collection: %w", err)
	}
	areasCol, err := app.FindCollectionByNameOrId("quote_areas")
	if err != nil {
		return fmt.Errorf("seed: could not find quote_areas collection: %w", err)
	}

	createLead := func(d leadDef) (*core.Record, error) {
		r := core.NewRecord(leadsCol)
		r.Set("company_name", d.companyName)
		r.Set("contact_name", d.contactName)
		r.Set("email", d.email)
		r.Set("phone", d.phone)
		r.Set("building_type", d.buildingType)
		r.Set("square_feet", d.squareFeet)
		r.Set("address", d.address)
		r.Set("source", d.source)
		r.Set("notes", d.notes)
		r.Set("status", d.status)
		if err := app.Save(r); err != nil {
			return nil, fmt.Errorf("seed: save lead %q: %w", d.companyName, err)
		}
		return r, nil
	}

	createQuote := func(leadID string, d quoteDef) error {
		areas := make([]services.Area, 0, len(d.areas))
		for _, a := range d.areas {
			areas = append(areas, a.area)
		}
		result := services.CalculatePricing(areas, d.services, d.travel, d.riskFactors, d.paymentTerms)

		snapshot, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("seed: marshal pricing snapshot: %w", err)
		}

		r := core.NewRecord(quotesCol)
		r.Set("title", d.title)
		r.Set("quote_number", d.quoteNumber)
		r.Set("lead", leadID)
		r.Set("status", d.status)
		r.Set("payment_terms", d.paymentTerms)
		if d.travel != nil {
			r.Set("travel_dispatch", d.travel.DispatchLocation)
			r.Set("travel_distance", d.travel.Distance)
			r.Set("travel_custom_cost", d.travel.CustomCost)
		}
		if riskJSON, err := json.Marshal(d.riskFactors); err == nil {
			r.Set("risk_factors", string(riskJSON))
		}
		if svcJSON, err := json.Marshal(d.services); err == nil {
			r.Set("additional_services", string(svcJSON))
		}
		r.Set("pricing_snapshot", string(snapshot))
		r.Set("subtotal", result.Subtotal)
		r.Set("total_client_price", result.TotalClientPrice)
		r.Set("total_upteam_cost", result.TotalUpteamCost)
		r.Set("profit_margin_percent", services.CalculateMarginPercent(result))
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save quote %q: %w", d.title, err)
		}

		for _, a := range d.areas {
			ar := core.NewRecord(areasCol)
			ar.Set("quote", r.Id)
			ar.Set("sort_order", a.sortOrder)
			ar.Set("name", a.area.Name)
			ar.Set("building_type", a.area.BuildingType)
			ar.Set("square_feet", a.area.SquareFeet)
			ar.Set("lod", a.area.LOD)
			ar.Set("scope", string(a.area.Scope))
			if len(a.area.Disciplines) > 0 {
				if dJSON, err := json.Marshal(a.area.Disciplines); err == nil {
					ar.Set("disciplines", string(dJSON))
				}
			}
			ar.Set("include_cad_deliverable", a.area.IncludeCadDeliverable)
			ar.Set("additional_elevations", a.area.AdditionalElevations)
			if len(a.area.Facades) > 0 {
				if fJSON, err := json.Marshal(a.area.Facades); err == nil {
					ar.Set("facades", string(fJSON))
				}
			}
			if err := app.Save(ar); err != nil {
				return fmt.Errorf("seed: save quote area %q: %w", a.area.Name, err)
			}
		}
		return nil
	}

	lead1, err := createLead(leadDef{
		companyName:  "Hudson Development Group",
		contactName:  "Dana Reyes",
		email:        "dana@hudsondev.com",
		phone:        "917-555-0142",
		buildingType: "3",
		squareFeet:   "42000",
		address:      "214 Flushing Ave, Brooklyn, NY",
		source:       "referral",
		notes:        "Gut renovation of a pre-war multifamily. Wants LOD 300 for MEP.",
		status:       "quoted",
	})
	if err != nil {
		return err
	}

	if err := createQuote(lead1.Id, quoteDef{
		title:        "214 Flushing Ave Scan-to-BIM",
		quoteNumber:  "SQ-26-0001",
		status:       "sent",
		paymentTerms: "net30",
		travel: &services.TravelConfig{
			DispatchLocation: "Brooklyn",
			Distance:         6,
		},
		riskFactors: []string{"occupied"},
		services:    map[string]float64{"matterport": 1},
		areas: []areaDef{
			{
				sortOrder: 1,
				area: services.Area{
					Name:         "Main Building",
					BuildingType: "3",
					SquareFeet:   "42000",
					LOD: "300",
					Disciplines: []services.Discipline{
						services.DisciplineArchitecture,
						services.DisciplineMEPF,
						services.DisciplineStructure,
					},
					Scope: "full",
				},
			},
			{
				sortOrder: 2,
				area: services.Area{
					Name:                  "Rear Yard",
					BuildingType: "15",
					SquareFeet:   "0.4",
					Disciplines:  []services.Discipline{services.DisciplineSite},
				},
			},
		},
	}); err != nil {
		return err
	}

	if _, err := createLead(leadDef{
		companyName:  "Catskill Hospitality Partners",
		contactName:  "Marcus Liu",
		email:        "mliu@catskillhp.com",
		phone:        "845-555-0190",
		buildingType: "8",
		squareFeet:   "18000",
		address:      "77 Tinker St, Woodstock, NY",
		source:       "website",
		notes:        "Boutique hotel conversion. Asked about hazardous material surcharge.",
		status:       "new",
	}); err != nil {
		return err
	}

	log.Println("seed: all seed data inserted successfully (2 leads, 1 quote, 2 areas)")
	return nil
}
