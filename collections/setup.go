package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the leads, quotes and quote_areas
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	leads := ensureCollection(app, "leads", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "company_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_name", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: true})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "building_type", Required: false})
		c.Fields.Add(&core.TextField{Name: "square_feet", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "source", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"new", "contacted", "quoted", "won", "lost"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "quote_number", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:          "lead",
			Required:      false,
			CollectionId:  leads.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"draft", "sent", "accepted", "declined"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "payment_terms", Required: false})
		c.Fields.Add(&core.NumberField{Name: "margin_target", Required: false})
		c.Fields.Add(&core.TextField{Name: "travel_dispatch", Required: false})
		c.Fields.Add(&core.NumberField{Name: "travel_distance", Required: false})
		c.Fields.Add(&core.NumberField{Name: "travel_custom_cost", Required: false})
		c.Fields.Add(&core.JSONField{Name: "risk_factors", Required: false})
		c.Fields.Add(&core.JSONField{Name: "additional_services", Required: false})
		c.Fields.Add(&core.JSONField{Name: "pricing_snapshot", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_client_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_upteam_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "profit_margin_percent", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_areas", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: false})
		c.Fields.Add(&core.TextField{Name: "building_type", Required: true})
		c.Fields.Add(&core.TextField{Name: "square_feet", Required: true})
		c.Fields.Add(&core.TextField{Name: "lod", Required: false})
		c.Fields.Add(&core.TextField{Name: "scope", Required: false})
		c.Fields.Add(&core.JSONField{Name: "disciplines", Required: false})
		c.Fields.Add(&core.JSONField{Name: "discipline_lods", Required: false})
		c.Fields.Add(&core.TextField{Name: "mixed_interior_lod", Required: false})
		c.Fields.Add(&core.TextField{Name: "mixed_exterior_lod", Required: false})
		c.Fields.Add(&core.BoolField{Name: "include_cad_deliverable", Required: false})
		c.Fields.Add(&core.NumberField{Name: "additional_elevations", Required: false})
		c.Fields.Add(&core.JSONField{Name: "facades", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
