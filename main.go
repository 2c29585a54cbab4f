package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/collections"
	"scanquote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateUnnumberedQuotes(app); err != nil {
			log.Printf("Warning: quote number migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Pricing ──────────────────────────────────────────────
		se.Router.POST("/api/pricing", handlers.HandlePricingCalculate(app))
		se.Router.POST("/api/pricing/tier-a", handlers.HandleTierAPricing(app))
		se.Router.GET("/api/options", handlers.HandleOptions(app))

		// ── Quotes ───────────────────────────────────────────────
		se.Router.POST("/api/quotes", handlers.HandleQuoteCreate(app))
		se.Router.GET("/api/quotes", handlers.HandleQuoteList(app))
		se.Router.GET("/api/quotes/{id}/export", handlers.HandleQuoteExportExcel(app))
		se.Router.GET("/api/quotes/{id}", handlers.HandleQuoteView(app))
		se.Router.DELETE("/api/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Leads ────────────────────────────────────────────────
		se.Router.GET("/api/leads", handlers.HandleLeadList(app))
		se.Router.POST("/api/leads/import/validate", handlers.HandleLeadImportValidate(app))
		se.Router.POST("/api/leads/import/errors", handlers.HandleLeadImportErrorReport(app))
		se.Router.POST("/api/leads/import", handlers.HandleLeadImport(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
