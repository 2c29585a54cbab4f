package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// HandleOptions returns a handler that serves the dropdown option lists the
// quote builder needs: building types, LODs, payment terms, services and
// risk factors.
func HandleOptions(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"buildingTypes": services.BuildingTypeOptions(),
			"lods":          services.LODOptions(),
			"paymentTerms":  services.PaymentTermOptions(),
			"services":      services.ServiceOptions(),
			"riskFactors":   services.RiskOptions(),
		})
	}
}
