package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// LeadImportResponse summarizes an import run.
type LeadImportResponse struct {
	TotalRows int                        `json:"totalRows"`
	Imported  int                        `json:"imported"`
	ErrorRows int                        `json:"errorRows"`
	Errors    []services.ValidationError `json:"errors,omitempty"`
}

// HandleLeadImportValidate receives a CSV or xlsx upload and returns the
// validation results without importing anything.
// Route: POST /api/leads/import/validate
func HandleLeadImportValidate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return e.String(http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.String(http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ValidateLeadFile(file, header.Filename)
		if err != nil {
			log.Printf("lead_import_validate: %v", err)
			return e.String(http.StatusBadRequest, err.Error())
		}

		return e.JSON(http.StatusOK, result)
	}
}

// HandleLeadImport receives a CSV or xlsx upload, validates it, and imports
// the rows that pass. Rows with errors are skipped and reported back.
// Route: POST /api/leads/import
func HandleLeadImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return e.String(http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.String(http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ValidateLeadFile(file, header.Filename)
		if err != nil {
			log.Printf("lead_import: %v", err)
			return e.String(http.StatusBadRequest, err.Error())
		}

		leadsCol, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			log.Printf("lead_import: could not find leads collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		errorRowSet := make(map[int]bool)
		for _, ve := range result.Errors {
			errorRowSet[ve.Row] = true
		}

		imported := 0
		for i, rowData := range result.ParsedRows {
			rowNum := i + 2
			if errorRowSet[rowNum] {
				continue
			}

			r := core.NewRecord(leadsCol)
			for key, value := range rowData {
				if value != "" {
					r.Set(key, value)
				}
			}
			r.Set("status", "new")
			if err := app.Save(r); err != nil {
				log.Printf("lead_import: could not save row %d: %v", rowNum, err)
				continue
			}
			imported++
		}

		return e.JSON(http.StatusOK, LeadImportResponse{
			TotalRows: result.TotalRows,
			Imported:  imported,
			ErrorRows: result.ErrorRows,
			Errors:    result.Errors,
		})
	}
}

// HandleLeadImportErrorReport downloads the posted validation errors as an
// Excel file.
// Route: POST /api/leads/import/errors
func HandleLeadImportErrorReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var errors []services.ValidationError
		decoder := json.NewDecoder(e.Request.Body)
		if err := decoder.Decode(&errors); err != nil {
			return e.String(http.StatusBadRequest, "Invalid error data")
		}

		xlsxBytes, err := services.GenerateLeadErrorReport(errors)
		if err != nil {
			log.Printf("lead_import_errors: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate error report")
		}

		filename := fmt.Sprintf("Lead_Import_Errors_%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
