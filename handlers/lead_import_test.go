package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"scanquote/services"
	"scanquote/testhelpers"
)

// newUploadRequest builds a multipart request carrying fileName with the
// given contents under the "file" form field.
func newUploadRequest(t *testing.T, target, fileName, contents string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(contents)); err != nil {
		t.Fatalf("failed to write file contents: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

const sampleLeadCSV = `Company Name,Contact Name,Email,Phone,Building Type,Square Feet
Hudson Development Group,Dana Reyes,dana@hudsondev.com,917-555-0142,3,42000
Catskill Hospitality Partners,,bookings@catskillhp.com,,8,61000
`

const badRowLeadCSV = `Company Name,Email,Building Type
Hudson Development Group,dana@hudsondev.com,3
,not-an-email,99
`

func TestHandleLeadImportValidate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLeadImportValidate(app)

	req := newUploadRequest(t, "/api/leads/import/validate", "leads.csv", badRowLeadCSV)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result services.ValidationResult
	decodeJSON(t, rec, &result)

	if result.TotalRows != 2 {
		t.Errorf("TotalRows = %d, want 2", result.TotalRows)
	}
	if result.ValidRows != 1 {
		t.Errorf("ValidRows = %d, want 1", result.ValidRows)
	}
	if result.ErrorRows != 1 {
		t.Errorf("ErrorRows = %d, want 1", result.ErrorRows)
	}
	// Row 3: missing company, bad email, unknown building type.
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %+v", len(result.Errors), result.Errors)
	}
	for _, ve := range result.Errors {
		if ve.Row != 3 {
			t.Errorf("error on row %d, want 3: %+v", ve.Row, ve)
		}
	}

	// Validation must not persist anything.
	leadsCol, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		t.Fatalf("leads collection not found: %v", err)
	}
	leads, err := app.FindRecordsByFilter(leadsCol, "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("failed to query leads: %v", err)
	}
	if len(leads) != 0 {
		t.Errorf("validate imported %d leads, want 0", len(leads))
	}
}

func TestHandleLeadImport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLeadImport(app)

	req := newUploadRequest(t, "/api/leads/import", "leads.csv", sampleLeadCSV)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp LeadImportResponse
	decodeJSON(t, rec, &resp)

	if resp.TotalRows != 2 || resp.Imported != 2 || resp.ErrorRows != 0 {
		t.Errorf("unexpected response: %+v", resp)
	}

	leadsCol, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		t.Fatalf("leads collection not found: %v", err)
	}
	leads, err := app.FindRecordsByFilter(leadsCol, "company_name = 'Hudson Development Group'", "", 0, 0, nil)
	if err != nil || len(leads) != 1 {
		t.Fatalf("imported lead not found: err=%v count=%d", err, len(leads))
	}
	lead := leads[0]
	if lead.GetString("email") != "dana@hudsondev.com" {
		t.Errorf("email = %q", lead.GetString("email"))
	}
	if lead.GetString("status") != "new" {
		t.Errorf("status = %q, want new", lead.GetString("status"))
	}
}

func TestHandleLeadImport_SkipsErrorRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLeadImport(app)

	req := newUploadRequest(t, "/api/leads/import", "leads.csv", badRowLeadCSV)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp LeadImportResponse
	decodeJSON(t, rec, &resp)

	if resp.Imported != 1 {
		t.Errorf("Imported = %d, want 1", resp.Imported)
	}
	if resp.ErrorRows != 1 {
		t.Errorf("ErrorRows = %d, want 1", resp.ErrorRows)
	}

	leadsCol, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		t.Fatalf("leads collection not found: %v", err)
	}
	leads, err := app.FindRecordsByFilter(leadsCol, "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("failed to query leads: %v", err)
	}
	if len(leads) != 1 {
		t.Errorf("expected 1 imported lead, got %d", len(leads))
	}
}

func TestHandleLeadImport_UnsupportedFormat(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLeadImport(app)

	req := newUploadRequest(t, "/api/leads/import", "leads.txt", "whatever")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleLeadImport_MissingFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLeadImport(app)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/leads/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleLeadImportErrorReport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLeadImportErrorReport(app)

	errs := []services.ValidationError{
		{Row: 3, Field: "Email", Message: "Invalid email format"},
	}
	req := newJSONRequest(t, http.MethodPost, "/api/leads/import/errors", errs)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "Lead_Import_Errors_") {
		t.Errorf("Content-Disposition = %q", rec.Header().Get("Content-Disposition"))
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a valid xlsx file: %v", err)
	}
	defer f.Close()

	b2, _ := f.GetCellValue("Errors", "B2")
	if b2 != "Email" {
		t.Errorf("B2 = %q, want Email", b2)
	}
}
