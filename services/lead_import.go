package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LeadField describes one column in a lead import file.
type LeadField struct {
	Key            string // internal name, matches PocketBase field name
	Label          string // human-readable header expected in the file
	Description    string
	ExampleValue   string
	AlwaysRequired bool
}

// LeadTemplateFields returns the ordered list of columns for lead imports.
func LeadTemplateFields() []LeadField {
	return []LeadField{
		{Key: "company_name", Label: "Company Name", Description: "Client company or organisation name", ExampleValue: "Hudson Development Group", AlwaysRequired: true},
		{Key: "contact_name", Label: "Contact Name", Description: "Primary contact for the lead", ExampleValue: "Dana Reyes"},
		{Key: "email", Label: "Email", Description: "Contact email address", ExampleValue: "dana@hudsondev.com", AlwaysRequired: true},
		{Key: "phone", Label: "Phone", Description: "Contact phone number", ExampleValue: "917-555-0142"},
		{Key: "building_type", Label: "Building Type", Description: "Numeric building type id (1-16)", ExampleValue: "2"},
		{Key: "square_feet", Label: "Square Feet", Description: "Approximate project size in sqft (acres for landscape types)", ExampleValue: "25000"},
		{Key: "address", Label: "Address", Description: "Site address", ExampleValue: "214 Flushing Ave, Brooklyn, NY"},
		{Key: "source", Label: "Source", Description: "Where the lead came from", ExampleValue: "referral"},
		{Key: "notes", Label: "Notes", Description: "Free-form notes", ExampleValue: "Wants LOD 300 for MEP"},
	}
}

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is returned after parsing and validating an uploaded file.
type ValidationResult struct {
	TotalRows  int                 `json:"total_rows"`
	ValidRows  int                 `json:"valid_rows"`
	ErrorRows  int                 `json:"error_rows"`
	Errors     []ValidationError   `json:"errors"`
	ParsedRows []map[string]string `json:"-"`
	FileName   string              `json:"-"`
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file multipart.File) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}

// mapHeadersToFields maps uploaded column headers to LeadField keys.
// Returns an ordered list of field keys (one per column, "" for unknown) and
// any unrecognized column headers.
func mapHeadersToFields(headers []string, fields []LeadField) ([]string, []string) {
	labelToKey := make(map[string]string, len(fields))
	for _, f := range fields {
		normalized := strings.ToLower(strings.TrimSpace(f.Label))
		labelToKey[normalized] = f.Key
	}

	mapped := make([]string, len(headers))
	var unrecognized []string

	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		// Strip trailing " *" that our template adds for required fields
		norm = strings.TrimSuffix(norm, " *")
		norm = strings.TrimSpace(norm)

		if key, ok := labelToKey[norm]; ok {
			mapped[i] = key
		} else {
			mapped[i] = ""
			unrecognized = append(unrecognized, h)
		}
	}
	return mapped, unrecognized
}

var leadEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateLeadFile parses and validates an uploaded lead file. Rows with
// errors are still parsed so the caller can report them back with row numbers.
func ValidateLeadFile(file multipart.File, fileName string) (*ValidationResult, error) {
	fields := LeadTemplateFields()

	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	if strings.HasSuffix(lowerName, ".csv") {
		headers, dataRows, err = parseCSV(file)
	} else if strings.HasSuffix(lowerName, ".xlsx") {
		headers, dataRows, err = parseExcel(file)
	} else {
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	columnKeys, _ := mapHeadersToFields(headers, fields)

	keyToLabel := make(map[string]string, len(fields))
	isRequired := make(map[string]bool)
	for _, f := range fields {
		keyToLabel[f.Key] = f.Label
		if f.AlwaysRequired {
			isRequired[f.Key] = true
		}
	}

	result := &ValidationResult{
		TotalRows:  len(dataRows),
		FileName:   fileName,
		ParsedRows: make([]map[string]string, 0, len(dataRows)),
	}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		rowData := make(map[string]string)
		var rowErrors []ValidationError

		for colIdx, key := range columnKeys {
			if key == "" {
				continue
			}
			value := ""
			if colIdx < len(row) {
				value = strings.TrimSpace(row[colIdx])
			}
			rowData[key] = value
		}

		for key := range isRequired {
			if rowData[key] == "" {
				label := keyToLabel[key]
				if label == "" {
					label = key
				}
				rowErrors = append(rowErrors, ValidationError{
					Row:     rowNum,
					Field:   label,
					Message: fmt.Sprintf("%s is required", label),
				})
			}
		}

		rowErrors = append(rowErrors, validateLeadFieldFormats(rowNum, rowData)...)

		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
		}
		result.ParsedRows = append(result.ParsedRows, rowData)
	}

	errorRowSet := make(map[int]bool)
	for _, e := range result.Errors {
		errorRowSet[e.Row] = true
	}
	result.ErrorRows = len(errorRowSet)
	result.ValidRows = result.TotalRows - result.ErrorRows

	return result, nil
}

// validateLeadFieldFormats checks format-specific rules for non-empty values.
func validateLeadFieldFormats(rowNum int, data map[string]string) []ValidationError {
	var errs []ValidationError

	if v := data["email"]; v != "" && !leadEmailPattern.MatchString(v) {
		errs = append(errs, ValidationError{Row: rowNum, Field: "Email", Message: "Invalid email format"})
	}
	if v := data["building_type"]; v != "" {
		if _, ok := BuildingTypeLabels[v]; !ok {
			errs = append(errs, ValidationError{Row: rowNum, Field: "Building Type", Message: fmt.Sprintf("Unknown building type %q", v)})
		}
	}
	if v := data["square_feet"]; v != "" {
		if n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64); err != nil || n < 0 {
			errs = append(errs, ValidationError{Row: rowNum, Field: "Square Feet", Message: "Square Feet must be a non-negative number"})
		}
	}

	return errs
}

// GenerateLeadErrorReport creates a downloadable .xlsx file from validation errors.
func GenerateLeadErrorReport(errors []ValidationError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Field")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range errors {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, e.Field)
		f.SetCellValue(sheet, "C"+row, e.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}
