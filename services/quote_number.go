package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatQuoteNumber constructs the quote number string from components.
func formatQuoteNumber(year int, sequence int) string {
	return fmt.Sprintf("SQ-%02d-%04d", year%100, sequence)
}

// GenerateQuoteNumber creates the next quote number.
// Format: SQ-{YY}-{sequence}, e.g. "SQ-26-0042". The sequence is 4-digit
// zero-padded and resets per calendar year.
func GenerateQuoteNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	year := now.Year()
	prefix := fmt.Sprintf("SQ-%02d-", year%100)

	existing, err := app.FindRecordsByFilter(
		"quotes",
		"quote_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// If the collection doesn't exist yet, start at 1.
		existing = nil
	}

	return formatQuoteNumber(year, len(existing)+1), nil
}
