package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatQuoteNumber constructs the quote number string from components.
func formatQuoteNumber(year int, sequence int) string {
	return fmt.Sprintf("GT-%d-%03d", year, sequence)
}

// GenerateQuoteNumber creates the next quote number for the calendar year.
// Format: GT-{year}-{sequence}, sequence 3-digit zero-padded per year.
func GenerateQuoteNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	year := now.Year()
	prefix := fmt.Sprintf("GT-%d-", year)

	existing, err := app.FindRecordsByFilter(
		"quotes",
		"quote_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// Collection missing or empty: start at 1
		existing = nil
	}

	return formatQuoteNumber(year, len(existing)+1), nil
}
