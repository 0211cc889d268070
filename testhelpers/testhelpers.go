// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gardenquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// SeedReferenceData populates the reference collections with the full
// production seed set (norm hours, correction factors, products, settings).
func SeedReferenceData(t *testing.T, app *pocketbase.PocketBase) {
	t.Helper()

	if err := collections.Seed(app); err != nil {
		t.Fatalf("failed to seed reference data: %v", err)
	}
}

// CreateTestQuote creates a quote record with the given number and returns it.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, quoteNumber string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote_number", quoteNumber)
	record.Set("project_type", "new_build")
	record.Set("accessibility", "good")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteLine creates a quote line record attached to a quote.
func CreateTestQuoteLine(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, lineID, scope, kind string, qty, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_lines")
	if err != nil {
		t.Fatalf("failed to find quote_lines collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("line_id", lineID)
	record.Set("scope", scope)
	record.Set("description", lineID)
	record.Set("unit", "hour")
	record.Set("quantity", qty)
	record.Set("unit_price", unitPrice)
	record.Set("line_total", qty*unitPrice)
	record.Set("kind", kind)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote line: %v", err)
	}

	return record
}
