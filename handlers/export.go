package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gardenquote/services"
)

// buildQuoteExportData fetches a saved quote and its lines and maps them
// into the export shape.
func buildQuoteExportData(app *pocketbase.PocketBase, quoteID string) (services.QuoteExportData, error) {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return services.QuoteExportData{}, fmt.Errorf("quote not found: %w", err)
	}

	lines, totals := loadQuoteLines(app, quoteID)

	created := quote.GetString("created")
	if len(created) >= 10 {
		created = created[:10]
	}

	return services.BuildQuoteExportData(
		quote.GetString("quote_number"),
		quote.GetString("customer_name"),
		quote.GetString("project_type"),
		created,
		lines,
		totals,
	), nil
}

// HandleQuoteExportExcel generates and downloads an Excel file for a saved
// quote. GET /api/quotes/{id}/export/excel
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := buildQuoteExportData(app, quoteID)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Quote_%s.xlsx", sanitizeFilename(data.QuoteNumber))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuoteExportPDF generates and downloads a PDF file for a saved quote.
// GET /api/quotes/{id}/export/pdf
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := buildQuoteExportData(app, quoteID)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Quote_%s.pdf", sanitizeFilename(data.QuoteNumber))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// sanitizeFilename replaces characters that are unsafe in download filenames.
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		`"`, "-",
		"<", "-",
		">", "-",
		"|", "-",
		" ", "_",
	)
	out := replacer.Replace(s)
	if out == "" {
		out = "quote"
	}
	return out
}
