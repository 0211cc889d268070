package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gardenquote/services"
)

// quoteSummary is the list-view shape for a saved quote.
type quoteSummary struct {
	ID           string  `json:"id"`
	QuoteNumber  string  `json:"quote_number"`
	CustomerName string  `json:"customer_name"`
	ProjectType  string  `json:"project_type"`
	TotalIncVAT  float64 `json:"total_inc_vat"`
	Created      string  `json:"created"`
}

// HandleQuoteSave calculates a quote and persists it together with its
// lines. POST /api/quotes
func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		req, err := decodeCalculateRequest(e)
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		lines, totals := runCalculation(app, req)

		quoteNumber, err := services.GenerateQuoteNumber(app, time.Now())
		if err != nil {
			log.Printf("quote_save: could not generate quote number: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "could not generate quote number"})
		}

		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_save: could not find quotes collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}

		quote := core.NewRecord(quotesCol)
		quote.Set("quote_number", quoteNumber)
		quote.Set("customer_name", req.CustomerName)
		quote.Set("project_type", req.ProjectType)
		quote.Set("accessibility", req.Accessibility)
		quote.Set("backlog_severity", req.BacklogSeverity)
		quote.Set("labor_machine_cost", totals.LaborMachineCost)
		quote.Set("material_cost", totals.MaterialCost)
		quote.Set("subtotal", totals.Subtotal)
		quote.Set("margin_amount", totals.MarginAmount)
		quote.Set("total_ex_vat", totals.TotalExVAT)
		quote.Set("vat_amount", totals.VATAmount)
		quote.Set("total_inc_vat", totals.TotalIncVAT)
		quote.Set("total_labor_hours", totals.TotalLaborHours)
		if err := app.Save(quote); err != nil {
			log.Printf("quote_save: could not save quote: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save quote"})
		}

		linesCol, err := app.FindCollectionByNameOrId("quote_lines")
		if err != nil {
			log.Printf("quote_save: could not find quote_lines collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}

		for i, line := range lines {
			record := core.NewRecord(linesCol)
			record.Set("quote", quote.Id)
			record.Set("sort_order", i+1)
			record.Set("line_id", line.ID)
			record.Set("scope", line.Scope)
			record.Set("description", line.Description)
			record.Set("unit", line.Unit)
			record.Set("quantity", line.Quantity)
			record.Set("unit_price", line.UnitPrice)
			record.Set("line_total", line.LineTotal)
			record.Set("kind", string(line.Kind))
			if line.MarginPercent != nil {
				record.Set("margin_percent", *line.MarginPercent)
				record.Set("margin_override", true)
			}
			if err := app.Save(record); err != nil {
				log.Printf("quote_save: could not save line %s: %v", line.ID, err)
				return e.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save quote lines"})
			}
		}

		return e.JSON(http.StatusCreated, calculateResponse{
			ID:          quote.Id,
			QuoteNumber: quoteNumber,
			Lines:       lines,
			Totals:      totals,
		})
	}
}

// HandleQuoteList lists saved quotes, newest first. GET /api/quotes
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotes", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("quote_list: could not query quotes: %v", err)
			records = nil
		}

		summaries := []quoteSummary{}
		for _, rec := range records {
			summaries = append(summaries, quoteSummary{
				ID:           rec.Id,
				QuoteNumber:  rec.GetString("quote_number"),
				CustomerName: rec.GetString("customer_name"),
				ProjectType:  rec.GetString("project_type"),
				TotalIncVAT:  rec.GetFloat("total_inc_vat"),
				Created:      rec.GetString("created"),
			})
		}
		return e.JSON(http.StatusOK, summaries)
	}
}

// HandleQuoteView returns one saved quote with its lines and totals.
// GET /api/quotes/{id}
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing quote ID"})
		}

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "quote not found"})
		}

		lines, totals := loadQuoteLines(app, quoteID)

		return e.JSON(http.StatusOK, map[string]any{
			"id":            quote.Id,
			"quote_number":  quote.GetString("quote_number"),
			"customer_name": quote.GetString("customer_name"),
			"project_type":  quote.GetString("project_type"),
			"accessibility": quote.GetString("accessibility"),
			"created":       quote.GetString("created"),
			"lines":         lines,
			"totals":        totals,
		})
	}
}

// HandleQuoteDelete removes a saved quote; the quote_lines cascade handles
// its lines. DELETE /api/quotes/{id}
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing quote ID"})
		}

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "quote not found"})
		}

		if err := app.Delete(quote); err != nil {
			log.Printf("quote_delete: could not delete %s: %v", quoteID, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete quote"})
		}

		return e.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// loadQuoteLines reads a quote's persisted lines in emission order and
// recomputes the stored totals shape from the quote record.
func loadQuoteLines(app *pocketbase.PocketBase, quoteID string) ([]services.QuoteLine, services.Totals) {
	records, err := app.FindRecordsByFilter("quote_lines", "quote = {:quoteId}", "sort_order", 0, 0, map[string]any{"quoteId": quoteID})
	if err != nil {
		records = nil
	}

	lines := []services.QuoteLine{}
	for _, rec := range records {
		line := services.QuoteLine{
			ID:          rec.GetString("line_id"),
			Scope:       rec.GetString("scope"),
			Description: rec.GetString("description"),
			Unit:        rec.GetString("unit"),
			Quantity:    rec.GetFloat("quantity"),
			UnitPrice:   rec.GetFloat("unit_price"),
			LineTotal:   rec.GetFloat("line_total"),
			Kind:        services.LineKind(rec.GetString("kind")),
		}
		if rec.GetBool("margin_override") {
			pct := rec.GetFloat("margin_percent")
			line.MarginPercent = &pct
		}
		lines = append(lines, line)
	}

	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return lines, services.Totals{}
	}
	totals := services.Totals{
		LaborMachineCost: quote.GetFloat("labor_machine_cost"),
		MaterialCost:     quote.GetFloat("material_cost"),
		Subtotal:         quote.GetFloat("subtotal"),
		MarginAmount:     quote.GetFloat("margin_amount"),
		TotalExVAT:       quote.GetFloat("total_ex_vat"),
		VATAmount:        quote.GetFloat("vat_amount"),
		TotalIncVAT:      quote.GetFloat("total_inc_vat"),
		TotalLaborHours:  quote.GetFloat("total_labor_hours"),
	}
	return lines, totals
}
