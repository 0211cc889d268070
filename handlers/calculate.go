// Package handlers wires the calculation core to the HTTP surface: a JSON
// API for calculating and saving quotes, reference data listings, and Excel/
// PDF downloads.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gardenquote/services"
)

// calculateRequest is the request body for calculate and save. It embeds the
// core's typed input and adds the per-scope margin overrides plus the
// customer name used when persisting.
type calculateRequest struct {
	services.CalculationInput
	CustomerName string             `json:"customer_name,omitempty"`
	ScopeMargins map[string]float64 `json:"scope_margins,omitempty"`
}

// calculateResponse is the shared response shape for calculate and save.
type calculateResponse struct {
	ID          string               `json:"id,omitempty"`
	QuoteNumber string               `json:"quote_number,omitempty"`
	Lines       []services.QuoteLine `json:"lines"`
	Totals      services.Totals      `json:"totals"`
}

// decodeCalculateRequest parses the JSON body. A malformed body is the one
// boundary error this API reports; everything past the boundary degrades
// gracefully inside the core.
func decodeCalculateRequest(e *core.RequestEvent) (calculateRequest, error) {
	var req calculateRequest
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return calculateRequest{}, err
	}
	return req, nil
}

// runCalculation loads the reference context and runs the core for one request.
func runCalculation(app *pocketbase.PocketBase, req calculateRequest) ([]services.QuoteLine, services.Totals) {
	ctx := services.LoadCalculationContext(app, req.Accessibility, req.BacklogSeverity)
	lines := services.GenerateQuoteLines(req.CalculationInput, ctx)
	totals := services.AggregateTotals(lines, ctx.Settings.DefaultMarginPercent, ctx.Settings.VATPercent, req.ScopeMargins)
	return lines, totals
}

// HandleQuoteCalculate computes quote lines and totals without persisting
// anything. POST /api/quotes/calculate
func HandleQuoteCalculate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		req, err := decodeCalculateRequest(e)
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		lines, totals := runCalculation(app, req)
		return e.JSON(http.StatusOK, calculateResponse{Lines: lines, Totals: totals})
	}
}
