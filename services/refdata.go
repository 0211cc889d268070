// Package services contains the quote calculation core: reference data
// accessors, per-scope line generators, the orchestrator and the totals
// aggregator, plus export and formatting helpers built on top of them.
package services

import (
	"math"
	"strings"
)

// NormHourEntry is one row of the norm-hour reference table: how many labor
// hours one unit of the named activity takes under normal conditions.
type NormHourEntry struct {
	ID           string  `json:"id"`
	Activity     string  `json:"activity"`
	Scope        string  `json:"scope"`
	HoursPerUnit float64 `json:"hours_per_unit"`
	Unit         string  `json:"unit"`
}

// CorrectionFactor is a qualitative condition multiplier applied to base
// hours, keyed by (category, value).
type CorrectionFactor struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Value       string  `json:"value"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// Correction factor categories.
const (
	FactorAccessibility     = "accessibility"
	FactorCuttingComplexity = "cutting_complexity"
	FactorBacklogSeverity   = "backlog_severity"
	FactorHedgeHeight       = "hedge_height"
)

// Product is one catalog entry. WastePercent is the uplift applied to the
// needed quantity to arrive at the quantity actually ordered.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	Unit          string  `json:"unit"`
	WastePercent  float64 `json:"waste_percent"`
}

// Settings holds the company-wide fallback values used when no more specific
// override applies.
type Settings struct {
	HourlyRate           float64 `json:"hourly_rate"`
	DefaultMarginPercent float64 `json:"default_margin_percent"`
	VATPercent           float64 `json:"vat_percent"`
}

// CalculationContext aggregates the reference collections and the selected
// conditions for one calculation run. It is treated as read-only by every
// generator; identical contexts always produce identical results.
type CalculationContext struct {
	NormHours         []NormHourEntry
	CorrectionFactors []CorrectionFactor
	Products          []Product
	Settings          Settings
	Accessibility     string
	BacklogSeverity   string
}

// NormHoursFor looks up a norm-hour entry by scope and activity. The activity
// match is case-insensitive. A miss (including empty collections) reports
// ok=false, never an error.
func (c CalculationContext) NormHoursFor(scope, activity string) (NormHourEntry, bool) {
	for _, entry := range c.NormHours {
		if entry.Scope == scope && strings.EqualFold(entry.Activity, activity) {
			return entry, true
		}
	}
	return NormHourEntry{}, false
}

// FactorFor returns the correction multiplier for (category, value).
// An absent pair or unrecognized value yields the neutral multiplier 1.0
// so that malformed condition codes degrade to "no correction".
func (c CalculationContext) FactorFor(category, value string) float64 {
	if value == "" {
		return 1.0
	}
	for _, f := range c.CorrectionFactors {
		if f.Category == category && strings.EqualFold(f.Value, value) {
			return f.Multiplier
		}
	}
	return 1.0
}

// ProductFor looks up a catalog product by category and name
// (case-insensitive). A miss reports ok=false.
func (c CalculationContext) ProductFor(category, name string) (Product, bool) {
	for _, p := range c.Products {
		if p.Category == category && strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Product{}, false
}

// AccessibilityMultiplier resolves the context's accessibility condition to
// its hour multiplier, defaulting to 1.0 for unknown conditions.
func (c CalculationContext) AccessibilityMultiplier() float64 {
	return c.FactorFor(FactorAccessibility, c.Accessibility)
}

// BacklogMultiplier resolves the optional backlog-severity condition used by
// the maintenance scopes, defaulting to 1.0 when absent.
func (c CalculationContext) BacklogMultiplier() float64 {
	return c.FactorFor(FactorBacklogSeverity, c.BacklogSeverity)
}

// OrderQuantity applies a product's waste uplift to the physically needed
// quantity. The uplift happens before pricing: the customer pays for the
// ordered quantity, not the installed one.
func OrderQuantity(needed, wastePercent float64) float64 {
	if !isPositive(needed) {
		return 0
	}
	return needed * (1 + wastePercent/100)
}

// isPositive reports whether v is a finite number greater than zero.
// Anything else counts as "nothing to compute" for the sub-item driven by v.
func isPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
