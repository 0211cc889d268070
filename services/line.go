package services

import "math"

// LineKind classifies a quote line for aggregation purposes.
type LineKind string

const (
	LineKindLabor    LineKind = "labor"
	LineKindMaterial LineKind = "material"
	LineKindMachine  LineKind = "machine"
)

// Units used on quote lines. These names are part of the external contract.
const (
	UnitSquareMeter = "m2"
	UnitCubicMeter  = "m3"
	UnitMeter       = "m"
	UnitPiece       = "piece"
	UnitKilogram    = "kg"
	UnitHour        = "hour"
)

// QuoteLine is one priced line item on a quote. Line IDs are deterministic
// (scope plus a slug for the activity or product) so that identical inputs
// produce deep-equal output; database record IDs are assigned separately
// when a quote is saved.
type QuoteLine struct {
	ID            string   `json:"id"`
	Scope         string   `json:"scope"`
	Description   string   `json:"description"`
	Unit          string   `json:"unit"`
	Quantity      float64  `json:"quantity"`
	UnitPrice     float64  `json:"unit_price"`
	LineTotal     float64  `json:"line_total"`
	Kind          LineKind `json:"kind"`
	MarginPercent *float64 `json:"margin_percent,omitempty"`
}

// QuantizeQuarterHour rounds labor hours to the nearest quarter hour,
// half away from zero. Non-finite or non-positive input yields 0.
func QuantizeQuarterHour(hours float64) float64 {
	if !isPositive(hours) {
		return 0
	}
	return math.Round(hours*4) / 4
}

// newLine builds a quote line with the total pre-computed. Callers must have
// verified the quantity is positive; the orchestrator never emits zero lines.
func newLine(kind LineKind, scope, slug, description, unit string, quantity, unitPrice float64) QuoteLine {
	return QuoteLine{
		ID:          scope + "-" + slug,
		Scope:       scope,
		Description: description,
		Unit:        unit,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   quantity * unitPrice,
		Kind:        kind,
	}
}

// appendLaborLine quantizes hours and appends a labor line priced at the
// settings hourly rate. Hours that quantize to zero emit nothing.
func appendLaborLine(lines []QuoteLine, ctx CalculationContext, scope, slug, description string, hours float64) []QuoteLine {
	qty := QuantizeQuarterHour(hours)
	if qty <= 0 {
		return lines
	}
	return append(lines, newLine(LineKindLabor, scope, slug, description, UnitHour, qty, ctx.Settings.HourlyRate))
}

// appendMachineLine appends a machine line priced at the machine product's
// hourly sale price. Machine hours are quantized like labor hours but do not
// count toward total labor hours.
func appendMachineLine(lines []QuoteLine, scope, slug, description string, hours float64, machine Product) []QuoteLine {
	qty := QuantizeQuarterHour(hours)
	if qty <= 0 {
		return lines
	}
	return append(lines, newLine(LineKindMachine, scope, slug, description, UnitHour, qty, machine.SalePrice))
}

// appendMaterialLine applies the product's waste uplift to the needed
// quantity and appends a material line at the product's sale price.
func appendMaterialLine(lines []QuoteLine, scope, slug, description string, needed float64, product Product) []QuoteLine {
	qty := OrderQuantity(needed, product.WastePercent)
	if qty <= 0 {
		return lines
	}
	return append(lines, newLine(LineKindMaterial, scope, slug, description, product.Unit, qty, product.SalePrice))
}

// appendCountedMaterialLine appends a material line for counted goods
// (fixtures, posts) where the ordered quantity equals the needed count and
// no waste uplift applies.
func appendCountedMaterialLine(lines []QuoteLine, scope, slug, description string, count float64, product Product) []QuoteLine {
	if !isPositive(count) {
		return lines
	}
	return append(lines, newLine(LineKindMaterial, scope, slug, description, product.Unit, count, product.SalePrice))
}
