package services

// Totals is the financial summary of a set of quote lines.
type Totals struct {
	LaborMachineCost float64 `json:"labor_machine_cost"`
	MaterialCost     float64 `json:"material_cost"`
	Subtotal         float64 `json:"subtotal"`
	MarginAmount     float64 `json:"margin_amount"`
	TotalExVAT       float64 `json:"total_ex_vat"`
	VATAmount        float64 `json:"vat_amount"`
	TotalIncVAT      float64 `json:"total_inc_vat"`
	TotalLaborHours  float64 `json:"total_labor_hours"`
}

// ResolveMarginPercent resolves the margin percentage for one line using the
// precedence chain: line-level override, then scope-level override, then the
// global default.
func ResolveMarginPercent(line QuoteLine, scopeMargins map[string]float64, defaultPct float64) float64 {
	if line.MarginPercent != nil {
		return *line.MarginPercent
	}
	if pct, ok := scopeMargins[line.Scope]; ok {
		return pct
	}
	return defaultPct
}

// AggregateTotals sums quote lines into a financial summary. The margin is
// resolved and applied per line, so scopes with different margins sum to the
// exact weighted amount instead of a blended percentage. Machine lines count
// toward labor+machine cost but not toward total labor hours. An empty line
// list yields all-zero totals.
func AggregateTotals(lines []QuoteLine, defaultMarginPct, vatPct float64, scopeMargins map[string]float64) Totals {
	var totals Totals

	for _, line := range lines {
		switch line.Kind {
		case LineKindLabor:
			totals.LaborMachineCost += line.LineTotal
			totals.TotalLaborHours += line.Quantity
		case LineKindMachine:
			totals.LaborMachineCost += line.LineTotal
		case LineKindMaterial:
			totals.MaterialCost += line.LineTotal
		}
		totals.MarginAmount += line.LineTotal * ResolveMarginPercent(line, scopeMargins, defaultMarginPct) / 100
	}

	totals.Subtotal = totals.LaborMachineCost + totals.MaterialCost
	totals.TotalExVAT = totals.Subtotal + totals.MarginAmount
	totals.VATAmount = totals.TotalExVAT * vatPct / 100
	totals.TotalIncVAT = totals.TotalExVAT + totals.VATAmount

	return totals
}
