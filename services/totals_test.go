package services

import (
	"math"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestAggregateTotals_Empty(t *testing.T) {
	totals := AggregateTotals(nil, 15, 21, nil)

	if totals != (Totals{}) {
		t.Errorf("empty line list should yield all-zero totals, got %+v", totals)
	}
	if math.IsNaN(totals.TotalIncVAT) {
		t.Error("TotalIncVAT is NaN")
	}
}

func TestAggregateTotals_SingleLaborLine(t *testing.T) {
	lines := []QuoteLine{
		{Scope: ScopeEarthworks, Kind: LineKindLabor, Quantity: 12.5, UnitPrice: 48.50, LineTotal: 606.25},
	}

	totals := AggregateTotals(lines, 15, 21, nil)

	if math.Abs(totals.LaborMachineCost-606.25) > 0.001 {
		t.Errorf("LaborMachineCost = %v, want 606.25", totals.LaborMachineCost)
	}
	if totals.MaterialCost != 0 {
		t.Errorf("MaterialCost = %v, want 0", totals.MaterialCost)
	}
	if totals.TotalLaborHours != 12.5 {
		t.Errorf("TotalLaborHours = %v, want 12.5", totals.TotalLaborHours)
	}
	if math.Abs(totals.MarginAmount-606.25*0.15) > 0.001 {
		t.Errorf("MarginAmount = %v, want %v", totals.MarginAmount, 606.25*0.15)
	}
	expectedExVAT := 606.25 * 1.15
	if math.Abs(totals.TotalExVAT-expectedExVAT) > 0.001 {
		t.Errorf("TotalExVAT = %v, want %v", totals.TotalExVAT, expectedExVAT)
	}
	if math.Abs(totals.VATAmount-expectedExVAT*0.21) > 0.001 {
		t.Errorf("VATAmount = %v, want %v", totals.VATAmount, expectedExVAT*0.21)
	}
	if math.Abs(totals.TotalIncVAT-expectedExVAT*1.21) > 0.001 {
		t.Errorf("TotalIncVAT = %v, want %v", totals.TotalIncVAT, expectedExVAT*1.21)
	}
}

func TestAggregateTotals_MachineHoursExcluded(t *testing.T) {
	lines := []QuoteLine{
		{Scope: ScopeEarthworks, Kind: LineKindLabor, Quantity: 12.5, LineTotal: 606.25},
		{Scope: ScopeEarthworks, Kind: LineKindMachine, Quantity: 12.5, LineTotal: 812.50},
	}

	totals := AggregateTotals(lines, 0, 0, nil)

	if totals.TotalLaborHours != 12.5 {
		t.Errorf("TotalLaborHours = %v, want 12.5 (machine hours excluded)", totals.TotalLaborHours)
	}
	if math.Abs(totals.LaborMachineCost-1418.75) > 0.001 {
		t.Errorf("LaborMachineCost = %v, want 1418.75 (machine cost included)", totals.LaborMachineCost)
	}
}

func TestAggregateTotals_MaterialSplit(t *testing.T) {
	lines := []QuoteLine{
		{Scope: ScopePaving, Kind: LineKindLabor, Quantity: 12, LineTotal: 582},
		{Scope: ScopePaving, Kind: LineKindMaterial, Quantity: 31.5, LineTotal: 882},
	}

	totals := AggregateTotals(lines, 0, 21, nil)

	if totals.LaborMachineCost != 582 {
		t.Errorf("LaborMachineCost = %v, want 582", totals.LaborMachineCost)
	}
	if totals.MaterialCost != 882 {
		t.Errorf("MaterialCost = %v, want 882", totals.MaterialCost)
	}
	if totals.Subtotal != 1464 {
		t.Errorf("Subtotal = %v, want 1464", totals.Subtotal)
	}
}

func TestResolveMarginPercent(t *testing.T) {
	scopeMargins := map[string]float64{ScopePaving: 20}

	tests := []struct {
		name   string
		line   QuoteLine
		expect float64
	}{
		{"line override wins", QuoteLine{Scope: ScopePaving, MarginPercent: floatPtr(30)}, 30},
		{"scope margin next", QuoteLine{Scope: ScopePaving}, 20},
		{"default last", QuoteLine{Scope: ScopeTurf}, 15},
		{"explicit zero override", QuoteLine{Scope: ScopePaving, MarginPercent: floatPtr(0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMarginPercent(tt.line, scopeMargins, 15)
			if got != tt.expect {
				t.Errorf("ResolveMarginPercent = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestAggregateTotals_PerLineMargins(t *testing.T) {
	// First line takes the paving scope margin (20%), second the default
	// (10%), third its own 50% override.
	lines := []QuoteLine{
		{Scope: ScopePaving, Kind: LineKindMaterial, LineTotal: 1000},
		{Scope: ScopeTurf, Kind: LineKindMaterial, LineTotal: 500},
		{Scope: ScopeTurf, Kind: LineKindMaterial, LineTotal: 200, MarginPercent: floatPtr(50)},
	}
	scopeMargins := map[string]float64{ScopePaving: 20}

	totals := AggregateTotals(lines, 10, 0, scopeMargins)

	// 1000*0.20 + 500*0.10 + 200*0.50 = 200 + 50 + 100.
	if math.Abs(totals.MarginAmount-350) > 0.001 {
		t.Errorf("MarginAmount = %v, want 350 (weighted per line)", totals.MarginAmount)
	}
	if math.Abs(totals.TotalExVAT-2050) > 0.001 {
		t.Errorf("TotalExVAT = %v, want 2050", totals.TotalExVAT)
	}
}
