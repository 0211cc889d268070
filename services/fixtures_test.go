package services

// testContext returns a fully populated CalculationContext mirroring the
// production seed set. Generator tests rely on these exact norms and prices.
func testContext() CalculationContext {
	return CalculationContext{
		NormHours: []NormHourEntry{
			{ID: "n01", Scope: ScopeEarthworks, Activity: "excavation_shallow", HoursPerUnit: 0.15, Unit: UnitSquareMeter},
			{ID: "n02", Scope: ScopeEarthworks, Activity: "excavation_standard", HoursPerUnit: 0.25, Unit: UnitSquareMeter},
			{ID: "n03", Scope: ScopeEarthworks, Activity: "excavation_deep", HoursPerUnit: 0.40, Unit: UnitSquareMeter},
			{ID: "n04", Scope: ScopeEarthworks, Activity: "soil_haul_away", HoursPerUnit: 0.30, Unit: UnitCubicMeter},

			{ID: "n05", Scope: ScopePaving, Activity: "lay_tile", HoursPerUnit: 0.40, Unit: UnitSquareMeter},
			{ID: "n06", Scope: ScopePaving, Activity: "lay_clinker", HoursPerUnit: 0.55, Unit: UnitSquareMeter},
			{ID: "n07", Scope: ScopePaving, Activity: "lay_natural_stone", HoursPerUnit: 0.75, Unit: UnitSquareMeter},
			{ID: "n08", Scope: ScopePaving, Activity: "sand_bed", HoursPerUnit: 0.90, Unit: UnitCubicMeter},
			{ID: "n09", Scope: ScopePaving, Activity: "edging", HoursPerUnit: 0.20, Unit: UnitMeter},

			{ID: "n10", Scope: ScopePlanting, Activity: "border_prep_light", HoursPerUnit: 0.30, Unit: UnitSquareMeter},
			{ID: "n11", Scope: ScopePlanting, Activity: "border_prep_medium", HoursPerUnit: 0.50, Unit: UnitSquareMeter},
			{ID: "n12", Scope: ScopePlanting, Activity: "border_prep_intensive", HoursPerUnit: 0.80, Unit: UnitSquareMeter},
			{ID: "n13", Scope: ScopePlanting, Activity: "finish_mulch", HoursPerUnit: 0.10, Unit: UnitSquareMeter},
			{ID: "n14", Scope: ScopePlanting, Activity: "finish_gravel", HoursPerUnit: 0.15, Unit: UnitSquareMeter},

			{ID: "n15", Scope: ScopeTurf, Activity: "turf_prep", HoursPerUnit: 0.20, Unit: UnitSquareMeter},
			{ID: "n16", Scope: ScopeTurf, Activity: "seeding", HoursPerUnit: 0.05, Unit: UnitSquareMeter},
			{ID: "n17", Scope: ScopeTurf, Activity: "sod_laying", HoursPerUnit: 0.15, Unit: UnitSquareMeter},

			{ID: "n18", Scope: ScopeWoodwork, Activity: "fence_install", HoursPerUnit: 0.75, Unit: UnitMeter},
			{ID: "n19", Scope: ScopeWoodwork, Activity: "deck_install", HoursPerUnit: 1.10, Unit: UnitSquareMeter},
			{ID: "n20", Scope: ScopeWoodwork, Activity: "pergola_install", HoursPerUnit: 1.60, Unit: UnitSquareMeter},
			{ID: "n21", Scope: ScopeWoodwork, Activity: "post_foundation_light", HoursPerUnit: 0.50, Unit: UnitPiece},
			{ID: "n22", Scope: ScopeWoodwork, Activity: "post_foundation_heavy", HoursPerUnit: 0.90, Unit: UnitPiece},

			{ID: "n23", Scope: ScopeWaterElectrical, Activity: "trench_digging", HoursPerUnit: 0.35, Unit: UnitMeter},
			{ID: "n24", Scope: ScopeWaterElectrical, Activity: "cable_laying", HoursPerUnit: 0.10, Unit: UnitMeter},
			{ID: "n25", Scope: ScopeWaterElectrical, Activity: "trench_repair", HoursPerUnit: 0.15, Unit: UnitMeter},
			{ID: "n26", Scope: ScopeWaterElectrical, Activity: "install_light", HoursPerUnit: 0.75, Unit: UnitPiece},
			{ID: "n27", Scope: ScopeWaterElectrical, Activity: "install_socket", HoursPerUnit: 0.50, Unit: UnitPiece},
			{ID: "n28", Scope: ScopeWaterElectrical, Activity: "install_tap", HoursPerUnit: 1.25, Unit: UnitPiece},

			{ID: "n29", Scope: ScopeTurfMaintenance, Activity: "lawn_mowing", HoursPerUnit: 0.015, Unit: UnitSquareMeter},
			{ID: "n30", Scope: ScopeTurfMaintenance, Activity: "scarifying", HoursPerUnit: 0.03, Unit: UnitSquareMeter},
			{ID: "n31", Scope: ScopeTurfMaintenance, Activity: "fertilizing", HoursPerUnit: 0.01, Unit: UnitSquareMeter},
			{ID: "n32", Scope: ScopeBorderMaintenance, Activity: "border_upkeep", HoursPerUnit: 0.08, Unit: UnitSquareMeter},
			{ID: "n33", Scope: ScopeBorderMaintenance, Activity: "mulch_topup", HoursPerUnit: 0.10, Unit: UnitSquareMeter},
			{ID: "n34", Scope: ScopeHedgeMaintenance, Activity: "hedge_trimming", HoursPerUnit: 0.55, Unit: UnitCubicMeter},
			{ID: "n35", Scope: ScopeHedgeMaintenance, Activity: "clippings_loading", HoursPerUnit: 0.25, Unit: UnitCubicMeter},
			{ID: "n36", Scope: ScopeTreeMaintenance, Activity: "tree_pruning", HoursPerUnit: 1.50, Unit: UnitPiece},
			{ID: "n37", Scope: ScopeTreeMaintenance, Activity: "stump_grinding", HoursPerUnit: 0.75, Unit: UnitPiece},
		},
		CorrectionFactors: []CorrectionFactor{
			{ID: "f01", Category: FactorAccessibility, Value: "good", Multiplier: 1.0},
			{ID: "f02", Category: FactorAccessibility, Value: "limited", Multiplier: 1.2},
			{ID: "f03", Category: FactorAccessibility, Value: "poor", Multiplier: 1.5},
			{ID: "f04", Category: FactorCuttingComplexity, Value: "low", Multiplier: 1.0},
			{ID: "f05", Category: FactorCuttingComplexity, Value: "medium", Multiplier: 1.15},
			{ID: "f06", Category: FactorCuttingComplexity, Value: "high", Multiplier: 1.3},
			{ID: "f07", Category: FactorBacklogSeverity, Value: "light", Multiplier: 1.0},
			{ID: "f08", Category: FactorBacklogSeverity, Value: "moderate", Multiplier: 1.25},
			{ID: "f09", Category: FactorBacklogSeverity, Value: "severe", Multiplier: 1.5},
			{ID: "f10", Category: FactorHedgeHeight, Value: "tall", Multiplier: 1.3},
		},
		Products: []Product{
			{ID: "p01", Name: "tile", Category: "paving", SalePrice: 28, Unit: UnitSquareMeter, WastePercent: 5},
			{ID: "p02", Name: "clinker", Category: "paving", SalePrice: 32, Unit: UnitSquareMeter, WastePercent: 5},
			{ID: "p03", Name: "natural_stone", Category: "paving", SalePrice: 55, Unit: UnitSquareMeter, WastePercent: 10},
			{ID: "p04", Name: "edging", Category: "paving", SalePrice: 9.5, Unit: UnitMeter, WastePercent: 5},
			{ID: "p05", Name: "sand", Category: "aggregates", SalePrice: 42, Unit: UnitCubicMeter, WastePercent: 10},
			{ID: "p06", Name: "mulch", Category: "finish", SalePrice: 38, Unit: UnitCubicMeter, WastePercent: 5},
			{ID: "p07", Name: "gravel", Category: "finish", SalePrice: 48, Unit: UnitCubicMeter, WastePercent: 5},
			{ID: "p08", Name: "border_mix", Category: "plants", SalePrice: 4.75, Unit: UnitPiece, WastePercent: 8},
			{ID: "p09", Name: "grass_seed", Category: "turf", SalePrice: 12.5, Unit: UnitKilogram, WastePercent: 10},
			{ID: "p10", Name: "sod", Category: "turf", SalePrice: 6.25, Unit: UnitSquareMeter, WastePercent: 7},
			{ID: "p11", Name: "fertilizer", Category: "turf", SalePrice: 3.2, Unit: UnitKilogram, WastePercent: 0},
			{ID: "p12", Name: "fence_plank", Category: "timber", SalePrice: 3.9, Unit: UnitPiece, WastePercent: 10},
			{ID: "p13", Name: "fence_post", Category: "timber", SalePrice: 14.5, Unit: UnitPiece, WastePercent: 0},
			{ID: "p14", Name: "decking_board", Category: "timber", SalePrice: 36, Unit: UnitSquareMeter, WastePercent: 12},
			{ID: "p15", Name: "pergola_timber", Category: "timber", SalePrice: 42, Unit: UnitSquareMeter, WastePercent: 12},
			{ID: "p16", Name: "foundation_light", Category: "concrete", SalePrice: 11, Unit: UnitPiece, WastePercent: 0},
			{ID: "p17", Name: "foundation_heavy", Category: "concrete", SalePrice: 19.5, Unit: UnitPiece, WastePercent: 0},
			{ID: "p18", Name: "cable", Category: "electrical", SalePrice: 2.4, Unit: UnitMeter, WastePercent: 15},
			{ID: "p19", Name: "light", Category: "fixtures", SalePrice: 85, Unit: UnitPiece, WastePercent: 0},
			{ID: "p20", Name: "socket", Category: "fixtures", SalePrice: 54, Unit: UnitPiece, WastePercent: 0},
			{ID: "p21", Name: "tap", Category: "fixtures", SalePrice: 120, Unit: UnitPiece, WastePercent: 0},
			{ID: "p22", Name: "soil", Category: "disposal", SalePrice: 35, Unit: UnitCubicMeter, WastePercent: 0},
			{ID: "p23", Name: "green_waste", Category: "disposal", SalePrice: 25, Unit: UnitCubicMeter, WastePercent: 0},
			{ID: "p24", Name: "mini_excavator", Category: "machine", SalePrice: 65, Unit: UnitHour, WastePercent: 0},
			{ID: "p25", Name: "stump_grinder", Category: "machine", SalePrice: 45, Unit: UnitHour, WastePercent: 0},
		},
		Settings: Settings{
			HourlyRate:           48.50,
			DefaultMarginPercent: 15,
			VATPercent:           21,
		},
	}
}

// findLine returns the first line with the given ID, or nil.
func findLine(lines []QuoteLine, id string) *QuoteLine {
	for i := range lines {
		if lines[i].ID == id {
			return &lines[i]
		}
	}
	return nil
}
