package services

// Maintenance constants.
const (
	fertilizerRateKgPerM2     = 0.03
	topUpMulchLayerThicknessM = 0.03
	tallHedgeThresholdM       = 1.8
)

// All maintenance generators apply the backlog-severity multiplier from the
// context (1.0 when no backlog condition is set) on top of accessibility.

// TurfMaintenanceLines generates lawn upkeep: mowing plus optional
// scarifying and fertilizing (fertilizer material in kg).
func TurfMaintenanceLines(in TurfMaintenanceInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	if !isPositive(in.AreaM2) {
		return nil
	}
	backlog := ctx.BacklogMultiplier()

	var lines []QuoteLine

	if norm, ok := ctx.NormHoursFor(ScopeTurfMaintenance, "lawn_mowing"); ok {
		lines = appendLaborLine(lines, ctx, ScopeTurfMaintenance, "mowing",
			"Lawn mowing", in.AreaM2*norm.HoursPerUnit*accessibility*backlog)
	}

	if in.Scarify {
		if norm, ok := ctx.NormHoursFor(ScopeTurfMaintenance, "scarifying"); ok {
			lines = appendLaborLine(lines, ctx, ScopeTurfMaintenance, "scarifying",
				"Scarify lawn", in.AreaM2*norm.HoursPerUnit*accessibility*backlog)
		}
	}

	if in.Fertilize {
		if norm, ok := ctx.NormHoursFor(ScopeTurfMaintenance, "fertilizing"); ok {
			lines = appendLaborLine(lines, ctx, ScopeTurfMaintenance, "fertilizing",
				"Fertilize lawn", in.AreaM2*norm.HoursPerUnit*accessibility*backlog)
		}
		if fertilizer, ok := ctx.ProductFor("turf", "fertilizer"); ok {
			lines = appendMaterialLine(lines, ScopeTurfMaintenance, "fertilizer",
				"Lawn fertilizer", in.AreaM2*fertilizerRateKgPerM2, fertilizer)
		}
	}

	return lines
}

// BorderMaintenanceLines generates border upkeep: weeding and pruning, plus
// an optional mulch top-up.
func BorderMaintenanceLines(in BorderMaintenanceInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	if !isPositive(in.AreaM2) {
		return nil
	}
	backlog := ctx.BacklogMultiplier()

	var lines []QuoteLine

	if norm, ok := ctx.NormHoursFor(ScopeBorderMaintenance, "border_upkeep"); ok {
		lines = appendLaborLine(lines, ctx, ScopeBorderMaintenance, "upkeep",
			"Border weeding and pruning", in.AreaM2*norm.HoursPerUnit*accessibility*backlog)
	}

	if in.TopUpMulch {
		if norm, ok := ctx.NormHoursFor(ScopeBorderMaintenance, "mulch_topup"); ok {
			lines = appendLaborLine(lines, ctx, ScopeBorderMaintenance, "mulch-topup",
				"Top up mulch layer", in.AreaM2*norm.HoursPerUnit*accessibility*backlog)
		}
		if mulch, ok := ctx.ProductFor("finish", "mulch"); ok {
			lines = appendMaterialLine(lines, ScopeBorderMaintenance, "mulch",
				"Mulch", in.AreaM2*topUpMulchLayerThicknessM, mulch)
		}
	}

	return lines
}

// HedgeMaintenanceLines generates hedge trimming. The trimmed volume is
// length x height x width; hedges taller than the tall-hedge threshold get
// the hedge-height correction on top of accessibility and backlog. Hauling
// clippings adds loading labor and a green-waste disposal line.
func HedgeMaintenanceLines(in HedgeMaintenanceInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	if !isPositive(in.LengthM) || !isPositive(in.HeightM) || !isPositive(in.WidthM) {
		return nil
	}
	volume := in.LengthM * in.HeightM * in.WidthM
	backlog := ctx.BacklogMultiplier()

	height := 1.0
	if in.HeightM > tallHedgeThresholdM {
		height = ctx.FactorFor(FactorHedgeHeight, "tall")
	}

	var lines []QuoteLine

	if norm, ok := ctx.NormHoursFor(ScopeHedgeMaintenance, "hedge_trimming"); ok {
		lines = appendLaborLine(lines, ctx, ScopeHedgeMaintenance, "trimming",
			"Hedge trimming", volume*norm.HoursPerUnit*accessibility*backlog*height)
	}

	if in.HaulClippings {
		if norm, ok := ctx.NormHoursFor(ScopeHedgeMaintenance, "clippings_loading"); ok {
			lines = appendLaborLine(lines, ctx, ScopeHedgeMaintenance, "clippings-loading",
				"Load and haul clippings", volume*norm.HoursPerUnit*accessibility*backlog)
		}
		if disposal, ok := ctx.ProductFor("disposal", "green_waste"); ok {
			lines = appendCountedMaterialLine(lines, ScopeHedgeMaintenance, "clippings-disposal",
				"Green waste disposal", volume, disposal)
		}
	}

	return lines
}

// TreeMaintenanceLines generates tree pruning plus an optional stump-grinder
// machine line per stump.
func TreeMaintenanceLines(in TreeMaintenanceInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	backlog := ctx.BacklogMultiplier()

	var lines []QuoteLine

	if isPositive(in.TreeCount) {
		if norm, ok := ctx.NormHoursFor(ScopeTreeMaintenance, "tree_pruning"); ok {
			lines = appendLaborLine(lines, ctx, ScopeTreeMaintenance, "pruning",
				"Tree pruning", in.TreeCount*norm.HoursPerUnit*accessibility*backlog)
		}
	}

	if isPositive(in.StumpCount) {
		if norm, ok := ctx.NormHoursFor(ScopeTreeMaintenance, "stump_grinding"); ok {
			if grinder, ok := ctx.ProductFor("machine", "stump_grinder"); ok {
				lines = appendMachineLine(lines, ScopeTreeMaintenance, "stump-grinding",
					"Stump grinding", in.StumpCount*norm.HoursPerUnit*accessibility*backlog, grinder)
			}
		}
	}

	return lines
}
