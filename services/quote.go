package services

// GenerateQuoteLines dispatches every requested scope to its line generator
// and concatenates the results in input order. Scopes whose data bag is nil
// and unknown scope identifiers are skipped silently; an empty selection or
// empty reference collections yield an empty result, never an error.
//
// The accessibility multiplier is resolved once for the whole run;
// unrecognized conditions fall back to 1.0.
func GenerateQuoteLines(in CalculationInput, ctx CalculationContext) []QuoteLine {
	accessibility := ctx.FactorFor(FactorAccessibility, in.Accessibility)

	lines := []QuoteLine{}
	for _, scope := range in.Scopes {
		switch scope {
		case ScopeEarthworks:
			if in.Earthworks != nil {
				lines = append(lines, EarthworksLines(*in.Earthworks, ctx, accessibility)...)
			}
		case ScopePaving:
			if in.Paving != nil {
				lines = append(lines, PavingLines(*in.Paving, ctx, accessibility)...)
			}
		case ScopePlanting:
			if in.Planting != nil {
				lines = append(lines, PlantingLines(*in.Planting, ctx, accessibility)...)
			}
		case ScopeTurf:
			if in.Turf != nil {
				lines = append(lines, TurfLines(*in.Turf, ctx, accessibility)...)
			}
		case ScopeWoodwork:
			if in.Woodwork != nil {
				lines = append(lines, WoodworkLines(*in.Woodwork, ctx, accessibility)...)
			}
		case ScopeWaterElectrical:
			if in.WaterElectrical != nil {
				lines = append(lines, WaterElectricalLines(*in.WaterElectrical, ctx, accessibility)...)
			}
		case ScopeTurfMaintenance:
			if in.TurfMaintenance != nil {
				lines = append(lines, TurfMaintenanceLines(*in.TurfMaintenance, ctx, accessibility)...)
			}
		case ScopeBorderMaintenance:
			if in.BorderMaintenance != nil {
				lines = append(lines, BorderMaintenanceLines(*in.BorderMaintenance, ctx, accessibility)...)
			}
		case ScopeHedgeMaintenance:
			if in.HedgeMaintenance != nil {
				lines = append(lines, HedgeMaintenanceLines(*in.HedgeMaintenance, ctx, accessibility)...)
			}
		case ScopeTreeMaintenance:
			if in.TreeMaintenance != nil {
				lines = append(lines, TreeMaintenanceLines(*in.TreeMaintenance, ctx, accessibility)...)
			}
		}
	}
	return lines
}
