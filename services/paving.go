package services

// defaultSandLayerThicknessM is used when a sand bed is requested without an
// explicit layer thickness.
const defaultSandLayerThicknessM = 0.05

// PavingLines generates paver laying labor + material, the optional sand bed
// (volume = area x layer thickness) and optional edging along the given
// length. Laying hours carry the cutting-complexity correction on top of the
// accessibility multiplier.
func PavingLines(in PavingInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	var lines []QuoteLine

	if isPositive(in.AreaM2) && in.PavingType != "" {
		if norm, ok := ctx.NormHoursFor(ScopePaving, "lay_"+in.PavingType); ok {
			cutting := ctx.FactorFor(FactorCuttingComplexity, in.CuttingComplexity)
			lines = appendLaborLine(lines, ctx, ScopePaving, "lay",
				"Lay paving ("+in.PavingType+")",
				in.AreaM2*norm.HoursPerUnit*accessibility*cutting)
		}
		if paver, ok := ctx.ProductFor("paving", in.PavingType); ok {
			lines = appendMaterialLine(lines, ScopePaving, "pavers",
				"Paving material ("+in.PavingType+")", in.AreaM2, paver)
		}
	}

	if in.SandBed && isPositive(in.AreaM2) {
		thickness := in.SandLayerThicknessM
		if !isPositive(thickness) {
			thickness = defaultSandLayerThicknessM
		}
		volume := in.AreaM2 * thickness
		if norm, ok := ctx.NormHoursFor(ScopePaving, "sand_bed"); ok {
			lines = appendLaborLine(lines, ctx, ScopePaving, "sand-bed",
				"Sand bed preparation", volume*norm.HoursPerUnit*accessibility)
		}
		if sand, ok := ctx.ProductFor("aggregates", "sand"); ok {
			lines = appendMaterialLine(lines, ScopePaving, "sand",
				"Bedding sand", volume, sand)
		}
	}

	if isPositive(in.EdgingLengthM) {
		if norm, ok := ctx.NormHoursFor(ScopePaving, "edging"); ok {
			lines = appendLaborLine(lines, ctx, ScopePaving, "edging",
				"Place edging", in.EdgingLengthM*norm.HoursPerUnit*accessibility)
		}
		if edging, ok := ctx.ProductFor("paving", "edging"); ok {
			lines = appendMaterialLine(lines, ScopePaving, "edging-material",
				"Edging strips", in.EdgingLengthM, edging)
		}
	}

	return lines
}
