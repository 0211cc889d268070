package services

// plantsPerSquareMeter maps planting intensity to plant density. An
// unrecognized intensity yields no plant material line.
var plantsPerSquareMeter = map[string]float64{
	"light":     3,
	"medium":    5,
	"intensive": 8,
}

// Finish layer thicknesses for border finishing.
const (
	mulchLayerThicknessM  = 0.07
	gravelLayerThicknessM = 0.05
)

// PlantingLines generates border preparation + planting labor, the plant
// material line (density by intensity, with waste uplift) and an optional
// mulch or gravel finish.
func PlantingLines(in PlantingInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	if !isPositive(in.AreaM2) {
		return nil
	}

	var lines []QuoteLine

	if norm, ok := ctx.NormHoursFor(ScopePlanting, "border_prep_"+in.Intensity); ok {
		lines = appendLaborLine(lines, ctx, ScopePlanting, "prep-planting",
			"Border preparation and planting ("+in.Intensity+")",
			in.AreaM2*norm.HoursPerUnit*accessibility)
	}

	if perM2, ok := plantsPerSquareMeter[in.Intensity]; ok {
		if plants, ok := ctx.ProductFor("plants", "border_mix"); ok {
			lines = appendMaterialLine(lines, ScopePlanting, "plants",
				"Border plants", in.AreaM2*perM2, plants)
		}
	}

	switch in.Finish {
	case "mulch":
		if norm, ok := ctx.NormHoursFor(ScopePlanting, "finish_mulch"); ok {
			lines = appendLaborLine(lines, ctx, ScopePlanting, "mulch-finish",
				"Apply mulch finish", in.AreaM2*norm.HoursPerUnit*accessibility)
		}
		if mulch, ok := ctx.ProductFor("finish", "mulch"); ok {
			lines = appendMaterialLine(lines, ScopePlanting, "mulch",
				"Mulch", in.AreaM2*mulchLayerThicknessM, mulch)
		}
	case "gravel":
		if norm, ok := ctx.NormHoursFor(ScopePlanting, "finish_gravel"); ok {
			lines = appendLaborLine(lines, ctx, ScopePlanting, "gravel-finish",
				"Apply gravel finish", in.AreaM2*norm.HoursPerUnit*accessibility)
		}
		if gravel, ok := ctx.ProductFor("finish", "gravel"); ok {
			lines = appendMaterialLine(lines, ScopePlanting, "gravel",
				"Decorative gravel", in.AreaM2*gravelLayerThicknessM, gravel)
		}
	}

	return lines
}
