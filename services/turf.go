package services

// seedRateKgPerM2 is the sowing rate for new lawns.
const seedRateKgPerM2 = 0.035

// TurfLines generates lawn construction: ground preparation plus either
// seeding (seed material in kg) or sod laying (sod material in m2),
// depending on the chosen method.
func TurfLines(in TurfInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	if !isPositive(in.AreaM2) {
		return nil
	}

	var lines []QuoteLine

	if norm, ok := ctx.NormHoursFor(ScopeTurf, "turf_prep"); ok {
		lines = appendLaborLine(lines, ctx, ScopeTurf, "preparation",
			"Lawn ground preparation", in.AreaM2*norm.HoursPerUnit*accessibility)
	}

	switch in.Method {
	case "seed":
		if norm, ok := ctx.NormHoursFor(ScopeTurf, "seeding"); ok {
			lines = appendLaborLine(lines, ctx, ScopeTurf, "seeding",
				"Sow lawn seed", in.AreaM2*norm.HoursPerUnit*accessibility)
		}
		if seed, ok := ctx.ProductFor("turf", "grass_seed"); ok {
			lines = appendMaterialLine(lines, ScopeTurf, "seed",
				"Grass seed", in.AreaM2*seedRateKgPerM2, seed)
		}
	case "sod":
		if norm, ok := ctx.NormHoursFor(ScopeTurf, "sod_laying"); ok {
			lines = appendLaborLine(lines, ctx, ScopeTurf, "sod-laying",
				"Lay sod", in.AreaM2*norm.HoursPerUnit*accessibility)
		}
		if sod, ok := ctx.ProductFor("turf", "sod"); ok {
			lines = appendMaterialLine(lines, ScopeTurf, "sod",
				"Sod rolls", in.AreaM2, sod)
		}
	}

	return lines
}
