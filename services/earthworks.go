package services

// EarthworksLines generates the excavation labor line, an optional machine
// line when the digging is done by mini excavator, and the haul-away
// labor + disposal lines when excavated soil leaves the site.
func EarthworksLines(in EarthworksInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	var lines []QuoteLine

	if isPositive(in.AreaM2) {
		if norm, ok := ctx.NormHoursFor(ScopeEarthworks, "excavation_"+in.DepthTier); ok {
			hours := in.AreaM2 * norm.HoursPerUnit * accessibility
			lines = appendLaborLine(lines, ctx, ScopeEarthworks, "excavation",
				"Excavation ("+in.DepthTier+" depth)", hours)

			if in.MachineDig {
				if machine, ok := ctx.ProductFor("machine", "mini_excavator"); ok {
					lines = appendMachineLine(lines, ScopeEarthworks, "mini-excavator",
						"Mini excavator", hours, machine)
				}
			}
		}
	}

	if in.HaulAway && isPositive(in.HaulVolumeM3) {
		if norm, ok := ctx.NormHoursFor(ScopeEarthworks, "soil_haul_away"); ok {
			lines = appendLaborLine(lines, ctx, ScopeEarthworks, "haul-away",
				"Soil haul-away", in.HaulVolumeM3*norm.HoursPerUnit*accessibility)
		}
		if disposal, ok := ctx.ProductFor("disposal", "soil"); ok {
			lines = appendCountedMaterialLine(lines, ScopeEarthworks, "soil-disposal",
				"Soil disposal", in.HaulVolumeM3, disposal)
		}
	}

	return lines
}
