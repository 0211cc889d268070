package services

// WaterElectricalLines generates outdoor water/electrical work. When trenches
// are needed, trench digging and repair labor follow the trench length while
// cable laying and the cable material follow the cable length (the cable run
// can exceed the trench; the trench length is the fallback when no cable
// length is given). Fixture installation (lighting, sockets, taps) is
// count-driven; fixtures are counted goods, so the material quantity equals
// the count with no waste uplift.
func WaterElectricalLines(in WaterElectricalInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	var lines []QuoteLine

	if in.TrenchesNeeded && isPositive(in.TrenchLengthM) {
		cableLengthM := in.CableLengthM
		if !isPositive(cableLengthM) {
			cableLengthM = in.TrenchLengthM
		}

		trenchActivities := []struct {
			activity    string
			slug        string
			description string
			lengthM     float64
		}{
			{"trench_digging", "trench-digging", "Dig cable trenches", in.TrenchLengthM},
			{"cable_laying", "cable-laying", "Lay cable and conduit", cableLengthM},
			{"trench_repair", "trench-repair", "Close and repair trenches", in.TrenchLengthM},
		}
		for _, a := range trenchActivities {
			if norm, ok := ctx.NormHoursFor(ScopeWaterElectrical, a.activity); ok {
				lines = appendLaborLine(lines, ctx, ScopeWaterElectrical, a.slug,
					a.description, a.lengthM*norm.HoursPerUnit*accessibility)
			}
		}
		if cable, ok := ctx.ProductFor("electrical", "cable"); ok {
			lines = appendMaterialLine(lines, ScopeWaterElectrical, "cable",
				"Outdoor cable", cableLengthM, cable)
		}
	}

	if isPositive(in.FixtureCount) && in.FixtureType != "" {
		if norm, ok := ctx.NormHoursFor(ScopeWaterElectrical, "install_"+in.FixtureType); ok {
			lines = appendLaborLine(lines, ctx, ScopeWaterElectrical, "fixture-install",
				"Install fixtures ("+in.FixtureType+")",
				in.FixtureCount*norm.HoursPerUnit*accessibility)
		}
		if fixture, ok := ctx.ProductFor("fixtures", in.FixtureType); ok {
			lines = appendCountedMaterialLine(lines, ScopeWaterElectrical, "fixtures",
				"Fixtures ("+in.FixtureType+")", in.FixtureCount, fixture)
		}
	}

	return lines
}
