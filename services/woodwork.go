package services

import "math"

// Fence construction constants.
const (
	fencePlanksPerMeter = 6.0
	fencePostSpacingM   = 2.5
)

// WoodworkLines generates one wooden construction by sub-type. Fences are
// length-driven (planks and posts are counted pieces, planks rounded up
// after waste uplift); decks and pergolas are area-driven, pergolas at a
// higher norm. A foundation tier adds per-post foundation labor + concrete
// for fences.
func WoodworkLines(in WoodworkInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	switch in.SubType {
	case "fence":
		return fenceLines(in, ctx, accessibility)
	case "deck":
		return areaWoodworkLines(in, ctx, accessibility, "deck_install", "Build deck", "decking_board", "Decking boards")
	case "pergola":
		return areaWoodworkLines(in, ctx, accessibility, "pergola_install", "Build pergola", "pergola_timber", "Pergola timber")
	}
	return nil
}

func fenceLines(in WoodworkInput, ctx CalculationContext, accessibility float64) []QuoteLine {
	if !isPositive(in.LengthM) {
		return nil
	}

	var lines []QuoteLine

	if norm, ok := ctx.NormHoursFor(ScopeWoodwork, "fence_install"); ok {
		lines = appendLaborLine(lines, ctx, ScopeWoodwork, "fence-install",
			"Install fence", in.LengthM*norm.HoursPerUnit*accessibility)
	}

	if plank, ok := ctx.ProductFor("timber", "fence_plank"); ok {
		// Planks are ordered whole: waste uplift first, then round up.
		count := math.Ceil(OrderQuantity(in.LengthM*fencePlanksPerMeter, plank.WastePercent))
		lines = appendCountedMaterialLine(lines, ScopeWoodwork, "fence-planks",
			"Fence planks", count, plank)
	}

	postCount := math.Floor(in.LengthM/fencePostSpacingM) + 1
	if post, ok := ctx.ProductFor("timber", "fence_post"); ok {
		lines = appendCountedMaterialLine(lines, ScopeWoodwork, "fence-posts",
			"Fence posts", postCount, post)
	}

	if in.FoundationTier != "" {
		if norm, ok := ctx.NormHoursFor(ScopeWoodwork, "post_foundation_"+in.FoundationTier); ok {
			lines = appendLaborLine(lines, ctx, ScopeWoodwork, "post-foundations",
				"Set post foundations ("+in.FoundationTier+")",
				postCount*norm.HoursPerUnit*accessibility)
		}
		if foundation, ok := ctx.ProductFor("concrete", "foundation_"+in.FoundationTier); ok {
			lines = appendCountedMaterialLine(lines, ScopeWoodwork, "foundation-concrete",
				"Post foundations ("+in.FoundationTier+")", postCount, foundation)
		}
	}

	return lines
}

func areaWoodworkLines(in WoodworkInput, ctx CalculationContext, accessibility float64, activity, laborDesc, productName, materialDesc string) []QuoteLine {
	if !isPositive(in.AreaM2) {
		return nil
	}

	var lines []QuoteLine

	if norm, ok := ctx.NormHoursFor(ScopeWoodwork, activity); ok {
		lines = appendLaborLine(lines, ctx, ScopeWoodwork, in.SubType+"-install",
			laborDesc, in.AreaM2*norm.HoursPerUnit*accessibility)
	}
	if timber, ok := ctx.ProductFor("timber", productName); ok {
		lines = appendMaterialLine(lines, ScopeWoodwork, in.SubType+"-timber",
			materialDesc, in.AreaM2, timber)
	}

	return lines
}
