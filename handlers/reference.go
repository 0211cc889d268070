package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gardenquote/services"
)

// Reference data listings. All four reuse the context loader so the API
// serves exactly what the calculation core would see, including its
// tolerance for empty collections.

// HandleNormHourList lists the norm-hour table. GET /api/reference/norm-hours
func HandleNormHourList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ctx := services.LoadCalculationContext(app, "", "")
		if ctx.NormHours == nil {
			ctx.NormHours = []services.NormHourEntry{}
		}
		return e.JSON(http.StatusOK, ctx.NormHours)
	}
}

// HandleCorrectionFactorList lists the correction-factor table.
// GET /api/reference/correction-factors
func HandleCorrectionFactorList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ctx := services.LoadCalculationContext(app, "", "")
		if ctx.CorrectionFactors == nil {
			ctx.CorrectionFactors = []services.CorrectionFactor{}
		}
		return e.JSON(http.StatusOK, ctx.CorrectionFactors)
	}
}

// HandleProductList lists the product catalog. GET /api/reference/products
func HandleProductList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ctx := services.LoadCalculationContext(app, "", "")
		if ctx.Products == nil {
			ctx.Products = []services.Product{}
		}
		return e.JSON(http.StatusOK, ctx.Products)
	}
}

// HandleSettingsView returns the company settings record.
// GET /api/reference/settings
func HandleSettingsView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ctx := services.LoadCalculationContext(app, "", "")
		return e.JSON(http.StatusOK, ctx.Settings)
	}
}

// HandleScopeOptions returns the closed option lists the form layer needs to
// build a valid CalculationInput. GET /api/reference/options
func HandleScopeOptions(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"scopes":             services.ScopeOptions,
			"new_build_scopes":   services.NewBuildScopes,
			"maintenance_scopes": services.MaintenanceScopes,
			"units":              services.UnitOptions,
			"line_kinds":         services.LineKindOptions,
			"accessibility":      services.AccessibilityOptions,
			"cutting_complexity": services.CuttingComplexityOptions,
			"backlog_severity":   services.BacklogSeverityOptions,
			"depth_tiers":        services.DepthTierOptions,
			"paving_types":       services.PavingTypeOptions,
			"intensities":        services.IntensityOptions,
			"finishes":           services.FinishOptions,
			"turf_methods":       services.TurfMethodOptions,
			"woodwork_sub_types": services.WoodworkSubTypes,
			"foundation_tiers":   services.FoundationTierOptions,
			"fixture_types":      services.FixtureTypeOptions,
		})
	}
}
