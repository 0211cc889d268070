package services

// Closed option lists exposed to API clients. The calculation core itself
// tolerates unknown values (they degrade to neutral multipliers or skipped
// sub-items); these lists exist so the form layer can render valid choices.

// ScopeOptions lists all scope identifiers, new-build first.
var ScopeOptions = []string{
	ScopeEarthworks,
	ScopePaving,
	ScopePlanting,
	ScopeTurf,
	ScopeWoodwork,
	ScopeWaterElectrical,
	ScopeTurfMaintenance,
	ScopeBorderMaintenance,
	ScopeHedgeMaintenance,
	ScopeTreeMaintenance,
}

// NewBuildScopes and MaintenanceScopes partition ScopeOptions by project type.
var (
	NewBuildScopes = []string{
		ScopeEarthworks,
		ScopePaving,
		ScopePlanting,
		ScopeTurf,
		ScopeWoodwork,
		ScopeWaterElectrical,
	}
	MaintenanceScopes = []string{
		ScopeTurfMaintenance,
		ScopeBorderMaintenance,
		ScopeHedgeMaintenance,
		ScopeTreeMaintenance,
	}
)

// UnitOptions lists the units that appear on quote lines and reference rows.
var UnitOptions = []string{
	UnitSquareMeter,
	UnitCubicMeter,
	UnitMeter,
	UnitPiece,
	UnitKilogram,
	UnitHour,
}

// LineKindOptions lists the quote line kinds.
var LineKindOptions = []LineKind{
	LineKindLabor,
	LineKindMaterial,
	LineKindMachine,
}

// Condition value options per correction-factor category.
var (
	AccessibilityOptions     = []string{"good", "limited", "poor"}
	CuttingComplexityOptions = []string{"low", "medium", "high"}
	BacklogSeverityOptions   = []string{"light", "moderate", "severe"}
)

// Enumerated sub-option values per scope.
var (
	DepthTierOptions      = []string{"shallow", "standard", "deep"}
	PavingTypeOptions     = []string{"tile", "clinker", "natural_stone"}
	IntensityOptions      = []string{"light", "medium", "intensive"}
	FinishOptions         = []string{"mulch", "gravel"}
	TurfMethodOptions     = []string{"seed", "sod"}
	WoodworkSubTypes      = []string{"fence", "deck", "pergola"}
	FoundationTierOptions = []string{"light", "heavy"}
	FixtureTypeOptions    = []string{"light", "socket", "tap"}
)
