package services

// Project types.
const (
	ProjectTypeNewBuild    = "new_build"
	ProjectTypeMaintenance = "maintenance"
)

// Scope identifiers. These are the closed set of work categories the
// orchestrator dispatches on; downstream consumers key off these exact names.
const (
	ScopeEarthworks        = "earthworks"
	ScopePaving            = "paving"
	ScopePlanting          = "planting"
	ScopeTurf              = "turf"
	ScopeWoodwork          = "woodwork"
	ScopeWaterElectrical   = "water_electrical"
	ScopeTurfMaintenance   = "turf_maintenance"
	ScopeBorderMaintenance = "border_maintenance"
	ScopeHedgeMaintenance  = "hedge_maintenance"
	ScopeTreeMaintenance   = "tree_maintenance"
)

// CalculationInput is the typed scope selection supplied by the form layer.
// Each selected scope carries its own optional data bag; a selected scope
// whose bag is nil is silently skipped by the orchestrator.
type CalculationInput struct {
	ProjectType     string   `json:"project_type"`
	Scopes          []string `json:"scopes"`
	Accessibility   string   `json:"accessibility"`
	BacklogSeverity string   `json:"backlog_severity,omitempty"`

	Earthworks        *EarthworksInput        `json:"earthworks,omitempty"`
	Paving            *PavingInput            `json:"paving,omitempty"`
	Planting          *PlantingInput          `json:"planting,omitempty"`
	Turf              *TurfInput              `json:"turf,omitempty"`
	Woodwork          *WoodworkInput          `json:"woodwork,omitempty"`
	WaterElectrical   *WaterElectricalInput   `json:"water_electrical,omitempty"`
	TurfMaintenance   *TurfMaintenanceInput   `json:"turf_maintenance,omitempty"`
	BorderMaintenance *BorderMaintenanceInput `json:"border_maintenance,omitempty"`
	HedgeMaintenance  *HedgeMaintenanceInput  `json:"hedge_maintenance,omitempty"`
	TreeMaintenance   *TreeMaintenanceInput   `json:"tree_maintenance,omitempty"`
}

// EarthworksInput drives excavation and optional soil haul-away.
// DepthTier is one of shallow, standard, deep.
type EarthworksInput struct {
	AreaM2       float64 `json:"area_m2"`
	DepthTier    string  `json:"depth_tier"`
	MachineDig   bool    `json:"machine_dig"`
	HaulAway     bool    `json:"haul_away"`
	HaulVolumeM3 float64 `json:"haul_volume_m3"`
}

// PavingInput drives paver laying, the optional sand bed and optional edging.
// PavingType is one of tile, clinker, natural_stone; CuttingComplexity is one
// of low, medium, high.
type PavingInput struct {
	AreaM2              float64 `json:"area_m2"`
	PavingType          string  `json:"paving_type"`
	CuttingComplexity   string  `json:"cutting_complexity"`
	SandBed             bool    `json:"sand_bed"`
	SandLayerThicknessM float64 `json:"sand_layer_thickness_m,omitempty"`
	EdgingLengthM       float64 `json:"edging_length_m,omitempty"`
}

// PlantingInput drives border preparation and planting. Intensity is one of
// light, medium, intensive; Finish is empty, mulch or gravel.
type PlantingInput struct {
	AreaM2    float64 `json:"area_m2"`
	Intensity string  `json:"intensity"`
	Finish    string  `json:"finish,omitempty"`
}

// TurfInput drives lawn construction. Method is seed or sod.
type TurfInput struct {
	AreaM2 float64 `json:"area_m2"`
	Method string  `json:"method"`
}

// WoodworkInput drives one wooden construction. SubType is one of fence,
// deck, pergola; LengthM applies to fences, AreaM2 to decks and pergolas.
// FoundationTier (light or heavy) adds per-post foundations for fences.
type WoodworkInput struct {
	SubType        string  `json:"sub_type"`
	LengthM        float64 `json:"length_m,omitempty"`
	AreaM2         float64 `json:"area_m2,omitempty"`
	FoundationTier string  `json:"foundation_tier,omitempty"`
}

// WaterElectricalInput drives outdoor water and electrical work. The
// TrenchesNeeded flag gates all length-driven trench labor and the cable
// material; fixtures are installed regardless. CableLengthM drives the
// cable-laying labor and cable material and falls back to TrenchLengthM
// when absent. FixtureType is one of light, socket, tap.
type WaterElectricalInput struct {
	TrenchesNeeded bool    `json:"trenches_needed"`
	TrenchLengthM  float64 `json:"trench_length_m,omitempty"`
	CableLengthM   float64 `json:"cable_length_m,omitempty"`
	FixtureType    string  `json:"fixture_type,omitempty"`
	FixtureCount   float64 `json:"fixture_count,omitempty"`
}

// TurfMaintenanceInput drives lawn upkeep.
type TurfMaintenanceInput struct {
	AreaM2    float64 `json:"area_m2"`
	Scarify   bool    `json:"scarify"`
	Fertilize bool    `json:"fertilize"`
}

// BorderMaintenanceInput drives border upkeep.
type BorderMaintenanceInput struct {
	AreaM2     float64 `json:"area_m2"`
	TopUpMulch bool    `json:"top_up_mulch"`
}

// HedgeMaintenanceInput drives hedge trimming. The trimmed volume is
// length x height x width; hedges taller than the tall-hedge threshold get
// an extra height-tier multiplier.
type HedgeMaintenanceInput struct {
	LengthM       float64 `json:"length_m"`
	HeightM       float64 `json:"height_m"`
	WidthM        float64 `json:"width_m"`
	HaulClippings bool    `json:"haul_clippings"`
}

// TreeMaintenanceInput drives tree pruning and optional stump grinding.
type TreeMaintenanceInput struct {
	TreeCount  float64 `json:"tree_count"`
	StumpCount float64 `json:"stump_count,omitempty"`
}
