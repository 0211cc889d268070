package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type normHourDef struct {
	scope        string
	activity     string
	hoursPerUnit float64
	unit         string
}

type factorDef struct {
	category    string
	value       string
	multiplier  float64
	description string
}

type productDef struct {
	name          string
	category      string
	purchasePrice float64
	salePrice     float64
	unit          string
	wastePercent  float64
}

// ── Reference data ───────────────────────────────────────────────────────

var normHourDefs = []normHourDef{
	// Earthworks
	{"earthworks", "excavation_shallow", 0.15, "m2"},
	{"earthworks", "excavation_standard", 0.25, "m2"},
	{"earthworks", "excavation_deep", 0.40, "m2"},
	{"earthworks", "soil_haul_away", 0.30, "m3"},

	// Paving
	{"paving", "lay_tile", 0.40, "m2"},
	{"paving", "lay_clinker", 0.55, "m2"},
	{"paving", "lay_natural_stone", 0.75, "m2"},
	{"paving", "sand_bed", 0.90, "m3"},
	{"paving", "edging", 0.20, "m"},

	// Borders and planting
	{"planting", "border_prep_light", 0.30, "m2"},
	{"planting", "border_prep_medium", 0.50, "m2"},
	{"planting", "border_prep_intensive", 0.80, "m2"},
	{"planting", "finish_mulch", 0.10, "m2"},
	{"planting", "finish_gravel", 0.15, "m2"},

	// Turf
	{"turf", "turf_prep", 0.20, "m2"},
	{"turf", "seeding", 0.05, "m2"},
	{"turf", "sod_laying", 0.15, "m2"},

	// Woodwork
	{"woodwork", "fence_install", 0.75, "m"},
	{"woodwork", "deck_install", 1.10, "m2"},
	{"woodwork", "pergola_install", 1.60, "m2"},
	{"woodwork", "post_foundation_light", 0.50, "piece"},
	{"woodwork", "post_foundation_heavy", 0.90, "piece"},

	// Water and electrical
	{"water_electrical", "trench_digging", 0.35, "m"},
	{"water_electrical", "cable_laying", 0.10, "m"},
	{"water_electrical", "trench_repair", 0.15, "m"},
	{"water_electrical", "install_light", 0.75, "piece"},
	{"water_electrical", "install_socket", 0.50, "piece"},
	{"water_electrical", "install_tap", 1.25, "piece"},

	// Maintenance
	{"turf_maintenance", "lawn_mowing", 0.015, "m2"},
	{"turf_maintenance", "scarifying", 0.03, "m2"},
	{"turf_maintenance", "fertilizing", 0.01, "m2"},
	{"border_maintenance", "border_upkeep", 0.08, "m2"},
	{"border_maintenance", "mulch_topup", 0.10, "m2"},
	{"hedge_maintenance", "hedge_trimming", 0.55, "m3"},
	{"hedge_maintenance", "clippings_loading", 0.25, "m3"},
	{"tree_maintenance", "tree_pruning", 1.50, "piece"},
	{"tree_maintenance", "stump_grinding", 0.75, "piece"},
}

var factorDefs = []factorDef{
	{"accessibility", "good", 1.0, "Goede bereikbaarheid, machines kunnen overal komen"},
	{"accessibility", "limited", 1.2, "Beperkte bereikbaarheid, deels handwerk"},
	{"accessibility", "poor", 1.5, "Slechte bereikbaarheid, alles handwerk"},

	{"cutting_complexity", "low", 1.0, "Rechte vlakken, weinig knipwerk"},
	{"cutting_complexity", "medium", 1.15, "Enkele bochten en passtukken"},
	{"cutting_complexity", "high", 1.3, "Veel knipwerk, rondingen en patronen"},

	{"backlog_severity", "light", 1.0, "Tuin is goed bijgehouden"},
	{"backlog_severity", "moderate", 1.25, "Achterstallig onderhoud"},
	{"backlog_severity", "severe", 1.5, "Sterk verwilderde tuin"},

	{"hedge_height", "tall", 1.3, "Haag hoger dan 1,80 m, werken met trap of steiger"},
}

var productDefs = []productDef{
	// Paving
	{"tile", "paving", 18.00, 28.00, "m2", 5},
	{"clinker", "paving", 21.00, 32.00, "m2", 5},
	{"natural_stone", "paving", 38.00, 55.00, "m2", 10},
	{"edging", "paving", 6.00, 9.50, "m", 5},

	// Aggregates and finishes
	{"sand", "aggregates", 28.00, 42.00, "m3", 10},
	{"mulch", "finish", 26.00, 38.00, "m3", 5},
	{"gravel", "finish", 33.00, 48.00, "m3", 5},

	// Plants and turf
	{"border_mix", "plants", 2.60, 4.75, "piece", 8},
	{"grass_seed", "turf", 7.50, 12.50, "kg", 10},
	{"sod", "turf", 3.80, 6.25, "m2", 7},
	{"fertilizer", "turf", 1.90, 3.20, "kg", 0},

	// Timber and concrete
	{"fence_plank", "timber", 2.40, 3.90, "piece", 10},
	{"fence_post", "timber", 9.25, 14.50, "piece", 0},
	{"decking_board", "timber", 24.00, 36.00, "m2", 12},
	{"pergola_timber", "timber", 28.00, 42.00, "m2", 12},
	{"foundation_light", "concrete", 7.00, 11.00, "piece", 0},
	{"foundation_heavy", "concrete", 13.00, 19.50, "piece", 0},

	// Electrical and plumbing
	{"cable", "electrical", 1.50, 2.40, "m", 15},
	{"light", "fixtures", 55.00, 85.00, "piece", 0},
	{"socket", "fixtures", 34.00, 54.00, "piece", 0},
	{"tap", "fixtures", 78.00, 120.00, "piece", 0},

	// Disposal and machines (priced per m3 / per hour)
	{"soil", "disposal", 0, 35.00, "m3", 0},
	{"green_waste", "disposal", 0, 25.00, "m3", 0},
	{"mini_excavator", "machine", 0, 65.00, "hour", 0},
	{"stump_grinder", "machine", 0, 45.00, "hour", 0},
}

// Seed populates the reference collections with a realistic Dutch
// landscaping data set: norm hours per activity, correction factors and the
// product catalog, plus one settings record. It is safe to call on every
// startup because it returns early if any settings record already exists.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if settings already exist ──────────────────
	settingsCol, err := app.FindCollectionByNameOrId("settings")
	if err != nil {
		return fmt.Errorf("seed: could not find settings collection: %w", err)
	}
	existing, err := app.FindAllRecords(settingsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query settings: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: settings collection is empty – inserting reference data …")

	normHoursCol, err := app.FindCollectionByNameOrId("norm_hours")
	if err != nil {
		return fmt.Errorf("seed: could not find norm_hours collection: %w", err)
	}
	factorsCol, err := app.FindCollectionByNameOrId("correction_factors")
	if err != nil {
		return fmt.Errorf("seed: could not find correction_factors collection: %w", err)
	}
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}

	for _, def := range normHourDefs {
		record := core.NewRecord(normHoursCol)
		record.Set("scope", def.scope)
		record.Set("activity", def.activity)
		record.Set("hours_per_unit", def.hoursPerUnit)
		record.Set("unit", def.unit)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: norm hour %s/%s: %w", def.scope, def.activity, err)
		}
	}

	for _, def := range factorDefs {
		record := core.NewRecord(factorsCol)
		record.Set("category", def.category)
		record.Set("value", def.value)
		record.Set("multiplier", def.multiplier)
		record.Set("description", def.description)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: correction factor %s/%s: %w", def.category, def.value, err)
		}
	}

	for _, def := range productDefs {
		record := core.NewRecord(productsCol)
		record.Set("name", def.name)
		record.Set("category", def.category)
		record.Set("purchase_price", def.purchasePrice)
		record.Set("sale_price", def.salePrice)
		record.Set("unit", def.unit)
		record.Set("waste_percent", def.wastePercent)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: product %s/%s: %w", def.category, def.name, err)
		}
	}

	settings := core.NewRecord(settingsCol)
	settings.Set("hourly_rate", 48.50)
	settings.Set("default_margin_percent", 15.0)
	settings.Set("vat_percent", 21.0)
	if err := app.Save(settings); err != nil {
		return fmt.Errorf("seed: settings: %w", err)
	}

	log.Printf("seed: inserted %d norm hours, %d correction factors, %d products",
		len(normHourDefs), len(factorDefs), len(productDefs))
	return nil
}
