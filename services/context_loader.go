package services

import (
	"github.com/pocketbase/pocketbase"
)

// LoadCalculationContext reads the four reference collections into a
// CalculationContext for one calculation run. Missing or empty collections
// yield empty slices (the generators then emit nothing), never an error:
// reference data problems are a degenerate case, not a failure.
func LoadCalculationContext(app *pocketbase.PocketBase, accessibility, backlogSeverity string) CalculationContext {
	ctx := CalculationContext{
		Accessibility:   accessibility,
		BacklogSeverity: backlogSeverity,
	}

	if records, err := app.FindAllRecords("norm_hours"); err == nil {
		for _, r := range records {
			ctx.NormHours = append(ctx.NormHours, NormHourEntry{
				ID:           r.Id,
				Activity:     r.GetString("activity"),
				Scope:        r.GetString("scope"),
				HoursPerUnit: r.GetFloat("hours_per_unit"),
				Unit:         r.GetString("unit"),
			})
		}
	}

	if records, err := app.FindAllRecords("correction_factors"); err == nil {
		for _, r := range records {
			ctx.CorrectionFactors = append(ctx.CorrectionFactors, CorrectionFactor{
				ID:          r.Id,
				Category:    r.GetString("category"),
				Value:       r.GetString("value"),
				Multiplier:  r.GetFloat("multiplier"),
				Description: r.GetString("description"),
			})
		}
	}

	if records, err := app.FindAllRecords("products"); err == nil {
		for _, r := range records {
			ctx.Products = append(ctx.Products, Product{
				ID:            r.Id,
				Name:          r.GetString("name"),
				Category:      r.GetString("category"),
				PurchasePrice: r.GetFloat("purchase_price"),
				SalePrice:     r.GetFloat("sale_price"),
				Unit:          r.GetString("unit"),
				WastePercent:  r.GetFloat("waste_percent"),
			})
		}
	}

	if records, err := app.FindAllRecords("settings"); err == nil && len(records) > 0 {
		r := records[0]
		ctx.Settings = Settings{
			HourlyRate:           r.GetFloat("hourly_rate"),
			DefaultMarginPercent: r.GetFloat("default_margin_percent"),
			VATPercent:           r.GetFloat("vat_percent"),
		}
	}

	return ctx
}
