package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the reference collections
// (norm_hours, correction_factors, products, settings) and the quote
// collections (quotes, quote_lines) exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "norm_hours", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "activity", Required: true})
		c.Fields.Add(&core.TextField{Name: "scope", Required: true})
		c.Fields.Add(&core.NumberField{Name: "hours_per_unit", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit", Required: true})
	})

	ensureCollection(app, "correction_factors", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.TextField{Name: "value", Required: true})
		c.Fields.Add(&core.NumberField{Name: "multiplier", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
	})

	ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.NumberField{Name: "purchase_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sale_price", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit", Required: true})
		c.Fields.Add(&core.NumberField{Name: "waste_percent", Required: false})
	})

	ensureCollection(app, "settings", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "hourly_rate", Required: true})
		c.Fields.Add(&core.NumberField{Name: "default_margin_percent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "vat_percent", Required: false})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quote_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "project_type",
			Required:  true,
			Values:    []string{"new_build", "maintenance"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "accessibility", Required: false})
		c.Fields.Add(&core.TextField{Name: "backlog_severity", Required: false})
		c.Fields.Add(&core.NumberField{Name: "labor_machine_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "material_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.NumberField{Name: "margin_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_ex_vat", Required: false})
		c.Fields.Add(&core.NumberField{Name: "vat_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_inc_vat", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_labor_hours", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_lines", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "line_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "scope", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit", Required: true})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "line_total", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "kind",
			Required:  true,
			Values:    []string{"labor", "material", "machine"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "margin_percent", Required: false})
		// Number fields read back as 0 when unset, so an explicit 0%
		// override needs its own presence marker.
		c.Fields.Add(&core.BoolField{Name: "margin_override", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
