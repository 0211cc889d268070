package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gardenquote/collections"
	"gardenquote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed reference data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Reference data ───────────────────────────────────────
		se.Router.GET("/api/reference/norm-hours", handlers.HandleNormHourList(app))
		se.Router.GET("/api/reference/correction-factors", handlers.HandleCorrectionFactorList(app))
		se.Router.GET("/api/reference/products", handlers.HandleProductList(app))
		se.Router.GET("/api/reference/settings", handlers.HandleSettingsView(app))
		se.Router.GET("/api/reference/options", handlers.HandleScopeOptions(app))

		// ── Quote calculation ────────────────────────────────────
		se.Router.POST("/api/quotes/calculate", handlers.HandleQuoteCalculate(app))

		// ── Saved quotes ─────────────────────────────────────────
		se.Router.POST("/api/quotes", handlers.HandleQuoteSave(app))
		se.Router.GET("/api/quotes", handlers.HandleQuoteList(app))

		// ── Quote export (before /api/quotes/{id} routes) ────────
		se.Router.GET("/api/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app))
		se.Router.GET("/api/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))

		se.Router.GET("/api/quotes/{id}", handlers.HandleQuoteView(app))
		se.Router.DELETE("/api/quotes/{id}", handlers.HandleQuoteDelete(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
