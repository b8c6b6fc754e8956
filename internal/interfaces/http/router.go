package http

import (
	"time"

	"github.com/dendyelo/nooda-inventory/internal/application/activity"
	"github.com/dendyelo/nooda-inventory/internal/application/catalog"
	"github.com/dendyelo/nooda-inventory/internal/application/ledger"
	"github.com/dendyelo/nooda-inventory/internal/application/report"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC   *ledger.UseCase
	ActivityUC *activity.UseCase
	CatalogUC  *catalog.UseCase
	ReportUC   *report.UseCase
	Location   *time.Location
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Motor de ledger (protegido): producción, ventas y ajustes
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Post("/production", ledgerHandler.Produce)
	ledgerGroup.Post("/production/preview", ledgerHandler.PreviewProduce)
	ledgerGroup.Post("/sales", ledgerHandler.Sell)
	ledgerGroup.Post("/sales/preview", ledgerHandler.PreviewSell)
	ledgerGroup.Post("/adjustments", ledgerHandler.AdjustStock)

	// Log de actividad (protegido)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	protected.Get("/activity", activityHandler.ListRecent)

	// Catálogo (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/products", catalogHandler.ListProducts)
	protected.Get("/components", catalogHandler.ListComponents)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Location)
	protected.Get("/reports/daily", reportHandler.Daily)
}
