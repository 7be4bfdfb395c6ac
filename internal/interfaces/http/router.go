package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AlertsUC *alerts.LowStockAlertUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	companies := api.Group("/companies")
	alertsHandler := NewAlertsHandler(deps.AlertsUC)
	companies.Get("/:company_id/alerts/low-stock", alertsHandler.GetLowStockAlerts)
}
