package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

// AlertsHandler maneja las peticiones HTTP de alertas de stock bajo.
type AlertsHandler struct {
	uc *alerts.LowStockAlertUseCase
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(uc *alerts.LowStockAlertUseCase) *AlertsHandler {
	return &AlertsHandler{uc: uc}
}

// GetLowStockAlerts godoc
// @Summary      Alertas de stock bajo
// @Description  Devuelve los pares (producto, bodega) con stock bajo el umbral
//
//	de su tipo, con días estimados hasta quiebre y proveedor principal,
//	ordenados por urgencia.
//
// @Tags         alerts
// @Produce      json
// @Param        company_id    path   string  true   "ID de la empresa (UUID)"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega (UUID). Vacío = todas."
// @Param        limit         query  int     false  "Tamaño de página (default 100, máx 500)"
// @Param        offset        query  int     false  "Desplazamiento (default 0)"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertsHandler) GetLowStockAlerts(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.ErrInvalidInput.Error()})
	}

	warehouseID := c.Query("warehouse_id")

	page := dto.AlertPageRequest{
		Limit:  c.QueryInt("limit", dto.DefaultAlertLimit),
		Offset: c.QueryInt("offset", 0),
	}
	page.Normalize()

	resp, err := h.uc.GetAlerts(c.Context(), companyID, warehouseID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(resp)
}
