package dto

// Límites de paginación del listado de alertas. El tope duro de 500 protege
// a la DB de páginas gigantes.
const (
	DefaultAlertLimit = 100
	MaxAlertLimit     = 500
)

// AlertPageRequest parámetros de paginación del endpoint de alertas.
type AlertPageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize aplica defaults y clamps: limit en [1, 500], offset >= 0.
func (p *AlertPageRequest) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultAlertLimit
	}
	if p.Limit > MaxAlertLimit {
		p.Limit = MaxAlertLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// SupplierDTO proveedor principal de un producto en la respuesta de alertas.
type SupplierDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de stock bajo para un par (producto, bodega).
// DaysUntilStockout es null cuando el producto no registró ventas en la ventana
// (sin velocidad no hay estimación). Supplier es null si no hay proveedor principal.
type LowStockAlertDTO struct {
	ProductID         string       `json:"product_id"`
	ProductName       string       `json:"product_name"`
	SKU               string       `json:"sku"`
	WarehouseID       string       `json:"warehouse_id"`
	WarehouseName     string       `json:"warehouse_name"`
	CurrentStock      int64        `json:"current_stock"`
	Threshold         int          `json:"threshold"`
	DaysUntilStockout *int64       `json:"days_until_stockout"`
	Supplier          *SupplierDTO `json:"supplier"`
}

// LowStockAlertsResponse página de alertas ordenadas por urgencia.
// TotalAlerts es el total que califica antes de paginar, no el tamaño de página.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
