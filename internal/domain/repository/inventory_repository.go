package repository

import (
	"context"
	"time"
)

// InventoryItem resultado crudo del repositorio: fila de inventario con los
// datos de producto y bodega ya unidos. Lo produce la DB; el use case lo
// convierte en alerta si corresponde.
type InventoryItem struct {
	ProductID     string
	ProductName   string
	SKU           string
	ProductType   string
	WarehouseID   string
	WarehouseName string
	CurrentStock  int64
	LastUpdated   time.Time
}

// InventoryRepository define el puerto de lectura del snapshot de inventario (DIP).
type InventoryRepository interface {
	// ListForProducts devuelve las filas de inventario de la empresa para el
	// conjunto de productos dado. Si warehouseID no es vacío, filtra a esa bodega.
	// Orden determinista (product_id, warehouse_id) para que el ranking sea estable.
	ListForProducts(ctx context.Context, companyID string, productIDs []string, warehouseID string) ([]InventoryItem, error)
}
