package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de lectura de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// ListForProducts devuelve las filas de inventario de la empresa para los productos
// dados, con producto y bodega unidos. warehouseID vacío considera todas las bodegas.
// Orden fijo (product_id, warehouse_id) para que el ranking posterior sea determinista.
func (r *InventoryRepo) ListForProducts(ctx context.Context, companyID string, productIDs []string, warehouseID string) ([]repository.InventoryItem, error) {
	var (
		query string
		args  []any
	)

	if warehouseID != "" {
		query = `
			SELECT p.id, p.name, p.sku, p.product_type,
			       i.warehouse_id, w.name, i.quantity, i.last_updated
			FROM products p
			JOIN inventory  i ON i.product_id = p.id
			JOIN warehouses w ON w.id = i.warehouse_id
			WHERE p.company_id = $1
			  AND p.id = ANY($2)
			  AND w.id = $3
			ORDER BY p.id, i.warehouse_id`
		args = []any{companyID, productIDs, warehouseID}
	} else {
		query = `
			SELECT p.id, p.name, p.sku, p.product_type,
			       i.warehouse_id, w.name, i.quantity, i.last_updated
			FROM products p
			JOIN inventory  i ON i.product_id = p.id
			JOIN warehouses w ON w.id = i.warehouse_id
			WHERE p.company_id = $1
			  AND p.id = ANY($2)
			ORDER BY p.id, i.warehouse_id`
		args = []any{companyID, productIDs}
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory for products: %w", err)
	}
	defer rows.Close()

	var items []repository.InventoryItem
	for rows.Next() {
		var item repository.InventoryItem
		if err := rows.Scan(
			&item.ProductID, &item.ProductName, &item.SKU, &item.ProductType,
			&item.WarehouseID, &item.WarehouseName, &item.CurrentStock, &item.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
