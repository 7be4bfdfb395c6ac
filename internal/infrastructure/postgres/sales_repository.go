package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación del puerto SalesRepository sobre PostgreSQL (usable con pool o tx).
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de agregados de ventas. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// TotalSold suma las unidades vendidas de un producto en una bodega desde la fecha dada.
func (r *SalesRepo) TotalSold(ctx context.Context, productID, warehouseID string, since time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM sales
		WHERE product_id = $1 AND warehouse_id = $2 AND sale_date >= $3`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID, warehouseID, since).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total sold: %w", err)
	}
	return total, nil
}

// TotalSoldBatch agrega las ventas de todos los pares (producto, bodega) en una
// sola consulta, vía unnest de los arrays de IDs. Pares sin ventas no aparecen
// en el resultado.
func (r *SalesRepo) TotalSoldBatch(ctx context.Context, keys []repository.SalesKey, since time.Time) (map[repository.SalesKey]decimal.Decimal, error) {
	if len(keys) == 0 {
		return map[repository.SalesKey]decimal.Decimal{}, nil
	}

	productIDs := make([]string, len(keys))
	warehouseIDs := make([]string, len(keys))
	for i, k := range keys {
		productIDs[i] = k.ProductID
		warehouseIDs[i] = k.WarehouseID
	}

	query := `
		SELECT s.product_id, s.warehouse_id, SUM(s.quantity)
		FROM sales s
		JOIN unnest($1::uuid[], $2::uuid[]) AS k(product_id, warehouse_id)
		  ON k.product_id = s.product_id AND k.warehouse_id = s.warehouse_id
		WHERE s.sale_date >= $3
		GROUP BY s.product_id, s.warehouse_id`
	rows, err := r.q.Query(ctx, query, productIDs, warehouseIDs, since)
	if err != nil {
		return nil, fmt.Errorf("total sold batch: %w", err)
	}
	defer rows.Close()

	totals := make(map[repository.SalesKey]decimal.Decimal, len(keys))
	for rows.Next() {
		var (
			key   repository.SalesKey
			total decimal.Decimal
		)
		if err := rows.Scan(&key.ProductID, &key.WarehouseID, &total); err != nil {
			return nil, fmt.Errorf("scan sales total: %w", err)
		}
		totals[key] = total
	}
	return totals, rows.Err()
}
