package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.ThresholdRepository = (*ThresholdRepo)(nil)

// ThresholdRepo implementación del puerto ThresholdRepository sobre PostgreSQL (usable con pool o tx).
type ThresholdRepo struct {
	q Querier
}

// NewThresholdRepository construye el adaptador de lectura de umbrales. Pasar pool o tx (Querier).
func NewThresholdRepository(q Querier) *ThresholdRepo {
	return &ThresholdRepo{q: q}
}

// GetAll carga la tabla completa de umbrales por tipo de producto.
// La tabla es pequeña (un registro por tipo); se lee entera en cada refresco.
func (r *ThresholdRepo) GetAll(ctx context.Context) (map[string]int, error) {
	query := `SELECT product_type, threshold_quantity FROM stock_thresholds`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get thresholds: %w", err)
	}
	defer rows.Close()

	thresholds := make(map[string]int)
	for rows.Next() {
		var (
			productType string
			quantity    int
		)
		if err := rows.Scan(&productType, &quantity); err != nil {
			return nil, fmt.Errorf("scan threshold: %w", err)
		}
		thresholds[productType] = quantity
	}
	return thresholds, rows.Err()
}
