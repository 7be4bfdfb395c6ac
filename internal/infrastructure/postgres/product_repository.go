package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de lectura de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ActiveProductIDs devuelve los productos de la empresa con ventas desde la fecha dada.
func (r *ProductRepo) ActiveProductIDs(ctx context.Context, companyID string, since time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT p.id
		FROM products p
		JOIN sales s ON s.product_id = p.id
		WHERE p.company_id = $1 AND s.sale_date >= $2`
	rows, err := r.q.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("active product ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
