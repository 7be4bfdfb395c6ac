package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de lectura de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// GetPrimary devuelve el proveedor principal del producto, o nil si no tiene.
// LIMIT 1 absorbe datos con más de un principal (inconsistencia upstream).
func (r *SupplierRepo) GetPrimary(ctx context.Context, productID string) (*entity.Supplier, error) {
	query := `
		SELECT s.id, s.name, s.contact_email
		FROM suppliers s
		JOIN product_suppliers ps ON ps.supplier_id = s.id
		WHERE ps.product_id = $1 AND ps.is_primary
		LIMIT 1`
	var supplier entity.Supplier
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&supplier.ID, &supplier.Name, &supplier.ContactEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get primary supplier: %w", err)
	}
	return &supplier, nil
}

// GetPrimaryBatch resuelve el proveedor principal de varios productos en una
// sola consulta. DISTINCT ON toma uno arbitrario si hay más de un principal.
func (r *SupplierRepo) GetPrimaryBatch(ctx context.Context, productIDs []string) (map[string]*entity.Supplier, error) {
	if len(productIDs) == 0 {
		return map[string]*entity.Supplier{}, nil
	}

	query := `
		SELECT DISTINCT ON (ps.product_id)
		       ps.product_id, s.id, s.name, s.contact_email
		FROM suppliers s
		JOIN product_suppliers ps ON ps.supplier_id = s.id
		WHERE ps.product_id = ANY($1::uuid[]) AND ps.is_primary
		ORDER BY ps.product_id`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get primary suppliers batch: %w", err)
	}
	defer rows.Close()

	suppliers := make(map[string]*entity.Supplier, len(productIDs))
	for rows.Next() {
		var (
			productID string
			supplier  entity.Supplier
		)
		if err := rows.Scan(&productID, &supplier.ID, &supplier.Name, &supplier.ContactEmail); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers[productID] = &supplier
	}
	return suppliers, rows.Err()
}
