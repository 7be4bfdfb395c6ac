package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// SupplierRepository define el puerto de lectura de proveedores (DIP).
type SupplierRepository interface {
	// GetPrimary devuelve el proveedor principal del producto, o nil si no tiene.
	// Si los datos traen más de un principal (inconsistencia upstream), se toma
	// uno arbitrario; no es un error del motor.
	GetPrimary(ctx context.Context, productID string) (*entity.Supplier, error)

	// GetPrimaryBatch resuelve el proveedor principal de varios productos en una
	// sola consulta. Productos sin proveedor principal no aparecen en el mapa.
	GetPrimaryBatch(ctx context.Context, productIDs []string) (map[string]*entity.Supplier, error)
}
