package repository

import (
	"context"
	"time"
)

// ProductRepository define el puerto de lectura de productos para el motor de alertas (DIP).
type ProductRepository interface {
	// ActiveProductIDs devuelve los IDs de productos de la empresa con al menos
	// una venta desde la fecha de corte. Un producto sin ventas recientes no se
	// considera candidato a alerta.
	ActiveProductIDs(ctx context.Context, companyID string, since time.Time) ([]string, error)
}
