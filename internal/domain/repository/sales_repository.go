package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesKey identifica el par (producto, bodega) de un agregado de ventas.
type SalesKey struct {
	ProductID   string
	WarehouseID string
}

// SalesRepository define el puerto de lectura de agregados de ventas (DIP).
// Las cantidades vendidas son NUMERIC en la DB y se manejan como decimal.
type SalesRepository interface {
	// TotalSold devuelve el total de unidades vendidas de un producto en una
	// bodega desde la fecha de corte. Cero si no hay ventas en la ventana.
	TotalSold(ctx context.Context, productID, warehouseID string, since time.Time) (decimal.Decimal, error)

	// TotalSoldBatch agrega las ventas de todos los pares en una sola consulta.
	// Pares sin ventas en la ventana no aparecen en el mapa resultado.
	TotalSoldBatch(ctx context.Context, keys []SalesKey, since time.Time) (map[SalesKey]decimal.Decimal, error)
}
