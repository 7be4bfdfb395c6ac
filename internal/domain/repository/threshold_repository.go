package repository

import "context"

// ThresholdRepository define el puerto de lectura de umbrales de stock por tipo de producto (DIP).
type ThresholdRepository interface {
	// GetAll devuelve el mapa completo tipo de producto -> umbral configurado.
	// No cubre necesariamente todos los tipos; el motor aplica el umbral por
	// defecto para los ausentes. El mapa devuelto es un snapshot de solo lectura.
	GetAll(ctx context.Context) (map[string]int, error)
}
