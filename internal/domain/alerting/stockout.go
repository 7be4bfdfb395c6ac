package alerting

import "github.com/shopspring/decimal"

// epsilon estabiliza la división cuando la venta diaria promedio es muy pequeña.
var epsilon = decimal.NewFromFloat(0.001)

// ResolveThreshold devuelve el umbral de stock bajo para un tipo de producto.
// Si el tipo no está configurado aplica defaultThreshold. Función pura.
func ResolveThreshold(productType string, thresholds map[string]int, defaultThreshold int) int {
	if t, ok := thresholds[productType]; ok {
		return t
	}
	return defaultThreshold
}

// EstimateStockoutDays estima los días hasta quiebre de stock a partir de la
// velocidad de venta reciente (servicio de dominio).
// Días = floor(stock / (totalVendido/ventanaDías + epsilon))
// Devuelve nil cuando no hubo ventas en la ventana: sin señal de velocidad no
// se puede estimar (no es "infinito").
func EstimateStockoutDays(currentStock int64, totalSold decimal.Decimal, windowDays int) *int64 {
	if totalSold.IsZero() {
		return nil
	}
	if windowDays < 1 {
		windowDays = 1
	}
	avgDaily := totalSold.Div(decimal.NewFromInt(int64(windowDays)))
	days := decimal.NewFromInt(currentStock).Div(avgDaily.Add(epsilon)).Floor().IntPart()
	return &days
}
