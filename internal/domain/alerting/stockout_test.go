package alerting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/domain/alerting"
)

// ──────────────────────────────────────────────────────────────────────────────
// ResolveThreshold
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveThreshold_TipoConfigurado(t *testing.T) {
	thresholds := map[string]int{"gadget": 3, "widget": 25}

	assert.Equal(t, 3, alerting.ResolveThreshold("gadget", thresholds, 10))
	assert.Equal(t, 25, alerting.ResolveThreshold("widget", thresholds, 10))
}

func TestResolveThreshold_TipoAusenteAplicaDefault(t *testing.T) {
	thresholds := map[string]int{"gadget": 3}

	assert.Equal(t, 10, alerting.ResolveThreshold("widget", thresholds, 10))
	assert.Equal(t, 10, alerting.ResolveThreshold("", thresholds, 10))
}

func TestResolveThreshold_MapaNilAplicaDefault(t *testing.T) {
	assert.Equal(t, 10, alerting.ResolveThreshold("widget", nil, 10))
}

// Umbral cero o negativo configurado: se devuelve tal cual, sin validar.
// El comparador stock < umbral decide qué pasa con él.
func TestResolveThreshold_UmbralCeroSeRespeta(t *testing.T) {
	thresholds := map[string]int{"descontinuado": 0}
	assert.Equal(t, 0, alerting.ResolveThreshold("descontinuado", thresholds, 10))
}

// ──────────────────────────────────────────────────────────────────────────────
// EstimateStockoutDays
// ──────────────────────────────────────────────────────────────────────────────

// Vector del escenario de referencia: stock 5, 30 unidades vendidas en 30 días.
// Promedio diario 1.0 → floor(5 / 1.001) = 4.
func TestEstimateStockoutDays_VectorExacto(t *testing.T) {
	days := alerting.EstimateStockoutDays(5, decimal.NewFromInt(30), 30)

	require.NotNil(t, days)
	assert.Equal(t, int64(4), *days)
}

func TestEstimateStockoutDays_SinVentasDevuelveNil(t *testing.T) {
	days := alerting.EstimateStockoutDays(5, decimal.Zero, 30)
	assert.Nil(t, days)
}

func TestEstimateStockoutDays_StockCeroDevuelveCeroDias(t *testing.T) {
	days := alerting.EstimateStockoutDays(0, decimal.NewFromInt(30), 30)

	require.NotNil(t, days)
	assert.Equal(t, int64(0), *days)
}

// El resultado se trunca hacia abajo, nunca se redondea.
func TestEstimateStockoutDays_TruncaHaciaAbajo(t *testing.T) {
	// 9 / (60/30 + 0.001) = 9 / 2.001 = 4.497... → 4
	days := alerting.EstimateStockoutDays(9, decimal.NewFromInt(60), 30)

	require.NotNil(t, days)
	assert.Equal(t, int64(4), *days)
}

// Venta promedio muy baja: epsilon evita estimaciones explosivas por división
// cercana a cero, pero el resultado sigue siendo grande y positivo.
func TestEstimateStockoutDays_VentaMinima(t *testing.T) {
	// avg = 1/30 = 0.0333..; 100 / (0.0333.. + 0.001) = 2912.6... → 2912
	days := alerting.EstimateStockoutDays(100, decimal.NewFromInt(1), 30)

	require.NotNil(t, days)
	assert.Equal(t, int64(2912), *days)
}

// Ventas fraccionarias (NUMERIC en la DB) se aceptan sin redondeo previo.
func TestEstimateStockoutDays_VentasFraccionarias(t *testing.T) {
	// avg = 15.5/30 ≈ 0.51667; 10 / (0.51667 + 0.001) = 19.32... → 19
	days := alerting.EstimateStockoutDays(10, decimal.NewFromFloat(15.5), 30)

	require.NotNil(t, days)
	assert.Equal(t, int64(19), *days)
}

// Ventana inválida (< 1 día) se normaliza a un día para no dividir por cero.
func TestEstimateStockoutDays_VentanaMinimaUnDia(t *testing.T) {
	// avg = 10/1 = 10; 20 / 10.001 = 1.99... → 1
	days := alerting.EstimateStockoutDays(20, decimal.NewFromInt(10), 0)

	require.NotNil(t, days)
	assert.Equal(t, int64(1), *days)
}
