package alerts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain/alerting"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// Config parámetros de negocio del motor de alertas.
type Config struct {
	RecentSalesDays  int // ventana de actividad de ventas (días)
	DefaultThreshold int // umbral para tipos de producto no configurados
}

// LowStockAlertUseCase calcula las alertas de stock bajo de una empresa:
// para cada par (producto activo, bodega) determina si el stock cayó bajo el
// umbral del tipo de producto, estima los días hasta quiebre, adjunta el
// proveedor principal y devuelve la página pedida ordenada por urgencia.
// Sin estado compartido entre peticiones; seguro para uso concurrente.
type LowStockAlertUseCase struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	thresholdRepo repository.ThresholdRepository
	salesRepo     repository.SalesRepository
	supplierRepo  repository.SupplierRepository
	cfg           Config
}

// NewLowStockAlertUseCase construye el caso de uso con sus puertos de lectura.
func NewLowStockAlertUseCase(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	thresholdRepo repository.ThresholdRepository,
	salesRepo repository.SalesRepository,
	supplierRepo repository.SupplierRepository,
	cfg Config,
) *LowStockAlertUseCase {
	if cfg.RecentSalesDays < 1 {
		cfg.RecentSalesDays = 30
	}
	return &LowStockAlertUseCase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		thresholdRepo: thresholdRepo,
		salesRepo:     salesRepo,
		supplierRepo:  supplierRepo,
		cfg:           cfg,
	}
}

// GetAlerts ejecuta el pipeline completo de alertas para una empresa.
// warehouseID vacío considera todas las bodegas. limit/offset llegan ya
// normalizados desde la capa HTTP; aquí se re-acotan defensivamente.
// Cualquier fallo de un puerto aborta la petición completa: no hay resultados
// parciales.
func (uc *LowStockAlertUseCase) GetAlerts(
	ctx context.Context,
	companyID, warehouseID string,
	limit, offset int,
) (dto.LowStockAlertsResponse, error) {

	// 1. Corte de la ventana de ventas recientes. La longitud en días se
	//    recalcula desde el mismo corte para mantener consistente la velocidad.
	now := time.Now()
	since := now.AddDate(0, 0, -uc.cfg.RecentSalesDays)
	windowDays := int(now.Sub(since).Hours() / 24)

	// 2. Productos con ventas en la ventana. Sin actividad no hay candidatos.
	productIDs, err := uc.productRepo.ActiveProductIDs(ctx, companyID, since)
	if err != nil {
		return dto.LowStockAlertsResponse{}, fmt.Errorf("productos activos: %w", err)
	}
	if len(productIDs) == 0 {
		return dto.LowStockAlertsResponse{Alerts: []dto.LowStockAlertDTO{}, TotalAlerts: 0}, nil
	}

	// 3. Snapshot de inventario con producto y bodega unidos.
	items, err := uc.inventoryRepo.ListForProducts(ctx, companyID, productIDs, warehouseID)
	if err != nil {
		return dto.LowStockAlertsResponse{}, fmt.Errorf("inventario: %w", err)
	}

	// 4. Configuración de umbrales (snapshot de solo lectura para esta petición).
	thresholds, err := uc.thresholdRepo.GetAll(ctx)
	if err != nil {
		return dto.LowStockAlertsResponse{}, fmt.Errorf("umbrales: %w", err)
	}

	// 5. Filtrar candidatos bajo umbral.
	type candidate struct {
		item      repository.InventoryItem
		threshold int
	}
	candidates := make([]candidate, 0, len(items))
	for _, item := range items {
		threshold := alerting.ResolveThreshold(item.ProductType, thresholds, uc.cfg.DefaultThreshold)
		if item.CurrentStock >= int64(threshold) {
			continue
		}
		candidates = append(candidates, candidate{item: item, threshold: threshold})
	}

	// 6. Ventas y proveedores de los candidatos en consultas por lote
	//    (una por tabla, no una por fila).
	salesKeys := make([]repository.SalesKey, 0, len(candidates))
	supplierIDs := make([]string, 0, len(candidates))
	seenProducts := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		salesKeys = append(salesKeys, repository.SalesKey{
			ProductID:   c.item.ProductID,
			WarehouseID: c.item.WarehouseID,
		})
		if !seenProducts[c.item.ProductID] {
			seenProducts[c.item.ProductID] = true
			supplierIDs = append(supplierIDs, c.item.ProductID)
		}
	}

	var (
		soldByKey     map[repository.SalesKey]decimal.Decimal
		supplierByPID map[string]*entity.Supplier
	)
	if len(candidates) > 0 {
		soldByKey, err = uc.salesRepo.TotalSoldBatch(ctx, salesKeys, since)
		if err != nil {
			return dto.LowStockAlertsResponse{}, fmt.Errorf("ventas de la ventana: %w", err)
		}
		supplierByPID, err = uc.supplierRepo.GetPrimaryBatch(ctx, supplierIDs)
		if err != nil {
			return dto.LowStockAlertsResponse{}, fmt.Errorf("proveedores principales: %w", err)
		}
	}

	// 7. Armar las alertas.
	alerts := make([]dto.LowStockAlertDTO, 0, len(candidates))
	for _, c := range candidates {
		key := repository.SalesKey{ProductID: c.item.ProductID, WarehouseID: c.item.WarehouseID}
		days := alerting.EstimateStockoutDays(c.item.CurrentStock, soldByKey[key], windowDays)

		var supplier *dto.SupplierDTO
		if s := supplierByPID[c.item.ProductID]; s != nil {
			supplier = &dto.SupplierDTO{ID: s.ID, Name: s.Name, ContactEmail: s.ContactEmail}
		}

		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         c.item.ProductID,
			ProductName:       c.item.ProductName,
			SKU:               c.item.SKU,
			WarehouseID:       c.item.WarehouseID,
			WarehouseName:     c.item.WarehouseName,
			CurrentStock:      c.item.CurrentStock,
			Threshold:         c.threshold,
			DaysUntilStockout: days,
			Supplier:          supplier,
		})
	}

	// 8. Ordenar por urgencia: menos días primero, sin estimación al final.
	//    Estable respecto al orden de armado para empates.
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if (a.DaysUntilStockout == nil) != (b.DaysUntilStockout == nil) {
			return b.DaysUntilStockout == nil
		}
		if a.DaysUntilStockout == nil {
			return false
		}
		return *a.DaysUntilStockout < *b.DaysUntilStockout
	})

	// 9. Paginar. El total reporta las alertas que califican, no la página.
	total := len(alerts)
	limit, offset = clampPage(limit, offset)
	page := paginate(alerts, offset, limit)

	return dto.LowStockAlertsResponse{Alerts: page, TotalAlerts: total}, nil
}

// clampPage acota defensivamente los valores de paginación. La capa HTTP ya
// normaliza; esto evita rangos inválidos si llega otro caller.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = dto.DefaultAlertLimit
	}
	if limit > dto.MaxAlertLimit {
		limit = dto.MaxAlertLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// paginate devuelve la porción [offset, offset+limit) de la lista ordenada.
func paginate(alerts []dto.LowStockAlertDTO, offset, limit int) []dto.LowStockAlertDTO {
	if offset >= len(alerts) {
		return []dto.LowStockAlertDTO{}
	}
	end := offset + limit
	if end > len(alerts) {
		end = len(alerts)
	}
	return alerts[offset:end]
}
