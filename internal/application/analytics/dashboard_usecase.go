// Package analytics contiene el caso de uso del dashboard administrativo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

const (
	dashboardTopProducts     = 5 // productos en el widget "más movidos"
	dashboardRecentMovements = 5
)

// DashboardUseCase genera el resumen operativo del inventario.
//
// Fuente de datos: DashboardRepository (consultas read-only agregadas en SQL).
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Los tres grupos de consultas independientes (totales+stock, estadísticas de
// movimientos, widgets) se lanzan en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoy: inicio del día. Semana: 7 días atrás. Mes: día 1 del mes en curso.
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countsResult struct {
		totals *repository.TotalsResult
		stock  *repository.StockSummaryResult
		err    error
	}
	type statsResult struct {
		stats *repository.MovementStatsResult
		err   error
	}
	type widgetsResult struct {
		top    []repository.TopProductResult
		byCat  []repository.CategoryValueResult
		recent []*repository.MovementWithRefs
		err    error
	}

	countsCh := make(chan countsResult, 1)
	statsCh := make(chan statsResult, 1)
	widgetsCh := make(chan widgetsResult, 1)

	go func() {
		totals, err := uc.dashboardRepo.GetTotals(ctx)
		if err != nil {
			countsCh <- countsResult{err: err}
			return
		}
		stock, err := uc.dashboardRepo.GetStockSummary(ctx)
		countsCh <- countsResult{totals: totals, stock: stock, err: err}
	}()
	go func() {
		stats, err := uc.dashboardRepo.GetMovementStats(ctx, todayStart, weekStart, monthStart)
		statsCh <- statsResult{stats: stats, err: err}
	}()
	go func() {
		top, err := uc.dashboardRepo.GetTopProducts(ctx, dashboardTopProducts)
		if err != nil {
			widgetsCh <- widgetsResult{err: err}
			return
		}
		byCat, err := uc.dashboardRepo.GetValueByCategory(ctx)
		if err != nil {
			widgetsCh <- widgetsResult{err: err}
			return
		}
		recent, err := uc.dashboardRepo.GetRecentMovements(ctx, dashboardRecentMovements)
		widgetsCh <- widgetsResult{top: top, byCat: byCat, recent: recent, err: err}
	}()

	counts := <-countsCh
	stats := <-statsCh
	widgets := <-widgetsCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard totales: %w", counts.err)
	}
	if stats.err != nil {
		return nil, fmt.Errorf("dashboard movimientos: %w", stats.err)
	}
	if widgets.err != nil {
		return nil, fmt.Errorf("dashboard widgets: %w", widgets.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalCategories:   counts.totals.Categories,
		TotalProducts:     counts.totals.Products,
		TotalSuppliers:    counts.totals.Suppliers,
		TotalUnreadAlerts: counts.totals.UnreadAlerts,
		LowStockCount:     counts.stock.LowStockCount,
		TotalStockValue:   counts.stock.TotalStockValue,
		MovementsByPeriod: dto.MovementsByPeriodDTO{
			Today:     stats.stats.Today,
			ThisWeek:  stats.stats.ThisWeek,
			ThisMonth: stats.stats.ThisMonth,
		},
		MovementsByType: dto.MovementsByTypeDTO{
			Entries:     stats.stats.Entries,
			Exits:       stats.stats.Exits,
			Adjustments: stats.stats.Adjustments,
		},
		TopProducts:     make([]dto.TopProductDTO, 0, len(widgets.top)),
		ValueByCategory: make([]dto.CategoryValueDTO, 0, len(widgets.byCat)),
		RecentMovements: make([]dto.MovementResponse, 0, len(widgets.recent)),
	}
	for _, t := range widgets.top {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID:      t.ProductID,
			Name:           t.Name,
			MovementsCount: t.MovementsCount,
		})
	}
	for _, c := range widgets.byCat {
		summary.ValueByCategory = append(summary.ValueByCategory, dto.CategoryValueDTO{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			TotalValue:   c.TotalValue,
		})
	}
	for _, m := range widgets.recent {
		summary.RecentMovements = append(summary.RecentMovements, inventory.ToMovementResponse(m))
	}
	return summary, nil
}
