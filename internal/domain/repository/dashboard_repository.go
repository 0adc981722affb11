package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TotalsResult conteos básicos del dashboard.
type TotalsResult struct {
	Products     int
	Categories   int
	Suppliers    int
	UnreadAlerts int
}

// StockSummaryResult condición agregada del stock.
type StockSummaryResult struct {
	LowStockCount   int
	TotalStockValue decimal.Decimal // SUM(current_stock * cost_price)
}

// MovementStatsResult conteos de movimientos por período y por tipo.
type MovementStatsResult struct {
	Today       int
	ThisWeek    int
	ThisMonth   int
	Entries     int
	Exits       int
	Adjustments int
}

// TopProductResult producto con más movimientos registrados.
type TopProductResult struct {
	ProductID      int64
	Name           string
	MovementsCount int
}

// CategoryValueResult valor de stock agrupado por categoría.
type CategoryValueResult struct {
	CategoryID   int64
	CategoryName string
	TotalValue   decimal.Decimal
}

// DashboardRepository consultas read-only de agregación para el dashboard.
type DashboardRepository interface {
	GetTotals(ctx context.Context) (*TotalsResult, error)
	GetStockSummary(ctx context.Context) (*StockSummaryResult, error)
	GetMovementStats(ctx context.Context, todayStart, weekStart, monthStart time.Time) (*MovementStatsResult, error)
	// GetTopProducts devuelve los `limit` productos más movidos, ordenados por conteo descendente.
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
	// GetValueByCategory agrupa el valor de stock por categoría, ordenado por valor descendente.
	GetValueByCategory(ctx context.Context) ([]CategoryValueResult, error)
	// GetRecentMovements devuelve los últimos `limit` movimientos con producto y usuario.
	GetRecentMovements(ctx context.Context, limit int) ([]*MovementWithRefs, error)
}
