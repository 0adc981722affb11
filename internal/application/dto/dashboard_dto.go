package dto

import "github.com/shopspring/decimal"

// MovementsByPeriodDTO conteos de movimientos por período.
type MovementsByPeriodDTO struct {
	Today     int `json:"today"`
	ThisWeek  int `json:"thisWeek"`
	ThisMonth int `json:"thisMonth"`
}

// MovementsByTypeDTO conteos de movimientos por tipo.
type MovementsByTypeDTO struct {
	Entries     int `json:"entries"`
	Exits       int `json:"exits"`
	Adjustments int `json:"adjustments"`
}

// TopProductDTO producto más movido.
type TopProductDTO struct {
	ProductID      int64  `json:"productId"`
	Name           string `json:"name"`
	MovementsCount int    `json:"movementsCount"`
}

// CategoryValueDTO valor de stock por categoría.
type CategoryValueDTO struct {
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	TotalValue   decimal.Decimal `json:"totalValue"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard.
type DashboardSummaryDTO struct {
	TotalCategories   int                  `json:"totalCategories"`
	TotalProducts     int                  `json:"totalProducts"`
	TotalSuppliers    int                  `json:"totalSuppliers"`
	TotalUnreadAlerts int                  `json:"totalUnreadAlerts"`
	LowStockCount     int                  `json:"lowStockCount"`
	TotalStockValue   decimal.Decimal      `json:"totalStockValue"`
	MovementsByPeriod MovementsByPeriodDTO `json:"movementsByPeriod"`
	MovementsByType   MovementsByTypeDTO   `json:"movementsByType"`
	TopProducts       []TopProductDTO      `json:"topProducts"`
	ValueByCategory   []CategoryValueDTO   `json:"valueByCategory"`
	RecentMovements   []MovementResponse   `json:"recentMovements"`
	// RequestCount peticiones atendidas desde el arranque; lo llena el handler.
	RequestCount int64 `json:"requestCount"`
}
