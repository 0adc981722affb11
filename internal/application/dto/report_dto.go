package dto

import "github.com/shopspring/decimal"

// RefDTO referencia mínima id+nombre (categoría o proveedor dentro de un reporte).
type RefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LowStockItemDTO fila del reporte de stock bajo.
type LowStockItemDTO struct {
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	CurrentStock int             `json:"currentStock"`
	MinimumStock int             `json:"minimumStock"`
	Unit         string          `json:"unit"`
	Difference   int             `json:"difference"` // minimumStock - currentStock
	Category     RefDTO          `json:"category"`
	Supplier     RefDTO          `json:"supplier"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SalePrice    decimal.Decimal `json:"salePrice"`
}

// LowStockReportDTO respuesta JSON de GET /api/reports/low-stock.
type LowStockReportDTO struct {
	Total int               `json:"total"`
	Data  []LowStockItemDTO `json:"data"`
}

// MovementReportRequest filtros de GET /api/reports/movements.
type MovementReportRequest struct {
	StartDate string `query:"startDate"` // YYYY-MM-DD
	EndDate   string `query:"endDate"`   // YYYY-MM-DD
	Type      string `query:"type" validate:"omitempty,oneof=ENTRY EXIT ADJUSTMENT"`
	Reason    string `query:"reason" validate:"omitempty,oneof=PURCHASE SALE LOSS RETURN ADJUSTMENT"`
}

// MovementReportSummaryDTO totales del reporte de movimientos.
type MovementReportSummaryDTO struct {
	TotalMovements int            `json:"totalMovements"`
	ByType         map[string]int `json:"byType"`
	ByReason       map[string]int `json:"byReason"`
	NetQuantity    int            `json:"netQuantity"` // ENTRY suma, EXIT resta
}

// MovementReportDTO respuesta JSON de GET /api/reports/movements.
type MovementReportDTO struct {
	Period struct {
		StartDate string `json:"startDate,omitempty"`
		EndDate   string `json:"endDate,omitempty"`
	} `json:"period"`
	Summary MovementReportSummaryDTO `json:"summary"`
	Data    []MovementResponse       `json:"data"`
}

// CategoryProductDTO producto dentro del reporte por categoría.
type CategoryProductDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CurrentStock int             `json:"currentStock"`
	MinimumStock int             `json:"minimumStock"`
	Unit         string          `json:"unit"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SalePrice    decimal.Decimal `json:"salePrice"`
	Supplier     RefDTO          `json:"supplier"`
}

// CategoryReportItemDTO categoría con sus productos y agregados.
type CategoryReportItemDTO struct {
	CategoryID       int64                `json:"categoryId"`
	CategoryName     string               `json:"categoryName"`
	TotalProducts    int                  `json:"totalProducts"`
	TotalStockValue  decimal.Decimal      `json:"totalStockValue"`
	LowStockProducts int                  `json:"lowStockProducts"`
	Products         []CategoryProductDTO `json:"products"`
}

// CategoryReportDTO respuesta JSON de GET /api/reports/products-by-category.
type CategoryReportDTO struct {
	TotalCategories int                     `json:"totalCategories"`
	Data            []CategoryReportItemDTO `json:"data"`
}
