package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,max=200"`
	Barcode      string          `json:"barcode" validate:"omitempty,max=13"`
	Description  string          `json:"description" validate:"omitempty,max=500"`
	Unit         string          `json:"unit" validate:"required,oneof=UN KG LT PCT CX"`
	CurrentStock int             `json:"currentStock" validate:"min=0"`
	MinimumStock int             `json:"minimumStock" validate:"min=0"`
	CostPrice    decimal.Decimal `json:"costPrice" validate:"dgte0"`
	SalePrice    decimal.Decimal `json:"salePrice" validate:"dgte0"`
	CategoryID   int64           `json:"categoryId" validate:"required,gt=0"`
	SupplierID   int64           `json:"supplierId" validate:"required,gt=0"`
	Active       *bool           `json:"active"`
}

// UpdateProductRequest body para PUT /api/products/:id (objeto completo, como el create).
type UpdateProductRequest = CreateProductRequest

// ProductListRequest filtros de GET /api/products.
type ProductListRequest struct {
	PageRequest
	CategoryID *int64 `query:"categoryId"`
	SupplierID *int64 `query:"supplierId"`
	Active     *bool  `query:"active"`
	Search     string `query:"search"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Barcode      string          `json:"barcode,omitempty"`
	Description  string          `json:"description,omitempty"`
	Unit         string          `json:"unit"`
	CurrentStock int             `json:"currentStock"`
	MinimumStock int             `json:"minimumStock"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SalePrice    decimal.Decimal `json:"salePrice"`
	CategoryID   int64           `json:"categoryId"`
	SupplierID   int64           `json:"supplierId"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
