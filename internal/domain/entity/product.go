package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para Product.
const (
	UnitUN  = "UN"  // unidad
	UnitKG  = "KG"  // kilogramo
	UnitLT  = "LT"  // litro
	UnitPCT = "PCT" // paquete
	UnitCX  = "CX"  // caja
)

// ValidUnit verifica que la unidad pertenezca a la enumeración.
func ValidUnit(unit string) bool {
	switch unit {
	case UnitUN, UnitKG, UnitLT, UnitPCT, UnitCX:
		return true
	}
	return false
}

// Product representa un producto del catálogo.
// CurrentStock solo se modifica a través del ledger de movimientos una vez creado.
type Product struct {
	ID           int64
	Name         string
	Barcode      string
	Description  string
	Unit         string // UN, KG, LT, PCT, CX
	CurrentStock int
	MinimumStock int
	CostPrice    decimal.Decimal
	SalePrice    decimal.Decimal
	CategoryID   int64
	SupplierID   int64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock indica si el producto está en condición de stock bajo.
func (p *Product) LowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}
