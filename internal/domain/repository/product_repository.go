package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para listados de productos.
type ProductFilter struct {
	CategoryID *int64
	SupplierID *int64
	Active     *bool
	Search     string // busca por nombre (insensible a mayúsculas) o código de barras
}

// ProductWithRefs producto con los nombres denormalizados de categoría y
// proveedor que usan los reportes.
type ProductWithRefs struct {
	entity.Product
	CategoryName string
	SupplierName string
}

// ProductRepository puerto de persistencia para Product.
type ProductRepository interface {
	// Create persiste el producto y llena ID, CreatedAt y UpdatedAt generados.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock actualiza únicamente el saldo de stock (usado por el ledger).
	UpdateStock(ctx context.Context, id int64, newStock int) error
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int, error)
	// ListActiveWithRefs devuelve todos los productos activos con los nombres
	// de categoría y proveedor (reportes).
	ListActiveWithRefs(ctx context.Context) ([]*ProductWithRefs, error)
	Delete(ctx context.Context, id int64) error
}
