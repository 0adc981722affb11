package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// MovementWithRefs movimiento con los datos denormalizados de producto y usuario
// que los listados y reportes exponen.
type MovementWithRefs struct {
	entity.StockMovement
	ProductName string
	ProductUnit string
	UserName    string
}

// MovementFilter filtros para el reporte de movimientos por período.
type MovementFilter struct {
	Type   string
	Reason string
	From   *time.Time
	To     *time.Time
}

// StockMovementRepository puerto de persistencia para el ledger de movimientos.
// Solo inserta y consulta: los movimientos nunca se editan ni se eliminan.
type StockMovementRepository interface {
	// Create persiste el movimiento y llena ID y CreatedAt generados.
	Create(ctx context.Context, movement *entity.StockMovement) error
	// GetByID devuelve nil, nil si el movimiento no existe.
	GetByID(ctx context.Context, id int64) (*MovementWithRefs, error)
	// List devuelve movimientos ordenados por fecha descendente, paginados.
	List(ctx context.Context, limit, offset int) ([]*MovementWithRefs, error)
	Count(ctx context.Context) (int, error)
	// ListFiltered devuelve los movimientos del reporte por período (sin paginar).
	ListFiltered(ctx context.Context, filter MovementFilter) ([]*MovementWithRefs, error)
}
