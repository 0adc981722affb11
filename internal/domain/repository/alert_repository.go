package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// AlertWithProduct alerta con el resumen del producto asociado (listados).
type AlertWithProduct struct {
	entity.Alert
	ProductName  string
	CurrentStock int
	MinimumStock int
	ProductUnit  string
}

// AlertFilter filtros para listados de alertas.
type AlertFilter struct {
	Read *bool
	Type string
}

// AlertRepository puerto de persistencia para Alert.
type AlertRepository interface {
	// Create persiste la alerta y llena ID y CreatedAt generados.
	Create(ctx context.Context, alert *entity.Alert) error
	// FindUnreadLowStock devuelve la alerta LOW_STOCK no leída del producto, o nil, nil.
	FindUnreadLowStock(ctx context.Context, productID int64) (*entity.Alert, error)
	// MarkAllUnreadLowStockRead marca como leídas todas las LOW_STOCK no leídas
	// del producto y devuelve cuántas actualizó.
	MarkAllUnreadLowStockRead(ctx context.Context, productID int64) (int64, error)
	List(ctx context.Context, filter AlertFilter) ([]*AlertWithProduct, error)
	// MarkRead marca una alerta individual; devuelve domain.ErrNotFound si no existe.
	MarkRead(ctx context.Context, id int64) error
	// MarkAllRead marca todas las alertas no leídas y devuelve cuántas actualizó.
	MarkAllRead(ctx context.Context) (int64, error)
}
