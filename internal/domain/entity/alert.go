package entity

import "time"

// Tipos de alerta.
const (
	AlertTypeLowStock = "LOW_STOCK"
	// AlertTypeExpiring está definido en el esquema pero ningún flujo lo genera todavía.
	AlertTypeExpiring = "EXPIRING"
)

// Alert notificación generada por el reconciliador de stock bajo.
// Invariante: a lo sumo una alerta LOW_STOCK no leída por producto
// (lo garantiza la reconciliación, no un constraint de unicidad).
type Alert struct {
	ID        int64
	ProductID int64
	Type      string // LOW_STOCK | EXPIRING
	Message   string
	Read      bool
	CreatedAt time.Time
}
