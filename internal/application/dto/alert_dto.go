package dto

import "time"

// AlertListRequest filtros de GET /api/alerts.
type AlertListRequest struct {
	Read *bool  `query:"read"`
	Type string `query:"type" validate:"omitempty,oneof=LOW_STOCK EXPIRING"`
}

// AlertProductSummary resumen del producto embebido en la alerta.
type AlertProductSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"currentStock"`
	MinimumStock int    `json:"minimumStock"`
	Unit         string `json:"unit"`
}

// AlertResponse representación HTTP de una alerta.
type AlertResponse struct {
	ID        int64               `json:"id"`
	ProductID int64               `json:"productId"`
	Type      string              `json:"type"`
	Message   string              `json:"message"`
	Read      bool                `json:"read"`
	CreatedAt time.Time           `json:"createdAt"`
	Product   AlertProductSummary `json:"product"`
}

// MarkAllReadResponse resultado de PATCH /api/alerts/read-all.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
