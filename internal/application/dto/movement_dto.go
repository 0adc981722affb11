package dto

import "time"

// CreateMovementRequest body para POST /api/movements.
// Para ENTRY/EXIT Quantity es un delta; para ADJUSTMENT es el stock absoluto resultante.
type CreateMovementRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Type      string `json:"type" validate:"required,oneof=ENTRY EXIT ADJUSTMENT"`
	Reason    string `json:"reason" validate:"required,oneof=PURCHASE SALE LOSS RETURN ADJUSTMENT"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Notes     string `json:"notes" validate:"omitempty,max=500"`
}

// MovementResponse representación HTTP de un movimiento del ledger.
type MovementResponse struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"productId"`
	ProductName   string    `json:"productName,omitempty"`
	ProductUnit   string    `json:"productUnit,omitempty"`
	UserID        int64     `json:"userId"`
	UserName      string    `json:"userName,omitempty"`
	Type          string    `json:"type"`
	Reason        string    `json:"reason"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previousStock"`
	CurrentStock  int       `json:"currentStock"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Data       []MovementResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}
