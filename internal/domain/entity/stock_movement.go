package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeENTRY      = "ENTRY"      // entrada: suma al stock
	MovementTypeEXIT       = "EXIT"       // salida: resta del stock
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste: la cantidad ES el nuevo stock absoluto
)

// Motivos de movimiento.
const (
	MovementReasonPURCHASE   = "PURCHASE"
	MovementReasonSALE       = "SALE"
	MovementReasonLOSS       = "LOSS"
	MovementReasonRETURN     = "RETURN"
	MovementReasonADJUSTMENT = "ADJUSTMENT"
)

// ValidMovementType verifica que el tipo pertenezca a la enumeración.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeENTRY, MovementTypeEXIT, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// ValidMovementReason verifica que el motivo pertenezca a la enumeración.
func ValidMovementReason(r string) bool {
	switch r {
	case MovementReasonPURCHASE, MovementReasonSALE, MovementReasonLOSS,
		MovementReasonRETURN, MovementReasonADJUSTMENT:
		return true
	}
	return false
}

// StockMovement es un registro inmutable del ledger de stock.
// PreviousStock y CurrentStock son snapshots congelados al momento de crearse;
// un movimiento nunca se edita ni se elimina.
type StockMovement struct {
	ID            int64
	ProductID     int64
	UserID        int64
	Type          string // ENTRY, EXIT, ADJUSTMENT
	Reason        string // PURCHASE, SALE, LOSS, RETURN, ADJUSTMENT
	Quantity      int    // siempre positivo
	PreviousStock int
	CurrentStock  int
	Notes         string
	CreatedAt     time.Time
}
