// Package inventory contiene el núcleo de inventario: el ledger de movimientos
// de stock y la reconciliación de alertas de stock bajo.
package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

// StockLedger registra movimientos de stock (ENTRY, EXIT, ADJUSTMENT) de forma
// transaccional: bloquea la fila del producto (SELECT FOR UPDATE), inserta el
// movimiento con los snapshots de saldo y actualiza el saldo, con Commit/Rollback.
//
// Tras el commit invoca la reconciliación de alertas; esa fase es best-effort:
// un fallo ahí se registra en el log pero no revierte el movimiento ya confirmado.
type StockLedger struct {
	txRunner   TxRunner
	reconciler *AlertReconciler
	log        *logger.Logger
}

// NewStockLedger construye el ledger.
func NewStockLedger(txRunner TxRunner, reconciler *AlertReconciler, log *logger.Logger) *StockLedger {
	return &StockLedger{txRunner: txRunner, reconciler: reconciler, log: log}
}

// ApplyInput entrada para registrar un movimiento.
// Para ENTRY/EXIT Quantity es un delta positivo; para ADJUSTMENT es el nuevo
// stock absoluto.
type ApplyInput struct {
	ProductID int64
	UserID    int64
	Type      string // ENTRY, EXIT, ADJUSTMENT
	Reason    string // PURCHASE, SALE, LOSS, RETURN, ADJUSTMENT
	Quantity  int
	Notes     string
}

// Apply valida y aplica un movimiento de stock.
//
// Dentro de una transacción: bloquea la fila del producto, calcula el nuevo
// saldo según el tipo, rechaza EXIT que dejaría el stock negativo, inserta el
// movimiento (snapshots PreviousStock/CurrentStock congelados) y actualiza el
// saldo del producto. Si cualquier paso falla no queda ningún escrito parcial.
//
// Errores de dominio: domain.ErrNotFound (producto inexistente),
// domain.ErrInsufficientStock (EXIT dejaría saldo negativo),
// domain.ErrInvalidInput (tipo/motivo/cantidad fuera de la enumeración).
func (l *StockLedger) Apply(ctx context.Context, input ApplyInput) (*entity.StockMovement, error) {
	// La capa de validación HTTP ya filtró el input, pero el ledger se defiende
	// igual: es el único punto de escritura del saldo.
	if !entity.ValidMovementType(input.Type) || !entity.ValidMovementReason(input.Reason) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var movement *entity.StockMovement

	err := l.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para serializar escrituras concurrentes
		// sobre el mismo saldo.
		product, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		previous := product.CurrentStock
		var newStock int
		switch input.Type {
		case entity.MovementTypeENTRY:
			newStock = previous + input.Quantity
		case entity.MovementTypeEXIT:
			newStock = previous - input.Quantity
		case entity.MovementTypeADJUSTMENT:
			newStock = input.Quantity
		}

		if input.Type == entity.MovementTypeEXIT && newStock < 0 {
			return domain.ErrInsufficientStock
		}

		m := &entity.StockMovement{
			ProductID:     input.ProductID,
			UserID:        input.UserID,
			Type:          input.Type,
			Reason:        input.Reason,
			Quantity:      input.Quantity,
			PreviousStock: previous,
			CurrentStock:  newStock,
			Notes:         input.Notes,
		}
		if err := movRepo.Create(ctx, m); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(ctx, input.ProductID, newStock); err != nil {
			return err
		}
		movement = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reconciliación fuera de la transacción: es idempotente y re-ejecutable,
	// así que un fallo aquí no debe tumbar un movimiento ya confirmado.
	if _, err := l.reconciler.Reconcile(ctx, input.ProductID); err != nil {
		l.log.Warn().
			Err(err).
			Int64("product_id", input.ProductID).
			Int64("movement_id", movement.ID).
			Msg("reconciliación de alertas falló tras el movimiento")
	}

	return movement, nil
}
