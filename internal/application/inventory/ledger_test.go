package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type ledgerFixture struct {
	ledger      *inventory.StockLedger
	productRepo *fakeProductRepo
	movRepo     *fakeMovementRepo
	alertRepo   *fakeAlertRepo
}

func newLedgerFixture(products ...*entity.Product) *ledgerFixture {
	productRepo := newFakeProductRepo(products...)
	movRepo := newFakeMovementRepo()
	alertRepo := newFakeAlertRepo()
	txRunner := &fakeTxRunner{movRepo: movRepo, productRepo: productRepo}
	reconciler := inventory.NewAlertReconciler(productRepo, alertRepo)
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	return &ledgerFixture{
		ledger:      inventory.NewStockLedger(txRunner, reconciler, log),
		productRepo: productRepo,
		movRepo:     movRepo,
		alertRepo:   alertRepo,
	}
}

func testProduct(id int64, stock, minimum int) *entity.Product {
	return &entity.Product{
		ID:           id,
		Name:         "Arroz 5kg",
		Unit:         entity.UnitUN,
		CurrentStock: stock,
		MinimumStock: minimum,
		Active:       true,
	}
}

func apply(f *ledgerFixture, typ, reason string, qty int) (*entity.StockMovement, error) {
	return f.ledger.Apply(context.Background(), inventory.ApplyInput{
		ProductID: 1,
		UserID:    7,
		Type:      typ,
		Reason:    reason,
		Quantity:  qty,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Apply — semántica por tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntrySumaAlStock(t *testing.T) {
	f := newLedgerFixture(testProduct(1, 10, 3))

	m, err := apply(f, entity.MovementTypeENTRY, entity.MovementReasonPURCHASE, 5)
	require.NoError(t, err)

	assert.Equal(t, 10, m.PreviousStock)
	assert.Equal(t, 15, m.CurrentStock)
	assert.Equal(t, 15, f.productRepo.products[1].CurrentStock,
		"el saldo del producto debe quedar actualizado")
}

func TestApply_ExitRestaDelStock(t *testing.T) {
	f := newLedgerFixture(testProduct(1, 10, 3))

	m, err := apply(f, entity.MovementTypeEXIT, entity.MovementReasonSALE, 4)
	require.NoError(t, err)

	assert.Equal(t, 10, m.PreviousStock)
	assert.Equal(t, 6, m.CurrentStock)
	assert.Equal(t, 6, f.productRepo.products[1].CurrentStock)
}

func TestApply_ExitHastaCero_EsValido(t *testing.T) {
	// Frontera: una salida que deja el saldo exactamente en 0 se acepta.
	f := newLedgerFixture(testProduct(1, 10, 3))

	m, err := apply(f, entity.MovementTypeEXIT, entity.MovementReasonSALE, 10)
	require.NoError(t, err)

	assert.Equal(t, 0, m.CurrentStock)
	assert.Equal(t, 0, f.productRepo.products[1].CurrentStock)
}

func TestApply_ExitInsuficiente_NoEscribeNada(t *testing.T) {
	f := newLedgerFixture(testProduct(1, 10, 3))

	_, err := apply(f, entity.MovementTypeEXIT, entity.MovementReasonSALE, 11)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, f.productRepo.products[1].CurrentStock,
		"el saldo no debe cambiar si la salida se rechaza")
	assert.Empty(t, f.movRepo.movements,
		"no debe quedar ningún movimiento registrado")
}

func TestApply_AdjustmentEsStockAbsoluto(t *testing.T) {
	f := newLedgerFixture(testProduct(1, 10, 3))

	m, err := apply(f, entity.MovementTypeADJUSTMENT, entity.MovementReasonADJUSTMENT, 2)
	require.NoError(t, err)

	assert.Equal(t, 10, m.PreviousStock)
	assert.Equal(t, 2, m.CurrentStock, "ADJUSTMENT fija el saldo, no lo desplaza")
	assert.Equal(t, 2, f.productRepo.products[1].CurrentStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Apply — validación y errores de dominio
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_TipoInvalido_RetornaErrInvalidInput(t *testing.T) {
	f := newLedgerFixture(testProduct(1, 10, 3))

	_, err := apply(f, "TRANSFER", entity.MovementReasonSALE, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_MotivoInvalido_RetornaErrInvalidInput(t *testing.T) {
	f := newLedgerFixture(testProduct(1, 10, 3))

	_, err := apply(f, entity.MovementTypeENTRY, "DONATION", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_CantidadNoPositiva_RetornaErrInvalidInput(t *testing.T) {
	f := newLedgerFixture(testProduct(1, 10, 3))

	for _, qty := range []int{0, -5} {
		_, err := apply(f, entity.MovementTypeENTRY, entity.MovementReasonPURCHASE, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
	assert.Empty(t, f.movRepo.movements)
}

func TestApply_ProductoInexistente_RetornaErrNotFound(t *testing.T) {
	f := newLedgerFixture() // sin productos

	_, err := apply(f, entity.MovementTypeENTRY, entity.MovementReasonPURCHASE, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Apply — snapshots e integración con la reconciliación
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_SnapshotsQuedanCongelados(t *testing.T) {
	// Los snapshots del movimiento no deben cambiar cuando el saldo del
	// producto siga moviéndose después.
	f := newLedgerFixture(testProduct(1, 10, 3))

	first, err := apply(f, entity.MovementTypeEXIT, entity.MovementReasonSALE, 4)
	require.NoError(t, err)
	_, err = apply(f, entity.MovementTypeENTRY, entity.MovementReasonPURCHASE, 20)
	require.NoError(t, err)

	stored := f.movRepo.movements[0]
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, 10, stored.PreviousStock)
	assert.Equal(t, 6, stored.CurrentStock,
		"el snapshot del primer movimiento no debe reflejar movimientos posteriores")
}

func TestApply_ExitBajoMinimo_CreaAlerta(t *testing.T) {
	f := newLedgerFixture(testProduct(1, 10, 5))

	_, err := apply(f, entity.MovementTypeEXIT, entity.MovementReasonSALE, 6)
	require.NoError(t, err)

	unread := f.alertRepo.unread(1)
	require.Len(t, unread, 1, "debe existir exactamente una alerta LOW_STOCK no leída")
	assert.Equal(t, entity.AlertTypeLowStock, unread[0].Type)
}

func TestApply_EntryRecuperaStock_ResuelveAlerta(t *testing.T) {
	f := newLedgerFixture(testProduct(1, 4, 5))

	// Primer movimiento deja el producto en stock bajo: nace la alerta.
	_, err := apply(f, entity.MovementTypeEXIT, entity.MovementReasonSALE, 1)
	require.NoError(t, err)
	require.Len(t, f.alertRepo.unread(1), 1)

	// La entrada repone el stock por encima del mínimo: la alerta se resuelve.
	_, err = apply(f, entity.MovementTypeENTRY, entity.MovementReasonPURCHASE, 10)
	require.NoError(t, err)
	assert.Empty(t, f.alertRepo.unread(1),
		"al recuperar stock las alertas no leídas deben quedar leídas")
}

func TestApply_FalloEnReconciliacion_NoTumbaElMovimiento(t *testing.T) {
	// La reconciliación es best-effort: si el almacén de alertas falla, el
	// movimiento ya confirmado se devuelve igual.
	f := newLedgerFixture(testProduct(1, 10, 5))
	f.alertRepo.failCreate = true

	m, err := apply(f, entity.MovementTypeEXIT, entity.MovementReasonSALE, 6)
	require.NoError(t, err, "el fallo de alertas no debe propagarse al caller")
	require.NotNil(t, m)
	assert.Equal(t, 4, f.productRepo.products[1].CurrentStock)
	assert.Len(t, f.movRepo.movements, 1)
}
