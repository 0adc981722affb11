package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

func newReconcilerFixture(products ...*entity.Product) (*inventory.AlertReconciler, *fakeAlertRepo) {
	alertRepo := newFakeAlertRepo()
	return inventory.NewAlertReconciler(newFakeProductRepo(products...), alertRepo), alertRepo
}

func TestReconcile_StockBajo_CreaAlertaConMensaje(t *testing.T) {
	r, alerts := newReconcilerFixture(&entity.Product{
		ID: 1, Name: "Leche entera", Unit: entity.UnitLT,
		CurrentStock: 2, MinimumStock: 6, Active: true,
	})

	alert, err := r.Reconcile(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, alert)

	assert.Equal(t, entity.AlertTypeLowStock, alert.Type)
	assert.False(t, alert.Read)
	assert.Equal(t, "Low stock: Leche entera has 2 LT left (minimum 6)", alert.Message,
		"el mensaje debe incluir nombre, stock actual, unidad y mínimo")
	assert.Len(t, alerts.unread(1), 1)
}

func TestReconcile_StockIgualAlMinimo_EsStockBajo(t *testing.T) {
	// Frontera: currentStock == minimumStock cuenta como stock bajo.
	r, alerts := newReconcilerFixture(testProduct(1, 5, 5))

	alert, err := r.Reconcile(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Len(t, alerts.unread(1), 1)
}

func TestReconcile_Idempotente_NoDuplicaAlertas(t *testing.T) {
	r, alerts := newReconcilerFixture(testProduct(1, 1, 5))

	first, err := r.Reconcile(context.Background(), 1)
	require.NoError(t, err)
	second, err := r.Reconcile(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID,
		"llamadas repetidas deben devolver la misma alerta viva")
	assert.Len(t, alerts.unread(1), 1, "nunca más de una alerta no leída por producto")
}

func TestReconcile_StockRecuperado_MarcaAlertasLeidas(t *testing.T) {
	productRepo := newFakeProductRepo(testProduct(1, 1, 5))
	alertRepo := newFakeAlertRepo()
	r := inventory.NewAlertReconciler(productRepo, alertRepo)

	_, err := r.Reconcile(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, alertRepo.unread(1), 1)

	// El stock se repone por encima del mínimo.
	productRepo.products[1].CurrentStock = 20

	alert, err := r.Reconcile(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, alert, "sin condición de stock bajo no debe devolver alerta")
	assert.Empty(t, alertRepo.unread(1), "las alertas previas deben quedar leídas")
}

func TestReconcile_ProductoInexistente_NoEsError(t *testing.T) {
	r, alerts := newReconcilerFixture() // sin productos

	alert, err := r.Reconcile(context.Background(), 99)
	assert.NoError(t, err, "un producto eliminado entre movimiento y reconciliación no es error")
	assert.Nil(t, alert)
	assert.Empty(t, alerts.alerts)
}

func TestReconcile_AlertaLeidaNoBloqueaUnaNueva(t *testing.T) {
	// Una alerta ya leída no cuenta como viva: si la condición persiste
	// debe nacer una nueva no leída.
	r, alerts := newReconcilerFixture(testProduct(1, 1, 5))

	first, err := r.Reconcile(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, alerts.MarkRead(context.Background(), first.ID))

	second, err := r.Reconcile(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, alerts.unread(1), 1)
}
