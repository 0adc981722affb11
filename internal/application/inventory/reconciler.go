package inventory

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// AlertReconciler alinea las alertas LOW_STOCK de un producto con su condición
// real de stock bajo (currentStock <= minimumStock).
//
// Es idempotente: llamadas repetidas sin cambios de stock intermedios no
// producen efectos adicionales. Escribe solo en el almacén de alertas.
type AlertReconciler struct {
	productRepo repository.ProductRepository
	alertRepo   repository.AlertRepository
}

// NewAlertReconciler construye el reconciliador.
func NewAlertReconciler(productRepo repository.ProductRepository, alertRepo repository.AlertRepository) *AlertReconciler {
	return &AlertReconciler{productRepo: productRepo, alertRepo: alertRepo}
}

// Reconcile re-evalúa la condición de stock bajo del producto.
//
// Si el producto no existe devuelve nil, nil: puede haber sido eliminado entre
// el movimiento y la reconciliación y eso no es un error.
// Si hay condición de stock bajo, garantiza exactamente una alerta LOW_STOCK no
// leída (devuelve la existente o crea una nueva). Si la condición se resolvió,
// marca como leídas todas las LOW_STOCK no leídas del producto y devuelve nil.
func (r *AlertReconciler) Reconcile(ctx context.Context, productID int64) (*entity.Alert, error) {
	product, err := r.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if !product.LowStock() {
		if _, err := r.alertRepo.MarkAllUnreadLowStockRead(ctx, productID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	existing, err := r.alertRepo.FindUnreadLowStock(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Ya hay una alerta viva para esta condición: no duplicar.
		return existing, nil
	}

	alert := &entity.Alert{
		ProductID: productID,
		Type:      entity.AlertTypeLowStock,
		Message: fmt.Sprintf("Low stock: %s has %d %s left (minimum %d)",
			product.Name, product.CurrentStock, product.Unit, product.MinimumStock),
		Read: false,
	}
	if err := r.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}
