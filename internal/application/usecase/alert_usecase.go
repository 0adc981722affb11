package usecase

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// AlertUseCase consultas y marcado de alertas.
// La creación y resolución automática de alertas vive en inventory.AlertReconciler;
// aquí solo está la superficie de lectura/marcado manual.
type AlertUseCase struct {
	alertRepo repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(alertRepo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{alertRepo: alertRepo}
}

// List devuelve alertas con filtros opcionales read/type, más recientes primero.
func (uc *AlertUseCase) List(ctx context.Context, in dto.AlertListRequest) ([]dto.AlertResponse, error) {
	alerts, err := uc.alertRepo.List(ctx, repository.AlertFilter{Read: in.Read, Type: in.Type})
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertResponse{
			ID:        a.ID,
			ProductID: a.ProductID,
			Type:      a.Type,
			Message:   a.Message,
			Read:      a.Read,
			CreatedAt: a.CreatedAt,
			Product: dto.AlertProductSummary{
				ID:           a.ProductID,
				Name:         a.ProductName,
				CurrentStock: a.CurrentStock,
				MinimumStock: a.MinimumStock,
				Unit:         a.ProductUnit,
			},
		})
	}
	return out, nil
}

// MarkRead marca una alerta como leída; domain.ErrNotFound si no existe.
func (uc *AlertUseCase) MarkRead(ctx context.Context, id int64) error {
	return uc.alertRepo.MarkRead(ctx, id)
}

// MarkAllRead marca todas las alertas no leídas y devuelve cuántas actualizó.
func (uc *AlertUseCase) MarkAllRead(ctx context.Context) (int64, error) {
	return uc.alertRepo.MarkAllRead(ctx)
}
