package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// MovementQuery consultas de solo lectura sobre el ledger de movimientos.
type MovementQuery struct {
	movRepo repository.StockMovementRepository
}

// NewMovementQuery construye las consultas del ledger.
func NewMovementQuery(movRepo repository.StockMovementRepository) *MovementQuery {
	return &MovementQuery{movRepo: movRepo}
}

// List devuelve movimientos paginados, más recientes primero.
func (q *MovementQuery) List(ctx context.Context, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	total, err := q.movRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := q.movRepo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Data:       out,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// GetByID devuelve un movimiento o domain.ErrNotFound.
func (q *MovementQuery) GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	movement, err := q.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToMovementResponse(movement)
	return &resp, nil
}

// ToMovementResponse mapea un movimiento con referencias a su DTO.
func ToMovementResponse(m *repository.MovementWithRefs) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		ProductUnit:   m.ProductUnit,
		UserID:        m.UserID,
		UserName:      m.UserName,
		Type:          m.Type,
		Reason:        m.Reason,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		CurrentStock:  m.CurrentStock,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}
