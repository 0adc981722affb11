package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementSelect = `
	SELECT m.id, m.product_id, m.user_id, m.type, m.reason, m.quantity,
		m.previous_stock, m.current_stock, m.notes, m.created_at,
		p.name, p.unit, u.name
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	JOIN users u ON u.id = m.user_id`

// StockMovementRepo implementación del ledger de movimientos sobre PostgreSQL.
// Solo inserta y consulta: los movimientos nunca se editan ni se eliminan.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento y llena ID y CreatedAt generados.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, user_id, type, reason, quantity,
			previous_stock, current_stock, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		movement.ProductID, movement.UserID, movement.Type, movement.Reason,
		movement.Quantity, movement.PreviousStock, movement.CurrentStock, movement.Notes,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func scanMovement(rows pgx.Row, m *repository.MovementWithRefs) error {
	return rows.Scan(
		&m.ID, &m.ProductID, &m.UserID, &m.Type, &m.Reason, &m.Quantity,
		&m.PreviousStock, &m.CurrentStock, &m.Notes, &m.CreatedAt,
		&m.ProductName, &m.ProductUnit, &m.UserName,
	)
}

// GetByID obtiene un movimiento con producto y usuario. Devuelve nil, nil si no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id int64) (*repository.MovementWithRefs, error) {
	var m repository.MovementWithRefs
	err := scanMovement(r.q.QueryRow(ctx, movementSelect+` WHERE m.id = $1`, id), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List devuelve movimientos ordenados por fecha descendente, paginados.
func (r *StockMovementRepo) List(ctx context.Context, limit, offset int) ([]*repository.MovementWithRefs, error) {
	query := movementSelect + ` ORDER BY m.created_at DESC, m.id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementWithRefs
	for rows.Next() {
		var m repository.MovementWithRefs
		if err := scanMovement(rows, &m); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Count cuenta todos los movimientos.
func (r *StockMovementRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}

// ListFiltered devuelve los movimientos del reporte por período (sin paginar),
// ordenados por fecha descendente.
func (r *StockMovementRepo) ListFiltered(ctx context.Context, filter repository.MovementFilter) ([]*repository.MovementWithRefs, error) {
	var conds []string
	var args []any
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("m.type = $%d", len(args)))
	}
	if filter.Reason != "" {
		args = append(args, filter.Reason)
		conds = append(conds, fmt.Sprintf("m.reason = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("m.created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("m.created_at <= $%d", len(args)))
	}
	query := movementSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY m.created_at DESC, m.id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list filtered movements: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementWithRefs
	for rows.Next() {
		var m repository.MovementWithRefs
		if err := scanMovement(rows, &m); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
