package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste la alerta y llena ID y CreatedAt generados.
func (r *AlertRepo) Create(ctx context.Context, alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (product_id, type, message, read)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		alert.ProductID, alert.Type, alert.Message, alert.Read,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// FindUnreadLowStock devuelve la alerta LOW_STOCK no leída del producto, o nil, nil.
// Si hubiera más de una (no debería), devuelve la más reciente.
func (r *AlertRepo) FindUnreadLowStock(ctx context.Context, productID int64) (*entity.Alert, error) {
	query := `
		SELECT id, product_id, type, message, read, created_at
		FROM alerts
		WHERE product_id = $1 AND type = $2 AND read = false
		ORDER BY created_at DESC
		LIMIT 1`
	var a entity.Alert
	err := r.q.QueryRow(ctx, query, productID, entity.AlertTypeLowStock).Scan(
		&a.ID, &a.ProductID, &a.Type, &a.Message, &a.Read, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find unread low stock alert: %w", err)
	}
	return &a, nil
}

// MarkAllUnreadLowStockRead marca como leídas las LOW_STOCK no leídas del producto.
func (r *AlertRepo) MarkAllUnreadLowStockRead(ctx context.Context, productID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE alerts SET read = true WHERE product_id = $1 AND type = $2 AND read = false`,
		productID, entity.AlertTypeLowStock,
	)
	if err != nil {
		return 0, fmt.Errorf("resolve low stock alerts: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// List devuelve alertas con el resumen del producto, más recientes primero.
func (r *AlertRepo) List(ctx context.Context, filter repository.AlertFilter) ([]*repository.AlertWithProduct, error) {
	var conds []string
	var args []any
	if filter.Read != nil {
		args = append(args, *filter.Read)
		conds = append(conds, fmt.Sprintf("a.read = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("a.type = $%d", len(args)))
	}
	query := `
		SELECT a.id, a.product_id, a.type, a.message, a.read, a.created_at,
			p.name, p.current_stock, p.minimum_stock, p.unit
		FROM alerts a
		JOIN products p ON p.id = a.product_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY a.created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*repository.AlertWithProduct
	for rows.Next() {
		var a repository.AlertWithProduct
		if err := rows.Scan(
			&a.ID, &a.ProductID, &a.Type, &a.Message, &a.Read, &a.CreatedAt,
			&a.ProductName, &a.CurrentStock, &a.MinimumStock, &a.ProductUnit,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// MarkRead marca una alerta individual como leída.
func (r *AlertRepo) MarkRead(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE alerts SET read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllRead marca todas las alertas no leídas y devuelve cuántas actualizó.
func (r *AlertRepo) MarkAllRead(ctx context.Context) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE alerts SET read = true WHERE read = false`)
	if err != nil {
		return 0, fmt.Errorf("mark all alerts read: %w", err)
	}
	return cmd.RowsAffected(), nil
}
