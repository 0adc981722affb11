package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de agregación de solo lectura para el dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetTotals devuelve los conteos básicos del panel (solo productos activos).
func (r *DashboardRepo) GetTotals(ctx context.Context) (*repository.TotalsResult, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products WHERE active = true)        AS products,
	    (SELECT COUNT(*) FROM categories)                          AS categories,
	    (SELECT COUNT(*) FROM suppliers)                           AS suppliers,
	    (SELECT COUNT(*) FROM alerts WHERE read = false)           AS unread_alerts`

	var t repository.TotalsResult
	err := r.pool.QueryRow(ctx, query).Scan(&t.Products, &t.Categories, &t.Suppliers, &t.UnreadAlerts)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetTotals: %w", err)
	}
	return &t, nil
}

// GetStockSummary devuelve el conteo de productos en stock bajo y el valor
// total del inventario a precio de costo. COALESCE cubre el catálogo vacío.
func (r *DashboardRepo) GetStockSummary(ctx context.Context) (*repository.StockSummaryResult, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE current_stock <= minimum_stock)     AS low_stock_count,
	    COALESCE(SUM(current_stock * cost_price), 0)               AS total_stock_value
	FROM products
	WHERE active = true`

	var s repository.StockSummaryResult
	err := r.pool.QueryRow(ctx, query).Scan(&s.LowStockCount, &s.TotalStockValue)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetStockSummary: %w", err)
	}
	return &s, nil
}

// GetMovementStats cuenta movimientos por período (hoy, semana, mes) y por tipo.
func (r *DashboardRepo) GetMovementStats(ctx context.Context, todayStart, weekStart, monthStart time.Time) (*repository.MovementStatsResult, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE created_at >= $1)                   AS today,
	    COUNT(*) FILTER (WHERE created_at >= $2)                   AS this_week,
	    COUNT(*) FILTER (WHERE created_at >= $3)                   AS this_month,
	    COUNT(*) FILTER (WHERE type = $4)                          AS entries,
	    COUNT(*) FILTER (WHERE type = $5)                          AS exits,
	    COUNT(*) FILTER (WHERE type = $6)                          AS adjustments
	FROM stock_movements`

	var s repository.MovementStatsResult
	err := r.pool.QueryRow(ctx, query, todayStart, weekStart, monthStart,
		entity.MovementTypeENTRY, entity.MovementTypeEXIT, entity.MovementTypeADJUSTMENT,
	).Scan(&s.Today, &s.ThisWeek, &s.ThisMonth, &s.Entries, &s.Exits, &s.Adjustments)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetMovementStats: %w", err)
	}
	return &s, nil
}

// GetTopProducts devuelve los productos con más movimientos registrados.
func (r *DashboardRepo) GetTopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT p.id, p.name, COUNT(m.id) AS movements_count
	FROM products p
	JOIN stock_movements m ON m.product_id = p.id
	GROUP BY p.id, p.name
	ORDER BY movements_count DESC, p.name ASC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.MovementsCount); err != nil {
			return nil, fmt.Errorf("dashboard.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetValueByCategory agrupa el valor de stock (a costo) por categoría,
// ordenado por valor descendente. Solo productos activos.
func (r *DashboardRepo) GetValueByCategory(ctx context.Context) ([]repository.CategoryValueResult, error) {
	const query = `
	SELECT c.id, c.name, COALESCE(SUM(p.current_stock * p.cost_price), 0) AS total_value
	FROM categories c
	LEFT JOIN products p ON p.category_id = c.id AND p.active = true
	GROUP BY c.id, c.name
	ORDER BY total_value DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetValueByCategory: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryValueResult
	for rows.Next() {
		var row repository.CategoryValueResult
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.TotalValue); err != nil {
			return nil, fmt.Errorf("dashboard.GetValueByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetRecentMovements devuelve los últimos movimientos con producto y usuario.
func (r *DashboardRepo) GetRecentMovements(ctx context.Context, limit int) ([]*repository.MovementWithRefs, error) {
	return NewStockMovementRepository(r.pool).List(ctx, limit, 0)
}
