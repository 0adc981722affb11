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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, barcode, description, unit, current_stock, minimum_stock,
	cost_price, sale_price, category_id, supplier_id, active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Barcode, &p.Description, &p.Unit, &p.CurrentStock, &p.MinimumStock,
		&p.CostPrice, &p.SalePrice, &p.CategoryID, &p.SupplierID, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Create persiste un nuevo producto y llena ID, CreatedAt y UpdatedAt generados.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, barcode, description, unit, current_stock, minimum_stock,
			cost_price, sale_price, category_id, supplier_id, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Barcode, product.Description, product.Unit,
		product.CurrentStock, product.MinimumStock, product.CostPrice, product.SalePrice,
		product.CategoryID, product.SupplierID, product.Active,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	if err := scanProduct(r.q.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	var p entity.Product
	if err := scanProduct(r.q.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente. No toca current_stock: ese saldo
// solo se modifica vía movimientos.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, barcode = $3, description = $4, unit = $5,
			minimum_stock = $6, cost_price = $7, sale_price = $8,
			category_id = $9, supplier_id = $10, active = $11, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		product.ID, product.Name, product.Barcode, product.Description, product.Unit,
		product.MinimumStock, product.CostPrice, product.SalePrice,
		product.CategoryID, product.SupplierID, product.Active,
	).Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el saldo de stock (usado por el ledger).
func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, newStock int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, newStock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// buildProductWhere arma el WHERE dinámico de los listados a partir del filtro.
func buildProductWhere(filter repository.ProductFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.SupplierID != nil {
		args = append(args, *filter.SupplierID)
		conds = append(conds, fmt.Sprintf("supplier_id = $%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conds = append(conds, fmt.Sprintf("active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR barcode ILIKE $%d)", len(args), len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List lista productos con filtros y paginación, ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	where, args := buildProductWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM products%s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count cuenta los productos que cumplen el filtro.
func (r *ProductRepo) Count(ctx context.Context, filter repository.ProductFilter) (int, error) {
	where, args := buildProductWhere(filter)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// ListActiveWithRefs devuelve todos los productos activos con nombres de
// categoría y proveedor, para los reportes.
func (r *ProductRepo) ListActiveWithRefs(ctx context.Context) ([]*repository.ProductWithRefs, error) {
	query := `
		SELECT p.id, p.name, p.barcode, p.description, p.unit, p.current_stock, p.minimum_stock,
			p.cost_price, p.sale_price, p.category_id, p.supplier_id, p.active, p.created_at, p.updated_at,
			c.name, s.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.active = true
		ORDER BY p.name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductWithRefs
	for rows.Next() {
		var p repository.ProductWithRefs
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Barcode, &p.Description, &p.Unit, &p.CurrentStock, &p.MinimumStock,
			&p.CostPrice, &p.SalePrice, &p.CategoryID, &p.SupplierID, &p.Active, &p.CreatedAt, &p.UpdatedAt,
			&p.CategoryName, &p.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("scan product with refs: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete desactiva el producto (soft delete): los movimientos históricos lo referencian.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
