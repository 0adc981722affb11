package inventory_test

import (
	"context"
	"errors"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Fakes en memoria para ejercitar el ledger y el reconciliador sin PostgreSQL.

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateStock(_ context.Context, id int64, newStock int) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = newStock
	return nil
}

func (f *fakeProductRepo) List(context.Context, repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Count(context.Context, repository.ProductFilter) (int, error) {
	return len(f.products), nil
}

func (f *fakeProductRepo) ListActiveWithRefs(context.Context) ([]*repository.ProductWithRefs, error) {
	return nil, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) snapshot() map[int64]entity.Product {
	s := make(map[int64]entity.Product, len(f.products))
	for id, p := range f.products {
		s[id] = *p
	}
	return s
}

func (f *fakeProductRepo) restore(s map[int64]entity.Product) {
	f.products = make(map[int64]*entity.Product, len(s))
	for id := range s {
		p := s[id]
		f.products[id] = &p
	}
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
	nextID    int64
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{nextID: 1}
}

func (f *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	m.ID = f.nextID
	f.nextID++
	m.CreatedAt = time.Now()
	cp := *m
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) GetByID(_ context.Context, id int64) (*repository.MovementWithRefs, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return &repository.MovementWithRefs{StockMovement: *m}, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(context.Context, int, int) ([]*repository.MovementWithRefs, error) {
	return nil, nil
}

func (f *fakeMovementRepo) Count(context.Context) (int, error) {
	return len(f.movements), nil
}

func (f *fakeMovementRepo) ListFiltered(context.Context, repository.MovementFilter) ([]*repository.MovementWithRefs, error) {
	return nil, nil
}

type fakeAlertRepo struct {
	alerts []*entity.Alert
	nextID int64
	// failCreate fuerza un error en Create para simular un almacén caído.
	failCreate bool
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{nextID: 1}
}

func (f *fakeAlertRepo) Create(_ context.Context, a *entity.Alert) error {
	if f.failCreate {
		return errors.New("almacén de alertas no disponible")
	}
	a.ID = f.nextID
	f.nextID++
	a.CreatedAt = time.Now()
	cp := *a
	f.alerts = append(f.alerts, &cp)
	return nil
}

func (f *fakeAlertRepo) FindUnreadLowStock(_ context.Context, productID int64) (*entity.Alert, error) {
	for i := len(f.alerts) - 1; i >= 0; i-- {
		a := f.alerts[i]
		if a.ProductID == productID && a.Type == entity.AlertTypeLowStock && !a.Read {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAlertRepo) MarkAllUnreadLowStockRead(_ context.Context, productID int64) (int64, error) {
	var n int64
	for _, a := range f.alerts {
		if a.ProductID == productID && a.Type == entity.AlertTypeLowStock && !a.Read {
			a.Read = true
			n++
		}
	}
	return n, nil
}

func (f *fakeAlertRepo) List(context.Context, repository.AlertFilter) ([]*repository.AlertWithProduct, error) {
	return nil, nil
}

func (f *fakeAlertRepo) MarkRead(_ context.Context, id int64) error {
	for _, a := range f.alerts {
		if a.ID == id {
			a.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeAlertRepo) MarkAllRead(context.Context) (int64, error) {
	var n int64
	for _, a := range f.alerts {
		if !a.Read {
			a.Read = true
			n++
		}
	}
	return n, nil
}

func (f *fakeAlertRepo) unread(productID int64) []*entity.Alert {
	var out []*entity.Alert
	for _, a := range f.alerts {
		if a.ProductID == productID && !a.Read {
			out = append(out, a)
		}
	}
	return out
}

// fakeTxRunner ejecuta el callback con los fakes y simula el rollback:
// si fn devuelve error, restaura el estado previo de productos y movimientos.
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	productSnap := r.productRepo.snapshot()
	movCount := len(r.movRepo.movements)

	if err := fn(r.movRepo, r.productRepo); err != nil {
		r.productRepo.restore(productSnap)
		r.movRepo.movements = r.movRepo.movements[:movCount]
		return err
	}
	return nil
}
