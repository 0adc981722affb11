package reports_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/reports"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de solo lectura para los reportes
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	repository.ProductRepository
	withRefs []*repository.ProductWithRefs
}

func (s *stubProductRepo) ListActiveWithRefs(context.Context) ([]*repository.ProductWithRefs, error) {
	return s.withRefs, nil
}

type stubCategoryRepo struct {
	repository.CategoryRepository
	categories []*entity.Category
}

func (s *stubCategoryRepo) List(context.Context) ([]*entity.Category, error) {
	return s.categories, nil
}

type stubMovementRepo struct {
	repository.StockMovementRepository
	filtered   []*repository.MovementWithRefs
	lastFilter repository.MovementFilter
}

func (s *stubMovementRepo) ListFiltered(_ context.Context, f repository.MovementFilter) ([]*repository.MovementWithRefs, error) {
	s.lastFilter = f
	return s.filtered, nil
}

func productWithRefs(id int64, name string, stock, minimum int, categoryID int64, categoryName string) *repository.ProductWithRefs {
	return &repository.ProductWithRefs{
		Product: entity.Product{
			ID: id, Name: name, Unit: entity.UnitUN,
			CurrentStock: stock, MinimumStock: minimum,
			CostPrice: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(15),
			CategoryID: categoryID, SupplierID: 1, Active: true,
		},
		CategoryName: categoryName,
		SupplierName: "Proveedor Sul",
	}
}

func newReportUseCase(products []*repository.ProductWithRefs, categories []*entity.Category, movs []*repository.MovementWithRefs) (*reports.ReportUseCase, *stubMovementRepo) {
	movRepo := &stubMovementRepo{filtered: movs}
	uc := reports.NewReportUseCase(
		&stubProductRepo{withRefs: products},
		&stubCategoryRepo{categories: categories},
		movRepo,
		nil, // el PDF no se ejercita aquí
	)
	return uc, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_FiltraSoloProductosBajoMinimo(t *testing.T) {
	uc, _ := newReportUseCase([]*repository.ProductWithRefs{
		productWithRefs(1, "Arroz", 2, 5, 1, "Granos"),   // bajo
		productWithRefs(2, "Frijol", 5, 5, 1, "Granos"),  // frontera: igual al mínimo
		productWithRefs(3, "Azúcar", 20, 5, 1, "Granos"), // ok
	}, nil, nil)

	report, err := uc.LowStock(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, report.Total)
	assert.Equal(t, int64(1), report.Data[0].ProductID)
	assert.Equal(t, 3, report.Data[0].Difference, "difference = mínimo - stock actual")
	assert.Equal(t, int64(2), report.Data[1].ProductID,
		"stock igual al mínimo cuenta como stock bajo")
	assert.Equal(t, 0, report.Data[1].Difference)
}

func TestLowStockCSV_AplanaCategoriaYProveedor(t *testing.T) {
	uc, _ := newReportUseCase([]*repository.ProductWithRefs{
		productWithRefs(1, "Arroz", 2, 5, 1, "Granos"),
	}, nil, nil)

	csv, err := uc.LowStockCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "category_name")
	assert.Contains(t, lines[0], "supplier_name")
	assert.Contains(t, lines[1], "Granos")
	assert.Contains(t, lines[1], "Proveedor Sul")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de movimientos por período
// ──────────────────────────────────────────────────────────────────────────────

func movRef(typ, reason string, qty int) *repository.MovementWithRefs {
	return &repository.MovementWithRefs{
		StockMovement: entity.StockMovement{
			ID: 1, ProductID: 1, UserID: 1, Type: typ, Reason: reason,
			Quantity: qty, CreatedAt: time.Now(),
		},
		ProductName: "Arroz", ProductUnit: entity.UnitUN, UserName: "Ana",
	}
}

func TestMovements_ResumenPorTipoMotivoYNeto(t *testing.T) {
	uc, _ := newReportUseCase(nil, nil, []*repository.MovementWithRefs{
		movRef(entity.MovementTypeENTRY, entity.MovementReasonPURCHASE, 10),
		movRef(entity.MovementTypeEXIT, entity.MovementReasonSALE, 4),
		movRef(entity.MovementTypeEXIT, entity.MovementReasonLOSS, 2),
		movRef(entity.MovementTypeADJUSTMENT, entity.MovementReasonADJUSTMENT, 7),
	})

	report, err := uc.Movements(context.Background(), dto.MovementReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, 4, report.Summary.TotalMovements)
	assert.Equal(t, 1, report.Summary.ByType[entity.MovementTypeENTRY])
	assert.Equal(t, 2, report.Summary.ByType[entity.MovementTypeEXIT])
	assert.Equal(t, 2, report.Summary.ByReason[entity.MovementReasonSALE]+report.Summary.ByReason[entity.MovementReasonLOSS])
	assert.Equal(t, 4, report.Summary.NetQuantity,
		"neto = entradas - salidas; ADJUSTMENT no desplaza el neto")
}

func TestMovements_RangoDeFechas_CubreElDiaCompleto(t *testing.T) {
	uc, movRepo := newReportUseCase(nil, nil, nil)

	_, err := uc.Movements(context.Background(), dto.MovementReportRequest{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-01",
	})
	require.NoError(t, err)

	require.NotNil(t, movRepo.lastFilter.From)
	require.NotNil(t, movRepo.lastFilter.To)
	assert.True(t, movRepo.lastFilter.To.After(*movRepo.lastFilter.From),
		"endDate debe extenderse hasta el final del día")
	assert.Equal(t, 23, movRepo.lastFilter.To.Hour())
}

func TestMovements_FechaInvalida_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := newReportUseCase(nil, nil, nil)

	for _, bad := range []string{"01-08-2026", "2026/08/01", "2026-13-40", "ayer"} {
		_, err := uc.Movements(context.Background(), dto.MovementReportRequest{StartDate: bad})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha %q debe rechazarse", bad)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos por categoría
// ──────────────────────────────────────────────────────────────────────────────

func TestProductsByCategory_AgrupaYAcumulaValor(t *testing.T) {
	categories := []*entity.Category{
		{ID: 1, Name: "Granos"},
		{ID: 2, Name: "Bebidas"},
	}
	uc, _ := newReportUseCase([]*repository.ProductWithRefs{
		productWithRefs(1, "Arroz", 2, 5, 1, "Granos"),
		productWithRefs(2, "Frijol", 8, 5, 1, "Granos"),
	}, categories, nil)

	report, err := uc.ProductsByCategory(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, report.TotalCategories)
	granos := report.Data[0]
	assert.Equal(t, "Granos", granos.CategoryName)
	assert.Equal(t, 2, granos.TotalProducts)
	assert.Equal(t, 1, granos.LowStockProducts)
	// (2 + 8) unidades * costo 10
	assert.True(t, granos.TotalStockValue.Equal(decimal.NewFromInt(100)),
		"valor de stock = suma de currentStock * costPrice")

	bebidas := report.Data[1]
	assert.Equal(t, 0, bebidas.TotalProducts, "categoría sin productos aparece vacía")
	assert.True(t, bebidas.TotalStockValue.IsZero())
}
