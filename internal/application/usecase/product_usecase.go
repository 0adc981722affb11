package usecase

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos del catálogo.
// No toca CurrentStock en updates: el saldo es propiedad del ledger.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create persiste un producto nuevo. CurrentStock inicial viene del request
// (carga inicial de catálogo); después solo cambia vía movimientos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	product := &entity.Product{
		Name:         in.Name,
		Barcode:      in.Barcode,
		Description:  in.Description,
		Unit:         in.Unit,
		CurrentStock: in.CurrentStock,
		MinimumStock: in.MinimumStock,
		CostPrice:    in.CostPrice,
		SalePrice:    in.SalePrice,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		Active:       active,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update reemplaza los datos del producto salvo el saldo de stock.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Barcode = in.Barcode
	product.Description = in.Description
	product.Unit = in.Unit
	product.MinimumStock = in.MinimumStock
	product.CostPrice = in.CostPrice
	product.SalePrice = in.SalePrice
	product.CategoryID = in.CategoryID
	product.SupplierID = in.SupplierID
	if in.Active != nil {
		product.Active = *in.Active
	}
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve productos filtrados y paginados.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	filter := repository.ProductFilter{
		CategoryID: in.CategoryID,
		SupplierID: in.SupplierID,
		Active:     in.Active,
		Search:     in.Search,
	}
	total, err := uc.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx, filter, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Data:       out,
		Pagination: dto.NewPagination(in.Page, in.Limit, total),
	}, nil
}

// Delete elimina un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Barcode:      p.Barcode,
		Description:  p.Description,
		Unit:         p.Unit,
		CurrentStock: p.CurrentStock,
		MinimumStock: p.MinimumStock,
		CostPrice:    p.CostPrice,
		SalePrice:    p.SalePrice,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
