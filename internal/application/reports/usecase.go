// Package reports construye los reportes operativos (stock bajo, movimientos
// por período, productos por categoría) y sus exportaciones CSV/PDF.
package reports

import (
	"context"
	"regexp"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/csvexport"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ReportUseCase consultas read-only que alimentan los reportes descargables.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movRepo      repository.StockMovementRepository
	pdfGen       LowStockPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movRepo repository.StockMovementRepository,
	pdfGen LowStockPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		movRepo:      movRepo,
		pdfGen:       pdfGen,
	}
}

// LowStock devuelve los productos activos con currentStock <= minimumStock.
func (uc *ReportUseCase) LowStock(ctx context.Context) (*dto.LowStockReportDTO, error) {
	products, err := uc.productRepo.ListActiveWithRefs(ctx)
	if err != nil {
		return nil, err
	}
	report := &dto.LowStockReportDTO{Data: []dto.LowStockItemDTO{}}
	for _, p := range products {
		if !p.LowStock() {
			continue
		}
		report.Data = append(report.Data, dto.LowStockItemDTO{
			ProductID:    p.ID,
			ProductName:  p.Name,
			CurrentStock: p.CurrentStock,
			MinimumStock: p.MinimumStock,
			Unit:         p.Unit,
			Difference:   p.MinimumStock - p.CurrentStock,
			Category:     dto.RefDTO{ID: p.CategoryID, Name: p.CategoryName},
			Supplier:     dto.RefDTO{ID: p.SupplierID, Name: p.SupplierName},
			CostPrice:    p.CostPrice,
			SalePrice:    p.SalePrice,
		})
	}
	report.Total = len(report.Data)
	return report, nil
}

// LowStockCSV serializa el reporte de stock bajo como CSV (columnas aplanadas).
func (uc *ReportUseCase) LowStockCSV(ctx context.Context) (string, error) {
	report, err := uc.LowStock(ctx)
	if err != nil {
		return "", err
	}
	headers := []string{
		"productId", "productName", "currentStock", "minimumStock", "unit", "difference",
		"category_id", "category_name", "supplier_id", "supplier_name", "costPrice", "salePrice",
	}
	rows := make([]csvexport.Row, 0, len(report.Data))
	for _, item := range report.Data {
		rows = append(rows, csvexport.Flatten(map[string]any{
			"productId":    item.ProductID,
			"productName":  item.ProductName,
			"currentStock": item.CurrentStock,
			"minimumStock": item.MinimumStock,
			"unit":         item.Unit,
			"difference":   item.Difference,
			"category":     map[string]any{"id": item.Category.ID, "name": item.Category.Name},
			"supplier":     map[string]any{"id": item.Supplier.ID, "name": item.Supplier.Name},
			"costPrice":    item.CostPrice,
			"salePrice":    item.SalePrice,
		}, ""))
	}
	return csvexport.Marshal(headers, rows), nil
}

// LowStockPDF genera la versión PDF del reporte de stock bajo.
func (uc *ReportUseCase) LowStockPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateLowStockPDF(ctx, report)
}

// Movements devuelve el reporte de movimientos por período con resumen por
// tipo/motivo y cantidad neta (ENTRY suma, EXIT resta).
// Fechas en formato YYYY-MM-DD; inválidas devuelven domain.ErrInvalidInput.
func (uc *ReportUseCase) Movements(ctx context.Context, in dto.MovementReportRequest) (*dto.MovementReportDTO, error) {
	filter := repository.MovementFilter{Type: in.Type, Reason: in.Reason}
	if in.StartDate != "" {
		if !dateRe.MatchString(in.StartDate) {
			return nil, domain.ErrInvalidInput
		}
		start, err := time.ParseInLocation("2006-01-02", in.StartDate, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &start
	}
	if in.EndDate != "" {
		if !dateRe.MatchString(in.EndDate) {
			return nil, domain.ErrInvalidInput
		}
		end, err := time.ParseInLocation("2006-01-02", in.EndDate, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		end = end.Add(24*time.Hour - time.Millisecond) // fin del día
		filter.To = &end
	}

	movements, err := uc.movRepo.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &dto.MovementReportDTO{
		Summary: dto.MovementReportSummaryDTO{
			TotalMovements: len(movements),
			ByType:         map[string]int{},
			ByReason:       map[string]int{},
		},
		Data: make([]dto.MovementResponse, 0, len(movements)),
	}
	report.Period.StartDate = in.StartDate
	report.Period.EndDate = in.EndDate

	for _, m := range movements {
		report.Summary.ByType[m.Type]++
		report.Summary.ByReason[m.Reason]++
		switch m.Type {
		case entity.MovementTypeENTRY:
			report.Summary.NetQuantity += m.Quantity
		case entity.MovementTypeEXIT:
			report.Summary.NetQuantity -= m.Quantity
		}
		report.Data = append(report.Data, inventory.ToMovementResponse(m))
	}
	return report, nil
}

// MovementsCSV serializa el reporte de movimientos como CSV plano.
func (uc *ReportUseCase) MovementsCSV(ctx context.Context, in dto.MovementReportRequest) (string, error) {
	report, err := uc.Movements(ctx, in)
	if err != nil {
		return "", err
	}
	headers := []string{
		"id", "productId", "productName", "productUnit", "userId", "userName",
		"type", "reason", "quantity", "previousStock", "currentStock", "notes", "createdAt",
	}
	rows := make([]csvexport.Row, 0, len(report.Data))
	for _, m := range report.Data {
		rows = append(rows, csvexport.Row{
			"id":            m.ID,
			"productId":     m.ProductID,
			"productName":   m.ProductName,
			"productUnit":   m.ProductUnit,
			"userId":        m.UserID,
			"userName":      m.UserName,
			"type":          m.Type,
			"reason":        m.Reason,
			"quantity":      m.Quantity,
			"previousStock": m.PreviousStock,
			"currentStock":  m.CurrentStock,
			"notes":         m.Notes,
			"createdAt":     m.CreatedAt.Format(time.RFC3339),
		})
	}
	return csvexport.Marshal(headers, rows), nil
}

// ProductsByCategory agrupa los productos activos por categoría con valor de
// stock (currentStock * costPrice) y conteo de stock bajo por grupo.
func (uc *ReportUseCase) ProductsByCategory(ctx context.Context) (*dto.CategoryReportDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListActiveWithRefs(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]*repository.ProductWithRefs)
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}

	report := &dto.CategoryReportDTO{Data: make([]dto.CategoryReportItemDTO, 0, len(categories))}
	for _, c := range categories {
		group := byCategory[c.ID]
		item := dto.CategoryReportItemDTO{
			CategoryID:      c.ID,
			CategoryName:    c.Name,
			TotalProducts:   len(group),
			TotalStockValue: decimal.Zero,
			Products:        make([]dto.CategoryProductDTO, 0, len(group)),
		}
		for _, p := range group {
			item.TotalStockValue = item.TotalStockValue.Add(
				p.CostPrice.Mul(decimal.NewFromInt(int64(p.CurrentStock))))
			if p.LowStock() {
				item.LowStockProducts++
			}
			item.Products = append(item.Products, dto.CategoryProductDTO{
				ID:           p.ID,
				Name:         p.Name,
				CurrentStock: p.CurrentStock,
				MinimumStock: p.MinimumStock,
				Unit:         p.Unit,
				CostPrice:    p.CostPrice,
				SalePrice:    p.SalePrice,
				Supplier:     dto.RefDTO{ID: p.SupplierID, Name: p.SupplierName},
			})
		}
		report.Data = append(report.Data, item)
	}
	sort.SliceStable(report.Data, func(i, j int) bool {
		return report.Data[i].CategoryID < report.Data[j].CategoryID
	})
	report.TotalCategories = len(report.Data)
	return report, nil
}

// ProductsByCategoryCSV serializa el reporte por categoría como una fila por producto.
func (uc *ReportUseCase) ProductsByCategoryCSV(ctx context.Context) (string, error) {
	report, err := uc.ProductsByCategory(ctx)
	if err != nil {
		return "", err
	}
	headers := []string{
		"categoryId", "categoryName", "productId", "productName",
		"currentStock", "minimumStock", "unit", "costPrice", "salePrice",
		"supplierId", "supplierName",
	}
	var rows []csvexport.Row
	for _, cat := range report.Data {
		for _, p := range cat.Products {
			rows = append(rows, csvexport.Row{
				"categoryId":   cat.CategoryID,
				"categoryName": cat.CategoryName,
				"productId":    p.ID,
				"productName":  p.Name,
				"currentStock": p.CurrentStock,
				"minimumStock": p.MinimumStock,
				"unit":         p.Unit,
				"costPrice":    p.CostPrice,
				"salePrice":    p.SalePrice,
				"supplierId":   p.Supplier.ID,
				"supplierName": p.Supplier.Name,
			})
		}
	}
	return csvexport.Marshal(headers, rows), nil
}

// filename helpers usados por los handlers de descarga.
const (
	LowStockCSVFilename  = "low-stock-products.csv"
	LowStockPDFFilename  = "low-stock-products.pdf"
	MovementsCSVFilename = "movements-report.csv"
	ByCategoryCSVName    = "products-by-category.csv"
)
