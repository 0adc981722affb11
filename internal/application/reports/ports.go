package reports

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
)

// LowStockPDFGenerator genera la versión PDF descargable del reporte de stock bajo.
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, report *dto.LowStockReportDTO) ([]byte, error)
}
