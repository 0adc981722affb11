package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/reports"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/pkg/csvexport"
)

// ReportHandler expone los reportes descargables (JSON, CSV y PDF).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Reporte de stock bajo (JSON, format=csv o format=pdf)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "csv | pdf"
// @Success      200  {object}  dto.LowStockReportDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	switch c.Query("format") {
	case "csv":
		body, err := h.uc.LowStockCSV(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return sendCSV(c, reports.LowStockCSVFilename, body)
	case "pdf":
		body, err := h.uc.LowStockPDF(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reports.LowStockPDFFilename+`"`)
		return c.Send(body)
	}
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Reporte de movimientos por período (JSON o format=csv)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Param        type       query  string  false  "ENTRY | EXIT | ADJUSTMENT"
// @Param        reason     query  string  false  "PURCHASE | SALE | LOSS | RETURN | ADJUSTMENT"
// @Param        format     query  string  false  "csv"
// @Success      200  {object}  dto.MovementReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	var in dto.MovementReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if c.Query("format") == "csv" {
		body, err := h.uc.MovementsCSV(c.Context(), in)
		if err != nil {
			return movementReportError(c, err)
		}
		return sendCSV(c, reports.MovementsCSVFilename, body)
	}
	out, err := h.uc.Movements(c.Context(), in)
	if err != nil {
		return movementReportError(c, err)
	}
	return c.JSON(out)
}

// ProductsByCategory godoc
// @Summary      Productos agrupados por categoría (JSON o format=csv)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "csv"
// @Success      200  {object}  dto.CategoryReportDTO
// @Router       /api/reports/products-by-category [get]
func (h *ReportHandler) ProductsByCategory(c *fiber.Ctx) error {
	if c.Query("format") == "csv" {
		body, err := h.uc.ProductsByCategoryCSV(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return sendCSV(c, reports.ByCategoryCSVName, body)
	}
	out, err := h.uc.ProductsByCategory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func movementReportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas en formato YYYY-MM-DD"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// sendCSV descarga el CSV. Con encoding=latin1 lo re-codifica a ISO-8859-1
// para Excel en es/pt, que abre CSV como Latin-1 por defecto.
func sendCSV(c *fiber.Ctx, filename, body string) error {
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	if c.Query("encoding") == "latin1" {
		out, err := csvexport.ToLatin1(body)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=iso-8859-1")
		return c.Send(out)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.SendString(body)
}
