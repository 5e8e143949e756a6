package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ecommerce-manager/internal/application/dto"
	"github.com/tu-usuario/ecommerce-manager/internal/application/reports"
)

// ReportHandler maneja los reportes de ventas e inventario (solo admin).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesSummary godoc
// @Summary      Total vendido e ingreso por producto
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	out, err := h.uc.SalesSummary()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesTrend godoc
// @Summary      Órdenes por día
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.SalesTrendResponse
// @Router       /api/reports/sales-trend [get]
func (h *ReportHandler) SalesTrend(c *fiber.Ctx) error {
	out, err := h.uc.SalesTrend()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}

// InventoryLevels godoc
// @Summary      Stock actual de cada producto
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.InventoryLevelsResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) InventoryLevels(c *fiber.Ctx) error {
	out, err := h.uc.InventoryLevels()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}
