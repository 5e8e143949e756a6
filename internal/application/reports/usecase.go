package reports

import (
	"github.com/tu-usuario/ecommerce-manager/internal/application/dto"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/repository"
)

// ReportUseCase reportes de ventas e inventario para el administrador.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// SalesSummary unidades vendidas e ingresos acumulados por producto.
func (uc *ReportUseCase) SalesSummary() (*dto.SalesSummaryResponse, error) {
	list, err := uc.repo.SalesSummary()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesSummaryItem, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SalesSummaryItem{
			ProductID:    s.ProductID,
			ProductName:  s.ProductName,
			TotalSold:    s.TotalSold,
			TotalRevenue: s.TotalRevenue,
		})
	}
	return &dto.SalesSummaryResponse{Items: items}, nil
}

// SalesTrend unidades vendidas por día.
func (uc *ReportUseCase) SalesTrend() (*dto.SalesTrendResponse, error) {
	list, err := uc.repo.SalesTrend()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesTrendItem, 0, len(list))
	for _, d := range list {
		items = append(items, dto.SalesTrendItem{
			Date:      d.Date.Format("2006-01-02"),
			TotalSold: d.TotalSold,
		})
	}
	return &dto.SalesTrendResponse{Items: items}, nil
}

// InventoryLevels stock actual por producto.
func (uc *ReportUseCase) InventoryLevels() (*dto.InventoryLevelsResponse, error) {
	list, err := uc.repo.InventoryLevels()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLevelItem, 0, len(list))
	for _, l := range list {
		items = append(items, dto.StockLevelItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Stock:       l.Stock,
		})
	}
	return &dto.InventoryLevelsResponse{Items: items}, nil
}
