package repository

import "github.com/tu-usuario/ecommerce-manager/internal/domain/entity"

// ReportRepository consultas de solo lectura para reportes de ventas e inventario.
type ReportRepository interface {
	// SalesSummary unidades vendidas e ingresos por producto, más vendido primero.
	SalesSummary() ([]*entity.ProductSales, error)
	// SalesTrend unidades vendidas por día, en orden cronológico.
	SalesTrend() ([]*entity.DailySales, error)
	// InventoryLevels stock actual de cada producto.
	InventoryLevels() ([]*entity.StockLevel, error)
}
