package dto

import "github.com/shopspring/decimal"

// SalesSummaryItem ventas acumuladas de un producto.
type SalesSummaryItem struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	TotalSold    int64           `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// SalesTrendItem unidades vendidas en un día.
type SalesTrendItem struct {
	Date      string `json:"date"` // YYYY-MM-DD
	TotalSold int64  `json:"total_sold"`
}

// StockLevelItem nivel de inventario de un producto.
type StockLevelItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int64  `json:"stock"`
}

// SalesSummaryResponse reporte de ventas por producto.
type SalesSummaryResponse struct {
	Items []SalesSummaryItem `json:"items"`
}

// SalesTrendResponse ventas por día.
type SalesTrendResponse struct {
	Items []SalesTrendItem `json:"items"`
}

// InventoryLevelsResponse stock por producto.
type InventoryLevelsResponse struct {
	Items []StockLevelItem `json:"items"`
}
