package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSales resume las ventas acumuladas de un producto.
type ProductSales struct {
	ProductID    int64
	ProductName  string
	TotalSold    int64
	TotalRevenue decimal.Decimal
}

// DailySales total de unidades vendidas en un día.
type DailySales struct {
	Date      time.Time
	TotalSold int64
}

// StockLevel nivel de inventario de un producto.
type StockLevel struct {
	ProductID   int64
	ProductName string
	Stock       int64
}
