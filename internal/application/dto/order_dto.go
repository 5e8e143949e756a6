package dto

import (
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest entrada para colocar un pedido. La cantidad llega de un
// caller no confiable: puede venir cero, negativa o mayor al stock.
type PlaceOrderRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int64 `json:"quantity" validate:"required"`
}

// OrderResult resultado de un pedido confirmado; insumo del recibo.
type OrderResult struct {
	OrderID     int64           `json:"order_id"`
	CustomerID  int64           `json:"customer_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	OrderDate   string          `json:"order_date"` // YYYY-MM-DD
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// OrderHistoryItem una línea del historial de pedidos.
type OrderHistoryItem struct {
	OrderID      int64           `json:"order_id"`
	OrderDate    string          `json:"order_date"`
	CustomerName string          `json:"customer_name,omitempty"`
	ProductName  string          `json:"product_name"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Total        decimal.Decimal `json:"total"`
}

// OrderListResponse lista de pedidos.
type OrderListResponse struct {
	Items []OrderHistoryItem `json:"items"`
}
