package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa un pedido registrado. Inmutable una vez creado: no hay
// actualización ni borrado de pedidos.
type Order struct {
	ID         int64 // asignado por la BD (secuencia, estrictamente creciente)
	CustomerID int64
	ProductID  int64
	Quantity   int64
	OrderDate  time.Time
}

// OrderDetail es la proyección pedido + producto + cliente que consumen el
// historial, la vista de administrador y el recibo PDF.
type OrderDetail struct {
	OrderID      int64
	OrderDate    time.Time
	CustomerID   int64
	CustomerName string
	ProductID    int64
	ProductName  string
	Quantity     int64
	UnitPrice    decimal.Decimal
}

// Total cantidad * precio unitario.
func (d *OrderDetail) Total() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(d.Quantity))
}
