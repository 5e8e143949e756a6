package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// Stock nunca puede quedar negativo: solo lo modifican el descuento dentro de la
// transacción de pedido y las ediciones de administrador.
type Product struct {
	ID       int64
	Name     string
	Category string
	Price    decimal.Decimal // precio de venta unitario
	Stock    int64           // unidades disponibles
}

// Available indica si el producto tiene unidades para la vista de cliente.
func (p *Product) Available() bool {
	return p.Stock > 0
}
