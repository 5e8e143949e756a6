package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=255"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock:
// el stock se cambia con SetStockRequest o con los pedidos).
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
}

// SetStockRequest ajuste de stock de administrador.
type SetStockRequest struct {
	Stock int64 `json:"stock" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
