package orders

import (
	"context"

	"github.com/tu-usuario/ecommerce-manager/internal/domain/entity"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del pedido: o se
// registran el pedido y el descuento de stock juntos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptPDFGenerator produce el recibo PDF de un pedido confirmado.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, detail *entity.OrderDetail) ([]byte, error)
}
