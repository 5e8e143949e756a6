package orders

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ecommerce-manager/internal/domain"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de un pedido confirmado. Con (orderID,
// customerID) vuelve a consultar el join pedido+producto+cliente y lo rinde.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, generator: generator}
}

// DownloadReceiptPDF retorna (pdfBytes, filename, nil) si todo sale bien, o
// domain.ErrNotFound si el pedido no existe o no pertenece al customer.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, orderID, customerID int64) ([]byte, string, error) {
	detail, err := uc.orderRepo.GetDetail(orderID, customerID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener pedido: %w", err)
	}
	if detail == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, detail)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}

	filename := fmt.Sprintf("Order_%d_%d.pdf", orderID, customerID)
	return pdfBytes, filename, nil
}
