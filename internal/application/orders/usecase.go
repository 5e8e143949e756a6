package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ecommerce-manager/internal/application/dto"
	"github.com/tu-usuario/ecommerce-manager/internal/domain"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/entity"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/repository"
)

// OrderUseCase coloca pedidos de forma transaccional y expone las consultas
// del libro de pedidos (historial de cliente y listado de administrador).
type OrderUseCase struct {
	txRunner  TxRunner
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository // atado al pool, solo lecturas
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, userRepo repository.UserRepository, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, userRepo: userRepo, orderRepo: orderRepo}
}

// PlaceOrder valida la entrada, y dentro de una sola transacción bloquea la
// fila del producto, verifica el stock, inserta el pedido y descuenta las
// unidades. Si cualquier paso falla la transacción se revierte completa: no
// queda ni el pedido ni el cambio de stock.
//
// Errores: domain.ErrInvalidQuantity (cantidad <= 0, se rechaza antes de abrir
// la transacción), domain.ErrUserNotFound / domain.ErrForbidden (customer
// inválido), domain.ErrNotFound (producto inexistente) y
// *domain.InsufficientStockError con la cantidad disponible.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, customerID, productID, quantity int64) (*dto.OrderResult, error) {
	// Validación barata de precondición, fuera de la unidad atómica.
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	customer, err := uc.userRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUserNotFound
	}
	if !customer.IsCustomer() {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	var result *dto.OrderResult

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: la lectura queda consistente con el
		// UPDATE del paso final frente a pedidos concurrentes.
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if quantity > product.Stock {
			return &domain.InsufficientStockError{ProductID: productID, Available: product.Stock}
		}

		order := &entity.Order{
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   quantity,
			OrderDate:  now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		if err := productRepo.DecrementStock(productID, quantity); err != nil {
			return err
		}

		result = &dto.OrderResult{
			OrderID:     order.ID,
			CustomerID:  customerID,
			ProductID:   productID,
			ProductName: product.Name,
			Quantity:    quantity,
			OrderDate:   now.Format("2006-01-02"),
			UnitPrice:   product.Price,
			Total:       product.Price.Mul(decimal.NewFromInt(quantity)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// History historial de pedidos del cliente, más reciente primero.
func (uc *OrderUseCase) History(ctx context.Context, customerID int64) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(list, false), nil
}

// ListAll todos los pedidos con cliente y producto (vista admin).
func (uc *OrderUseCase) ListAll(ctx context.Context) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(list, true), nil
}

func toOrderListResponse(list []*entity.OrderDetail, withCustomer bool) *dto.OrderListResponse {
	items := make([]dto.OrderHistoryItem, 0, len(list))
	for _, d := range list {
		item := dto.OrderHistoryItem{
			OrderID:     d.OrderID,
			OrderDate:   d.OrderDate.Format("2006-01-02"),
			ProductName: d.ProductName,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			Total:       d.Total(),
		}
		if withCustomer {
			item.CustomerName = d.CustomerName
		}
		items = append(items, item)
	}
	return &dto.OrderListResponse{Items: items}
}
