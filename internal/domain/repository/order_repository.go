package repository

import "github.com/tu-usuario/ecommerce-manager/internal/domain/entity"

// OrderRepository define el puerto de persistencia para el libro de pedidos
// (append-only: no hay update ni delete).
type OrderRepository interface {
	// Create inserta el pedido y asigna o.ID (secuencia, estrictamente
	// creciente). Retorna domain.ErrForeignKeyViolation si customer o producto
	// no existen; el caso de uso los valida antes, así que sería error de
	// programación.
	Create(o *entity.Order) error
	// GetDetail obtiene el pedido con producto y cliente, solo si pertenece al
	// customer indicado. (nil, nil) si no existe.
	GetDetail(orderID, customerID int64) (*entity.OrderDetail, error)
	// ListByCustomer historial de pedidos de un cliente, más reciente primero.
	ListByCustomer(customerID int64) ([]*entity.OrderDetail, error)
	// ListAll todos los pedidos con cliente y producto (vista admin).
	ListAll() ([]*entity.OrderDetail, error)
}
