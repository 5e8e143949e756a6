package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ecommerce-manager/internal/domain"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/entity"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del libro de pedidos sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta el pedido y asigna o.ID con la secuencia de la BD.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (customer_id, product_id, quantity, order_date)
		VALUES ($1, $2, $3, $4)
		RETURNING order_id`
	err := r.q.QueryRow(context.Background(), query,
		o.CustomerID, o.ProductID, o.Quantity, o.OrderDate,
	).Scan(&o.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKeyViolation
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

const orderDetailSelect = `
	SELECT o.order_id, o.order_date, o.customer_id, u.username,
	       o.product_id, p.name, o.quantity, p.price
	FROM orders o
	JOIN products p ON p.product_id = o.product_id
	JOIN users u ON u.user_id = o.customer_id`

// GetDetail obtiene el pedido con producto y cliente, solo si pertenece al customer.
func (r *OrderRepo) GetDetail(orderID, customerID int64) (*entity.OrderDetail, error) {
	query := orderDetailSelect + `
	WHERE o.order_id = $1 AND o.customer_id = $2`
	var d entity.OrderDetail
	err := r.q.QueryRow(context.Background(), query, orderID, customerID).Scan(
		&d.OrderID, &d.OrderDate, &d.CustomerID, &d.CustomerName,
		&d.ProductID, &d.ProductName, &d.Quantity, &d.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order detail: %w", err)
	}
	return &d, nil
}

// ListByCustomer historial de pedidos de un cliente, más reciente primero.
func (r *OrderRepo) ListByCustomer(customerID int64) ([]*entity.OrderDetail, error) {
	query := orderDetailSelect + `
	WHERE o.customer_id = $1
	ORDER BY o.order_date DESC, o.order_id DESC`
	return r.listDetails(query, customerID)
}

// ListAll todos los pedidos con cliente y producto (vista admin).
func (r *OrderRepo) ListAll() ([]*entity.OrderDetail, error) {
	query := orderDetailSelect + `
	ORDER BY o.order_date DESC, o.order_id DESC`
	return r.listDetails(query)
}

func (r *OrderRepo) listDetails(query string, args ...any) ([]*entity.OrderDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderDetail
	for rows.Next() {
		var d entity.OrderDetail
		if err := rows.Scan(&d.OrderID, &d.OrderDate, &d.CustomerID, &d.CustomerName,
			&d.ProductID, &d.ProductName, &d.Quantity, &d.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
