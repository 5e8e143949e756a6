package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ecommerce-manager/internal/domain/entity"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación para reportes (solo lectura).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesSummary unidades vendidas e ingresos por producto, más vendido primero.
func (r *ReportRepo) SalesSummary() ([]*entity.ProductSales, error) {
	query := `
		SELECT p.product_id, p.name,
		       COALESCE(SUM(o.quantity), 0) AS total_sold,
		       COALESCE(SUM(o.quantity * p.price), 0) AS total_revenue
		FROM orders o
		JOIN products p ON p.product_id = o.product_id
		GROUP BY p.product_id, p.name
		ORDER BY total_sold DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductSales
	for rows.Next() {
		var s entity.ProductSales
		if err := rows.Scan(&s.ProductID, &s.ProductName, &s.TotalSold, &s.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan sales summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SalesTrend unidades vendidas por día, en orden cronológico.
func (r *ReportRepo) SalesTrend() ([]*entity.DailySales, error) {
	query := `
		SELECT order_date, SUM(quantity) AS total_sold
		FROM orders
		GROUP BY order_date
		ORDER BY order_date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sales trend: %w", err)
	}
	defer rows.Close()
	var list []*entity.DailySales
	for rows.Next() {
		var d entity.DailySales
		if err := rows.Scan(&d.Date, &d.TotalSold); err != nil {
			return nil, fmt.Errorf("scan sales trend: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// InventoryLevels stock actual de cada producto.
func (r *ReportRepo) InventoryLevels() ([]*entity.StockLevel, error) {
	query := `
		SELECT product_id, name, stock
		FROM products
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("inventory levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var l entity.StockLevel
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.Stock); err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
