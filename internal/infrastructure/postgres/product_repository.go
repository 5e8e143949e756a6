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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna su ID con la secuencia.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (name, category, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING product_id`
	err := r.q.QueryRow(context.Background(), query,
		p.Name, p.Category, p.Price, p.Stock,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Serializa el leer-verificar-descontar del stock frente a pedidos concurrentes.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.get(id, true)
}

func (r *ProductRepo) get(id int64, forUpdate bool) (*entity.Product, error) {
	query := `
		SELECT product_id, name, category, price, stock
		FROM products WHERE product_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListAll lista todo el catálogo (vista admin, incluye productos sin stock).
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	return r.list(`
		SELECT product_id, name, category, price, stock
		FROM products ORDER BY product_id`)
}

// ListAvailable lista solo productos con stock > 0 (vista cliente).
func (r *ProductRepo) ListAvailable() ([]*entity.Product, error) {
	return r.list(`
		SELECT product_id, name, category, price, stock
		FROM products WHERE stock > 0 ORDER BY product_id`)
}

func (r *ProductRepo) list(query string) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre, categoría y precio. El stock se maneja con SetStock
// o con el descuento transaccional del pedido.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, price = $4
		WHERE product_id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.Category, p.Price)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetStock sobreescribe el nivel de stock (ajuste de administrador).
func (r *ProductRepo) SetStock(id, stock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2 WHERE product_id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// DecrementStock resta amount unidades. La guarda stock >= amount en el UPDATE
// re-verifica la condición ya chequeada bajo el lock de GetForUpdate: cero filas
// afectadas después de ese chequeo es un error, nunca un caso de negocio.
func (r *ProductRepo) DecrementStock(id, amount int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2 WHERE product_id = $1 AND stock >= $2`,
		id, amount,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("decrement stock: producto %d sin filas afectadas", id)
	}
	return nil
}

// Delete elimina un producto por ID. Retorna domain.ErrNotFound si no existe
// y domain.ErrForeignKeyViolation si tiene pedidos asociados.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKeyViolation
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
