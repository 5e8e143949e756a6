package repository

import "github.com/tu-usuario/ecommerce-manager/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	// Create persiste el producto y asigna p.ID con la secuencia de la BD.
	Create(p *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Usar solo
	// dentro de una transacción: serializa el leer-verificar-descontar de stock.
	GetForUpdate(id int64) (*entity.Product, error)
	// ListAll lista todo el catálogo (vista admin, incluye stock 0).
	ListAll() ([]*entity.Product, error)
	// ListAvailable lista solo productos con stock > 0 (vista cliente).
	ListAvailable() ([]*entity.Product, error)
	Update(p *entity.Product) error
	// SetStock sobreescribe el nivel de stock (ajuste de administrador).
	SetStock(id, stock int64) error
	// DecrementStock resta amount unidades con guarda stock >= amount en el
	// UPDATE. Debe invocarse únicamente dentro de la misma transacción que
	// registra el pedido, después de GetForUpdate.
	DecrementStock(id, amount int64) error
	Delete(id int64) error
}
