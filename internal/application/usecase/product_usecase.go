package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ecommerce-manager/internal/application/dto"
	"github.com/tu-usuario/ecommerce-manager/internal/domain"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/entity"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: CRUD de administrador y listados.
// El stock solo se modifica aquí por SetStock; el descuento por pedido va en
// la transacción de orders.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Nombre requerido, precio y stock no negativos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// ListAll todo el catálogo, incluidos productos agotados (vista admin).
func (uc *ProductUseCase) ListAll() (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// ListAvailable solo productos con stock > 0 (vista cliente).
func (uc *ProductUseCase) ListAvailable() (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListAvailable()
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// Update actualiza nombre, categoría y precio (parcial, sin stock).
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SetStock sobreescribe el nivel de stock (ajuste de administrador).
func (uc *ProductUseCase) SetStock(id, stock int64) (*dto.ProductResponse, error) {
	if stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if err := uc.repo.SetStock(id, stock); err != nil {
		return nil, err
	}
	product.Stock = stock
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
	}
}

func toProductListResponse(list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}
}
