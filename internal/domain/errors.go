package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrUserAlreadyExists   = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidQuantity     = errors.New("cantidad inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrForeignKeyViolation = errors.New("violación de llave foránea")
)

// InsufficientStockError indica que la cantidad pedida supera el stock actual.
// Lleva la cantidad disponible para que la capa de presentación la muestre.
type InsufficientStockError struct {
	ProductID int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %d: quedan %d unidades", e.ProductID, e.Available)
}

// Is permite errors.Is(err, ErrInsufficientStock) sobre el error estructurado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
