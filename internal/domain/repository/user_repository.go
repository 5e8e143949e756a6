package repository

import "github.com/tu-usuario/ecommerce-manager/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y asigna u.ID. Retorna
	// domain.ErrUserAlreadyExists si el username ya está tomado.
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
