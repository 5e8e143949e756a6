package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca en claro después de persistir
	Role         string // admin o customer
}

// IsCustomer indica si el usuario puede colocar pedidos.
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}
