package dto

// RegisterRequest entrada de registro. El rol siempre queda en customer;
// los administradores se crean por fuera (seed).
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=1,max=50"`
	Password        string `json:"password" validate:"required,min=1"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin credenciales).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
