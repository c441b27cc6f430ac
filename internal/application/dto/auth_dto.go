package dto

import "github.com/jhoicas/Almacen-cli/internal/domain/entity"

// LoginRequest entrada para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida del login: token JWT + usuario.
type LoginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// RegisterUserRequest entrada para POST /api/auth/register (solo admin/manager).
type RegisterUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// ChangePasswordRequest entrada para POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateUserRequest entrada para PUT /api/auth/users/{id} y actualización de perfil.
// Campos nil = sin cambio.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Role      *string `json:"role,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}
