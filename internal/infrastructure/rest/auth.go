package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// AuthAPI endpoints de autenticación y gestión de usuarios.
type AuthAPI struct {
	c *Client
}

// NewAuthAPI construye el acceso a /api/auth.
func NewAuthAPI(c *Client) *AuthAPI { return &AuthAPI{c: c} }

// Login autentica con usuario y contraseña. Un 401 aquí significa
// credenciales inválidas y se entrega al caller (no expira la sesión).
func (a *AuthAPI) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := a.c.post(ctx, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me obtiene el usuario de la sesión vigente.
func (a *AuthAPI) Me(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := a.c.get(ctx, "/api/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register crea un usuario nuevo (solo admin/manager; lo autoriza el servidor).
func (a *AuthAPI) Register(ctx context.Context, in dto.RegisterUserRequest) (*entity.User, error) {
	var out entity.User
	if err := a.c.post(ctx, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword cambia la contraseña del usuario vigente.
func (a *AuthAPI) ChangePassword(ctx context.Context, in dto.ChangePasswordRequest) error {
	return a.c.post(ctx, "/api/auth/change-password", in, nil)
}

// ListUsers lista todos los usuarios (solo admin).
func (a *AuthAPI) ListUsers(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := a.c.get(ctx, "/api/auth/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUser actualiza un usuario por ID.
func (a *AuthAPI) UpdateUser(ctx context.Context, id string, in dto.UpdateUserRequest) (*entity.User, error) {
	var out entity.User
	if err := a.c.put(ctx, "/api/auth/users/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser elimina un usuario por ID.
func (a *AuthAPI) DeleteUser(ctx context.Context, id string) error {
	return a.c.del(ctx, "/api/auth/users/"+url.PathEscape(id))
}
