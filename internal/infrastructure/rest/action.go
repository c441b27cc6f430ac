package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// ActionAPI endpoints del registro de auditoría. Solo lectura.
type ActionAPI struct {
	c *Client
}

// NewActionAPI construye el acceso a /api/actions.
func NewActionAPI(c *Client) *ActionAPI { return &ActionAPI{c: c} }

// List obtiene todo el registro de auditoría (solo admin).
func (a *ActionAPI) List(ctx context.Context) ([]entity.Action, error) {
	var out []entity.Action
	if err := a.c.get(ctx, "/api/actions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get obtiene un registro por ID.
func (a *ActionAPI) Get(ctx context.Context, id string) (*entity.Action, error) {
	var out entity.Action
	if err := a.c.get(ctx, "/api/actions/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByUser obtiene los registros de un usuario.
func (a *ActionAPI) ByUser(ctx context.Context, userID string) ([]entity.Action, error) {
	var out []entity.Action
	if err := a.c.get(ctx, "/api/actions/user/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Mine obtiene los registros del usuario de la sesión vigente.
func (a *ActionAPI) Mine(ctx context.Context) ([]entity.Action, error) {
	var out []entity.Action
	if err := a.c.get(ctx, "/api/actions/my-actions", &out); err != nil {
		return nil, err
	}
	return out, nil
}
