package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// OrderAPI endpoints de órdenes.
type OrderAPI struct {
	c *Client
}

// NewOrderAPI construye el acceso a /api/order.
func NewOrderAPI(c *Client) *OrderAPI { return &OrderAPI{c: c} }

// List lista todas las órdenes.
func (o *OrderAPI) List(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := o.c.get(ctx, "/api/order", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByNumber busca órdenes por número.
func (o *OrderAPI) SearchByNumber(ctx context.Context, number string) ([]entity.Order, error) {
	var out []entity.Order
	q := url.Values{"number": {number}}
	if err := o.c.get(ctx, "/api/order/search?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get obtiene una orden por ID.
func (o *OrderAPI) Get(ctx context.Context, id string) (*entity.Order, error) {
	var out entity.Order
	if err := o.c.get(ctx, "/api/order/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea una orden.
func (o *OrderAPI) Create(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	var out entity.Order
	if err := o.c.post(ctx, "/api/order", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
