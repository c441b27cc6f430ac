package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// ItemAPI endpoints de ítems serializados.
type ItemAPI struct {
	c *Client
}

// NewItemAPI construye el acceso a /api/item.
func NewItemAPI(c *Client) *ItemAPI { return &ItemAPI{c: c} }

// Create registra un ítem.
func (i *ItemAPI) Create(ctx context.Context, in dto.CreateItemRequest) (*entity.Item, error) {
	var out entity.Item
	if err := i.c.post(ctx, "/api/item", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckIn asocia un ítem físico a producto + bodega + sección.
func (i *ItemAPI) CheckIn(ctx context.Context, in dto.CheckInItemRequest) (*entity.Item, error) {
	var out entity.Item
	if err := i.c.post(ctx, "/api/item/checkin", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchBySerial busca ítems por número de serie.
func (i *ItemAPI) SearchBySerial(ctx context.Context, serialNumber string) ([]entity.Item, error) {
	var out []entity.Item
	q := url.Values{"serialNumber": {serialNumber}}
	if err := i.c.get(ctx, "/api/item/search?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update actualiza un ítem.
func (i *ItemAPI) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*entity.Item, error) {
	var out entity.Item
	if err := i.c.put(ctx, "/api/item/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un ítem.
func (i *ItemAPI) Delete(ctx context.Context, id string) error {
	return i.c.del(ctx, "/api/item/"+url.PathEscape(id))
}
