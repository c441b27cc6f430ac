package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// ProductAPI endpoints del catálogo de productos.
type ProductAPI struct {
	c *Client
}

// NewProductAPI construye el acceso a /api/product.
func NewProductAPI(c *Client) *ProductAPI { return &ProductAPI{c: c} }

// List lista todos los productos.
func (p *ProductAPI) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := p.c.get(ctx, "/api/product", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName busca productos por nombre.
func (p *ProductAPI) SearchByName(ctx context.Context, name string) ([]entity.Product, error) {
	var out []entity.Product
	q := url.Values{"name": {name}}
	if err := p.c.get(ctx, "/api/product/search?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchBySKU busca productos por SKU.
func (p *ProductAPI) SearchBySKU(ctx context.Context, sku string) ([]entity.Product, error) {
	var out []entity.Product
	q := url.Values{"sku": {sku}}
	if err := p.c.get(ctx, "/api/product/search/sku?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get obtiene un producto por ID.
func (p *ProductAPI) Get(ctx context.Context, id string) (*entity.Product, error) {
	var out entity.Product
	if err := p.c.get(ctx, "/api/product/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea un producto.
func (p *ProductAPI) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	var out entity.Product
	if err := p.c.post(ctx, "/api/product", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update actualiza un producto.
func (p *ProductAPI) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	var out entity.Product
	if err := p.c.put(ctx, "/api/product/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un producto.
func (p *ProductAPI) Delete(ctx context.Context, id string) error {
	return p.c.del(ctx, "/api/product/"+url.PathEscape(id))
}
