package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// WarehouseAPI endpoints de bodegas y sus secciones anidadas.
type WarehouseAPI struct {
	c *Client
}

// NewWarehouseAPI construye el acceso a /api/warehouse.
func NewWarehouseAPI(c *Client) *WarehouseAPI { return &WarehouseAPI{c: c} }

// List lista todas las bodegas.
func (w *WarehouseAPI) List(ctx context.Context) ([]entity.Warehouse, error) {
	var out []entity.Warehouse
	if err := w.c.get(ctx, "/api/warehouse", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName busca bodegas por nombre.
func (w *WarehouseAPI) SearchByName(ctx context.Context, name string) ([]entity.Warehouse, error) {
	var out []entity.Warehouse
	q := url.Values{"name": {name}}
	if err := w.c.get(ctx, "/api/warehouse/search?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get obtiene una bodega por ID.
func (w *WarehouseAPI) Get(ctx context.Context, id string) (*entity.Warehouse, error) {
	var out entity.Warehouse
	if err := w.c.get(ctx, "/api/warehouse/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea una bodega.
func (w *WarehouseAPI) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*entity.Warehouse, error) {
	var out entity.Warehouse
	if err := w.c.post(ctx, "/api/warehouse", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update actualiza una bodega.
func (w *WarehouseAPI) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*entity.Warehouse, error) {
	var out entity.Warehouse
	if err := w.c.put(ctx, "/api/warehouse/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una bodega.
func (w *WarehouseAPI) Delete(ctx context.Context, id string) error {
	return w.c.del(ctx, "/api/warehouse/"+url.PathEscape(id))
}

// ── Secciones (anidadas bajo bodega) ──────────────────────────────────────────

func sectionBase(warehouseID string) string {
	return "/api/warehouse/" + url.PathEscape(warehouseID) + "/section"
}

// ListSections lista las secciones de una bodega.
func (w *WarehouseAPI) ListSections(ctx context.Context, warehouseID string) ([]entity.Section, error) {
	var out []entity.Section
	if err := w.c.get(ctx, sectionBase(warehouseID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSection obtiene una sección por ID.
func (w *WarehouseAPI) GetSection(ctx context.Context, warehouseID, id string) (*entity.Section, error) {
	var out entity.Section
	if err := w.c.get(ctx, sectionBase(warehouseID)+"/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSection crea una sección en la bodega.
func (w *WarehouseAPI) CreateSection(ctx context.Context, warehouseID string, in dto.CreateSectionRequest) (*entity.Section, error) {
	var out entity.Section
	if err := w.c.post(ctx, sectionBase(warehouseID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSection actualiza una sección.
func (w *WarehouseAPI) UpdateSection(ctx context.Context, warehouseID, id string, in dto.UpdateSectionRequest) (*entity.Section, error) {
	var out entity.Section
	if err := w.c.put(ctx, sectionBase(warehouseID)+"/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSection elimina una sección.
func (w *WarehouseAPI) DeleteSection(ctx context.Context, warehouseID, id string) error {
	return w.c.del(ctx, sectionBase(warehouseID)+"/"+url.PathEscape(id))
}
