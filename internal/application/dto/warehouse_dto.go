package dto

// CreateWarehouseRequest entrada para POST /api/warehouse.
type CreateWarehouseRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// UpdateWarehouseRequest entrada para PUT /api/warehouse/{id}. Campos nil = sin cambio.
type UpdateWarehouseRequest struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateSectionRequest entrada para POST /api/warehouse/{warehouseId}/section.
type CreateSectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateSectionRequest entrada para PUT /api/warehouse/{warehouseId}/section/{id}.
type UpdateSectionRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
