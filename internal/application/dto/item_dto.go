package dto

// CreateItemRequest entrada para POST /api/item.
type CreateItemRequest struct {
	SerialNumber string `json:"serialNumber"`
	ProductID    string `json:"productId"`
	WarehouseID  string `json:"warehouseId"`
	SectionID    string `json:"sectionId"`
}

// CheckInItemRequest entrada para POST /api/item/checkin: asocia un ítem físico
// serializado a un producto y lo ubica en bodega/sección.
type CheckInItemRequest struct {
	SerialNumber string `json:"serialNumber"`
	ProductID    string `json:"productId"`
	WarehouseID  string `json:"warehouseId"`
	SectionID    string `json:"sectionId"`
}

// UpdateItemRequest entrada para PUT /api/item/{id}. Campos nil = sin cambio.
type UpdateItemRequest struct {
	Status      *string `json:"status,omitempty"`
	WarehouseID *string `json:"warehouseId,omitempty"`
	SectionID   *string `json:"sectionId,omitempty"`
}
