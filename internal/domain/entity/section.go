package entity

// Section es una subdivisión de una bodega; pertenece exactamente a una Warehouse.
type Section struct {
	ID          string `json:"id"`
	WarehouseID string `json:"warehouseId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Items       []Item `json:"items,omitempty"`
	InventoryCounts
}
