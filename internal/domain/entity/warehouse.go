package entity

// InventoryCounts son los contadores de inventario que el servidor calcula
// para bodegas y secciones. El invariante Total == suma de los otros seis
// lo garantiza el servidor; el cliente solo lo expone para verificación.
type InventoryCounts struct {
	Total      int `json:"totalItems"`
	Available  int `json:"availableItems"`
	Reserved   int `json:"reservedItems"`
	InTransit  int `json:"inTransitItems"`
	Damaged    int `json:"damagedItems"`
	Expired    int `json:"expiredItems"`
	OutOfStock int `json:"outOfStockItems"`
}

// Consistent verifica localmente el invariante de suma (diagnóstico, no enforcement).
func (c InventoryCounts) Consistent() bool {
	return c.Total == c.Available+c.Reserved+c.InTransit+c.Damaged+c.Expired+c.OutOfStock
}

// Warehouse representa una bodega con sus secciones y contadores.
type Warehouse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections,omitempty"`
	InventoryCounts
}
