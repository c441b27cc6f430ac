package entity

// Product representa un producto del catálogo.
type Product struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Items       []Item `json:"items,omitempty"`
}
