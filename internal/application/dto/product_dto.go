package dto

// CreateProductRequest entrada para POST /api/product.
type CreateProductRequest struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProductRequest entrada para PUT /api/product/{id}. Campos nil = sin cambio.
type UpdateProductRequest struct {
	SKU         *string `json:"sku,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
