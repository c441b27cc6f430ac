package dto

// CreateOrderRequest entrada para POST /api/order.
type CreateOrderRequest struct {
	Number  string   `json:"number"`
	ItemIDs []string `json:"itemIds"`
}
