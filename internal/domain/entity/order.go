package entity

import "time"

// Order representa una orden registrada en el servidor.
type Order struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Items     []Item    `json:"items,omitempty"`
}
