package entity

import "time"

// Tipos de acción del registro de auditoría.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionView   = "VIEW"
)

// Action es un registro de auditoría: quién hizo qué, sobre qué entidad,
// cuándo, y si tuvo éxito. OldValues/NewValues llegan como strings JSON
// opacos; el cliente no los interpreta.
type Action struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Username     string    `json:"username"`
	UserRole     Role      `json:"userRole"`
	ActionType   string    `json:"actionType"`
	EntityType   string    `json:"entityType"`
	EntityName   string    `json:"entityName"`
	EntityID     string    `json:"entityId"`
	IsSuccessful bool      `json:"isSuccessful"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	OldValues    string    `json:"oldValues,omitempty"`
	NewValues    string    `json:"newValues,omitempty"`
	IPAddress    string    `json:"ipAddress,omitempty"`
	UserAgent    string    `json:"userAgent,omitempty"`
}
