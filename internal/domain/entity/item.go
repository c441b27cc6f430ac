package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ItemStatus es el estado de un ítem serializado.
//
// Igual que Role, el servidor lo envía como número (0–4) o como string;
// se normaliza aquí en el borde.
type ItemStatus int

// Estados válidos para Item.
const (
	StatusAvailable ItemStatus = iota
	StatusReserved
	StatusInTransit
	StatusDamaged
	StatusExpired
	StatusUnknown ItemStatus = -1
)

// String devuelve la representación canónica del estado.
func (s ItemStatus) String() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	case StatusInTransit:
		return "InTransit"
	case StatusDamaged:
		return "Damaged"
	case StatusExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// ParseItemStatus normaliza número o string a ItemStatus.
func ParseItemStatus(v interface{}) ItemStatus {
	switch t := v.(type) {
	case ItemStatus:
		return t
	case float64:
		return statusFromInt(int(t))
	case int:
		return statusFromInt(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return statusFromInt(int(n))
		}
		return StatusUnknown
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "available":
			return StatusAvailable
		case "reserved":
			return StatusReserved
		case "intransit", "in transit", "in_transit":
			return StatusInTransit
		case "damaged":
			return StatusDamaged
		case "expired":
			return StatusExpired
		}
		return StatusUnknown
	default:
		return StatusUnknown
	}
}

func statusFromInt(n int) ItemStatus {
	if n < 0 || n > 4 {
		return StatusUnknown
	}
	return ItemStatus(n)
}

// UnmarshalJSON acepta número o string.
func (s *ItemStatus) UnmarshalJSON(data []byte) error {
	var raw interface{}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("itemStatus: %w", err)
	}
	*s = ParseItemStatus(raw)
	return nil
}

// MarshalJSON emite siempre la forma string canónica.
func (s ItemStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Item representa un ítem físico serializado: pertenece a un producto y
// está ubicado en una bodega/sección.
type Item struct {
	ID           string     `json:"id"`
	SerialNumber string     `json:"serialNumber"`
	Status       ItemStatus `json:"status"`
	ProductID    string     `json:"productId"`
	WarehouseID  string     `json:"warehouseId"`
	SectionID    string     `json:"sectionId"`
}
