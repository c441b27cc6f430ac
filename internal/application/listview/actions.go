package listview

import (
	"time"

	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// Claves de filtro del listado de auditoría.
const (
	FilterActionType   = "actionType"
	FilterEntityType   = "entityType"
	FilterUserRole     = "userRole"
	FilterIsSuccessful = "isSuccessful"
	FilterDateRange    = "dateRange"
)

// NewActionConfig es la parametrización consolidada del listado de auditoría
// (antes duplicada entre dos pantallas): búsqueda sobre los campos de texto,
// filtro booleano por resultado, rango temporal sobre timestamp y orden
// temporal por timestamp.
func NewActionConfig(now func() time.Time) Config[entity.Action] {
	return Config[entity.Action]{
		Fields: map[string]func(entity.Action) interface{}{
			"id":           func(a entity.Action) interface{} { return a.ID },
			"timestamp":    func(a entity.Action) interface{} { return a.Timestamp },
			"username":     func(a entity.Action) interface{} { return a.Username },
			"userRole":     func(a entity.Action) interface{} { return a.UserRole.String() },
			"actionType":   func(a entity.Action) interface{} { return a.ActionType },
			"entityType":   func(a entity.Action) interface{} { return a.EntityType },
			"entityName":   func(a entity.Action) interface{} { return a.EntityName },
			"entityId":     func(a entity.Action) interface{} { return a.EntityID },
			"isSuccessful": func(a entity.Action) interface{} { return a.IsSuccessful },
			"errorMessage": func(a entity.Action) interface{} { return a.ErrorMessage },
			"ipAddress":    func(a entity.Action) interface{} { return a.IPAddress },
		},
		SearchFields:   []string{"username", "entityName", "entityType", "actionType", "entityId", "ipAddress"},
		BoolFilterKeys: map[string]bool{FilterIsSuccessful: true},
		DateRangeKeys:  map[string]bool{FilterDateRange: true},
		DateRangeField: "timestamp",
		TimeSortKeys:   map[string]bool{"timestamp": true},
		Now:            now,
	}
}

// NewActionView vista de auditoría lista para usar, ordenada por defecto
// del más reciente al más antiguo.
func NewActionView(actions []entity.Action, now func() time.Time) *View[entity.Action] {
	v := NewView(NewActionConfig(now), actions)
	v.SetSort("timestamp", Desc)
	return v
}
