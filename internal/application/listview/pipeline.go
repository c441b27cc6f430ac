// Package listview implementa el pipeline genérico de listados:
// búsqueda → filtros → orden → paginación, en ese orden fijo (los conteos
// dependen de él). Es el único lugar del cliente con esta lógica; cada
// pantalla lo parametriza con su Config en vez de re-derivarla.
//
// El pipeline nunca falla: entrada vacía produce salida vacía y los campos
// ausentes se excluyen de las comparaciones.
package listview

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Direction dirección de ordenamiento.
type Direction string

// Direcciones válidas.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultPageSize tamaño de página cuando la query no lo indica.
const DefaultPageSize = 10

// Config parametriza el pipeline para un tipo de registro.
type Config[T any] struct {
	// Fields extractores por nombre de campo; un campo no registrado se
	// trata como ausente (excluido de búsquedas y primero en el orden).
	Fields map[string]func(T) interface{}

	// SearchFields campos considerados por la búsqueda de texto.
	SearchFields []string

	// BoolFilterKeys claves de filtro cuyo valor "true"/"false" se compara
	// como booleano contra el campo.
	BoolFilterKeys map[string]bool

	// DateRangeKeys claves de filtro con semántica de rango temporal
	// (today|week|month) sobre DateRangeField.
	DateRangeKeys map[string]bool

	// DateRangeField campo temporal contra el que se evalúa el rango.
	DateRangeField string

	// TimeSortKeys campos que se comparan como fecha al ordenar.
	TimeSortKeys map[string]bool

	// Now inyectable para tests de rangos temporales (nil = time.Now).
	Now func() time.Time
}

func (c Config[T]) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Query es la petición de vista sobre los datos.
type Query struct {
	Search   string
	Filters  map[string]string
	SortKey  string
	SortDir  Direction
	Page     int
	PageSize int
}

// Result es la página resultante más los conteos.
//
// TotalCount y FilteredCount se calculan ambos sobre el arreglo post-filtro:
// es redundante a propósito, el comportamiento heredado se preserva hasta que
// el dueño del producto aclare qué debía significar TotalCount.
type Result[T any] struct {
	Data          []T
	TotalCount    int
	FilteredCount int
}

// Apply ejecuta el pipeline completo sobre data y devuelve la página pedida.
func Apply[T any](cfg Config[T], data []T, q Query) Result[T] {
	work := applySearch(cfg, data, q.Search)
	work = applyFilters(cfg, work, q.Filters)
	applySort(cfg, work, q.SortKey, q.SortDir)

	filtered := len(work)

	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	start := (page - 1) * size
	end := start + size
	if start > filtered {
		start = filtered
	}
	if end > filtered {
		end = filtered
	}

	return Result[T]{
		Data:          work[start:end],
		TotalCount:    filtered,
		FilteredCount: filtered,
	}
}

// applySearch: match por substring case-insensitive sobre cualquiera de los
// campos configurados. Término vacío = sin filtrado.
func applySearch[T any](cfg Config[T], data []T, term string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]T, len(data))
		copy(out, data)
		return out
	}
	out := make([]T, 0, len(data))
	for _, rec := range data {
		for _, field := range cfg.SearchFields {
			v, ok := fieldValue(cfg, rec, field)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(stringify(v)), term) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// applyFilters: AND entre filtros activos. Un valor vacío desactiva el filtro.
func applyFilters[T any](cfg Config[T], data []T, filters map[string]string) []T {
	out := data
	for key, val := range filters {
		if val == "" {
			continue
		}
		switch {
		case cfg.DateRangeKeys[key]:
			out = filterByDateRange(cfg, out, val)
		case cfg.BoolFilterKeys[key]:
			out = filterByBool(cfg, out, key, val == "true")
		default:
			out = filterByEquality(cfg, out, key, val)
		}
	}
	return out
}

func filterByEquality[T any](cfg Config[T], data []T, key, val string) []T {
	out := make([]T, 0, len(data))
	for _, rec := range data {
		v, ok := fieldValue(cfg, rec, key)
		if ok && stringify(v) == val {
			out = append(out, rec)
		}
	}
	return out
}

func filterByBool[T any](cfg Config[T], data []T, key string, want bool) []T {
	out := make([]T, 0, len(data))
	for _, rec := range data {
		v, ok := fieldValue(cfg, rec, key)
		if !ok {
			continue
		}
		if b, isBool := v.(bool); isBool && b == want {
			out = append(out, rec)
		}
	}
	return out
}

// filterByDateRange conserva registros con DateRangeField >= corte.
// Rango desconocido = sin filtrado (el pipeline no falla).
func filterByDateRange[T any](cfg Config[T], data []T, rangeName string) []T {
	cutoff, ok := cutoffFor(rangeName, cfg.now())
	if !ok {
		return data
	}
	out := make([]T, 0, len(data))
	for _, rec := range data {
		v, present := fieldValue(cfg, rec, cfg.DateRangeField)
		if !present {
			continue
		}
		ts, isTime := asTime(v)
		if isTime && !ts.Before(cutoff) {
			out = append(out, rec)
		}
	}
	return out
}

// cutoffFor calcula el instante de corte del rango relativo a now.
func cutoffFor(rangeName string, now time.Time) (time.Time, bool) {
	switch rangeName {
	case "today":
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}

// applySort ordena in place con sort.SliceStable: los empates conservan el
// orden de entrada, como propiedad explícita y no por accidente.
func applySort[T any](cfg Config[T], data []T, key string, dir Direction) {
	if key == "" {
		return
	}
	asTimeKey := cfg.TimeSortKeys[key]
	sort.SliceStable(data, func(i, j int) bool {
		vi, oki := fieldValue(cfg, data[i], key)
		vj, okj := fieldValue(cfg, data[j], key)
		less := lessValues(vi, oki, vj, okj, asTimeKey)
		if dir == Desc {
			// Invertir la comparación, no el slice, para conservar estabilidad.
			return lessValues(vj, okj, vi, oki, asTimeKey)
		}
		return less
	})
}

// lessValues compara dos valores de campo. Los ausentes ordenan primero;
// strings case-insensitive; claves temporales como fecha.
func lessValues(a interface{}, okA bool, b interface{}, okB bool, timeKey bool) bool {
	if !okA || !okB {
		return !okA && okB
	}
	if timeKey {
		ta, aOK := asTime(a)
		tb, bOK := asTime(b)
		if aOK && bOK {
			return ta.Before(tb)
		}
	}
	switch va := a.(type) {
	case time.Time:
		if vb, ok := b.(time.Time); ok {
			return va.Before(vb)
		}
	case int:
		if vb, ok := b.(int); ok {
			return va < vb
		}
	case int64:
		if vb, ok := b.(int64); ok {
			return va < vb
		}
	case float64:
		if vb, ok := b.(float64); ok {
			return va < vb
		}
	case bool:
		if vb, ok := b.(bool); ok {
			return !va && vb
		}
	}
	return strings.ToLower(stringify(a)) < strings.ToLower(stringify(b))
}

// fieldValue extrae el valor de un campo; ok=false si el campo no está
// configurado o su valor es nil.
func fieldValue[T any](cfg Config[T], rec T, field string) (interface{}, bool) {
	fn, exists := cfg.Fields[field]
	if !exists || fn == nil {
		return nil, false
	}
	v := fn(rec)
	if v == nil {
		return nil, false
	}
	return v, true
}

// asTime coerciona time.Time o string RFC 3339 a fecha.
func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// stringify representación de texto usada por búsqueda y filtros de igualdad.
func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}
