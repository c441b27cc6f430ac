package listview

// View es el estado de una pantalla de listado sobre un arreglo en memoria.
// Aplica las reglas de reinicio de página heredadas del cliente web:
//
//   - cambiar la búsqueda o un filtro vuelve a la página 1;
//   - cambiar el tamaño de página vuelve a la página 1;
//   - cambiar solo el orden NO mueve la página.
type View[T any] struct {
	cfg   Config[T]
	data  []T
	query Query
}

// NewView construye la vista en la página 1 con el tamaño por defecto.
func NewView[T any](cfg Config[T], data []T) *View[T] {
	return &View[T]{
		cfg:  cfg,
		data: data,
		query: Query{
			Filters:  map[string]string{},
			Page:     1,
			PageSize: DefaultPageSize,
		},
	}
}

// SetData reemplaza los datos (re-fetch) y vuelve a la página 1.
func (v *View[T]) SetData(data []T) {
	v.data = data
	v.query.Page = 1
}

// SetSearch fija el término de búsqueda; si cambió, vuelve a la página 1.
func (v *View[T]) SetSearch(term string) {
	if v.query.Search == term {
		return
	}
	v.query.Search = term
	v.query.Page = 1
}

// SetFilter fija un filtro (valor vacío lo quita); si cambió, vuelve a la página 1.
func (v *View[T]) SetFilter(key, value string) {
	if v.query.Filters[key] == value {
		return
	}
	if value == "" {
		delete(v.query.Filters, key)
	} else {
		v.query.Filters[key] = value
	}
	v.query.Page = 1
}

// SetSort fija la clave y dirección de orden. No reinicia la página.
func (v *View[T]) SetSort(key string, dir Direction) {
	v.query.SortKey = key
	v.query.SortDir = dir
}

// SetPage navega a la página n (mínimo 1).
func (v *View[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	v.query.Page = n
}

// SetPageSize cambia el tamaño de página y vuelve a la página 1.
func (v *View[T]) SetPageSize(n int) {
	if n < 1 {
		n = DefaultPageSize
	}
	v.query.PageSize = n
	v.query.Page = 1
}

// Page devuelve la página vigente.
func (v *View[T]) Page() int { return v.query.Page }

// PageSize devuelve el tamaño de página vigente.
func (v *View[T]) PageSize() int { return v.query.PageSize }

// Query devuelve una copia de la query vigente.
func (v *View[T]) Query() Query {
	q := v.query
	q.Filters = make(map[string]string, len(v.query.Filters))
	for k, val := range v.query.Filters {
		q.Filters[k] = val
	}
	return q
}

// Result ejecuta el pipeline con el estado vigente.
func (v *View[T]) Result() Result[T] {
	return Apply(v.cfg, v.data, v.query)
}
