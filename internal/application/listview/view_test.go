package listview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-cli/internal/application/listview"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// Reglas de reinicio de página: cambiar búsqueda o filtro vuelve a la página
// 1; cambiar el tamaño de página también; cambiar solo el orden no la mueve.

func newTestView() *listview.View[entity.Action] {
	return listview.NewView(listview.NewActionConfig(nowFn), sampleActions())
}

func TestView_CambiarBusqueda_ReiniciaPagina(t *testing.T) {
	v := newTestView()
	v.SetPage(3)

	v.SetSearch("bodega")
	assert.Equal(t, 1, v.Page(), "cambiar la búsqueda vuelve a la página 1")
}

func TestView_MismaBusqueda_NoReiniciaPagina(t *testing.T) {
	v := newTestView()
	v.SetSearch("bodega")
	v.SetPage(2)

	v.SetSearch("bodega") // sin cambio
	assert.Equal(t, 2, v.Page(), "repetir el mismo término no mueve la página")
}

func TestView_CambiarFiltro_ReiniciaPagina(t *testing.T) {
	v := newTestView()
	v.SetPage(4)

	v.SetFilter(listview.FilterActionType, entity.ActionCreate)
	assert.Equal(t, 1, v.Page())

	v.SetPage(2)
	v.SetFilter(listview.FilterActionType, "") // quitar el filtro también es cambio
	assert.Equal(t, 1, v.Page())
}

func TestView_CambiarSoloOrden_ConservaPagina(t *testing.T) {
	v := newTestView()
	v.SetPage(3)

	v.SetSort("username", listview.Asc)
	assert.Equal(t, 3, v.Page(), "cambiar el orden no debe mover la página")
}

func TestView_CambiarTamanoDePagina_ReiniciaPagina(t *testing.T) {
	v := newTestView()
	v.SetPage(3)

	v.SetPageSize(25)
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 25, v.PageSize())
}

func TestView_SetData_ReiniciaPagina(t *testing.T) {
	v := newTestView()
	v.SetPage(2)

	v.SetData(nil)
	assert.Equal(t, 1, v.Page(), "re-fetch vuelve a la página 1")
	assert.Zero(t, v.Result().FilteredCount)
}

func TestView_ResultAplicaEstadoVigente(t *testing.T) {
	v := newTestView()
	v.SetFilter(listview.FilterIsSuccessful, "true")
	v.SetSort("timestamp", listview.Desc)

	res := v.Result()
	assert.Equal(t, 3, res.FilteredCount)
	assert.Equal(t, "a3", res.Data[0].ID, "el más reciente primero")
}

func TestNewActionView_OrdenPorDefectoDescendente(t *testing.T) {
	v := listview.NewActionView(sampleActions(), nowFn)
	res := v.Result()
	assert.Equal(t, "a3", res.Data[0].ID)
	assert.Equal(t, "a4", res.Data[len(res.Data)-1].ID)
}
