// Package pdf genera el reporte de auditoría exportable desde el panel de
// administración.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + generado por / fecha                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total registros | exitosos | fallidos             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Usuario | Rol | Acción | Entidad | Resultado│
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ActionsReportGenerator genera el PDF del registro de auditoría con Maroto v2.
type ActionsReportGenerator struct{}

// NewActionsReportGenerator construye el generador.
func NewActionsReportGenerator() *ActionsReportGenerator { return &ActionsReportGenerator{} }

// ReportMeta metadatos del encabezado del reporte.
type ReportMeta struct {
	Title       string
	GeneratedBy string    // username de quien exporta
	GeneratedAt time.Time
	FilterNote  string    // descripción de los filtros activos (puede ser vacío)
}

// Generate genera el PDF y devuelve sus bytes. Las acciones se imprimen en
// el orden recibido (la vista ya las entrega filtradas y ordenadas).
func (g *ActionsReportGenerator) Generate(meta ReportMeta, actions []entity.Action) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(meta.Title, true).
		WithAuthor(meta.GeneratedBy, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(meta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(actions))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(actions) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y generado por/fecha (der).
func headerRow(meta ReportMeta) core.Row {
	title := meta.Title
	if title == "" {
		title = "Registro de auditoría"
	}
	sub := "Generado: " + meta.GeneratedAt.Format("02/01/2006 15:04")
	if meta.GeneratedBy != "" {
		sub = "Por: " + meta.GeneratedBy + "   |   " + sub
	}
	r := row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(sub, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
	return r
}

// summaryRow: conteos de registros, éxitos y fallos, más filtros activos.
func summaryRow(actions []entity.Action) core.Row {
	failed := 0
	for _, a := range actions {
		if !a.IsSuccessful {
			failed++
		}
	}
	summary := fmt.Sprintf("Registros: %d   |   Exitosos: %d   |   Fallidos: %d",
		len(actions), len(actions)-failed, failed)

	return row.New(8).Add(
		col.New(12).Add(
			text.New(summary, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de acciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Usuario", 2, align.Left),
		h("Rol", 1, align.Left),
		h("Acción", 1, align.Center),
		h("Entidad", 4, align.Left),
		h("Resultado", 2, align.Center),
	)
}

// tableRows: una fila por acción; las fallidas en rojo con su mensaje.
func tableRows(actions []entity.Action) []core.Row {
	result := make([]core.Row, 0, len(actions))
	for _, a := range actions {
		entidad := a.EntityType
		if a.EntityName != "" {
			entidad += ": " + a.EntityName
		}
		resultado := "OK"
		resultColor := colorGray
		if !a.IsSuccessful {
			resultado = "ERROR"
			resultColor = colorRed
			if a.ErrorMessage != "" {
				resultado += " — " + truncate(a.ErrorMessage, 40)
			}
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				a.Timestamp.Format("02/01/2006 15:04"),
				props.Text{Size: 7, Top: 1},
			)),
			col.New(2).Add(text.New(a.Username, props.Text{Size: 7, Top: 1})),
			col.New(1).Add(text.New(a.UserRole.String(), props.Text{Size: 7, Top: 1})),
			col.New(1).Add(text.New(a.ActionType, props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(truncate(entidad, 55), props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(2).Add(text.New(resultado, props.Text{
				Size: 7, Align: align.Center, Top: 1, Color: resultColor,
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// truncate corta s a max caracteres con elipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
