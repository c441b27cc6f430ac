package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Almacen-cli/internal/application/listview"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
	"github.com/jhoicas/Almacen-cli/internal/infrastructure/pdf"
)

// newActionsCmd panel de auditoría: listado con búsqueda/filtros/orden/
// paginación en memoria, detalle y exportación a PDF.
func newActionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "actions",
		Short:       "Registro de auditoría",
		Annotations: map[string]string{annotAuth: "true"},
	}
	cmd.AddCommand(
		newActionsListCmd(app),
		newActionsGetCmd(app),
		newActionsExportCmd(app),
	)
	return cmd
}

// actionsFlags flags compartidos entre listado y exportación.
type actionsFlags struct {
	source   string // all | mine | user:<id>
	search   string
	filters  []string // key=value
	sortKey  string
	sortDir  string
	page     int
	pageSize int
}

func (f *actionsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.source, "source", "all", "origen: all, mine o user:<id>")
	cmd.Flags().StringVar(&f.search, "search", "", "término de búsqueda (substring, sin mayúsculas)")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil,
		"filtro key=value (actionType, entityType, userRole, isSuccessful, dateRange=today|week|month)")
	cmd.Flags().StringVar(&f.sortKey, "sort", "timestamp", "campo de orden")
	cmd.Flags().StringVar(&f.sortDir, "dir", "desc", "dirección: asc o desc")
	cmd.Flags().IntVar(&f.page, "page", 1, "página")
	cmd.Flags().IntVar(&f.pageSize, "page-size", listview.DefaultPageSize, "registros por página")
}

// fetch trae las acciones según el origen pedido.
func (f *actionsFlags) fetch(ctx context.Context, app *App) ([]entity.Action, error) {
	switch {
	case f.source == "all":
		return app.Actions.List(ctx)
	case f.source == "mine":
		return app.Actions.Mine(ctx)
	case strings.HasPrefix(f.source, "user:"):
		return app.Actions.ByUser(ctx, strings.TrimPrefix(f.source, "user:"))
	default:
		return nil, fmt.Errorf("origen desconocido %q (use all, mine o user:<id>)", f.source)
	}
}

// buildView arma la vista con los flags aplicados en el orden de una sesión
// de usuario: búsqueda y filtros primero (reinician página), luego orden y
// navegación explícita.
func (f *actionsFlags) buildView(actions []entity.Action) (*listview.View[entity.Action], error) {
	view := listview.NewActionView(actions, nil)
	view.SetPageSize(f.pageSize)
	view.SetSearch(f.search)
	for _, raw := range f.filters {
		key, val, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("filtro inválido %q (formato key=value)", raw)
		}
		view.SetFilter(key, val)
	}
	dir := listview.Direction(f.sortDir)
	if dir != listview.Asc && dir != listview.Desc {
		return nil, fmt.Errorf("dirección inválida %q (use asc o desc)", f.sortDir)
	}
	view.SetSort(f.sortKey, dir)
	view.SetPage(f.page)
	return view, nil
}

func newActionsListCmd(app *App) *cobra.Command {
	flags := &actionsFlags{}
	cmd := &cobra.Command{
		Use:         "list",
		Short:       "Lista el registro de auditoría",
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := flags.fetch(cmd.Context(), app)
			if err != nil {
				return err
			}
			view, err := flags.buildView(actions)
			if err != nil {
				return err
			}
			res := view.Result()

			rows := make([][]string, 0, len(res.Data))
			for _, a := range res.Data {
				entidad := a.EntityType
				if a.EntityName != "" {
					entidad += ": " + a.EntityName
				}
				rows = append(rows, []string{
					a.Timestamp.Format("02/01/2006 15:04"),
					a.Username,
					a.UserRole.String(),
					a.ActionType,
					entidad,
					boolMark(a.IsSuccessful),
				})
			}
			renderTable(app.Out, []string{"FECHA", "USUARIO", "ROL", "ACCIÓN", "ENTIDAD", "RESULTADO"}, rows)
			fmt.Fprintf(app.Out, "\nPágina %d (%d por página) — %d registros filtrados\n",
				view.Page(), view.PageSize(), res.FilteredCount)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newActionsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "get <id>",
		Short:       "Detalle de un registro de auditoría",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Actions.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Fecha:     %s\n", a.Timestamp.Format("02/01/2006 15:04:05"))
			fmt.Fprintf(app.Out, "Usuario:   %s (%s)\n", a.Username, a.UserRole)
			fmt.Fprintf(app.Out, "Acción:    %s %s\n", a.ActionType, a.EntityType)
			fmt.Fprintf(app.Out, "Entidad:   %s (id %s)\n", dash(a.EntityName), dash(a.EntityID))
			fmt.Fprintf(app.Out, "Resultado: %s\n", boolMark(a.IsSuccessful))
			if a.ErrorMessage != "" {
				fmt.Fprintf(app.Out, "Error:     %s\n", a.ErrorMessage)
			}
			if a.OldValues != "" {
				fmt.Fprintf(app.Out, "Antes:     %s\n", a.OldValues)
			}
			if a.NewValues != "" {
				fmt.Fprintf(app.Out, "Después:   %s\n", a.NewValues)
			}
			fmt.Fprintf(app.Out, "IP:        %s\n", dash(a.IPAddress))
			fmt.Fprintf(app.Out, "Agente:    %s\n", dash(a.UserAgent))
			return nil
		},
	}
}

// newActionsExportCmd exporta el conjunto filtrado completo (sin paginar) a PDF.
func newActionsExportCmd(app *App) *cobra.Command {
	flags := &actionsFlags{}
	var output string

	cmd := &cobra.Command{
		Use:         "export",
		Short:       "Exporta el registro de auditoría a PDF",
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := flags.fetch(cmd.Context(), app)
			if err != nil {
				return err
			}
			view, err := flags.buildView(actions)
			if err != nil {
				return err
			}

			// El reporte lleva todo el conjunto filtrado, no una página.
			q := view.Query()
			q.Page = 1
			q.PageSize = len(actions) + 1
			res := listview.Apply(listview.NewActionConfig(nil), actions, q)

			generatedBy := ""
			if u := app.Session.User(); u != nil {
				generatedBy = u.Username
			}
			meta := pdf.ReportMeta{
				Title:       "Registro de auditoría",
				GeneratedBy: generatedBy,
				GeneratedAt: time.Now(),
				FilterNote:  strings.Join(flags.filters, ", "),
			}
			data, err := app.Report.Generate(meta, res.Data)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", output, err)
			}
			fmt.Fprintf(app.Out, "Reporte con %d registros escrito en %s\n", res.FilteredCount, output)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "auditoria.pdf", "archivo PDF de salida")
	return cmd
}
