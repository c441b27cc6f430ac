package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// newWarehouseCmd pantalla de bodegas: listado, detalle, CRUD y secciones.
func newWarehouseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "warehouse",
		Aliases:     []string{"wh"},
		Short:       "Gestión de bodegas",
		Annotations: map[string]string{annotAuth: "true"},
	}
	cmd.AddCommand(
		newWarehouseListCmd(app),
		newWarehouseGetCmd(app),
		newWarehouseSearchCmd(app),
		newWarehouseCreateCmd(app),
		newWarehouseUpdateCmd(app),
		newWarehouseDeleteCmd(app),
		newSectionCmd(app),
	)
	return cmd
}

func warehouseRows(list []entity.Warehouse) [][]string {
	rows := make([][]string, 0, len(list))
	for _, w := range list {
		rows = append(rows, []string{
			w.ID, w.Name, dash(w.Location), fmt.Sprint(w.Total), fmt.Sprint(w.Available),
		})
	}
	return rows
}

var warehouseHeaders = []string{"ID", "NOMBRE", "UBICACIÓN", "ÍTEMS", "DISPONIBLES"}

func newWarehouseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "Lista todas las bodegas",
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Warehouses.List(cmd.Context())
			if err != nil {
				return err
			}
			renderTable(app.Out, warehouseHeaders, warehouseRows(list))
			return nil
		},
	}
}

func newWarehouseSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "search <nombre>",
		Short:       "Busca bodegas por nombre",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Warehouses.SearchByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderTable(app.Out, warehouseHeaders, warehouseRows(list))
			return nil
		},
	}
}

func newWarehouseGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "get <id>",
		Short:       "Detalle de una bodega",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Warehouses.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Bodega:      %s\n", w.Name)
			fmt.Fprintf(app.Out, "Ubicación:   %s\n", dash(w.Location))
			fmt.Fprintf(app.Out, "Descripción: %s\n", dash(w.Description))
			fmt.Fprintf(app.Out, "Inventario:  %s\n", renderCounts(w.InventoryCounts))
			if !w.Consistent() {
				// Diagnóstico: el invariante de suma es del servidor.
				fmt.Fprintln(app.Out, "Aviso: los contadores de inventario no cuadran con el total")
			}
			if len(w.Sections) > 0 {
				fmt.Fprintln(app.Out, "\nSecciones:")
				rows := make([][]string, 0, len(w.Sections))
				for _, s := range w.Sections {
					rows = append(rows, []string{s.ID, s.Name, fmt.Sprint(s.Total)})
				}
				renderTable(app.Out, []string{"ID", "NOMBRE", "ÍTEMS"}, rows)
			}
			return nil
		},
	}
}

func newWarehouseCreateCmd(app *App) *cobra.Command {
	var in dto.CreateWarehouseRequest

	cmd := &cobra.Command{
		Use:         "create",
		Short:       "Crea una bodega",
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Warehouses.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Bodega %s creada (id %s)\n", w.Name, w.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "nombre de la bodega")
	cmd.Flags().StringVar(&in.Location, "location", "", "ubicación")
	cmd.Flags().StringVar(&in.Description, "description", "", "descripción")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newWarehouseUpdateCmd(app *App) *cobra.Command {
	var name, location, description string

	cmd := &cobra.Command{
		Use:         "update <id>",
		Short:       "Actualiza una bodega",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := dto.UpdateWarehouseRequest{}
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("location") {
				in.Location = &location
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}
			w, err := app.Warehouses.Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Bodega %s actualizada\n", w.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "nombre")
	cmd.Flags().StringVar(&location, "location", "", "ubicación")
	cmd.Flags().StringVar(&description, "description", "", "descripción")
	return cmd
}

func newWarehouseDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "delete <id>",
		Short:       "Elimina una bodega",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Warehouses.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Bodega eliminada")
			return nil
		},
	}
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// newSectionCmd subárbol de secciones, siempre bajo una bodega (--warehouse).
func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "sections",
		Short:       "Gestión de secciones de una bodega",
		Annotations: map[string]string{annotAuth: "true"},
	}
	cmd.AddCommand(
		newSectionListCmd(app),
		newSectionGetCmd(app),
		newSectionCreateCmd(app),
		newSectionUpdateCmd(app),
		newSectionDeleteCmd(app),
	)
	return cmd
}

func newSectionListCmd(app *App) *cobra.Command {
	var warehouseID string
	cmd := &cobra.Command{
		Use:         "list",
		Short:       "Lista las secciones de una bodega",
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Warehouses.ListSections(cmd.Context(), warehouseID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, s := range list {
				rows = append(rows, []string{s.ID, s.Name, dash(s.Description), fmt.Sprint(s.Total)})
			}
			renderTable(app.Out, []string{"ID", "NOMBRE", "DESCRIPCIÓN", "ÍTEMS"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVarP(&warehouseID, "warehouse", "w", "", "id de la bodega")
	_ = cmd.MarkFlagRequired("warehouse")
	return cmd
}

func newSectionGetCmd(app *App) *cobra.Command {
	var warehouseID string
	cmd := &cobra.Command{
		Use:         "get <id>",
		Short:       "Detalle de una sección",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Warehouses.GetSection(cmd.Context(), warehouseID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Sección:     %s\n", s.Name)
			fmt.Fprintf(app.Out, "Descripción: %s\n", dash(s.Description))
			fmt.Fprintf(app.Out, "Inventario:  %s\n", renderCounts(s.InventoryCounts))
			return nil
		},
	}
	cmd.Flags().StringVarP(&warehouseID, "warehouse", "w", "", "id de la bodega")
	_ = cmd.MarkFlagRequired("warehouse")
	return cmd
}

func newSectionCreateCmd(app *App) *cobra.Command {
	var warehouseID string
	var in dto.CreateSectionRequest
	cmd := &cobra.Command{
		Use:         "create",
		Short:       "Crea una sección",
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Warehouses.CreateSection(cmd.Context(), warehouseID, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Sección %s creada (id %s)\n", s.Name, s.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&warehouseID, "warehouse", "w", "", "id de la bodega")
	cmd.Flags().StringVar(&in.Name, "name", "", "nombre de la sección")
	cmd.Flags().StringVar(&in.Description, "description", "", "descripción")
	_ = cmd.MarkFlagRequired("warehouse")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newSectionUpdateCmd(app *App) *cobra.Command {
	var warehouseID, name, description string
	cmd := &cobra.Command{
		Use:         "update <id>",
		Short:       "Actualiza una sección",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := dto.UpdateSectionRequest{}
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}
			s, err := app.Warehouses.UpdateSection(cmd.Context(), warehouseID, args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Sección %s actualizada\n", s.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&warehouseID, "warehouse", "w", "", "id de la bodega")
	cmd.Flags().StringVar(&name, "name", "", "nombre")
	cmd.Flags().StringVar(&description, "description", "", "descripción")
	_ = cmd.MarkFlagRequired("warehouse")
	return cmd
}

func newSectionDeleteCmd(app *App) *cobra.Command {
	var warehouseID string
	cmd := &cobra.Command{
		Use:         "delete <id>",
		Short:       "Elimina una sección",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Warehouses.DeleteSection(cmd.Context(), warehouseID, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Sección eliminada")
			return nil
		},
	}
	cmd.Flags().StringVarP(&warehouseID, "warehouse", "w", "", "id de la bodega")
	_ = cmd.MarkFlagRequired("warehouse")
	return cmd
}
