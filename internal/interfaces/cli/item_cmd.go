package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// newItemCmd pantalla de ítems serializados: alta, check-in, búsqueda.
func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "item",
		Short:       "Gestión de ítems serializados",
		Annotations: map[string]string{annotAuth: "true"},
	}
	cmd.AddCommand(
		newItemCreateCmd(app),
		newItemCheckinCmd(app),
		newItemSearchCmd(app),
		newItemUpdateCmd(app),
		newItemDeleteCmd(app),
	)
	return cmd
}

func newItemCreateCmd(app *App) *cobra.Command {
	var in dto.CreateItemRequest
	cmd := &cobra.Command{
		Use:         "create",
		Short:       "Registra un ítem",
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := app.Items.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Ítem %s registrado (id %s)\n", it.SerialNumber, it.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.SerialNumber, "serial", "", "número de serie")
	cmd.Flags().StringVar(&in.ProductID, "product", "", "id del producto")
	cmd.Flags().StringVar(&in.WarehouseID, "warehouse", "", "id de la bodega")
	cmd.Flags().StringVar(&in.SectionID, "section", "", "id de la sección")
	_ = cmd.MarkFlagRequired("serial")
	_ = cmd.MarkFlagRequired("product")
	return cmd
}

// newItemCheckinCmd flujo de check-in: asociar un ítem físico a producto,
// bodega y sección en una sola operación.
func newItemCheckinCmd(app *App) *cobra.Command {
	var in dto.CheckInItemRequest
	cmd := &cobra.Command{
		Use:         "checkin",
		Short:       "Check-in de un ítem físico",
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := app.Items.CheckIn(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Ítem %s ingresado: estado %s\n", it.SerialNumber, it.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.SerialNumber, "serial", "", "número de serie")
	cmd.Flags().StringVar(&in.ProductID, "product", "", "id del producto")
	cmd.Flags().StringVar(&in.WarehouseID, "warehouse", "", "id de la bodega")
	cmd.Flags().StringVar(&in.SectionID, "section", "", "id de la sección")
	_ = cmd.MarkFlagRequired("serial")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("warehouse")
	_ = cmd.MarkFlagRequired("section")
	return cmd
}

func newItemSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "search <serie>",
		Short:       "Busca ítems por número de serie",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Items.SearchBySerial(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, it := range list {
				rows = append(rows, []string{
					it.ID, it.SerialNumber, it.Status.String(), dash(it.WarehouseID), dash(it.SectionID),
				})
			}
			renderTable(app.Out, []string{"ID", "SERIE", "ESTADO", "BODEGA", "SECCIÓN"}, rows)
			return nil
		},
	}
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var status, warehouseID, sectionID string
	cmd := &cobra.Command{
		Use:         "update <id>",
		Short:       "Actualiza estado o ubicación de un ítem",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := dto.UpdateItemRequest{}
			if cmd.Flags().Changed("status") {
				if entity.ParseItemStatus(status) == entity.StatusUnknown {
					return fmt.Errorf("estado desconocido %q (use Available, Reserved, InTransit, Damaged o Expired)", status)
				}
				in.Status = &status
			}
			if cmd.Flags().Changed("warehouse") {
				in.WarehouseID = &warehouseID
			}
			if cmd.Flags().Changed("section") {
				in.SectionID = &sectionID
			}
			it, err := app.Items.Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Ítem %s actualizado: estado %s\n", it.SerialNumber, it.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "estado nuevo")
	cmd.Flags().StringVar(&warehouseID, "warehouse", "", "id de la bodega destino")
	cmd.Flags().StringVar(&sectionID, "section", "", "id de la sección destino")
	return cmd
}

func newItemDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "delete <id>",
		Short:       "Elimina un ítem",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Items.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Ítem eliminado")
			return nil
		},
	}
}
