package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// newOrderCmd pantalla de órdenes.
func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "order",
		Short:       "Gestión de órdenes",
		Annotations: map[string]string{annotAuth: "true"},
	}
	cmd.AddCommand(
		newOrderListCmd(app),
		newOrderGetCmd(app),
		newOrderSearchCmd(app),
		newOrderCreateCmd(app),
	)
	return cmd
}

var orderHeaders = []string{"ID", "NÚMERO", "ESTADO", "FECHA", "ÍTEMS"}

func orderRows(list []entity.Order) [][]string {
	rows := make([][]string, 0, len(list))
	for _, o := range list {
		rows = append(rows, []string{
			o.ID, o.Number, dash(o.Status), o.CreatedAt.Format("02/01/2006"), fmt.Sprint(len(o.Items)),
		})
	}
	return rows
}

func newOrderListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "Lista todas las órdenes",
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Orders.List(cmd.Context())
			if err != nil {
				return err
			}
			renderTable(app.Out, orderHeaders, orderRows(list))
			return nil
		},
	}
}

func newOrderSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "search <número>",
		Short:       "Busca órdenes por número",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Orders.SearchByNumber(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderTable(app.Out, orderHeaders, orderRows(list))
			return nil
		},
	}
}

func newOrderGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "get <id>",
		Short:       "Detalle de una orden",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := app.Orders.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Orden:  %s\n", o.Number)
			fmt.Fprintf(app.Out, "Estado: %s\n", dash(o.Status))
			fmt.Fprintf(app.Out, "Fecha:  %s\n", o.CreatedAt.Format("02/01/2006 15:04"))
			if len(o.Items) > 0 {
				fmt.Fprintln(app.Out, "\nÍtems:")
				rows := make([][]string, 0, len(o.Items))
				for _, it := range o.Items {
					rows = append(rows, []string{it.ID, it.SerialNumber, it.Status.String()})
				}
				renderTable(app.Out, []string{"ID", "SERIE", "ESTADO"}, rows)
			}
			return nil
		},
	}
}

func newOrderCreateCmd(app *App) *cobra.Command {
	var in dto.CreateOrderRequest
	cmd := &cobra.Command{
		Use:         "create",
		Short:       "Crea una orden",
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := app.Orders.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Orden %s creada (id %s)\n", o.Number, o.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Number, "number", "", "número de la orden")
	cmd.Flags().StringSliceVar(&in.ItemIDs, "items", nil, "ids de ítems incluidos")
	_ = cmd.MarkFlagRequired("number")
	return cmd
}
