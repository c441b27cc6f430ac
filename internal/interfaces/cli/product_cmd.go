package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// newProductCmd pantalla del catálogo de productos.
func newProductCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "product",
		Short:       "Gestión del catálogo de productos",
		Annotations: map[string]string{annotAuth: "true"},
	}
	cmd.AddCommand(
		newProductListCmd(app),
		newProductGetCmd(app),
		newProductSearchCmd(app),
		newProductCreateCmd(app),
		newProductUpdateCmd(app),
		newProductDeleteCmd(app),
	)
	return cmd
}

var productHeaders = []string{"ID", "SKU", "NOMBRE", "ÍTEMS"}

func productRows(list []entity.Product) [][]string {
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{p.ID, p.SKU, p.Name, fmt.Sprint(len(p.Items))})
	}
	return rows
}

func newProductListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "Lista todos los productos",
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Products.List(cmd.Context())
			if err != nil {
				return err
			}
			renderTable(app.Out, productHeaders, productRows(list))
			return nil
		},
	}
}

func newProductSearchCmd(app *App) *cobra.Command {
	var sku string
	cmd := &cobra.Command{
		Use:         "search [nombre]",
		Short:       "Busca productos por nombre o por SKU",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				list []entity.Product
				err  error
			)
			switch {
			case sku != "":
				list, err = app.Products.SearchBySKU(cmd.Context(), sku)
			case len(args) == 1:
				list, err = app.Products.SearchByName(cmd.Context(), args[0])
			default:
				return fmt.Errorf("indique un nombre o use --sku")
			}
			if err != nil {
				return err
			}
			renderTable(app.Out, productHeaders, productRows(list))
			return nil
		},
	}
	cmd.Flags().StringVar(&sku, "sku", "", "busca por SKU en vez de nombre")
	return cmd
}

func newProductGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "get <id>",
		Short:       "Detalle de un producto",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Products.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Producto:    %s\n", p.Name)
			fmt.Fprintf(app.Out, "SKU:         %s\n", p.SKU)
			fmt.Fprintf(app.Out, "Descripción: %s\n", dash(p.Description))
			if len(p.Items) > 0 {
				fmt.Fprintln(app.Out, "\nÍtems:")
				rows := make([][]string, 0, len(p.Items))
				for _, it := range p.Items {
					rows = append(rows, []string{it.ID, it.SerialNumber, it.Status.String()})
				}
				renderTable(app.Out, []string{"ID", "SERIE", "ESTADO"}, rows)
			}
			return nil
		},
	}
}

func newProductCreateCmd(app *App) *cobra.Command {
	var in dto.CreateProductRequest
	cmd := &cobra.Command{
		Use:         "create",
		Short:       "Crea un producto",
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Products.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Producto %s creado (id %s)\n", p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.SKU, "sku", "", "SKU del producto")
	cmd.Flags().StringVar(&in.Name, "name", "", "nombre")
	cmd.Flags().StringVar(&in.Description, "description", "", "descripción")
	_ = cmd.MarkFlagRequired("sku")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProductUpdateCmd(app *App) *cobra.Command {
	var sku, name, description string
	cmd := &cobra.Command{
		Use:         "update <id>",
		Short:       "Actualiza un producto",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := dto.UpdateProductRequest{}
			if cmd.Flags().Changed("sku") {
				in.SKU = &sku
			}
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}
			p, err := app.Products.Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Producto %s actualizado\n", p.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&sku, "sku", "", "SKU")
	cmd.Flags().StringVar(&name, "name", "", "nombre")
	cmd.Flags().StringVar(&description, "description", "", "descripción")
	return cmd
}

func newProductDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "delete <id>",
		Short:       "Elimina un producto",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Products.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Producto eliminado")
			return nil
		},
	}
}
