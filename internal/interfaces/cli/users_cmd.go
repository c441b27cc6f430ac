package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// newUsersCmd administración de usuarios (panel de admin).
func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "users",
		Short:       "Administración de usuarios",
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
	}
	cmd.AddCommand(newUsersListCmd(app), newUsersUpdateCmd(app), newUsersDeleteCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "Lista todos los usuarios",
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Auth.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{
					u.ID, u.Username, dash(u.FullName()), u.Role.String(), fmt.Sprint(u.IsActive),
				})
			}
			renderTable(app.Out, []string{"ID", "USUARIO", "NOMBRE", "ROL", "ACTIVO"}, rows)
			return nil
		},
	}
}

func newUsersUpdateCmd(app *App) *cobra.Command {
	var firstName, lastName, role string
	var active bool

	cmd := &cobra.Command{
		Use:         "update <id>",
		Short:       "Actualiza un usuario",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := dto.UpdateUserRequest{}
			if cmd.Flags().Changed("first-name") {
				in.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				in.LastName = &lastName
			}
			if cmd.Flags().Changed("role") {
				if entity.ParseRole(role) == entity.RoleUnknown {
					return fmt.Errorf("rol desconocido %q (use Admin, Manager o Employee)", role)
				}
				in.Role = &role
			}
			if cmd.Flags().Changed("active") {
				in.IsActive = &active
			}
			user, err := app.Auth.UpdateUser(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Usuario %s actualizado\n", user.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "nombre")
	cmd.Flags().StringVar(&lastName, "last-name", "", "apellido")
	cmd.Flags().StringVar(&role, "role", "", "rol: Admin, Manager o Employee")
	cmd.Flags().BoolVar(&active, "active", true, "usuario activo")
	return cmd
}

func newUsersDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "delete <id>",
		Short:       "Elimina un usuario",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Usuario eliminado")
			return nil
		},
	}
}
