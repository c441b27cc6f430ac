package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
)

// newLoginCmd inicia sesión y persiste el token.
func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión contra el API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = promptLine("Usuario: ")
			}
			if password == "" {
				password = promptLine("Contraseña: ")
			}

			res := app.Session.Login(cmd.Context(), username, password)
			if !res.Success {
				// Fallo estructurado, no excepción: se reporta y el proceso
				// termina con código distinto de cero.
				return fmt.Errorf("login fallido: %s", res.Error)
			}
			fmt.Fprintf(app.Out, "Sesión iniciada como %s (%s)\n", res.User.Username, res.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "nombre de usuario")
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (si se omite, se pide por stdin)")
	return cmd
}

// newLogoutCmd limpia la sesión local. No hay llamada al servidor.
func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión local",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout()
			fmt.Fprintln(app.Out, "Sesión cerrada")
			return nil
		},
	}
}

// newWhoamiCmd muestra el usuario de la sesión vigente.
func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "whoami",
		Short:       "Muestra el usuario de la sesión vigente",
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			u := app.Session.User()
			fmt.Fprintf(app.Out, "Usuario:   %s\n", u.Username)
			fmt.Fprintf(app.Out, "Nombre:    %s\n", dash(u.FullName()))
			fmt.Fprintf(app.Out, "Rol:       %s\n", u.Role)
			fmt.Fprintf(app.Out, "Activo:    %v\n", u.IsActive)
			if u.LastLoginAt != nil {
				fmt.Fprintf(app.Out, "Último login: %s\n", u.LastLoginAt.Format("02/01/2006 15:04"))
			}
			return nil
		},
	}
}

// newPasswdCmd cambia la contraseña del usuario vigente.
func newPasswdCmd(app *App) *cobra.Command {
	var current, newPass string

	cmd := &cobra.Command{
		Use:         "passwd",
		Short:       "Cambia la contraseña de la sesión vigente",
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if current == "" {
				current = promptLine("Contraseña actual: ")
			}
			if newPass == "" {
				newPass = promptLine("Contraseña nueva: ")
			}
			if err := app.Session.ChangePassword(cmd.Context(), current, newPass); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Contraseña actualizada")
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "contraseña actual")
	cmd.Flags().StringVar(&newPass, "new", "", "contraseña nueva")
	return cmd
}

// newProfileCmd actualiza nombre/apellido del usuario vigente.
func newProfileCmd(app *App) *cobra.Command {
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:         "profile",
		Short:       "Actualiza el perfil de la sesión vigente",
		Annotations: map[string]string{annotAuth: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := dto.UpdateUserRequest{}
			if cmd.Flags().Changed("first-name") {
				in.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				in.LastName = &lastName
			}
			if in.FirstName == nil && in.LastName == nil {
				return fmt.Errorf("nada que actualizar: use --first-name y/o --last-name")
			}
			if err := app.Session.UpdateProfile(cmd.Context(), in); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Perfil actualizado")
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "nombre")
	cmd.Flags().StringVar(&lastName, "last-name", "", "apellido")
	return cmd
}

// newRegisterCmd crea un usuario nuevo (gestión).
func newRegisterCmd(app *App) *cobra.Command {
	var in dto.RegisterUserRequest

	cmd := &cobra.Command{
		Use:         "register",
		Short:       "Registra un usuario nuevo",
		Annotations: map[string]string{annotAuth: "true", annotManage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Session.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Usuario %s creado (rol %s)\n", user.Username, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in.Username, "username", "u", "", "nombre de usuario")
	cmd.Flags().StringVarP(&in.Password, "password", "p", "", "contraseña inicial")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "nombre")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "apellido")
	cmd.Flags().StringVar(&in.Role, "role", "Employee", "rol: Admin, Manager o Employee")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// promptLine lee una línea de stdin con un prompt en stderr.
func promptLine(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
