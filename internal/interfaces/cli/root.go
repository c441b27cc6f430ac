// Package cli arma el árbol de comandos del cliente de almacenes. Cada
// comando equivale a una pantalla del cliente web: obtiene datos vía el API,
// los guarda en estado local y los renderiza.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Almacen-cli/internal/application/session"
	"github.com/jhoicas/Almacen-cli/internal/domain"
	"github.com/jhoicas/Almacen-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/Almacen-cli/internal/infrastructure/rest"
	"github.com/jhoicas/Almacen-cli/internal/infrastructure/tokenstore"
	"github.com/jhoicas/Almacen-cli/pkg/config"
	"github.com/jhoicas/Almacen-cli/pkg/logger"
)

// Annotations de comandos.
const (
	// annotAuth marca comandos que requieren sesión activa.
	annotAuth = "requires-auth"
	// annotManage marca comandos de gestión: se ocultan del help cuando el
	// usuario no es admin/manager. Es solo presentación; la autorización
	// real la hace el servidor en cada petición.
	annotManage = "requires-manage"
)

// App agrupa las dependencias construidas una vez al arrancar e inyectadas
// en los comandos (no hay estado global).
type App struct {
	Cfg     *config.Config
	Log     *logger.Logger
	Session *session.Session

	Auth       *rest.AuthAPI
	Warehouses *rest.WarehouseAPI
	Products   *rest.ProductAPI
	Items      *rest.ItemAPI
	Orders     *rest.OrderAPI
	Actions    *rest.ActionAPI

	Report *pdf.ActionsReportGenerator

	Out io.Writer
}

// NewApp construye y cablea todas las dependencias.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	store, err := tokenstore.NewStore(cfg.API.TokenPath)
	if err != nil {
		return nil, err
	}

	client := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), store, log)
	authAPI := rest.NewAuthAPI(client)
	sess := session.New(authAPI, store, log, nil)
	client.SetSessionExpiredHook(sess.HandleExpired)

	return &App{
		Cfg:        cfg,
		Log:        log,
		Session:    sess,
		Auth:       authAPI,
		Warehouses: rest.NewWarehouseAPI(client),
		Products:   rest.NewProductAPI(client),
		Items:      rest.NewItemAPI(client),
		Orders:     rest.NewOrderAPI(client),
		Actions:    rest.NewActionAPI(client),
		Report:     pdf.NewActionsReportGenerator(),
		Out:        os.Stdout,
	}, nil
}

// NewRootCmd arma el árbol de comandos.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "almacen",
		Short:         "Cliente de gestión de almacenes",
		Long:          "Cliente de consola para el API de gestión de almacenes: bodegas, secciones, productos, ítems, órdenes y auditoría.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare(cmd)
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newPasswdCmd(app),
		newProfileCmd(app),
		newRegisterCmd(app),
		newUsersCmd(app),
		newWarehouseCmd(app),
		newProductCmd(app),
		newItemCmd(app),
		newOrderCmd(app),
		newActionsCmd(app),
	)
	return root
}

// prepare reestablece la sesión persistida y aplica el gating de comandos.
func (a *App) prepare(cmd *cobra.Command) error {
	// login no necesita sesión previa (y un token viejo no debe estorbar).
	if cmd.Name() == "login" || cmd.Name() == "logout" {
		return nil
	}

	authenticated := a.Session.Restore(cmd.Context())

	// Ocultar del help las afordancias de gestión cuando el rol no alcanza.
	// Presentación solamente: el servidor decide de verdad.
	canManage := a.Session.CanManage()
	for _, c := range cmd.Root().Commands() {
		if c.Annotations[annotManage] == "true" && !canManage {
			c.Hidden = true
		}
	}

	if cmd.Annotations[annotAuth] == "true" && !authenticated {
		return domain.ErrNotLoggedIn
	}
	if cmd.Annotations[annotManage] == "true" && !canManage {
		return fmt.Errorf("%w: se requiere rol Admin o Manager", domain.ErrForbidden)
	}
	return nil
}

// Execute corre el CLI y devuelve el exit code del proceso.
func Execute() int {
	app, err := NewApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	root := NewRootCmd(app)
	if err := root.Execute(); err != nil {
		app.Log.Error().Err(err).Msg("comando fallido")
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
