// Package session mantiene el estado de sesión del cliente: usuario y token
// vigentes, con los flags derivados de rol. Es un objeto explícito que se
// construye una vez al arrancar y se inyecta donde haga falta; todas las
// mutaciones pasan por sus métodos.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
	"github.com/jhoicas/Almacen-cli/internal/infrastructure/rest"
	"github.com/jhoicas/Almacen-cli/internal/infrastructure/tokenstore"
	"github.com/jhoicas/Almacen-cli/pkg/jwtclaims"
	"github.com/jhoicas/Almacen-cli/pkg/logger"
)

// LoginResult es el resultado estructurado del login: los fallos de red o de
// credenciales se reportan aquí, nunca como error de Go hacia el caller.
type LoginResult struct {
	Success bool
	Error   string
	User    *entity.User
}

// Session estado de sesión del proceso.
type Session struct {
	api   *rest.AuthAPI
	store *tokenstore.Store
	log   *logger.Logger
	now   func() time.Time

	mu   sync.RWMutex
	user *entity.User
}

// New construye la sesión. now es inyectable para tests (nil = time.Now).
func New(api *rest.AuthAPI, store *tokenstore.Store, log *logger.Logger, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{api: api, store: store, log: log, now: now}
}

// Restore reestablece la sesión al arrancar: si hay token persistido lo
// verifica contra /api/auth/me. Un token inválido o expirado se limpia en
// silencio (el usuario simplemente queda deslogueado, sin error visible).
func (s *Session) Restore(ctx context.Context) bool {
	token := s.store.Token()
	if token == "" {
		return false
	}

	// Chequeo local de expiración antes de gastar un round-trip.
	if claims, err := jwtclaims.Decode(token); err != nil || claims.IsExpired(s.now()) {
		s.log.Debug().Msg("token persistido inválido o expirado, limpiando")
		s.clear()
		return false
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		// El hook de 401 del cliente ya limpió el store; clear() es idempotente.
		s.log.Debug().Err(err).Msg("verificación de sesión fallida, limpiando token")
		s.clear()
		return false
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return true
}

// Login autentica y persiste el token. No devuelve error: cualquier fallo
// (credenciales, red, persistencia) llega como LoginResult{Success: false}.
func (s *Session) Login(ctx context.Context, username, password string) LoginResult {
	resp, err := s.api.Login(ctx, dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return LoginResult{Success: false, Error: loginErrorMessage(err)}
	}

	if err := s.store.Save(resp.Token); err != nil {
		s.log.Error().Err(err).Msg("no se pudo persistir el token")
		return LoginResult{Success: false, Error: err.Error()}
	}

	user := resp.User
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.log.Info().Str("username", user.Username).Str("role", user.Role.String()).Msg("sesión iniciada")
	return LoginResult{Success: true, User: &user}
}

// loginErrorMessage extrae el mensaje del servidor cuando existe.
func loginErrorMessage(err error) string {
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// Logout limpia la sesión local. No hay llamada al servidor.
func (s *Session) Logout() {
	s.clear()
	s.log.Info().Msg("sesión cerrada")
}

// HandleExpired es el hook para el cliente REST: un 401 autenticado limpia
// la sesión (equivalente al redirect a /login del cliente web).
func (s *Session) HandleExpired() {
	s.clear()
}

func (s *Session) clear() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	if err := s.store.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo borrar el token persistido")
	}
}

// Register crea un usuario nuevo (admin/manager). No toca la sesión vigente.
func (s *Session) Register(ctx context.Context, in dto.RegisterUserRequest) (*entity.User, error) {
	return s.api.Register(ctx, in)
}

// ChangePassword cambia la contraseña y refresca el usuario en memoria.
func (s *Session) ChangePassword(ctx context.Context, current, newPassword string) error {
	in := dto.ChangePasswordRequest{CurrentPassword: current, NewPassword: newPassword}
	if err := s.api.ChangePassword(ctx, in); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// UpdateProfile actualiza los datos del usuario vigente y refresca la copia en memoria.
func (s *Session) UpdateProfile(ctx context.Context, in dto.UpdateUserRequest) error {
	user := s.User()
	if user == nil {
		return domain.ErrNotLoggedIn
	}
	if _, err := s.api.UpdateUser(ctx, user.ID, in); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// refresh vuelve a pedir /api/auth/me para mantener la copia local al día.
func (s *Session) refresh(ctx context.Context) error {
	user, err := s.api.Me(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// User devuelve una copia del usuario vigente (nil si no hay sesión).
func (s *Session) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token devuelve el token vigente ("" si no hay sesión).
func (s *Session) Token() string {
	return s.store.Token()
}

// IsAuthenticated indica si hay un usuario verificado en memoria.
func (s *Session) IsAuthenticated() bool {
	return s.User() != nil
}

// IsAdmin, IsManager, IsEmployee: flags derivados del rol del usuario vigente.
func (s *Session) IsAdmin() bool {
	u := s.User()
	return u != nil && u.IsAdmin()
}

func (s *Session) IsManager() bool {
	u := s.User()
	return u != nil && u.IsManager()
}

func (s *Session) IsEmployee() bool {
	u := s.User()
	return u != nil && u.IsEmployee()
}

// CanManage gating de afordancias de gestión en el cliente.
// NO es un límite de seguridad: el servidor autoriza cada operación.
func (s *Session) CanManage() bool {
	u := s.User()
	return u != nil && u.CanManage()
}
