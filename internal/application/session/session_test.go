package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/application/session"
	"github.com/jhoicas/Almacen-cli/internal/domain"
	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
	"github.com/jhoicas/Almacen-cli/internal/infrastructure/rest"
	"github.com/jhoicas/Almacen-cli/internal/infrastructure/tokenstore"
	"github.com/jhoicas/Almacen-cli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func nowFn() time.Time { return fixedNow }

// signToken emite un JWT HS256 con la expiración dada. La sesión solo decodifica
// claims sin verificar firma, así que cualquier secreto sirve.
func signToken(t *testing.T, username string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "u1",
		"username": username,
		"exp":      exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("secreto-de-test"))
	require.NoError(t, err)
	return signed
}

// testEnv servidor fake + store en disco temporal + sesión cableada como en producción:
// el hook de 401 del cliente apunta a HandleExpired.
type testEnv struct {
	sess  *session.Session
	store *tokenstore.Store
	wh    *rest.WarehouseAPI
}

func newEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := tokenstore.NewStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	client := rest.NewClient(srv.URL, 5*time.Second, store, logger.NewNop())
	sess := session.New(rest.NewAuthAPI(client), store, logger.NewNop(), nowFn)
	client.SetSessionExpiredHook(sess.HandleExpired)

	return &testEnv{sess: sess, store: store, wh: rest.NewWarehouseAPI(client)}
}

func authHandler(t *testing.T, password string, user entity.User) http.Handler {
	t.Helper()
	token := signToken(t, user.Username, fixedNow.Add(time.Hour))
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Password != password {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "usuario o contraseña incorrectos"})
			return
		}
		_ = json.NewEncoder(w).Encode(dto.LoginResponse{Token: token, User: user})
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(user)
	})
	return mux
}

func testUser() entity.User {
	return entity.User{
		ID: "u1", Username: "maria", FirstName: "María", LastName: "Gómez",
		Role: entity.RoleManager,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_LoginExitoso_PersisteToken(t *testing.T) {
	env := newEnv(t, authHandler(t, "secreta", testUser()))

	res := env.sess.Login(context.Background(), "maria", "secreta")

	require.True(t, res.Success)
	require.NotNil(t, res.User)
	assert.Equal(t, "maria", res.User.Username)
	assert.NotEmpty(t, env.store.Token(), "el token queda persistido en el store")
	assert.True(t, env.sess.IsAuthenticated())
	assert.True(t, env.sess.CanManage(), "manager puede gestionar")
	assert.False(t, env.sess.IsAdmin())
}

func TestSession_LoginFallido_ResultadoEstructurado(t *testing.T) {
	env := newEnv(t, authHandler(t, "secreta", testUser()))

	res := env.sess.Login(context.Background(), "maria", "mala")

	assert.False(t, res.Success)
	assert.Equal(t, "usuario o contraseña incorrectos", res.Error,
		"el mensaje del servidor llega tal cual en el resultado")
	assert.Nil(t, res.User)
	assert.Empty(t, env.store.Token())
	assert.False(t, env.sess.IsAuthenticated())
}

func TestSession_LoginConServidorCaido_NoEntraEnPanico(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // servidor inalcanzable

	store, err := tokenstore.NewStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	client := rest.NewClient(srv.URL, time.Second, store, logger.NewNop())
	sess := session.New(rest.NewAuthAPI(client), store, logger.NewNop(), nowFn)

	res := sess.Login(context.Background(), "maria", "secreta")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error, "el fallo de red se reporta en el resultado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Restore
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_Restore_SinToken(t *testing.T) {
	env := newEnv(t, authHandler(t, "secreta", testUser()))
	assert.False(t, env.sess.Restore(context.Background()))
	assert.False(t, env.sess.IsAuthenticated())
}

func TestSession_Restore_TokenValido(t *testing.T) {
	env := newEnv(t, authHandler(t, "secreta", testUser()))
	// Token persistido por una corrida anterior del proceso.
	require.NoError(t, env.store.Save(signToken(t, "maria", fixedNow.Add(time.Hour))))

	assert.True(t, env.sess.Restore(context.Background()))
	assert.True(t, env.sess.IsAuthenticated())
	assert.Equal(t, "maria", env.sess.User().Username)
}

func TestSession_Restore_TokenRechazadoPorElServidor_Limpia(t *testing.T) {
	env := newEnv(t, authHandler(t, "secreta", testUser()))
	// Vigente según sus claims, pero de otro usuario: /me responde 401.
	require.NoError(t, env.store.Save(signToken(t, "intruso", fixedNow.Add(time.Hour))))

	assert.False(t, env.sess.Restore(context.Background()))
	assert.Empty(t, env.store.Token(), "el token rechazado se borra del store")
}

func TestSession_Restore_TokenExpirado_LimpiaEnSilencio(t *testing.T) {
	env := newEnv(t, authHandler(t, "secreta", testUser()))
	require.NoError(t, env.store.Save(signToken(t, "maria", fixedNow.Add(-time.Minute))))

	assert.False(t, env.sess.Restore(context.Background()),
		"token expirado no restaura la sesión")
	assert.Empty(t, env.store.Token(), "el token expirado se borra del store")
}

func TestSession_Restore_TokenMalformado_LimpiaEnSilencio(t *testing.T) {
	env := newEnv(t, authHandler(t, "secreta", testUser()))
	require.NoError(t, env.store.Save("no-es-un-jwt"))

	assert.False(t, env.sess.Restore(context.Background()))
	assert.Empty(t, env.store.Token())
}

// ──────────────────────────────────────────────────────────────────────────────
// Expiración en caliente
// ──────────────────────────────────────────────────────────────────────────────

// Un 401 en una petición autenticada cualquiera limpia la sesión completa:
// usuario en memoria y token en disco.
func TestSession_401EnPeticion_LimpiaSesion(t *testing.T) {
	user := testUser()
	base := authHandler(t, "secreta", user)
	mux := http.NewServeMux()
	mux.Handle("/api/auth/", base)
	mux.HandleFunc("/api/warehouse", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized) // el token fue revocado en el servidor
	})
	env := newEnv(t, mux)

	res := env.sess.Login(context.Background(), "maria", "secreta")
	require.True(t, res.Success)

	_, err := env.wh.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.False(t, env.sess.IsAuthenticated(), "la sesión en memoria quedó limpia")
	assert.Empty(t, env.store.Token(), "el token persistido quedó borrado")
}

func TestSession_Logout_EsLocal(t *testing.T) {
	env := newEnv(t, authHandler(t, "secreta", testUser()))
	require.True(t, env.sess.Login(context.Background(), "maria", "secreta").Success)

	env.sess.Logout()
	assert.False(t, env.sess.IsAuthenticated())
	assert.Empty(t, env.sess.Token())
}

// ──────────────────────────────────────────────────────────────────────────────
// Operaciones sobre el perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_ChangePassword_RefrescaUsuario(t *testing.T) {
	user := testUser()
	changed := false
	base := authHandler(t, "secreta", user)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/change-password", func(w http.ResponseWriter, r *http.Request) {
		changed = true
		w.WriteHeader(http.StatusNoContent)
	})
	mux.Handle("/", base)
	env := newEnv(t, mux)

	require.True(t, env.sess.Login(context.Background(), "maria", "secreta").Success)
	require.NoError(t, env.sess.ChangePassword(context.Background(), "secreta", "nueva"))
	assert.True(t, changed)
	assert.True(t, env.sess.IsAuthenticated(), "la sesión sigue viva tras el cambio")
}

func TestSession_UpdateProfile_SinSesion(t *testing.T) {
	env := newEnv(t, authHandler(t, "secreta", testUser()))
	first := "Ana"
	err := env.sess.UpdateProfile(context.Background(), dto.UpdateUserRequest{FirstName: &first})
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}
