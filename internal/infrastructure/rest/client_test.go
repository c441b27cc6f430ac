package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-cli/internal/application/dto"
	"github.com/jhoicas/Almacen-cli/internal/domain"
	"github.com/jhoicas/Almacen-cli/internal/infrastructure/rest"
	"github.com/jhoicas/Almacen-cli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// staticTokens TokenSource fijo para tests.
type staticTokens struct{ token string }

func (s *staticTokens) Token() string { return s.token }

func newTestClient(t *testing.T, handler http.Handler, token string) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.NewClient(srv.URL, 5*time.Second, &staticTokens{token: token}, logger.NewNop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Inyección de token y headers
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_InyectaBearerYRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode([]interface{}{})
	})
	client := newTestClient(t, handler, "tok-123")

	_, err := rest.NewWarehouseAPI(client).List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth, "toda petición lleva el bearer token")
	assert.NotEmpty(t, gotReqID, "toda petición lleva X-Request-ID")
}

func TestClient_SinToken_NoMandaAuthorization(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(dto.LoginResponse{Token: "t"})
	})
	client := newTestClient(t, handler, "")

	_, err := rest.NewAuthAPI(client).Login(context.Background(), dto.LoginRequest{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Manejo de 401
// ──────────────────────────────────────────────────────────────────────────────

// Un 401 en una petición autenticada que no es de login/registro expira la
// sesión: dispara el hook y devuelve ErrSessionExpired.
func TestClient_401Autenticado_ExpiraSesion(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	client := newTestClient(t, handler, "tok-viejo")

	hookCalled := false
	client.SetSessionExpiredHook(func() { hookCalled = true })

	_, err := rest.NewWarehouseAPI(client).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.True(t, hookCalled, "el hook de sesión expirada debe dispararse")
}

// Un 401 del login son credenciales inválidas: el error llega al caller y el
// hook NO se dispara (evita bucles de deslogueo).
func TestClient_401EnLogin_NoExpiraSesion(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "credenciales inválidas"})
	})
	// Con token viejo presente: la ruta de login sigue exenta.
	client := newTestClient(t, handler, "tok-viejo")

	hookCalled := false
	client.SetSessionExpiredHook(func() { hookCalled = true })

	_, err := rest.NewAuthAPI(client).Login(context.Background(), dto.LoginRequest{Username: "u", Password: "mala"})
	require.Error(t, err)
	assert.False(t, hookCalled, "el 401 del login no debe expirar la sesión")

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "credenciales inválidas", apiErr.Message)
}

// Un 401 anónimo (sin token) tampoco dispara el hook.
func TestClient_401SinToken_NoDisparaHook(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	client := newTestClient(t, handler, "")

	hookCalled := false
	client.SetSessionExpiredHook(func() { hookCalled = true })

	_, err := rest.NewWarehouseAPI(client).List(context.Background())
	require.Error(t, err)
	assert.False(t, hookCalled)
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_ErrorConPayloadDelServidor(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"code": "VALIDATION", "message": "nombre requerido"})
	})
	client := newTestClient(t, handler, "tok")

	_, err := rest.NewProductAPI(client).Create(context.Background(), dto.CreateProductRequest{})
	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "VALIDATION", apiErr.Code)
	assert.Equal(t, "nombre requerido", apiErr.Message)
}

func TestClient_ErrorConCampoError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "SKU duplicado"})
	})
	client := newTestClient(t, handler, "tok")

	_, err := rest.NewProductAPI(client).Create(context.Background(), dto.CreateProductRequest{SKU: "X"})
	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "SKU duplicado", apiErr.Message)
}

func TestClient_404SeMapeaANotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := newTestClient(t, handler, "tok")

	_, err := rest.NewWarehouseAPI(client).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_CuerpoNoJSON_MensajeGenerico(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})
	client := newTestClient(t, handler, "tok")

	_, err := rest.NewWarehouseAPI(client).List(context.Background())
	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_RutasDeRecursos(t *testing.T) {
	var paths []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.String())
		_ = json.NewEncoder(w).Encode([]interface{}{})
	})
	client := newTestClient(t, handler, "tok")
	ctx := context.Background()

	_, _ = rest.NewWarehouseAPI(client).SearchByName(ctx, "norte")
	_, _ = rest.NewWarehouseAPI(client).ListSections(ctx, "w1")
	_, _ = rest.NewProductAPI(client).SearchBySKU(ctx, "ABC-1")
	_, _ = rest.NewItemAPI(client).SearchBySerial(ctx, "SN 9")
	_, _ = rest.NewOrderAPI(client).SearchByNumber(ctx, "ORD-7")
	_, _ = rest.NewActionAPI(client).Mine(ctx)
	_, _ = rest.NewActionAPI(client).ByUser(ctx, "u1")

	require.Len(t, paths, 7)
	assert.Equal(t, "GET /api/warehouse/search?name=norte", paths[0])
	assert.Equal(t, "GET /api/warehouse/w1/section", paths[1])
	assert.Equal(t, "GET /api/product/search/sku?sku=ABC-1", paths[2])
	assert.Equal(t, "GET /api/item/search?serialNumber=SN+9", paths[3])
	assert.Equal(t, "GET /api/order/search?number=ORD-7", paths[4])
	assert.Equal(t, "GET /api/actions/my-actions", paths[5])
	assert.Equal(t, "GET /api/actions/user/u1", paths[6])
}
