// Package rest implementa el cliente HTTP del API remoto de gestión de
// almacenes: inyección del bearer token en cada petición, normalización de
// errores del servidor y manejo de 401 autenticados (expiración de sesión).
//
// Usa net/http de la stdlib para el transporte; no requiere librerías de terceros.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-cli/internal/domain"
	"github.com/jhoicas/Almacen-cli/pkg/logger"
)

// maxBodyBytes limita la lectura de respuestas del servidor (4 MB).
const maxBodyBytes = 4 << 20

// TokenSource provee el token de sesión vigente ("" si no hay sesión).
type TokenSource interface {
	Token() string
}

// APIError es el error normalizado que el servidor devuelve en el cuerpo
// (taxonomía: error con payload del servidor, distinta del fallo de transporte).
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implementa error.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (HTTP %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: HTTP %d", e.StatusCode)
}

// errorBody formas de payload de error observadas en el servidor.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client envuelve la capa de red hacia el API remoto.
//
// En cada petición adjunta el bearer token (si existe) y un X-Request-ID.
// Cuando una petición autenticada que no es de login/registro recibe 401,
// invoca el hook de sesión expirada y devuelve domain.ErrSessionExpired;
// un 401 en login/registro se entrega al caller (credenciales inválidas no
// deben tumbar una sesión ajena ni provocar bucles de re-login).
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokens           TokenSource
	onSessionExpired func()
	log              *logger.Logger
}

// NewClient construye el cliente. baseURL sin slash final (ej. https://wms.example.com).
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log,
	}
}

// SetSessionExpiredHook registra la función a invocar cuando una petición
// autenticada recibe 401 (equivale al redirect a /login del cliente web).
func (c *Client) SetSessionExpiredHook(fn func()) {
	c.onSessionExpired = fn
}

// anonAuthPaths rutas de auth que pueden responder 401 por credenciales
// inválidas sin que signifique sesión expirada.
var anonAuthPaths = []string{
	"/api/auth/login",
	"/api/auth/register",
}

func isAnonAuthPath(path string) bool {
	for _, p := range anonAuthPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// get ejecuta GET path y decodifica la respuesta en out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post ejecuta POST path con body JSON y decodifica la respuesta en out (out puede ser nil).
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// put ejecuta PUT path con body JSON y decodifica la respuesta en out (out puede ser nil).
func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// del ejecuta DELETE path.
func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do arma y ejecuta la petición: serializa body, adjunta headers y token,
// normaliza errores de transporte y de servidor.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rest: serializar body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("rest: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := ""
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("petición al API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("rest: petición cancelada: %w", ctx.Err())
		}
		return fmt.Errorf("rest: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("rest: leer respuesta: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && token != "" && !isAnonAuthPath(path) {
		// Sesión expirada o token inválido: limpiar sesión y cortar aquí.
		c.log.Warn().Str("path", path).Msg("401 autenticado, sesión expirada")
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		return domain.ErrSessionExpired
	}

	if resp.StatusCode >= 400 {
		return c.parseError(resp.StatusCode, rawBody)
	}

	if out != nil && len(rawBody) > 0 {
		if err := json.Unmarshal(rawBody, out); err != nil {
			return fmt.Errorf("rest: decodificar respuesta: %w", err)
		}
	}
	return nil
}

// parseError extrae el mensaje del payload de error del servidor; si el
// cuerpo no es JSON conocido, conserva el status con un mensaje genérico.
func (c *Client) parseError(status int, rawBody []byte) error {
	apiErr := &APIError{StatusCode: status}
	var body errorBody
	if err := json.Unmarshal(rawBody, &body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	if status == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, apiErr.Message)
	}
	if status == http.StatusForbidden {
		return fmt.Errorf("%w: %s", domain.ErrForbidden, apiErr.Message)
	}
	return apiErr
}
