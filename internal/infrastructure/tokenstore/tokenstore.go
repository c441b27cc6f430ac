// Package tokenstore persiste el token de sesión en disco. Es el único
// estado durable del cliente: un string bajo una ruta fija, el equivalente
// de la clave "token" del storage del navegador.
package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store guarda el token en un archivo con permisos 0600 y lo cachea en memoria.
type Store struct {
	path string

	mu    sync.RWMutex
	token string
}

// NewStore construye el store y carga el token existente si lo hay.
// Un archivo ausente no es error: simplemente no hay sesión.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("tokenstore: leer %s: %w", path, err)
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token devuelve el token vigente ("" si no hay). Implementa rest.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Save persiste el token en disco y actualiza la caché.
func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("tokenstore: crear directorio: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("tokenstore: escribir %s: %w", s.path, err)
	}
	s.token = token
	return nil
}

// Clear borra el token de memoria y de disco. Borrar un archivo ya
// inexistente no es error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("tokenstore: borrar %s: %w", s.path, err)
	}
	return nil
}
