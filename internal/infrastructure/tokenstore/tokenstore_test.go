package tokenstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-cli/internal/infrastructure/tokenstore"
)

func TestStore_ArchivoAusente_NoEsError(t *testing.T) {
	s, err := tokenstore.NewStore(filepath.Join(t.TempDir(), "no-existe", "token"))
	require.NoError(t, err)
	assert.Empty(t, s.Token())
}

func TestStore_SaveYRecarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almacen", "token")

	s, err := tokenstore.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("tok-abc"))
	assert.Equal(t, "tok-abc", s.Token())

	// Un store nuevo sobre la misma ruta recupera el token, como en un
	// arranque posterior del proceso.
	s2, err := tokenstore.NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", s2.Token())
}

func TestStore_PermisosRestrictivos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s, err := tokenstore.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("tok"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(),
		"el token es una credencial: solo el dueño lo lee")
}

func TestStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s, err := tokenstore.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("tok"))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "el archivo queda borrado")

	// Clear es idempotente.
	require.NoError(t, s.Clear())
}

func TestStore_SaveSobrescribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s, err := tokenstore.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("viejo"))
	require.NoError(t, s.Save("nuevo"))

	s2, err := tokenstore.NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "nuevo", s2.Token())
}
