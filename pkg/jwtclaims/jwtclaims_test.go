package jwtclaims_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-cli/pkg/jwtclaims"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("x"))
	require.NoError(t, err)
	return s
}

func TestDecode_SinVerificarFirma(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	token := sign(t, jwt.MapClaims{
		"sub": "u1", "username": "maria", "role": float64(1),
		"exp": now.Add(time.Hour).Unix(),
	})

	claims, err := jwtclaims.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, "u1", claims.Subject)
	assert.False(t, claims.IsExpired(now))
	assert.True(t, claims.IsExpired(now.Add(2*time.Hour)))
}

func TestDecode_TokenVacioOMalformado(t *testing.T) {
	_, err := jwtclaims.Decode("")
	assert.Error(t, err)

	_, err = jwtclaims.Decode("no.es.jwt")
	assert.Error(t, err)
}

func TestClaims_SinExp_NoExpira(t *testing.T) {
	claims, err := jwtclaims.Decode(sign(t, jwt.MapClaims{"username": "maria"}))
	require.NoError(t, err)
	assert.False(t, claims.IsExpired(time.Now().Add(100*365*24*time.Hour)))
}
