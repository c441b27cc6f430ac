package jwtclaims

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims son los claims que el servidor incluye en el token de sesión.
// El cliente NO valida la firma (no conoce el secret del servidor); solo
// decodifica el payload para hints locales: expiración y datos del usuario.
// La autoridad sobre el token la tiene siempre el servidor.
type Claims struct {
	jwt.RegisteredClaims
	Username string      `json:"username,omitempty"`
	Role     interface{} `json:"role,omitempty"` // el servidor envía número o string; normalizar en entity.ParseRole
}

// Decode decodifica el token sin verificar la firma y devuelve sus claims.
// Retorna error si el token está malformado.
func Decode(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwtclaims: token vacío")
	}
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwtclaims: token malformado: %w", err)
	}
	return claims, nil
}

// IsExpired indica si el token ya expiró según su claim exp y el instante now.
// Un token sin exp se considera no expirado (decide el servidor).
func (c *Claims) IsExpired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return now.After(c.ExpiresAt.Time)
}
