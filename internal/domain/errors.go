package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrSessionExpired = errors.New("sesión expirada, inicie sesión de nuevo")
	ErrNotLoggedIn    = errors.New("no hay sesión activa")
)
