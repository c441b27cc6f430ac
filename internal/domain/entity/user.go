package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Role es el rol de un usuario dentro del sistema.
//
// El servidor lo serializa a veces como número (0/1/2) y a veces como string
// ("Admin"/"Manager"/"Employee"); la normalización ocurre aquí, en el borde,
// para que el resto del código solo vea el enum.
type Role int

// Roles válidos para User.
const (
	RoleAdmin Role = iota
	RoleManager
	RoleEmployee
	RoleUnknown Role = -1
)

// String devuelve la representación canónica del rol.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleManager:
		return "Manager"
	case RoleEmployee:
		return "Employee"
	default:
		return "Unknown"
	}
}

// ParseRole normaliza cualquier representación que envíe el servidor
// (número JSON, int, string con cualquier capitalización) al enum Role.
func ParseRole(v interface{}) Role {
	switch t := v.(type) {
	case Role:
		return t
	case float64:
		return roleFromInt(int(t))
	case int:
		return roleFromInt(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return roleFromInt(int(n))
		}
		return RoleUnknown
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "admin", "0":
			return RoleAdmin
		case "manager", "1":
			return RoleManager
		case "employee", "2":
			return RoleEmployee
		}
		return RoleUnknown
	default:
		return RoleUnknown
	}
}

func roleFromInt(n int) Role {
	if n < 0 || n > 2 {
		return RoleUnknown
	}
	return Role(n)
}

// UnmarshalJSON acepta número o string (ambas formas observadas en el servidor).
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw interface{}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("role: %w", err)
	}
	*r = ParseRole(raw)
	return nil
}

// MarshalJSON emite siempre la forma string canónica.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// User representa un usuario del sistema.
type User struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        Role       `json:"role"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// FullName devuelve "FirstName LastName" sin espacios sobrantes.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin indica si el usuario es administrador.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// IsManager indica si el usuario es manager.
func (u User) IsManager() bool { return u.Role == RoleManager }

// IsEmployee indica si el usuario es empleado.
func (u User) IsEmployee() bool { return u.Role == RoleEmployee }

// CanManage indica si el usuario puede ver las acciones de gestión.
// Solo controla visibilidad en el cliente: la autorización real es del servidor.
func (u User) CanManage() bool { return u.IsAdmin() || u.IsManager() }
