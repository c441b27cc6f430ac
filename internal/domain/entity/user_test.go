package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// El servidor envía el rol como número o como string; ambas formas deben
// normalizar al mismo enum en el borde.

func TestParseRole_NumeroYStringEquivalen(t *testing.T) {
	cases := []struct {
		in   interface{}
		want entity.Role
	}{
		{0, entity.RoleAdmin},
		{"Admin", entity.RoleAdmin},
		{"admin", entity.RoleAdmin},
		{float64(1), entity.RoleManager},
		{"Manager", entity.RoleManager},
		{2, entity.RoleEmployee},
		{"EMPLOYEE", entity.RoleEmployee},
		{"bodeguero", entity.RoleUnknown},
		{7, entity.RoleUnknown},
		{nil, entity.RoleUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.ParseRole(c.in), "entrada %v", c.in)
	}
}

func TestRole_UnmarshalNumeroYString(t *testing.T) {
	var u1, u2 entity.User
	require.NoError(t, json.Unmarshal([]byte(`{"username":"maria","role":0}`), &u1))
	require.NoError(t, json.Unmarshal([]byte(`{"username":"maria","role":"Admin"}`), &u2))

	assert.Equal(t, entity.RoleAdmin, u1.Role, "rol numérico 0 es Admin")
	assert.Equal(t, entity.RoleAdmin, u2.Role, "rol string Admin es Admin")
	assert.True(t, u1.IsAdmin())
	assert.True(t, u2.IsAdmin())
}

// canManage == isAdmin || isManager para todo rol.
func TestUser_CanManageDerivado(t *testing.T) {
	for _, role := range []entity.Role{
		entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee, entity.RoleUnknown,
	} {
		u := entity.User{Role: role}
		assert.Equal(t, u.IsAdmin() || u.IsManager(), u.CanManage(), "rol %s", role)
	}
	assert.True(t, entity.User{Role: entity.RoleManager}.CanManage())
	assert.False(t, entity.User{Role: entity.RoleEmployee}.CanManage())
}

func TestRole_MarshalFormaCanonica(t *testing.T) {
	data, err := json.Marshal(entity.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, `"Manager"`, string(data))
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "María Gómez", entity.User{FirstName: "María", LastName: "Gómez"}.FullName())
	assert.Equal(t, "María", entity.User{FirstName: "María"}.FullName())
	assert.Equal(t, "", entity.User{}.FullName())
}
