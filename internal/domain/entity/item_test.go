package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

func TestParseItemStatus_NumeroYString(t *testing.T) {
	cases := []struct {
		in   interface{}
		want entity.ItemStatus
	}{
		{0, entity.StatusAvailable},
		{"Available", entity.StatusAvailable},
		{2, entity.StatusInTransit},
		{"InTransit", entity.StatusInTransit},
		{"in transit", entity.StatusInTransit},
		{4, entity.StatusExpired},
		{"expired", entity.StatusExpired},
		{9, entity.StatusUnknown},
		{"roto", entity.StatusUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.ParseItemStatus(c.in), "entrada %v", c.in)
	}
}

func TestItemStatus_UnmarshalAmbasFormas(t *testing.T) {
	var i1, i2 entity.Item
	require.NoError(t, json.Unmarshal([]byte(`{"serialNumber":"SN1","status":3}`), &i1))
	require.NoError(t, json.Unmarshal([]byte(`{"serialNumber":"SN1","status":"Damaged"}`), &i2))

	assert.Equal(t, entity.StatusDamaged, i1.Status)
	assert.Equal(t, entity.StatusDamaged, i2.Status)
}

func TestInventoryCounts_Consistent(t *testing.T) {
	ok := entity.InventoryCounts{Total: 6, Available: 1, Reserved: 1, InTransit: 1, Damaged: 1, Expired: 1, OutOfStock: 1}
	bad := entity.InventoryCounts{Total: 10, Available: 1}

	assert.True(t, ok.Consistent())
	assert.False(t, bad.Consistent(), "la verificación es solo diagnóstico local")
}
