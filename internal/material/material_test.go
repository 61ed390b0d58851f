package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Material
		wantErr bool
	}{
		{name: "steel-ish", m: Material{Name: "s", Density: 7850, Modulus: 200e9}},
		{name: "zero values are legal", m: Material{}},
		{name: "negative density", m: Material{Density: -1, Modulus: 1}, wantErr: true},
		{name: "negative modulus", m: Material{Density: 1, Modulus: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				var invErr *InvalidMaterialError
				require.ErrorAs(t, err, &invErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	m, ok := Lookup("Steel")
	require.True(t, ok)
	assert.Equal(t, "steel", m.Name)
	assert.InDelta(t, 7850.0, m.Density, 1e-9)
	assert.InDelta(t, 200e9, m.Modulus, 1)

	_, ok = Lookup("unobtainium")
	assert.False(t, ok)
}

func TestCatalogIsACopy(t *testing.T) {
	c := Catalog()
	require.NotEmpty(t, c)
	c[0].Density = -42

	m, ok := Lookup(c[0].Name)
	require.True(t, ok)
	assert.Greater(t, m.Density, 0.0)
}
