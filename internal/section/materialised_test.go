package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runlevel0/cross-section/internal/geometry"
	"github.com/runlevel0/cross-section/internal/material"
)

var _ Weighted = (*MaterialisedSection)(nil)
var _ Section = (*GenericSection)(nil)
var _ Section = (*RingSection)(nil)

func TestMaterialisedSectionWeighting(t *testing.T) {
	ring, err := NewRingSection(geometry.Point{}, 2, 1)
	require.NoError(t, err)

	m := material.Material{Name: "test", Density: 2, Modulus: 10}
	ms, err := NewMaterialisedSection(ring, m)
	require.NoError(t, err)

	w := ms.WeightedProperties()
	assert.InDelta(t, 2*3*math.Pi, w.Mass, 1e-9)
	assert.InDelta(t, 10*3*math.Pi, w.EA, 1e-9)
	assert.InDelta(t, 10*15*math.Pi/4, w.EIxx, 1e-9)
	assert.InDelta(t, 10*15*math.Pi/4, w.EIyy, 1e-9)

	// Geometric record passes through untouched.
	assert.Equal(t, ring.Properties(), ms.Properties())
	assert.Equal(t, m, ms.Material())
	assert.Equal(t, Section(ring), ms.Section())
}

func TestMaterialisedSectionRejectsBadMaterial(t *testing.T) {
	sq := mustGeneric(t, geometry.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})

	_, err := NewMaterialisedSection(sq, material.Material{Density: -1})
	var invErr *material.InvalidMaterialError
	require.ErrorAs(t, err, &invErr)
}
