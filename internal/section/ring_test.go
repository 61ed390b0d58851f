package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runlevel0/cross-section/internal/geometry"
)

func TestRingSectionClosedForms(t *testing.T) {
	s, err := NewRingSection(geometry.Point{}, 2, 1)
	require.NoError(t, err)
	p := s.Properties()

	assert.InDelta(t, 3*math.Pi, p.Area, 1e-12)
	assert.InDelta(t, 15*math.Pi/4, p.Ixx, 1e-12)
	assert.InDelta(t, 15*math.Pi/4, p.Iyy, 1e-12)
	assert.InDelta(t, 0.0, p.Ixy, 1e-12)
	assert.InDelta(t, 15*math.Pi/2, p.J, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), p.Rx, 1e-12)
	assert.InDelta(t, 0.0, p.Angle, 1e-12)
	assert.InDelta(t, p.I1, p.I2, 1e-12)
}

func TestRingSectionSolidCircle(t *testing.T) {
	s, err := NewRingSection(geometry.Pt(3, -2), 1, 0)
	require.NoError(t, err)
	p := s.Properties()

	assert.InDelta(t, math.Pi, p.Area, 1e-12)
	assert.InDelta(t, math.Pi/4, p.Ixx, 1e-12)
	assert.InDelta(t, 3.0, p.Centroid.X, 1e-12)
	assert.InDelta(t, -2.0, p.Centroid.Y, 1e-12)
}

func TestRingSectionFromDiameter(t *testing.T) {
	byRadii, err := NewRingSection(geometry.Point{}, 2, 1)
	require.NoError(t, err)

	byDiameter, err := NewRingSectionFromDiameter(geometry.Point{}, 4, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, byDiameter.OuterRadius(), 1e-12)
	assert.InDelta(t, 1.0, byDiameter.InnerRadius(), 1e-12)
	assert.Equal(t, byRadii.Properties(), byDiameter.Properties())

	// Wall thickness equal to the outer radius means solid.
	solid, err := NewRingSectionFromDiameter(geometry.Point{}, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, solid.InnerRadius(), 1e-12)
}

func TestRingSectionValidation(t *testing.T) {
	tests := []struct {
		name         string
		outer, inner float64
	}{
		{name: "zero outer radius", outer: 0, inner: 0},
		{name: "negative outer radius", outer: -1, inner: 0},
		{name: "negative inner radius", outer: 2, inner: -0.5},
		{name: "inner equals outer", outer: 2, inner: 2},
		{name: "inner exceeds outer", outer: 2, inner: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRingSection(geometry.Point{}, tt.outer, tt.inner)
			var invErr *geometry.InvalidGeometryError
			require.ErrorAs(t, err, &invErr)
		})
	}

	// Zero and over-thick walls fail through the radius rules.
	_, err := NewRingSectionFromDiameter(geometry.Point{}, 4, 0)
	require.Error(t, err)
	_, err = NewRingSectionFromDiameter(geometry.Point{}, 4, 3)
	require.Error(t, err)
}

func TestRingSectionMatchesPolygonApproximation(t *testing.T) {
	// An annulus approximated by two 512-gons must agree with the closed
	// forms to a few parts in ten thousand.
	ring, err := NewRingSection(geometry.Point{}, 2, 1)
	require.NoError(t, err)

	approx := mustGeneric(t,
		geometry.RegularPolygonPoints(geometry.Point{}, 2, 512),
		geometry.RegularPolygonPoints(geometry.Point{}, 1, 512),
	)

	rp, ap := ring.Properties(), approx.Properties()
	assert.InEpsilon(t, rp.Area, ap.Area, 1e-3)
	assert.InEpsilon(t, rp.Ixx, ap.Ixx, 1e-3)
	assert.InEpsilon(t, rp.Iyy, ap.Iyy, 1e-3)
	assert.InDelta(t, 0.0, ap.Ixy, 1e-9)
}

func TestRingSectionTransforms(t *testing.T) {
	s, err := NewRingSection(geometry.Point{}, 2, 1)
	require.NoError(t, err)

	moved := s.Translated(5, 1)
	assert.Equal(t, geometry.Pt(5, 1), moved.Center())
	assert.InDelta(t, s.Properties().Ixx, moved.Properties().Ixx, 1e-12)
	assert.Equal(t, geometry.Point{}, s.Center())

	rot := moved.Rotated(math.Pi, geometry.Point{})
	assert.InDelta(t, -5.0, rot.Center().X, 1e-12)
	assert.InDelta(t, -1.0, rot.Center().Y, 1e-12)
}
