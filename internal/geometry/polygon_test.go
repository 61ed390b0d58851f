package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() Ring {
	return Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestNewPolygonNormalizesWinding(t *testing.T) {
	// Clockwise input must come out counter-clockwise.
	cw := Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	p, err := NewPolygon(cw)
	require.NoError(t, err)
	assert.Greater(t, p.Outer.SignedArea(), 0.0)

	// A counter-clockwise hole must come out clockwise.
	hole := Ring{{0.25, 0.25}, {0.75, 0.25}, {0.75, 0.75}, {0.25, 0.75}}
	p, err = NewPolygon(unitSquare(), hole)
	require.NoError(t, err)
	require.Len(t, p.Holes, 1)
	assert.Less(t, p.Holes[0].SignedArea(), 0.0)
}

func TestNewPolygonRejectsBadRings(t *testing.T) {
	tests := []struct {
		name       string
		outer      Ring
		holes      []Ring
		degenerate bool
	}{
		{
			name:  "outer with two vertices",
			outer: Ring{{0, 0}, {1, 1}},
		},
		{
			name:       "collinear outer",
			outer:      Ring{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
			degenerate: true,
		},
		{
			name:       "coincident outer",
			outer:      Ring{{2, 2}, {2, 2}, {2, 2}},
			degenerate: true,
		},
		{
			name:  "hole with two vertices",
			outer: unitSquare(),
			holes: []Ring{{{0.2, 0.2}, {0.8, 0.8}}},
		},
		{
			name:  "collinear hole",
			outer: unitSquare(),
			holes: []Ring{{{0.2, 0.2}, {0.5, 0.5}, {0.8, 0.8}}},
		},
		{
			name:  "hole outside the outer bounds",
			outer: unitSquare(),
			holes: []Ring{{{0.5, 0.5}, {1.5, 0.5}, {1.5, 1.5}, {0.5, 1.5}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolygon(tt.outer, tt.holes...)
			require.Error(t, err)
			if tt.degenerate {
				var degErr *DegenerateGeometryError
				assert.ErrorAs(t, err, &degErr)
			} else {
				var invErr *InvalidGeometryError
				assert.ErrorAs(t, err, &invErr)
			}
		})
	}
}

func TestNewPolygonCopiesInput(t *testing.T) {
	outer := unitSquare()
	p, err := NewPolygon(outer)
	require.NoError(t, err)

	outer[0] = Point{X: -100, Y: -100}
	assert.Equal(t, Point{0, 0}, p.Outer[0])
}

func TestPolygonBoundsAndPerimeter(t *testing.T) {
	hole := Ring{{0.25, 0.25}, {0.75, 0.25}, {0.75, 0.75}, {0.25, 0.75}}
	p, err := NewPolygon(unitSquare(), hole)
	require.NoError(t, err)

	min, max := p.Bounds()
	assert.Equal(t, Point{0, 0}, min)
	assert.Equal(t, Point{1, 1}, max)

	// Outer 4.0 plus hole 2.0.
	assert.InDelta(t, 6.0, p.Perimeter(), 1e-12)
}

func TestPolygonTransforms(t *testing.T) {
	p, err := NewPolygon(unitSquare())
	require.NoError(t, err)

	moved := p.Translated(3, -2)
	min, max := moved.Bounds()
	assert.Equal(t, Point{3, -2}, min)
	assert.Equal(t, Point{4, -1}, max)
	// Original untouched.
	min, _ = p.Bounds()
	assert.Equal(t, Point{0, 0}, min)

	rot := p.RotatedAbout(Point{}, math.Pi/2)
	min, max = rot.Bounds()
	assert.InDelta(t, -1, min.X, 1e-12)
	assert.InDelta(t, 0, min.Y, 1e-12)
	assert.InDelta(t, 0, max.X, 1e-12)
	assert.InDelta(t, 1, max.Y, 1e-12)
	assert.Greater(t, rot.Outer.SignedArea(), 0.0)
}
