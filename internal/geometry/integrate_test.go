package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func integrateRing(t *testing.T, outer Ring, holes ...Ring) AreaProperties {
	t.Helper()
	p, err := NewPolygon(outer, holes...)
	require.NoError(t, err)
	return Integrate(p)
}

func TestIntegrateUnitSquare(t *testing.T) {
	got := integrateRing(t, unitSquare())

	assert.InDelta(t, 1.0, got.Area, 1e-12)
	assert.InDelta(t, 0.5, got.Centroid.X, 1e-12)
	assert.InDelta(t, 0.5, got.Centroid.Y, 1e-12)
	assert.InDelta(t, 1.0/12, got.Ixx, 1e-12)
	assert.InDelta(t, 1.0/12, got.Iyy, 1e-12)
	assert.InDelta(t, 0.0, got.Ixy, 1e-12)
}

func TestIntegrateRectangleClosedForms(t *testing.T) {
	// 4 wide by 2 high, centered at the origin: Ixx = b·h³/12, Iyy = h·b³/12.
	got := integrateRing(t, RectanglePoints(Point{}, 4, 2))

	assert.InDelta(t, 8.0, got.Area, 1e-12)
	assert.InDelta(t, 0.0, got.Centroid.X, 1e-12)
	assert.InDelta(t, 0.0, got.Centroid.Y, 1e-12)
	assert.InDelta(t, 4*8.0/12, got.Ixx, 1e-12)
	assert.InDelta(t, 2*64.0/12, got.Iyy, 1e-12)
	assert.InDelta(t, 0.0, got.Ixy, 1e-12)
}

func TestIntegrateRightTriangle(t *testing.T) {
	// Legs b=3 along x and h=6 along y. Table values about the centroid:
	// Ixx = b·h³/36, Iyy = h·b³/36, Ixy = -b²·h²/72.
	got := integrateRing(t, Ring{{0, 0}, {3, 0}, {0, 6}})

	assert.InDelta(t, 9.0, got.Area, 1e-12)
	assert.InDelta(t, 1.0, got.Centroid.X, 1e-12)
	assert.InDelta(t, 2.0, got.Centroid.Y, 1e-12)
	assert.InDelta(t, 18.0, got.Ixx, 1e-9)
	assert.InDelta(t, 4.5, got.Iyy, 1e-9)
	assert.InDelta(t, -4.5, got.Ixy, 1e-9)
}

func TestIntegrateSubtractsHoles(t *testing.T) {
	// 4x4 square with a centered 2x2 hole: A = 16-4, I = (4⁴-2⁴)/12.
	got := integrateRing(t,
		RectanglePoints(Point{}, 4, 4),
		RectanglePoints(Point{}, 2, 2),
	)

	assert.InDelta(t, 12.0, got.Area, 1e-12)
	assert.InDelta(t, 0.0, got.Centroid.X, 1e-12)
	assert.InDelta(t, 0.0, got.Centroid.Y, 1e-12)
	assert.InDelta(t, 20.0, got.Ixx, 1e-12)
	assert.InDelta(t, 20.0, got.Iyy, 1e-12)
	assert.InDelta(t, 0.0, got.Ixy, 1e-12)
}

func TestIntegrateOffCenterHoleShiftsCentroid(t *testing.T) {
	got := integrateRing(t,
		RectanglePoints(Point{}, 6, 4),
		RectanglePoints(Point{X: 1.5, Y: 0.5}, 1, 1),
	)

	assert.InDelta(t, 23.0, got.Area, 1e-12)
	assert.InDelta(t, -1.5/23, got.Centroid.X, 1e-12)
	assert.InDelta(t, -0.5/23, got.Centroid.Y, 1e-12)
}

func TestIntegrateFarFromOrigin(t *testing.T) {
	// The same rectangle a million units out must keep its centroidal
	// moments; anchoring the integrals at a boundary vertex is what stops
	// the cancellation error here.
	local := integrateRing(t, RectanglePoints(Point{}, 4, 2))
	far := integrateRing(t, RectanglePoints(Point{X: 1e6, Y: -2e6}, 4, 2))

	assert.InDelta(t, local.Area, far.Area, 1e-9)
	assert.InDelta(t, 1e6, far.Centroid.X, 1e-6)
	assert.InDelta(t, -2e6, far.Centroid.Y, 1e-6)
	assert.InEpsilon(t, local.Ixx, far.Ixx, 1e-9)
	assert.InEpsilon(t, local.Iyy, far.Iyy, 1e-9)
	assert.InDelta(t, 0.0, far.Ixy, 1e-6)
}

func TestRegularPolygonApproachesCircle(t *testing.T) {
	// Inscribed n-gon area is (n/2)·R²·sin(2π/n); by n=256 it should sit
	// within a tenth of a percent of the circle values.
	const r = 1.5
	got := integrateRing(t, RegularPolygonPoints(Point{}, r, 256))

	assert.InEpsilon(t, math.Pi*r*r, got.Area, 1e-3)
	assert.InEpsilon(t, math.Pi/4*r*r*r*r, got.Ixx, 2e-3)
	assert.InEpsilon(t, math.Pi/4*r*r*r*r, got.Iyy, 2e-3)
	assert.InDelta(t, 0.0, got.Ixy, 1e-9)
	assert.InDelta(t, 0.0, got.Centroid.X, 1e-12)
	assert.InDelta(t, 0.0, got.Centroid.Y, 1e-12)
}
