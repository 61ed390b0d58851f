package geometry

// AreaProperties holds the integral properties of a polygon: enclosed area,
// centroid, and the second moments of area about centroidal axes parallel
// to the global x and y axes.
type AreaProperties struct {
	Area     float64
	Centroid Point
	Ixx      float64
	Iyy      float64
	Ixy      float64
}

// integrals accumulates the Green's-theorem boundary integrals of a ring.
// Counter-clockwise rings contribute positively, clockwise rings (holes)
// negatively.
type integrals struct {
	area float64 // ∫ dA
	qx   float64 // ∫ y dA
	qy   float64 // ∫ x dA
	ixx  float64 // ∫ y² dA
	iyy  float64 // ∫ x² dA
	ixy  float64 // ∫ xy dA
}

func (a *integrals) add(b integrals) {
	a.area += b.area
	a.qx += b.qx
	a.qy += b.qy
	a.ixx += b.ixx
	a.iyy += b.iyy
	a.ixy += b.ixy
}

// ringIntegrals evaluates the boundary integrals of one ring in coordinates
// relative to base. Working relative to a vertex near the ring keeps the
// edge cross products small, so polygons far from the origin do not lose
// precision to cancellation.
func ringIntegrals(r Ring, base Point) integrals {
	var acc integrals
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		x0, y0 := r[i].X-base.X, r[i].Y-base.Y
		x1, y1 := r[j].X-base.X, r[j].Y-base.Y
		cross := x0*y1 - x1*y0

		acc.area += cross
		acc.qy += (x0 + x1) * cross
		acc.qx += (y0 + y1) * cross
		acc.ixx += (y0*y0 + y0*y1 + y1*y1) * cross
		acc.iyy += (x0*x0 + x0*x1 + x1*x1) * cross
		acc.ixy += (x0*y1 + 2*x0*y0 + 2*x1*y1 + x1*y0) * cross
	}
	acc.area /= 2
	acc.qx /= 6
	acc.qy /= 6
	acc.ixx /= 12
	acc.iyy /= 12
	acc.ixy /= 24
	return acc
}

// Integrate computes the area properties of a polygon by boundary
// integration over the outer ring and holes. The polygon must come from
// NewPolygon so the windings are normalized; holes then subtract their
// share of every integral.
//
// The second moments are reduced to the centroid with the parallel-axis
// theorem, so the result is independent of where the polygon sits.
func Integrate(p Polygon) AreaProperties {
	base := p.Outer[0]
	var acc integrals
	for _, r := range p.rings() {
		acc.add(ringIntegrals(r, base))
	}

	if acc.area == 0 {
		return AreaProperties{Centroid: base}
	}

	// Centroid relative to base, then the parallel-axis shift of the
	// base-frame moments onto centroidal axes.
	cx := acc.qy / acc.area
	cy := acc.qx / acc.area
	return AreaProperties{
		Area:     acc.area,
		Centroid: Point{X: base.X + cx, Y: base.Y + cy},
		Ixx:      acc.ixx - acc.area*cy*cy,
		Iyy:      acc.iyy - acc.area*cx*cx,
		Ixy:      acc.ixy - acc.area*cx*cy,
	}
}
