package geometry

import (
	"fmt"
	"math"
)

// degenerateEps is the relative tolerance below which a ring's enclosed
// area, measured against its bounding-box size, counts as zero.
const degenerateEps = 1e-12

// Ring is a closed loop of vertices. The edge from the last vertex back to
// the first is implicit; the first vertex must not be repeated at the end.
type Ring []Point

// SignedArea returns the area enclosed by the ring via the shoelace formula:
// positive for counter-clockwise winding, negative for clockwise.
func (r Ring) SignedArea() float64 {
	var sum float64
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return sum / 2
}

// Bounds returns the corners of the ring's axis-aligned bounding box.
func (r Ring) Bounds() (min, max Point) {
	if len(r) == 0 {
		return Point{}, Point{}
	}
	min, max = r[0], r[0]
	for _, v := range r[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}

// Perimeter returns the total edge length of the ring.
func (r Ring) Perimeter() float64 {
	var sum float64
	n := len(r)
	for i := 0; i < n; i++ {
		sum += r[i].Distance(r[(i+1)%n])
	}
	return sum
}

// reversed returns a copy of the ring with the winding flipped.
func (r Ring) reversed() Ring {
	out := make(Ring, len(r))
	for i, v := range r {
		out[len(r)-1-i] = v
	}
	return out
}

// isDegenerate reports whether the ring encloses no area relative to its
// own extent (collinear or coincident vertices).
func (r Ring) isDegenerate() bool {
	min, max := r.Bounds()
	ext := max.Sub(min)
	return math.Abs(r.SignedArea()) <= degenerateEps*(ext.X*ext.X+ext.Y*ext.Y)
}

// Polygon is a simple polygon with optional holes. After construction the
// outer ring winds counter-clockwise and every hole winds clockwise, so
// holes subtract naturally during boundary integration.
//
// Rings must not self-intersect and holes must lie inside the outer
// boundary without overlapping each other; only cheap violations of this
// are detected, the rest is the caller's contract.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// NewPolygon validates and normalizes a boundary: at least 3 vertices per
// ring, a non-degenerate outer ring, holes boxed inside the outer bounds.
// The input rings are copied; either winding direction is accepted.
func NewPolygon(outer Ring, holes ...Ring) (Polygon, error) {
	if len(outer) < 3 {
		return Polygon{}, &InvalidGeometryError{
			Reason: fmt.Sprintf("outer ring has %d vertices, need at least 3", len(outer)),
		}
	}
	if outer.isDegenerate() {
		return Polygon{}, &DegenerateGeometryError{Reason: "outer ring encloses no area"}
	}

	p := Polygon{Outer: append(Ring(nil), outer...)}
	if p.Outer.SignedArea() < 0 {
		p.Outer = p.Outer.reversed()
	}
	oMin, oMax := p.Outer.Bounds()

	for i, hole := range holes {
		if len(hole) < 3 {
			return Polygon{}, &InvalidGeometryError{
				Reason: fmt.Sprintf("hole %d has %d vertices, need at least 3", i+1, len(hole)),
			}
		}
		if hole.isDegenerate() {
			return Polygon{}, &InvalidGeometryError{
				Reason: fmt.Sprintf("hole %d encloses no area", i+1),
			}
		}
		hMin, hMax := hole.Bounds()
		if hMin.X < oMin.X || hMin.Y < oMin.Y || hMax.X > oMax.X || hMax.Y > oMax.Y {
			return Polygon{}, &InvalidGeometryError{
				Reason: fmt.Sprintf("hole %d extends outside the outer boundary", i+1),
			}
		}
		h := append(Ring(nil), hole...)
		if h.SignedArea() > 0 {
			h = h.reversed()
		}
		p.Holes = append(p.Holes, h)
	}

	return p, nil
}

// Bounds returns the bounding box of the outer ring.
func (p Polygon) Bounds() (min, max Point) {
	return p.Outer.Bounds()
}

// Perimeter returns the combined edge length of the outer ring and all holes.
func (p Polygon) Perimeter() float64 {
	sum := p.Outer.Perimeter()
	for _, h := range p.Holes {
		sum += h.Perimeter()
	}
	return sum
}

// Translated returns a copy of the polygon shifted by (dx, dy).
func (p Polygon) Translated(dx, dy float64) Polygon {
	d := Point{X: dx, Y: dy}
	out := Polygon{Outer: make(Ring, len(p.Outer))}
	for i, v := range p.Outer {
		out.Outer[i] = v.Add(d)
	}
	for _, h := range p.Holes {
		th := make(Ring, len(h))
		for i, v := range h {
			th[i] = v.Add(d)
		}
		out.Holes = append(out.Holes, th)
	}
	return out
}

// RotatedAbout returns a copy rotated by theta radians counter-clockwise
// about the given center. Rotation preserves winding, so no renormalization
// is needed.
func (p Polygon) RotatedAbout(center Point, theta float64) Polygon {
	out := Polygon{Outer: make(Ring, len(p.Outer))}
	for i, v := range p.Outer {
		out.Outer[i] = v.RotatedAbout(center, theta)
	}
	for _, h := range p.Holes {
		rh := make(Ring, len(h))
		for i, v := range h {
			rh[i] = v.RotatedAbout(center, theta)
		}
		out.Holes = append(out.Holes, rh)
	}
	return out
}

// rings returns the outer ring followed by the holes.
func (p Polygon) rings() []Ring {
	return append([]Ring{p.Outer}, p.Holes...)
}
