package section

import "github.com/runlevel0/cross-section/internal/geometry"

// GenericSection is a cross-section bounded by an arbitrary simple polygon
// with optional holes. Its properties come from Green's-theorem boundary
// integration, computed once at construction.
type GenericSection struct {
	polygon geometry.Polygon
	props   Properties
}

// NewGenericSection validates the boundary rings and computes the section
// properties. Beyond the ring rules, the polygon must enclose a net
// positive area once the holes are subtracted.
func NewGenericSection(outer geometry.Ring, holes ...geometry.Ring) (*GenericSection, error) {
	poly, err := geometry.NewPolygon(outer, holes...)
	if err != nil {
		return nil, err
	}
	s := fromValidPolygon(poly)
	if s.props.Area <= 0 {
		return nil, &geometry.DegenerateGeometryError{Reason: "holes consume the entire outer area"}
	}
	return s, nil
}

// fromValidPolygon computes properties for a polygon that already passed
// validation, as after a rigid transform.
func fromValidPolygon(poly geometry.Polygon) *GenericSection {
	ap := geometry.Integrate(poly)
	return &GenericSection{
		polygon: poly,
		props:   newProperties(ap.Area, ap.Centroid, ap.Ixx, ap.Iyy, ap.Ixy),
	}
}

// Properties returns the centroidal property record.
func (s *GenericSection) Properties() Properties {
	return s.props
}

// Polygon returns the normalized boundary.
func (s *GenericSection) Polygon() geometry.Polygon {
	return s.polygon
}

// Bounds returns the bounding box of the outer ring.
func (s *GenericSection) Bounds() (min, max geometry.Point) {
	return s.polygon.Bounds()
}

// Translated returns a new section shifted by (dx, dy).
func (s *GenericSection) Translated(dx, dy float64) *GenericSection {
	return fromValidPolygon(s.polygon.Translated(dx, dy))
}

// Rotated returns a new section rotated by theta radians counter-clockwise
// about the given point.
func (s *GenericSection) Rotated(theta float64, about geometry.Point) *GenericSection {
	return fromValidPolygon(s.polygon.RotatedAbout(about, theta))
}
