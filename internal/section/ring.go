package section

import (
	"fmt"
	"math"

	"github.com/runlevel0/cross-section/internal/geometry"
)

// RingSection is a circular ring (annulus) cross-section, or a solid
// circle when the inner radius is zero. Properties come from the closed
// forms: A = π(Ro²-Ri²) and Ixx = Iyy = π/4·(Ro⁴-Ri⁴). Full symmetry
// makes the product of inertia zero and every centroidal axis principal.
type RingSection struct {
	center geometry.Point
	outer  float64
	inner  float64
	props  Properties
}

// NewRingSection builds a ring from its outer and inner radii. The outer
// radius must be positive and strictly larger than the inner; an inner
// radius of zero gives a solid circle.
func NewRingSection(center geometry.Point, outerRadius, innerRadius float64) (*RingSection, error) {
	if outerRadius <= 0 {
		return nil, &geometry.InvalidGeometryError{
			Reason: fmt.Sprintf("ring outer radius must be positive, got %g", outerRadius),
		}
	}
	if innerRadius < 0 {
		return nil, &geometry.InvalidGeometryError{
			Reason: fmt.Sprintf("ring inner radius must be non-negative, got %g", innerRadius),
		}
	}
	if innerRadius >= outerRadius {
		return nil, &geometry.InvalidGeometryError{
			Reason: fmt.Sprintf("ring inner radius %g must be less than outer radius %g",
				innerRadius, outerRadius),
		}
	}

	ro2, ri2 := outerRadius*outerRadius, innerRadius*innerRadius
	area := math.Pi * (ro2 - ri2)
	moment := math.Pi / 4 * (ro2*ro2 - ri2*ri2)
	return &RingSection{
		center: center,
		outer:  outerRadius,
		inner:  innerRadius,
		props:  newProperties(area, center, moment, moment, 0),
	}, nil
}

// NewRingSectionFromDiameter builds a ring the way pipe tables describe
// one: outer diameter and wall thickness. A thickness equal to the outer
// radius gives a solid circle.
func NewRingSectionFromDiameter(center geometry.Point, outerDiameter, wallThickness float64) (*RingSection, error) {
	ro := outerDiameter / 2
	return NewRingSection(center, ro, ro-wallThickness)
}

// Properties returns the centroidal property record.
func (s *RingSection) Properties() Properties {
	return s.props
}

// Center returns the ring center.
func (s *RingSection) Center() geometry.Point {
	return s.center
}

// OuterRadius returns the outer radius.
func (s *RingSection) OuterRadius() float64 {
	return s.outer
}

// InnerRadius returns the inner radius, zero for a solid circle.
func (s *RingSection) InnerRadius() float64 {
	return s.inner
}

// Translated returns a new ring shifted by (dx, dy).
func (s *RingSection) Translated(dx, dy float64) *RingSection {
	moved, _ := NewRingSection(s.center.Add(geometry.Pt(dx, dy)), s.outer, s.inner)
	return moved
}

// Rotated returns a new ring whose center is rotated by theta radians
// counter-clockwise about the given point; the ring itself is rotation-
// invariant.
func (s *RingSection) Rotated(theta float64, about geometry.Point) *RingSection {
	moved, _ := NewRingSection(s.center.RotatedAbout(about, theta), s.outer, s.inner)
	return moved
}
