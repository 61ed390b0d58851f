// Package section computes cross-sectional properties: polygonal and ring
// sections, material weighting, composition of placed sections, and
// idealisation into simple equivalent shapes.
//
// Every section kind computes its full property record once at
// construction and is immutable afterwards; transforms hand back new
// values instead of mutating.
package section

import (
	"math"

	"github.com/runlevel0/cross-section/internal/geometry"
)

// Properties is the geometric property record of a cross-section. The
// second moments Ixx, Iyy and the product Ixy are taken about axes through
// About parallel to the global x and y axes; sections always publish
// centroidal records, so About equals Centroid.
type Properties struct {
	Area     float64        `json:"area"`
	Centroid geometry.Point `json:"centroid"`
	About    geometry.Point `json:"about"`

	Ixx float64 `json:"ixx"`
	Iyy float64 `json:"iyy"`
	Ixy float64 `json:"ixy"`

	// I1 and I2 are the major and minor principal second moments. Angle
	// is the rotation, in radians, that brings the section into its
	// principal orientation: rotating the section by Angle zeroes the
	// product of inertia and takes Ixx to I1.
	I1    float64 `json:"i1"`
	I2    float64 `json:"i2"`
	Angle float64 `json:"angle"`

	// Derived quantities: radii of gyration and the polar second moment
	// about About.
	Rx float64 `json:"rx"`
	Ry float64 `json:"ry"`
	J  float64 `json:"j"`
}

// WeightedProperties holds the material-weighted quantities of a section,
// per unit length along the member axis: mass, axial stiffness E·A, and
// the bending stiffnesses about the centroidal axes.
type WeightedProperties struct {
	Mass float64 `json:"mass"`
	EA   float64 `json:"ea"`
	EIxx float64 `json:"eixx"`
	EIyy float64 `json:"eiyy"`
}

// newProperties builds a centroidal property record from raw integrals.
// All derived fields flow from here so they can never go stale.
func newProperties(area float64, centroid geometry.Point, ixx, iyy, ixy float64) Properties {
	p := Properties{
		Area:     area,
		Centroid: centroid,
		About:    centroid,
		Ixx:      ixx,
		Iyy:      iyy,
		Ixy:      ixy,
	}
	p.I1, p.I2, p.Angle = principalAxes(ixx, iyy, ixy)
	if area > 0 {
		p.Rx = math.Sqrt(ixx / area)
		p.Ry = math.Sqrt(iyy / area)
	}
	p.J = ixx + iyy
	return p
}

// principalAxes diagonalizes the inertia tensor: the principal moments
// (major first) and the principal rotation ½·atan2(2·Ixy, Ixx-Iyy).
// For symmetric tensors (Ixy = 0, Ixx = Iyy) atan2 gives 0, so every axis
// counts as principal and the record stays stable.
func principalAxes(ixx, iyy, ixy float64) (i1, i2, angle float64) {
	avg := (ixx + iyy) / 2
	r := math.Hypot((ixx-iyy)/2, ixy)
	return avg + r, avg - r, 0.5 * math.Atan2(2*ixy, ixx-iyy)
}
