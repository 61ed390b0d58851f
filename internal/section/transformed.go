package section

import (
	"fmt"
	"math"

	"github.com/runlevel0/cross-section/internal/geometry"
	"github.com/runlevel0/cross-section/internal/material"
)

// Transformed reduces an all-materialised composite to the equivalent
// homogeneous section at the given reference modulus, by the classic
// transformed-section method: each item's area and moments are scaled by
// the modular ratio n = E/E_ref before aggregation. The centroid of the
// result is therefore the elastic centroid, and E_ref times its second
// moments reproduces the composite's bending stiffness exactly.
//
// Every item must be materialised; voids subtract their transformed share.
func Transformed(items []Placed, referenceModulus float64) (Properties, error) {
	if referenceModulus <= 0 {
		return Properties{}, &material.InvalidMaterialError{
			Reason: fmt.Sprintf("reference modulus must be positive, got %g", referenceModulus),
		}
	}
	if len(items) == 0 {
		return Properties{}, &DegenerateCompositeError{}
	}

	placed := make([]placedItem, len(items))
	var net, gross, sx, sy float64

	for i, it := range items {
		w, ok := it.Section.(Weighted)
		if !ok {
			return Properties{}, &MixedSectionTypeError{Index: i}
		}

		p := it.Section.Properties()
		c, ixx, iyy, ixy := placeItem(p, it.Placement)
		scale := w.Material().Modulus / referenceModulus
		if it.Void {
			scale = -scale
		}
		placed[i] = placedItem{
			area:     scale * p.Area,
			centroid: c,
			ixx:      scale * ixx,
			iyy:      scale * iyy,
			ixy:      scale * ixy,
		}

		net += placed[i].area
		gross += math.Abs(scale) * p.Area
		sx += placed[i].area * c.X
		sy += placed[i].area * c.Y
	}

	if net <= gross*netAreaEps {
		return Properties{}, &DegenerateCompositeError{Area: net}
	}
	centroid := geometry.Point{X: sx / net, Y: sy / net}

	var ixx, iyy, ixy float64
	for _, pi := range placed {
		dx := pi.centroid.X - centroid.X
		dy := pi.centroid.Y - centroid.Y
		ixx += pi.ixx + pi.area*dy*dy
		iyy += pi.iyy + pi.area*dx*dx
		ixy += pi.ixy + pi.area*dx*dy
	}

	return newProperties(net, centroid, ixx, iyy, ixy), nil
}
