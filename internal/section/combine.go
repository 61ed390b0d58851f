package section

import (
	"math"

	"github.com/runlevel0/cross-section/internal/geometry"
	"github.com/runlevel0/cross-section/internal/material"
)

// netAreaEps is the relative tolerance, measured against the gross
// (unsigned) area, below which a composite's net area counts as zero.
const netAreaEps = 1e-12

// Placement carries a section's local frame into the shared composite
// frame: rotate by Rotation radians counter-clockwise about the local
// origin, then shift by (Dx, Dy).
type Placement struct {
	Dx       float64 `json:"dx"`
	Dy       float64 `json:"dy"`
	Rotation float64 `json:"rotation"`
}

// Placed is one item of a composite: a section, where it goes, and whether
// it adds material or carves it out.
type Placed struct {
	Section   Section
	Placement Placement
	Void      bool
}

// CompositeProperties is the record of a combined section, expressed about
// the composite centroid. Weighted is set only when every item carries a
// material.
type CompositeProperties struct {
	Properties
	Weighted *WeightedProperties `json:"weighted,omitempty"`
}

// placeItem carries a centroidal record into the composite frame: the
// inertia tensor rotates with the placement, the centroid undergoes the
// full rigid motion.
func placeItem(p Properties, pl Placement) (c geometry.Point, ixx, iyy, ixy float64) {
	sin, cos := math.Sincos(pl.Rotation)
	ixx = p.Ixx*cos*cos + p.Iyy*sin*sin + 2*sin*cos*p.Ixy
	iyy = p.Ixx*sin*sin + p.Iyy*cos*cos - 2*sin*cos*p.Ixy
	ixy = (p.Iyy-p.Ixx)*sin*cos + p.Ixy*(cos*cos-sin*sin)
	c = geometry.Point{
		X: p.Centroid.X*cos - p.Centroid.Y*sin + pl.Dx,
		Y: p.Centroid.X*sin + p.Centroid.Y*cos + pl.Dy,
	}
	return c, ixx, iyy, ixy
}

type placedItem struct {
	area          float64 // signed: negative for voids
	centroid      geometry.Point
	ixx, iyy, ixy float64 // signed centroidal tensor in the composite frame
	mat           material.Material
}

// Combine aggregates placed sections into one centroidal property record.
// Items are summed in input order: void items subtract their area and
// moments, every contribution is shifted to the composite centroid with
// the parallel-axis theorem, and the result does not depend on where the
// assembly sits in the plane.
//
// Net area must stay positive (DegenerateCompositeError otherwise), and
// the items must be all materialised or all plain (MixedSectionTypeError).
// For an all-materialised set the record also carries the mass and
// stiffness totals.
func Combine(items []Placed) (CompositeProperties, error) {
	if len(items) == 0 {
		return CompositeProperties{}, &DegenerateCompositeError{}
	}

	_, allWeighted := items[0].Section.(Weighted)
	placed := make([]placedItem, len(items))
	var net, gross, sx, sy float64

	for i, it := range items {
		w, ok := it.Section.(Weighted)
		if ok != allWeighted {
			return CompositeProperties{}, &MixedSectionTypeError{Index: i}
		}

		p := it.Section.Properties()
		c, ixx, iyy, ixy := placeItem(p, it.Placement)
		sign := 1.0
		if it.Void {
			sign = -1
		}
		placed[i] = placedItem{
			area:     sign * p.Area,
			centroid: c,
			ixx:      sign * ixx,
			iyy:      sign * iyy,
			ixy:      sign * ixy,
		}
		if ok {
			placed[i].mat = w.Material()
		}

		net += placed[i].area
		gross += p.Area
		sx += placed[i].area * c.X
		sy += placed[i].area * c.Y
	}

	if net <= gross*netAreaEps {
		return CompositeProperties{}, &DegenerateCompositeError{Area: net}
	}
	centroid := geometry.Point{X: sx / net, Y: sy / net}

	var ixx, iyy, ixy float64
	var weighted *WeightedProperties
	if allWeighted {
		weighted = &WeightedProperties{}
	}
	for _, pi := range placed {
		dx := pi.centroid.X - centroid.X
		dy := pi.centroid.Y - centroid.Y
		itemIxx := pi.ixx + pi.area*dy*dy
		itemIyy := pi.iyy + pi.area*dx*dx
		ixx += itemIxx
		iyy += itemIyy
		ixy += pi.ixy + pi.area*dx*dy
		if weighted != nil {
			weighted.Mass += pi.mat.Density * pi.area
			weighted.EA += pi.mat.Modulus * pi.area
			weighted.EIxx += pi.mat.Modulus * itemIxx
			weighted.EIyy += pi.mat.Modulus * itemIyy
		}
	}

	return CompositeProperties{
		Properties: newProperties(net, centroid, ixx, iyy, ixy),
		Weighted:   weighted,
	}, nil
}
