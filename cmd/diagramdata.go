package cmd

import (
	"github.com/runlevel0/cross-section/internal/diagram"
	"github.com/runlevel0/cross-section/internal/geometry"
	"github.com/runlevel0/cross-section/internal/section"
)

// ringFacets is the polygon resolution used to sketch circular outlines.
const ringFacets = 72

// sectionDiagramData collects the outlines of a single polygonal section.
func sectionDiagramData(title string, gen *section.GenericSection, props section.Properties) diagram.Data {
	poly := gen.Polygon()
	return diagram.Data{
		Title:    title,
		Solids:   []geometry.Ring{poly.Outer},
		Voids:    poly.Holes,
		Centroid: props.Centroid,
		Angle:    props.Angle,
	}
}

// ringDiagramData collects the outlines of a ring section.
func ringDiagramData(title string, ring *section.RingSection, props section.Properties) diagram.Data {
	data := diagram.Data{
		Title:    title,
		Solids:   []geometry.Ring{geometry.RegularPolygonPoints(ring.Center(), ring.OuterRadius(), ringFacets)},
		Centroid: props.Centroid,
		Angle:    props.Angle,
	}
	if ring.InnerRadius() > 0 {
		data.Voids = append(data.Voids, geometry.RegularPolygonPoints(ring.Center(), ring.InnerRadius(), ringFacets))
	}
	return data
}

// assemblyDiagramData collects the placed outlines of every item in an
// assembly. Ring parts are sketched as fine regular polygons.
func assemblyDiagramData(title string, items []section.Placed, props section.Properties) diagram.Data {
	data := diagram.Data{
		Title:    title,
		Centroid: props.Centroid,
		Angle:    props.Angle,
	}

	for _, it := range items {
		base := it.Section
		if ms, ok := base.(*section.MaterialisedSection); ok {
			base = ms.Section()
		}

		switch s := base.(type) {
		case *section.GenericSection:
			poly := s.Polygon().
				RotatedAbout(geometry.Point{}, it.Placement.Rotation).
				Translated(it.Placement.Dx, it.Placement.Dy)
			if it.Void {
				data.Voids = append(data.Voids, poly.Outer)
			} else {
				data.Solids = append(data.Solids, poly.Outer)
				data.Voids = append(data.Voids, poly.Holes...)
			}
		case *section.RingSection:
			center := s.Center().
				RotatedAbout(geometry.Point{}, it.Placement.Rotation).
				Add(geometry.Point{X: it.Placement.Dx, Y: it.Placement.Dy})
			if it.Void {
				data.Voids = append(data.Voids, geometry.RegularPolygonPoints(center, s.OuterRadius(), ringFacets))
			} else {
				data.Solids = append(data.Solids, geometry.RegularPolygonPoints(center, s.OuterRadius(), ringFacets))
				if s.InnerRadius() > 0 {
					data.Voids = append(data.Voids, geometry.RegularPolygonPoints(center, s.InnerRadius(), ringFacets))
				}
			}
		}
	}
	return data
}
