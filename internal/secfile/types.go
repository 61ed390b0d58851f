// Package secfile reads section and assembly definitions from JSON files
// and turns them into ready-to-use section values. Coordinates are
// unit-agnostic; results come out in the same length unit the file uses.
package secfile

import (
	"fmt"

	"github.com/runlevel0/cross-section/internal/geometry"
	"github.com/runlevel0/cross-section/internal/material"
)

// SectionFile is the on-disk definition of a single cross-section.
//
// The outer boundary is a simple polygon given as a vertex list; holes are
// optional inner boundaries that must lie inside it. Winding order does not
// matter in the file, it is normalised on load.
type SectionFile struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Outer       geometry.Ring   `json:"outer"`
	Holes       []geometry.Ring `json:"holes,omitempty"`
	Material    *MaterialRef    `json:"material,omitempty"`
}

// AssemblyFile is the on-disk definition of a built-up section: a list of
// parts, each placed by a translation and rotation of its local frame.
type AssemblyFile struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Items       []AssemblyItem `json:"items"`
}

// AssemblyItem is one part of an assembly. Exactly one of the polygon form
// (outer, holes) or the ring form (outer_radius, inner_radius) must be
// given. The part is defined in its own local frame and moved into the
// assembly by dx/dy and a counter-clockwise rotation in degrees about the
// local origin. Void parts subtract instead of add.
type AssemblyItem struct {
	Name string `json:"name,omitempty"`

	Outer geometry.Ring   `json:"outer,omitempty"`
	Holes []geometry.Ring `json:"holes,omitempty"`

	OuterRadius float64 `json:"outer_radius,omitempty"`
	InnerRadius float64 `json:"inner_radius,omitempty"`

	Material *MaterialRef `json:"material,omitempty"`

	Dx          float64 `json:"dx,omitempty"`
	Dy          float64 `json:"dy,omitempty"`
	RotationDeg float64 `json:"rotation_deg,omitempty"`
	Void        bool    `json:"void,omitempty"`
}

// MaterialRef names a catalog material or spells one out. When density or
// modulus is given the explicit values win and the name is kept as a label;
// a bare name is looked up in the built-in catalog.
type MaterialRef struct {
	Name    string  `json:"name,omitempty"`
	Density float64 `json:"density,omitempty"`
	Modulus float64 `json:"modulus,omitempty"`
}

// Resolve turns the reference into a concrete material.
func (r *MaterialRef) Resolve() (material.Material, error) {
	if r.Density == 0 && r.Modulus == 0 {
		if r.Name == "" {
			return material.Material{}, &FormatError{"material needs a name or density/modulus values"}
		}
		m, ok := material.Lookup(r.Name)
		if !ok {
			return material.Material{}, &material.InvalidMaterialError{
				Reason: fmt.Sprintf("unknown material %q", r.Name),
			}
		}
		return m, nil
	}

	m := material.Material{Name: r.Name, Density: r.Density, Modulus: r.Modulus}
	if err := m.Validate(); err != nil {
		return material.Material{}, err
	}
	return m, nil
}

// FormatError reports a definition file the reader could parse but not use.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid definition file: " + e.Reason
}
