// Package material defines the linear-elastic material record used to
// weight section properties, plus a small catalog of common materials.
package material

import "fmt"

// Material describes a material by mass density and Young's modulus, in
// whatever consistent unit system the geometry uses. Zero values are legal
// (massless or rigid idealisations); negative values are not.
type Material struct {
	Name    string  `json:"name"`
	Density float64 `json:"density"`
	Modulus float64 `json:"modulus"`
}

// InvalidMaterialError reports physically meaningless material parameters.
type InvalidMaterialError struct {
	Reason string
}

func (e *InvalidMaterialError) Error() string {
	return "invalid material: " + e.Reason
}

// Validate checks the material parameters.
func (m Material) Validate() error {
	if m.Density < 0 {
		return &InvalidMaterialError{
			Reason: fmt.Sprintf("density must be non-negative, got %g", m.Density),
		}
	}
	if m.Modulus < 0 {
		return &InvalidMaterialError{
			Reason: fmt.Sprintf("modulus must be non-negative, got %g", m.Modulus),
		}
	}
	return nil
}
