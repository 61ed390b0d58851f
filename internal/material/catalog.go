package material

import "strings"

// Built-in materials in SI units: density in kg/m³, modulus in Pa.
var catalog = []Material{
	{Name: "steel", Density: 7850, Modulus: 200e9},
	{Name: "aluminum", Density: 2700, Modulus: 70e9},
	{Name: "concrete", Density: 2400, Modulus: 30e9},
	{Name: "timber", Density: 500, Modulus: 11e9},
}

// Catalog returns a copy of the built-in materials.
func Catalog() []Material {
	return append([]Material(nil), catalog...)
}

// Lookup finds a built-in material by name, case-insensitively.
func Lookup(name string) (Material, bool) {
	for _, m := range catalog {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Material{}, false
}
