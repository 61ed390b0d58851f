package section

import "github.com/runlevel0/cross-section/internal/material"

// Section is the capability shared by every cross-section kind: it can
// report its geometric property record. Composition and idealisation work
// against this interface only, so new shapes never need a common base.
type Section interface {
	Properties() Properties
}

// Weighted is the capability of sections that carry a material: geometric
// properties plus material-weighted ones. Combine uses it to decide whether
// a composite can aggregate mass and stiffness.
type Weighted interface {
	Section
	WeightedProperties() WeightedProperties
	Material() material.Material
}
