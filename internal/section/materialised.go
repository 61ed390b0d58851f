package section

import "github.com/runlevel0/cross-section/internal/material"

// MaterialisedSection pairs a section with a material. The geometric
// properties pass through untouched; the weighted record scales area and
// second moments by density and modulus, computed once at construction.
type MaterialisedSection struct {
	section  Section
	material material.Material
	weighted WeightedProperties
}

// NewMaterialisedSection wraps a section with a validated material.
func NewMaterialisedSection(s Section, m material.Material) (*MaterialisedSection, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	p := s.Properties()
	return &MaterialisedSection{
		section:  s,
		material: m,
		weighted: WeightedProperties{
			Mass: m.Density * p.Area,
			EA:   m.Modulus * p.Area,
			EIxx: m.Modulus * p.Ixx,
			EIyy: m.Modulus * p.Iyy,
		},
	}, nil
}

// Properties returns the wrapped section's record unchanged.
func (s *MaterialisedSection) Properties() Properties {
	return s.section.Properties()
}

// WeightedProperties returns the material-weighted record.
func (s *MaterialisedSection) WeightedProperties() WeightedProperties {
	return s.weighted
}

// Material returns the material.
func (s *MaterialisedSection) Material() material.Material {
	return s.material
}

// Section returns the wrapped section.
func (s *MaterialisedSection) Section() Section {
	return s.section
}
