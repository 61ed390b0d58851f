package secfile

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/runlevel0/cross-section/internal/geometry"
	"github.com/runlevel0/cross-section/internal/section"
)

// LoadedSection is a section definition after parsing and construction.
type LoadedSection struct {
	Name        string
	Description string

	Generic      *section.GenericSection
	Materialised *section.MaterialisedSection // nil when the file names no material
}

// Section returns the materialised section when the file carries a
// material, the plain geometric one otherwise.
func (s *LoadedSection) Section() section.Section {
	if s.Materialised != nil {
		return s.Materialised
	}
	return s.Generic
}

// LoadSection reads a single-section definition from a JSON file.
func LoadSection(path string) (*LoadedSection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f SectionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return buildSection(&f)
}

func buildSection(f *SectionFile) (*LoadedSection, error) {
	gen, err := section.NewGenericSection(f.Outer, f.Holes...)
	if err != nil {
		return nil, err
	}

	loaded := &LoadedSection{
		Name:        f.Name,
		Description: f.Description,
		Generic:     gen,
	}
	if f.Material != nil {
		m, err := f.Material.Resolve()
		if err != nil {
			return nil, err
		}
		loaded.Materialised, err = section.NewMaterialisedSection(gen, m)
		if err != nil {
			return nil, err
		}
	}
	return loaded, nil
}

// LoadedAssembly is an assembly definition after parsing and construction,
// ready to hand to Combine or Transformed.
type LoadedAssembly struct {
	Name        string
	Description string
	Items       []section.Placed
	Labels      []string
}

// LoadAssembly reads an assembly definition from a JSON file.
func LoadAssembly(path string) (*LoadedAssembly, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f AssemblyFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return buildAssembly(&f)
}

func buildAssembly(f *AssemblyFile) (*LoadedAssembly, error) {
	loaded := &LoadedAssembly{
		Name:        f.Name,
		Description: f.Description,
		Items:       make([]section.Placed, 0, len(f.Items)),
		Labels:      make([]string, 0, len(f.Items)),
	}
	for i := range f.Items {
		it := &f.Items[i]
		s, err := buildItem(it, i)
		if err != nil {
			return nil, err
		}
		loaded.Items = append(loaded.Items, section.Placed{
			Section: s,
			Placement: section.Placement{
				Dx:       it.Dx,
				Dy:       it.Dy,
				Rotation: it.RotationDeg * math.Pi / 180,
			},
			Void: it.Void,
		})
		label := it.Name
		if label == "" {
			label = fmt.Sprintf("item %d", i+1)
		}
		loaded.Labels = append(loaded.Labels, label)
	}
	return loaded, nil
}

func buildItem(it *AssemblyItem, index int) (section.Section, error) {
	hasPolygon := len(it.Outer) > 0
	hasRing := it.OuterRadius != 0
	if hasPolygon == hasRing {
		return nil, &FormatError{fmt.Sprintf(
			"item %d needs either outer vertices or an outer radius, not both or neither", index+1)}
	}

	var s section.Section
	var err error
	if hasRing {
		if len(it.Holes) > 0 {
			return nil, &FormatError{fmt.Sprintf("item %d: a ring part cannot have holes", index+1)}
		}
		s, err = section.NewRingSection(geometry.Point{}, it.OuterRadius, it.InnerRadius)
	} else {
		if it.InnerRadius != 0 {
			return nil, &FormatError{fmt.Sprintf("item %d: inner_radius makes no sense without outer_radius", index+1)}
		}
		s, err = section.NewGenericSection(it.Outer, it.Holes...)
	}
	if err != nil {
		return nil, err
	}

	if it.Material == nil {
		return s, nil
	}
	m, err := it.Material.Resolve()
	if err != nil {
		return nil, err
	}
	return section.NewMaterialisedSection(s, m)
}
