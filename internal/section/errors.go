package section

import "fmt"

// DegenerateCompositeError reports a combination whose net area is not
// positive, such as voids cancelling all solid material.
type DegenerateCompositeError struct {
	Area float64
}

func (e *DegenerateCompositeError) Error() string {
	return fmt.Sprintf("degenerate composite: net area %g encloses no material", e.Area)
}

// MixedSectionTypeError reports a combination mixing materialised and
// plain sections; weighted totals would be meaningless for such a set.
type MixedSectionTypeError struct {
	Index int
}

func (e *MixedSectionTypeError) Error() string {
	return fmt.Sprintf("cannot combine: item %d mixes materialised and plain sections", e.Index)
}

// UnderdeterminedIdealisationError reports a preserve set that the target
// shape's free parameters cannot satisfy: too many invariants, none at
// all, or values no instance of the shape attains.
type UnderdeterminedIdealisationError struct {
	Kind     ShapeKind
	Preserve []Invariant
	Reason   string
}

func (e *UnderdeterminedIdealisationError) Error() string {
	return fmt.Sprintf("cannot idealise as %s preserving %v: %s", e.Kind, e.Preserve, e.Reason)
}
