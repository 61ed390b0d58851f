package section

import (
	"fmt"
	"math"

	"github.com/runlevel0/cross-section/internal/geometry"
)

// ShapeKind selects the target shape of an idealisation.
type ShapeKind string

const (
	Rectangle ShapeKind = "rectangle"
	Ring      ShapeKind = "ring"
)

// Invariant names a property an idealisation must preserve.
type Invariant string

const (
	PreserveArea Invariant = "area"
	PreserveIxx  Invariant = "Ixx"
	PreserveIyy  Invariant = "Iyy"
)

// ringTol is the relative tolerance within which a preserve set of
// {Ixx, Iyy} still counts as the single constraint a ring can satisfy.
const ringTol = 1e-9

// IdealisedSection is the result of Idealise: the solved shape parameters,
// the policy assumption applied when the preserve set left freedom, and
// the properties the solved shape actually achieves, recomputed through
// the real section types.
type IdealisedSection struct {
	Kind ShapeKind `json:"kind"`

	// Rectangle parameters.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Ring parameters.
	OuterRadius float64 `json:"outer_radius,omitempty"`
	InnerRadius float64 `json:"inner_radius,omitempty"`

	Assumption string     `json:"assumption,omitempty"`
	Achieved   Properties `json:"achieved"`
}

// Idealise solves for a simple shape reproducing the named invariants of
// p, centered at p's centroid. Both kinds have two free parameters, so at
// most two invariants fit; when fewer than two are named the remaining
// freedom is closed by a documented default, recorded in the result's
// Assumption: rectangles become square, rings become solid circles.
//
// Preserve sets the shape cannot satisfy, values no instance of the shape
// attains, and an empty preserve list all raise
// UnderdeterminedIdealisationError.
func Idealise(p Properties, kind ShapeKind, preserve ...Invariant) (IdealisedSection, error) {
	fail := func(reason string) (IdealisedSection, error) {
		return IdealisedSection{}, &UnderdeterminedIdealisationError{
			Kind:     kind,
			Preserve: preserve,
			Reason:   reason,
		}
	}

	want := map[Invariant]bool{}
	for _, inv := range preserve {
		switch inv {
		case PreserveArea, PreserveIxx, PreserveIyy:
			want[inv] = true
		default:
			return fail(fmt.Sprintf("unknown invariant %q", inv))
		}
	}
	if len(want) == 0 {
		return fail("no invariants to preserve")
	}
	if len(want) > 2 {
		return fail(fmt.Sprintf("%d invariants for 2 free parameters", len(want)))
	}
	if want[PreserveArea] && p.Area <= 0 {
		return fail(fmt.Sprintf("target area %g is not positive", p.Area))
	}
	if want[PreserveIxx] && p.Ixx <= 0 {
		return fail(fmt.Sprintf("target Ixx %g is not positive", p.Ixx))
	}
	if want[PreserveIyy] && p.Iyy <= 0 {
		return fail(fmt.Sprintf("target Iyy %g is not positive", p.Iyy))
	}

	switch kind {
	case Rectangle:
		return idealiseRectangle(p, want)
	case Ring:
		return idealiseRing(p, want, fail)
	default:
		return fail("unknown shape kind")
	}
}

type failFunc func(reason string) (IdealisedSection, error)

// idealiseRectangle solves width and height from the closed forms
// A = w·h, Ixx = w·h³/12, Iyy = h·w³/12. Every preserve set that reaches
// here is solvable.
func idealiseRectangle(p Properties, want map[Invariant]bool) (IdealisedSection, error) {
	var w, h float64
	var assumption string

	switch {
	case want[PreserveArea] && want[PreserveIxx]:
		h = math.Sqrt(12 * p.Ixx / p.Area)
		w = p.Area / h
	case want[PreserveArea] && want[PreserveIyy]:
		w = math.Sqrt(12 * p.Iyy / p.Area)
		h = p.Area / w
	case want[PreserveIxx] && want[PreserveIyy]:
		// h/w = sqrt(Ixx/Iyy); substitute back into w·h³ = 12·Ixx.
		k := math.Sqrt(p.Ixx / p.Iyy)
		w = math.Pow(12*p.Ixx/(k*k*k), 0.25)
		h = k * w
	case want[PreserveArea]:
		w = math.Sqrt(p.Area)
		h = w
		assumption = "aspect ratio unconstrained; assumed square"
	case want[PreserveIxx]:
		h = math.Pow(12*p.Ixx, 0.25)
		w = h
		assumption = "aspect ratio unconstrained; assumed square"
	case want[PreserveIyy]:
		w = math.Pow(12*p.Iyy, 0.25)
		h = w
		assumption = "aspect ratio unconstrained; assumed square"
	}

	rect, err := NewGenericSection(geometry.RectanglePoints(p.Centroid, w, h))
	if err != nil {
		return IdealisedSection{}, err
	}
	return IdealisedSection{
		Kind:       Rectangle,
		Width:      w,
		Height:     h,
		Assumption: assumption,
		Achieved:   rect.Properties(),
	}, nil
}

// idealiseRing solves outer and inner radius from the closed forms
// A = π(Ro²-Ri²), I = π/4·(Ro⁴-Ri⁴). A ring cannot tell Ixx from Iyy, so
// preserving both only works when they already coincide.
func idealiseRing(p Properties, want map[Invariant]bool, fail failFunc) (IdealisedSection, error) {
	const solid = "wall thickness unconstrained; assumed solid circle"

	moment := p.Ixx
	if !want[PreserveIxx] {
		moment = p.Iyy
	}
	if want[PreserveIxx] && want[PreserveIyy] {
		if relDiff(p.Ixx, p.Iyy) > ringTol {
			return fail(fmt.Sprintf("a ring has Ixx = Iyy, inputs differ (%g vs %g)", p.Ixx, p.Iyy))
		}
		// One attainable constraint; close the remaining freedom.
		return solveSolidRing(p, moment, solid)
	}

	switch {
	case want[PreserveArea] && (want[PreserveIxx] || want[PreserveIyy]):
		// Ro²-Ri² = A/π and Ro²+Ri² = 4I/A pin both radii.
		u := p.Area / math.Pi
		v := 4 * moment / p.Area
		riSq := (v - u) / 2
		if riSq < 0 {
			if riSq < -ringTol*u {
				return fail(fmt.Sprintf(
					"no ring with area %g attains second moment %g; a solid circle needs at least %g",
					p.Area, moment, p.Area*p.Area/(4*math.Pi)))
			}
			riSq = 0
		}
		return solveRingRadii(p, math.Sqrt((u+v)/2), math.Sqrt(riSq), "")
	case want[PreserveArea]:
		return solveRingRadii(p, math.Sqrt(p.Area/math.Pi), 0, solid)
	default: // Ixx or Iyy alone
		return solveSolidRing(p, moment, solid)
	}
}

// solveSolidRing places a solid circle matching the given second moment.
func solveSolidRing(p Properties, moment float64, assumption string) (IdealisedSection, error) {
	return solveRingRadii(p, math.Pow(4*moment/math.Pi, 0.25), 0, assumption)
}

// solveRingRadii builds the solved ring at the target centroid and
// recomputes its properties for the Achieved record.
func solveRingRadii(p Properties, outer, inner float64, assumption string) (IdealisedSection, error) {
	ring, err := NewRingSection(p.Centroid, outer, inner)
	if err != nil {
		return IdealisedSection{}, err
	}
	return IdealisedSection{
		Kind:        Ring,
		OuterRadius: outer,
		InnerRadius: inner,
		Assumption:  assumption,
		Achieved:    ring.Properties(),
	}, nil
}

// relDiff returns |a-b| measured against the larger magnitude.
func relDiff(a, b float64) float64 {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return 0
	}
	return math.Abs(a-b) / scale
}
