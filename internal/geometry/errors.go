package geometry

// InvalidGeometryError reports a shape definition that breaks a construction
// rule: too few vertices, a malformed hole, radii out of range.
type InvalidGeometryError struct {
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return "invalid geometry: " + e.Reason
}

// DegenerateGeometryError reports a shape that is well-formed but encloses
// no area, such as collinear boundary points.
type DegenerateGeometryError struct {
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return "degenerate geometry: " + e.Reason
}
