package geometry

import "math"

// RectanglePoints returns the corners of an axis-aligned rectangle of the
// given width and height centered at c, counter-clockwise from the
// bottom-left corner.
func RectanglePoints(c Point, width, height float64) Ring {
	hw, hh := width/2, height/2
	return Ring{
		{X: c.X - hw, Y: c.Y - hh},
		{X: c.X + hw, Y: c.Y - hh},
		{X: c.X + hw, Y: c.Y + hh},
		{X: c.X - hw, Y: c.Y + hh},
	}
}

// RegularPolygonPoints returns the n vertices of a regular polygon
// inscribed in a circle of the given radius centered at c, counter-
// clockwise starting on the positive x-axis. It is the usual polygonal
// stand-in for circular boundaries; n below 3 is brought up to 3.
func RegularPolygonPoints(c Point, radius float64, n int) Ring {
	if n < 3 {
		n = 3
	}
	pts := make(Ring, n)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = Point{X: c.X + radius*cos, Y: c.Y + radius*sin}
	}
	return pts
}
