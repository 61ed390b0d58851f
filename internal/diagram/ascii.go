package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/runlevel0/cross-section/internal/geometry"
)

// Data holds the outlines and derived axes of a resolved cross-section
// for drawing. Solids are closed outlines counted as material, Voids are
// holes and subtracted parts. Angle is the principal-axis rotation of the
// section, counter-clockwise in radians.
type Data struct {
	Title    string
	Solids   []geometry.Ring
	Voids    []geometry.Ring
	Centroid geometry.Point
	Angle    float64
}

// Sketch grid limits. Terminal cells are about twice as tall as wide, so
// the horizontal direction gets two columns per row of the same world span.
const (
	sketchRows = 22
	sketchCols = 56
)

// DrawSectionSketch renders a proportionate ASCII sketch of the section
// with the centroid marked.
func DrawSectionSketch(data Data) string {
	lo, hi := data.bounds()
	spanX := hi.X - lo.X
	spanY := hi.Y - lo.Y
	if spanX <= 0 || spanY <= 0 {
		return ""
	}

	// Margin so outlines do not touch the frame.
	lo.X -= 0.04 * spanX
	hi.X += 0.04 * spanX
	lo.Y -= 0.04 * spanY
	hi.Y += 0.04 * spanY
	spanX = hi.X - lo.X
	spanY = hi.Y - lo.Y

	scale := math.Min(float64(sketchRows)/spanY, float64(sketchCols)/(2*spanX))
	rows := int(math.Ceil(spanY * scale))
	cols := int(math.Ceil(2 * spanX * scale))
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			x := lo.X + (float64(c)+0.5)/(2*scale)
			y := hi.Y - (float64(r)+0.5)/scale
			if data.covers(x, y) {
				grid[r][c] = '░'
			} else {
				grid[r][c] = ' '
			}
		}
	}

	cr := int((hi.Y - data.Centroid.Y) * scale)
	cc := int((data.Centroid.X - lo.X) * 2 * scale)
	if cr >= 0 && cr < rows && cc >= 0 && cc < cols {
		grid[cr][cc] = '●'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len(data.Title))))
	}
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))
	sb.WriteString("\n")
	sb.WriteString("  ░ = material   ● = centroid\n")
	sb.WriteString(fmt.Sprintf("  Centroid at (%.4g, %.4g), principal axes rotated %.2f°\n",
		data.Centroid.X, data.Centroid.Y, data.Angle*180/math.Pi))

	return sb.String()
}

// InertiaSweepChart plots Ixx and Iyy of the section as it rotates from
// 0° to 180° about its centroid. The curves cross at the principal
// orientations, where one of them peaks.
func InertiaSweepChart(ixx, iyy, ixy float64) string {
	const samples = 61

	ixxSeries := make([]float64, samples)
	iyySeries := make([]float64, samples)
	for i := 0; i < samples; i++ {
		s, c := math.Sincos(float64(i) * math.Pi / float64(samples-1))
		ixxSeries[i] = ixx*c*c + iyy*s*s + 2*s*c*ixy
		iyySeries[i] = ixx*s*s + iyy*c*c - 2*s*c*ixy
	}

	return asciigraph.PlotMany(
		[][]float64{ixxSeries, iyySeries},
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(3),
		asciigraph.Caption("Ixx and Iyy under section rotation 0°-180°"),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func (d Data) bounds() (lo, hi geometry.Point) {
	first := true
	for _, group := range [2][]geometry.Ring{d.Solids, d.Voids} {
		for _, r := range group {
			if len(r) == 0 {
				continue
			}
			rlo, rhi := r.Bounds()
			if first {
				lo, hi = rlo, rhi
				first = false
				continue
			}
			lo.X = math.Min(lo.X, rlo.X)
			lo.Y = math.Min(lo.Y, rlo.Y)
			hi.X = math.Max(hi.X, rhi.X)
			hi.Y = math.Max(hi.Y, rhi.Y)
		}
	}
	return lo, hi
}

// covers reports whether the point lies in material: inside any solid
// outline and outside every void.
func (d Data) covers(x, y float64) bool {
	solid := false
	for _, r := range d.Solids {
		if inRing(x, y, r) {
			solid = true
			break
		}
	}
	if !solid {
		return false
	}
	for _, r := range d.Voids {
		if inRing(x, y, r) {
			return false
		}
	}
	return true
}

// inRing is a ray-crossing point-in-polygon test.
func inRing(x, y float64, ring geometry.Ring) bool {
	inside := false
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		if (a.Y > y) != (b.Y > y) {
			t := (y - a.Y) / (b.Y - a.Y)
			if x < a.X+t*(b.X-a.X) {
				inside = !inside
			}
		}
	}
	return inside
}
