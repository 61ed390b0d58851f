package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/runlevel0/cross-section/internal/geometry"
)

// ExportSectionImage renders the section outlines with the centroid and
// principal axes to an image file. The format follows the file extension
// (.png, .svg, .pdf); anything else falls back to PNG.
func ExportSectionImage(data Data, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, outline := range data.Solids {
		line, err := outlineLine(outline, color.Black, 2)
		if err != nil {
			return err
		}
		p.Add(line)
	}
	for _, outline := range data.Voids {
		line, err := outlineLine(outline, color.RGBA{R: 120, G: 120, B: 120, A: 255}, 1)
		if err != nil {
			return err
		}
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(line)
	}

	// Principal axes as dashed lines through the centroid. Angle is the
	// section's rotation to principal, so the major axis direction in the
	// drawing frame is the negative of it.
	lo, hi := data.bounds()
	half := 0.6 * math.Max(hi.X-lo.X, hi.Y-lo.Y)
	axisNames := []string{"1", "2"}
	if half > 0 {
		for i, phi := range []float64{-data.Angle, -data.Angle + math.Pi/2} {
			sin, cos := math.Sincos(phi)
			end := geometry.Point{X: data.Centroid.X + half*cos, Y: data.Centroid.Y + half*sin}
			axis, err := plotter.NewLine(plotter.XYs{
				{X: data.Centroid.X - half*cos, Y: data.Centroid.Y - half*sin},
				{X: end.X, Y: end.Y},
			})
			if err != nil {
				return err
			}
			axis.LineStyle.Width = vg.Points(1)
			axis.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
			axis.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
			p.Add(axis)

			label, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{{X: end.X, Y: end.Y}},
				Labels: []string{axisNames[i]},
			})
			if err != nil {
				return err
			}
			p.Add(label)
		}
	}

	centroid, err := plotter.NewScatter(plotter.XYs{{X: data.Centroid.X, Y: data.Centroid.Y}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(centroid)

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// outlineLine builds a closed line plotter for one outline.
func outlineLine(outline geometry.Ring, col color.Color, width float64) (*plotter.Line, error) {
	pts := make(plotter.XYs, 0, len(outline)+1)
	for _, v := range outline {
		pts = append(pts, plotter.XY{X: v.X, Y: v.Y})
	}
	if len(outline) > 0 {
		pts = append(pts, plotter.XY{X: outline[0].X, Y: outline[0].Y})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(width)
	line.LineStyle.Color = col
	return line, nil
}
