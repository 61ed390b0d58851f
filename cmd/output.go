package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/runlevel0/cross-section/internal/diagram"
	"github.com/runlevel0/cross-section/internal/material"
	"github.com/runlevel0/cross-section/internal/section"
)

const (
	headerRule  = "═══════════════════════════════════════════════════════════════"
	sectionRule = "───────────────────────────────────────────────────────────────"
)

func printHeader(title string) {
	fmt.Println()
	fmt.Println(headerRule)
	fmt.Printf("     %s\n", title)
	fmt.Println(headerRule)
	fmt.Println()
}

func newResultWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// printGeometry prints the area, centroid and centroidal second moments.
// Values carry the units of the definition file, so no unit is printed.
func printGeometry(p section.Properties) {
	fmt.Println("GEOMETRY:")
	fmt.Println(sectionRule)
	w := newResultWriter()
	fmt.Fprintf(w, "  Area:\t%.6g\n", p.Area)
	fmt.Fprintf(w, "  Centroid:\t(%.6g, %.6g)\n", p.Centroid.X, p.Centroid.Y)
	fmt.Fprintf(w, "  Ixx (centroidal):\t%.6g\n", p.Ixx)
	fmt.Fprintf(w, "  Iyy (centroidal):\t%.6g\n", p.Iyy)
	fmt.Fprintf(w, "  Ixy (centroidal):\t%.6g\n", p.Ixy)
	w.Flush()
	fmt.Println()
}

func printPrincipalAxes(p section.Properties) {
	fmt.Println("PRINCIPAL AXES:")
	fmt.Println(sectionRule)
	w := newResultWriter()
	fmt.Fprintf(w, "  I1 (major):\t%.6g\n", p.I1)
	fmt.Fprintf(w, "  I2 (minor):\t%.6g\n", p.I2)
	fmt.Fprintf(w, "  Angle:\t%.4f°\n", p.Angle*180/math.Pi)
	fmt.Fprintf(w, "  rx (radius of gyration):\t%.6g\n", p.Rx)
	fmt.Fprintf(w, "  ry (radius of gyration):\t%.6g\n", p.Ry)
	fmt.Fprintf(w, "  J (polar moment):\t%.6g\n", p.J)
	w.Flush()
	fmt.Println()
}

func printMaterial(m material.Material) {
	fmt.Println("MATERIAL:")
	fmt.Println(sectionRule)
	w := newResultWriter()
	if m.Name != "" {
		fmt.Fprintf(w, "  Name:\t%s\n", m.Name)
	}
	fmt.Fprintf(w, "  Density:\t%.6g\n", m.Density)
	fmt.Fprintf(w, "  Elastic modulus:\t%.6g\n", m.Modulus)
	w.Flush()
	fmt.Println()
}

func printWeighted(wp section.WeightedProperties) {
	fmt.Println("WEIGHTED PROPERTIES:")
	fmt.Println(sectionRule)
	w := newResultWriter()
	fmt.Fprintf(w, "  Mass per length:\t%.6g\n", wp.Mass)
	fmt.Fprintf(w, "  EA (axial stiffness):\t%.6g\n", wp.EA)
	fmt.Fprintf(w, "  EIxx (bending stiffness):\t%.6g\n", wp.EIxx)
	fmt.Fprintf(w, "  EIyy (bending stiffness):\t%.6g\n", wp.EIyy)
	w.Flush()
	fmt.Println()
}

func printSummaryBox(p section.Properties) {
	fmt.Println(diagram.DrawSummaryBox("SECTION SUMMARY", []string{
		fmt.Sprintf("Area = %.6g", p.Area),
		fmt.Sprintf("I1   = %.6g", p.I1),
		fmt.Sprintf("I2   = %.6g", p.I2),
	}))
}
