package cmd

import (
	"fmt"

	"github.com/runlevel0/cross-section/internal/diagram"
	"github.com/runlevel0/cross-section/internal/geometry"
	"github.com/runlevel0/cross-section/internal/material"
	"github.com/runlevel0/cross-section/internal/report"
	"github.com/runlevel0/cross-section/internal/secfile"
	"github.com/runlevel0/cross-section/internal/section"
	"github.com/spf13/cobra"
)

var (
	ringOuterDiameter float64
	ringWallThickness float64
	ringCx            float64
	ringCy            float64
	ringMaterialName  string
	ringDensity       float64
	ringModulus       float64
	ringShowDiagram   bool
	ringExportFile    string
	ringReportFile    string
)

var ringCmd = &cobra.Command{
	Use:   "ring",
	Short: "Properties of a circular or tubular section",
	Long: `Calculate the properties of a solid circular bar or a hollow tube
from its outer diameter and wall thickness.

Omit the wall thickness for a solid bar. A material adds weighted
properties; use a catalog name or give explicit density and modulus.

Examples:
  cross-section ring --outer-diameter 273
  cross-section ring --outer-diameter 273 --wall-thickness 8 --material steel
  cross-section ring --outer-diameter 0.273 --wall-thickness 0.008 --density 7850 --modulus 200e9`,
	Run: runRing,
}

func init() {
	rootCmd.AddCommand(ringCmd)

	ringCmd.Flags().Float64Var(&ringOuterDiameter, "outer-diameter", 0, "Outer diameter [required]")
	ringCmd.MarkFlagRequired("outer-diameter")

	ringCmd.Flags().Float64Var(&ringWallThickness, "wall-thickness", 0, "Wall thickness (omit for a solid bar)")
	ringCmd.Flags().Float64Var(&ringCx, "cx", 0, "Center x coordinate")
	ringCmd.Flags().Float64Var(&ringCy, "cy", 0, "Center y coordinate")

	ringCmd.Flags().StringVar(&ringMaterialName, "material", "", "Catalog material name")
	ringCmd.Flags().Float64Var(&ringDensity, "density", 0, "Material density (overrides the catalog)")
	ringCmd.Flags().Float64Var(&ringModulus, "modulus", 0, "Material elastic modulus (overrides the catalog)")

	ringCmd.Flags().BoolVar(&ringShowDiagram, "diagram", false, "Show ASCII sketch of the section")
	ringCmd.Flags().StringVarP(&ringExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	ringCmd.Flags().StringVar(&ringReportFile, "report", "", "Write a PDF report to file")
}

func runRing(cmd *cobra.Command, args []string) {
	wall := ringWallThickness
	if wall == 0 {
		// Solid bar.
		wall = ringOuterDiameter / 2
	}

	center := geometry.Point{X: ringCx, Y: ringCy}
	ring, err := section.NewRingSectionFromDiameter(center, ringOuterDiameter, wall)
	if err != nil {
		fmt.Printf("Error building ring section: %v\n", err)
		return
	}

	var mat *material.Material
	var weighted *section.WeightedProperties
	if ringMaterialName != "" || ringDensity != 0 || ringModulus != 0 {
		ref := secfile.MaterialRef{Name: ringMaterialName, Density: ringDensity, Modulus: ringModulus}
		m, err := ref.Resolve()
		if err != nil {
			fmt.Printf("Error resolving material: %v\n", err)
			return
		}
		ms, err := section.NewMaterialisedSection(ring, m)
		if err != nil {
			fmt.Printf("Error applying material: %v\n", err)
			return
		}
		wp := ms.WeightedProperties()
		mat = &m
		weighted = &wp
	}

	props := ring.Properties()

	printHeader("RING SECTION PROPERTIES")

	fmt.Println("DIMENSIONS:")
	fmt.Println(sectionRule)
	w := newResultWriter()
	fmt.Fprintf(w, "  Outer diameter:\t%.6g\n", ringOuterDiameter)
	if ring.InnerRadius() > 0 {
		fmt.Fprintf(w, "  Wall thickness:\t%.6g\n", ringWallThickness)
		fmt.Fprintf(w, "  Inner diameter:\t%.6g\n", 2*ring.InnerRadius())
	} else {
		fmt.Fprintf(w, "  Wall thickness:\tsolid\n")
	}
	fmt.Fprintf(w, "  Center:\t(%.6g, %.6g)\n", center.X, center.Y)
	w.Flush()
	fmt.Println()

	printGeometry(props)
	printPrincipalAxes(props)

	if mat != nil {
		printMaterial(*mat)
		printWeighted(*weighted)
	}

	printSummaryBox(props)

	title := fmt.Sprintf("ring D=%.6g", ringOuterDiameter)
	if ringShowDiagram {
		fmt.Println(diagram.DrawSectionSketch(ringDiagramData(title, ring, props)))
	}
	if ringExportFile != "" {
		err := diagram.ExportSectionImage(ringDiagramData(title, ring, props), ringExportFile)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", ringExportFile)
		}
	}
	if ringReportFile != "" {
		in := report.Input{
			Title:    "Ring Section Report",
			Name:     title,
			Props:    props,
			Material: mat,
			Weighted: weighted,
		}
		if err := report.WriteFile(ringReportFile, in); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", ringReportFile)
		}
	}
}
