package cmd

import (
	"fmt"

	"github.com/runlevel0/cross-section/internal/diagram"
	"github.com/runlevel0/cross-section/internal/report"
	"github.com/runlevel0/cross-section/internal/secfile"
	"github.com/spf13/cobra"
)

var (
	sectionPropsFile        string
	sectionPropsShowDiagram bool
	sectionPropsShowSweep   bool
	sectionPropsExportFile  string
	sectionPropsReportFile  string
)

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Calculate the properties of a section",
	Long: `Calculate area, centroid, second moments, principal axes, radii of
gyration and the polar moment of a section defined in a JSON file.

All properties are reported about the centroid. When the file names a
material, mass and stiffness weighted properties are included.

Examples:
  cross-section section props --file girder.json
  cross-section section props -f girder.json --diagram --sweep
  cross-section section props -f girder.json -o girder.png --report girder.pdf`,
	Run: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVarP(&sectionPropsFile, "file", "f", "", "Path to section JSON file [required]")
	sectionPropsCmd.MarkFlagRequired("file")

	// Diagram and export options
	sectionPropsCmd.Flags().BoolVar(&sectionPropsShowDiagram, "diagram", false, "Show ASCII sketch of the section")
	sectionPropsCmd.Flags().BoolVar(&sectionPropsShowSweep, "sweep", false, "Show Ixx/Iyy chart under section rotation")
	sectionPropsCmd.Flags().StringVarP(&sectionPropsExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	sectionPropsCmd.Flags().StringVar(&sectionPropsReportFile, "report", "", "Write a PDF report to file")
}

func runSectionProps(cmd *cobra.Command, args []string) {
	loaded, err := secfile.LoadSection(sectionPropsFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	props := loaded.Section().Properties()
	poly := loaded.Generic.Polygon()

	printHeader("CROSS-SECTION PROPERTIES")

	if loaded.Name != "" {
		fmt.Printf("  Section: %s\n", loaded.Name)
	}
	if loaded.Description != "" {
		fmt.Printf("  Description: %s\n", loaded.Description)
	}
	fmt.Println()

	fmt.Println("BOUNDARY:")
	fmt.Println(sectionRule)
	w := newResultWriter()
	lo, hi := loaded.Generic.Bounds()
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(poly.Outer))
	fmt.Fprintf(w, "  Holes:\t%d\n", len(poly.Holes))
	fmt.Fprintf(w, "  Bounding box:\t(%.6g, %.6g) to (%.6g, %.6g)\n", lo.X, lo.Y, hi.X, hi.Y)
	fmt.Fprintf(w, "  Perimeter:\t%.6g\n", poly.Perimeter())
	w.Flush()
	fmt.Println()

	printGeometry(props)
	printPrincipalAxes(props)

	if loaded.Materialised != nil {
		printMaterial(loaded.Materialised.Material())
		printWeighted(loaded.Materialised.WeightedProperties())
	}

	printSummaryBox(props)

	if sectionPropsShowDiagram {
		fmt.Println(diagram.DrawSectionSketch(sectionDiagramData(loaded.Name, loaded.Generic, props)))
	}
	if sectionPropsShowSweep {
		fmt.Println(diagram.InertiaSweepChart(props.Ixx, props.Iyy, props.Ixy))
		fmt.Println()
	}

	if sectionPropsExportFile != "" {
		err := diagram.ExportSectionImage(sectionDiagramData(loaded.Name, loaded.Generic, props), sectionPropsExportFile)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", sectionPropsExportFile)
		}
	}

	if sectionPropsReportFile != "" {
		in := report.Input{
			Title:       "Cross-Section Report",
			Name:        loaded.Name,
			Description: loaded.Description,
			Props:       props,
		}
		if loaded.Materialised != nil {
			m := loaded.Materialised.Material()
			wp := loaded.Materialised.WeightedProperties()
			in.Material = &m
			in.Weighted = &wp
		}
		if err := report.WriteFile(sectionPropsReportFile, in); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", sectionPropsReportFile)
		}
	}
}
