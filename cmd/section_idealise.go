package cmd

import (
	"fmt"
	"strings"

	"github.com/runlevel0/cross-section/internal/diagram"
	"github.com/runlevel0/cross-section/internal/secfile"
	"github.com/runlevel0/cross-section/internal/section"
	"github.com/spf13/cobra"
)

var (
	idealiseFile     string
	idealiseKind     string
	idealisePreserve string
)

var sectionIdealiseCmd = &cobra.Command{
	Use:   "idealise",
	Short: "Solve an equivalent simple shape for a section",
	Long: `Solve a rectangle or ring reproducing chosen properties of a section
defined in a JSON file.

Both shapes have two free parameters, so up to two of the invariants
area, Ixx and Iyy can be preserved. With a single invariant the
remaining freedom is closed by a documented default: rectangles become
square, rings become solid circles.

Examples:
  cross-section section idealise -f girder.json --kind rectangle
  cross-section section idealise -f girder.json --kind ring --preserve area,Ixx`,
	Run: runSectionIdealise,
}

func init() {
	sectionCmd.AddCommand(sectionIdealiseCmd)

	sectionIdealiseCmd.Flags().StringVarP(&idealiseFile, "file", "f", "", "Path to section JSON file [required]")
	sectionIdealiseCmd.MarkFlagRequired("file")

	sectionIdealiseCmd.Flags().StringVar(&idealiseKind, "kind", "rectangle", "Target shape: rectangle or ring")
	sectionIdealiseCmd.Flags().StringVar(&idealisePreserve, "preserve", "area,Ixx", "Comma-separated invariants to preserve: area, Ixx, Iyy")
}

func runSectionIdealise(cmd *cobra.Command, args []string) {
	loaded, err := secfile.LoadSection(idealiseFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	props := loaded.Section().Properties()
	kind := section.ShapeKind(strings.ToLower(strings.TrimSpace(idealiseKind)))

	ideal, err := section.Idealise(props, kind, parsePreserve(idealisePreserve)...)
	if err != nil {
		fmt.Printf("Error idealising section: %v\n", err)
		return
	}

	printHeader("SECTION IDEALISATION")

	if loaded.Name != "" {
		fmt.Printf("  Section: %s\n", loaded.Name)
		fmt.Println()
	}

	fmt.Println("TARGET PROPERTIES:")
	fmt.Println(sectionRule)
	w := newResultWriter()
	fmt.Fprintf(w, "  Area:\t%.6g\n", props.Area)
	fmt.Fprintf(w, "  Ixx:\t%.6g\n", props.Ixx)
	fmt.Fprintf(w, "  Iyy:\t%.6g\n", props.Iyy)
	w.Flush()
	fmt.Println()

	var lines []string
	switch ideal.Kind {
	case section.Rectangle:
		lines = append(lines,
			fmt.Sprintf("Width  = %.6g", ideal.Width),
			fmt.Sprintf("Height = %.6g", ideal.Height))
	case section.Ring:
		lines = append(lines,
			fmt.Sprintf("Outer radius = %.6g", ideal.OuterRadius),
			fmt.Sprintf("Inner radius = %.6g", ideal.InnerRadius))
	}
	lines = append(lines,
		fmt.Sprintf("Area achieved = %.6g", ideal.Achieved.Area),
		fmt.Sprintf("Ixx achieved  = %.6g", ideal.Achieved.Ixx),
		fmt.Sprintf("Iyy achieved  = %.6g", ideal.Achieved.Iyy))

	title := fmt.Sprintf("EQUIVALENT %s", strings.ToUpper(string(ideal.Kind)))
	fmt.Println(diagram.DrawSummaryBox(title, lines))

	if ideal.Assumption != "" {
		fmt.Printf("  Note: %s\n", ideal.Assumption)
		fmt.Println()
	}
}

// parsePreserve maps the comma-separated flag value to invariants.
// Unknown names are passed through so the solver can report them.
func parsePreserve(csv string) []section.Invariant {
	var out []section.Invariant
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch strings.ToLower(part) {
		case "area":
			out = append(out, section.PreserveArea)
		case "ixx":
			out = append(out, section.PreserveIxx)
		case "iyy":
			out = append(out, section.PreserveIyy)
		default:
			out = append(out, section.Invariant(part))
		}
	}
	return out
}
