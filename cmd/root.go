package cmd

import (
	"fmt"
	"os"

	"github.com/runlevel0/cross-section/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cross-section",
	Short: "Planar cross-section property engine",
	Long: `cross-section - Planar Cross-Section Property Engine

A CLI tool for computing geometric and material-weighted properties
of planar cross-sections.

This tool helps structural and mechanical engineers compute:
  - Area, centroid and second moments of arbitrary polygonal sections
  - Principal axes, radii of gyration and the polar moment
  - Parametric ring (tube) sections
  - Built-up assemblies with placements, rotations and voids
  - Material-weighted and transformed-section properties
  - Equivalent idealised shapes (rectangle, ring)

Sections and assemblies are defined in JSON files; batch runs are
driven by spreadsheet workbooks.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   cross-section v%-41s║\n", version.Version)
		fmt.Println("  ║   Planar Cross-Section Property Engine                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing geometric and material-weighted")
		fmt.Println("  properties of planar cross-sections.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Arbitrary polygonal sections with holes")
		fmt.Println("    • Principal axes, radii of gyration and polar moment")
		fmt.Println("    • Built-up assemblies with rotations and voids")
		fmt.Println("    • Material catalog and transformed sections")
		fmt.Println("    • Equivalent idealised rectangles and rings")
		fmt.Println("    • ASCII sketches, image export, PDF reports and batch runs")
		fmt.Println()
		fmt.Println("  Use 'cross-section --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
