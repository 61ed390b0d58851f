package cmd

import (
	"fmt"

	"github.com/runlevel0/cross-section/internal/workbook"
	"github.com/spf13/cobra"
)

var (
	batchInFile  string
	batchOutFile string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch property calculation from a spreadsheet",
	Long: `Compute properties for every shape listed in a spreadsheet workbook.

The first sheet is read with one shape per row after a header row:

  name | kind | p1 | p2 | material

where kind is "rectangle" (p1 width, p2 height) or "ring" (p1 outer
radius, p2 optional inner radius) and material is an optional catalog
name. Rows that cannot be parsed are skipped and counted.

Examples:
  cross-section batch --file shapes.xlsx
  cross-section batch -f shapes.xlsx -o results.xlsx`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInFile, "file", "f", "", "Path to input workbook [required]")
	batchCmd.MarkFlagRequired("file")

	batchCmd.Flags().StringVarP(&batchOutFile, "output", "o", "", "Write results to a new workbook")
}

func runBatch(cmd *cobra.Command, args []string) {
	result, err := workbook.ProcessFile(batchInFile)
	if err != nil {
		fmt.Printf("Error processing workbook: %v\n", err)
		return
	}

	printHeader("BATCH SECTION PROPERTIES")

	fmt.Println("RESULTS:")
	fmt.Println(sectionRule)
	w := newResultWriter()
	fmt.Fprintf(w, "  Name\tKind\tArea\tIxx\tIyy\tI1\tI2\n")
	fmt.Fprintf(w, "  ────\t────\t────\t───\t───\t──\t──\n")
	for _, e := range result.Entries {
		fmt.Fprintf(w, "  %s\t%s\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
			e.Name, e.Kind, e.Props.Area, e.Props.Ixx, e.Props.Iyy, e.Props.I1, e.Props.I2)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  %d rows computed, %d skipped\n", len(result.Entries), result.Skipped)
	fmt.Println()

	if batchOutFile != "" {
		if err := workbook.WriteResults(result.Entries, batchOutFile); err != nil {
			fmt.Printf("Error writing results: %v\n", err)
			return
		}
		fmt.Printf("Results written to: %s\n", batchOutFile)
	}
}
