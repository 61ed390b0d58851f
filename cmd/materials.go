package cmd

import (
	"fmt"

	"github.com/runlevel0/cross-section/internal/material"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the built-in material catalog",
	Long: `List the materials that definition files and flags can reference
by name. Catalog values are in SI units (kg/m³ and Pa); definition
files working in other units should give explicit density and modulus
values instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("BUILT-IN MATERIALS:")
		fmt.Println(sectionRule)
		w := newResultWriter()
		fmt.Fprintf(w, "  Name\tDensity (kg/m³)\tModulus (Pa)\n")
		fmt.Fprintf(w, "  ────\t───────────────\t────────────\n")
		for _, m := range material.Catalog() {
			fmt.Fprintf(w, "  %s\t%.6g\t%.6g\n", m.Name, m.Density, m.Modulus)
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
