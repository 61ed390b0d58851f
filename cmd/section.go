package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Property calculation for sections defined in JSON files",
	Long: `Compute properties of cross-sections defined in JSON files.

The boundary is an arbitrary simple polygon given as a vertex list;
holes are optional inner boundaries that must lie inside it. An
optional material (a catalog name, or explicit density and modulus
values) adds mass and stiffness weighted properties.

Subcommands:
  props     - Calculate area, centroid, inertia and principal axes
  idealise  - Solve an equivalent rectangle or ring

Example JSON file structure:
{
  "name": "T girder",
  "description": "welded plate girder, top flange only",
  "outer": [
    {"x": 0, "y": 0},
    {"x": 40, "y": 0},
    {"x": 40, "y": 260},
    {"x": 150, "y": 260},
    {"x": 150, "y": 300},
    {"x": -110, "y": 300},
    {"x": -110, "y": 260},
    {"x": 0, "y": 260}
  ],
  "material": {"name": "steel"}
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
