package cmd

import (
	"fmt"

	"github.com/runlevel0/cross-section/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cross-section",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cross-section v%s\n", version.Version)
		fmt.Println("Planar Cross-Section Property Engine")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
