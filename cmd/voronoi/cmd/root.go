package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "voronoi",
	Short: "compute planar Voronoi diagrams",
	Long: `voronoi computes the Voronoi diagram of a set of sites with
Fortune's sweep-line algorithm, and prints the resulting vertices and
edges as JSON or a short text summary.`,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(); it only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
