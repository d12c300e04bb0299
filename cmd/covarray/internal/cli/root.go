package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "covarray",
	Short: "Build and verify t-way covering arrays using IPOG",
	Long: `covarray constructs combinatorial t-way covering arrays using the
In-Parameter-Order General (IPOG) strategy: horizontal growth extends
existing rows greedily, column by column, and vertical growth appends
whatever rows horizontal growth left uncovered.

COMMANDS:
  covarray build      construct a single covering array and print it
  covarray verify      check that a covering array file satisfies t-way coverage
  covarray experiment   sweep Build across configs/strides and report array sizes

EXAMPLES:
  # Build a 2-way covering array over 10 binary parameters
  covarray build --t 2 --k 10 --v 2

  # Verify a previously built array from a file
  covarray verify --t 2 --v 2 array.csv

  # Sweep strides 1..4 for a fixed config, 20 iterations each
  covarray experiment --t 2 --k 10 --v 2 --strides 1,2,3,4 --iterations 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(experimentCmd)
}
