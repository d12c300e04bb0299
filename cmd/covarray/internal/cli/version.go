package cli

import (
	"fmt"

	"github.com/example/covarray/cmd/covarray/internal/ui"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of covarray.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	ui.PrintInfo(fmt.Sprintf("covarray version %s", version))
	ui.PrintInfo("IPOG t-way covering array construction")
}
