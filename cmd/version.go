package cmd

import (
	"fmt"

	"github.com/jsando/patterns/version"
	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "patterns version %s\n", version.Version)
		fmt.Fprintf(out, " commit: %s\n", version.Commit)
		fmt.Fprintf(out, " built: %s\n", version.Date)
	},
}
