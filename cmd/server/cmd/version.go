package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, injected through -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build and runtime information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Gatherhall Server")
		for _, row := range [][2]string{
			{"Version", Version},
			{"Git commit", GitCommit},
			{"Build date", BuildDate},
			{"Go version", runtime.Version()},
			{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
		} {
			fmt.Fprintf(out, "%-11s %s\n", row[0]+":", row[1])
		}
	},
}
