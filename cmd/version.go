// =============================================================================
// Sales Analytics Report - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   reporter version [--short]
//
// OUTPUT:
//   Sales Analytics Report
//   Version:    1.2.0
//   Commit:     3f9c2ab
//   Build Date: 2026-10-18
//   Go Version: go1.24.11
//
// Build metadata is injected with ldflags:
//   go build -ldflags "-X github.com/ginjaninja78/sales-analytics-report/cmd.Version=1.2.0 \
//     -X github.com/ginjaninja78/sales-analytics-report/cmd.Commit=$(git rev-parse --short HEAD)"
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, overridden at link time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// shortVersion prints only the version string.
var shortVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), shortVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "Print the version number only")
}

func printVersion(out io.Writer, short bool) {
	if short {
		fmt.Fprintln(out, Version)
		return
	}
	fmt.Fprintln(out, "Sales Analytics Report")
	fmt.Fprintf(out, "Version:    %s\n", Version)
	fmt.Fprintf(out, "Commit:     %s\n", Commit)
	fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
}
