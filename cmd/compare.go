package cmd

import (
	"github.com/spf13/cobra"
)

// compareCmd is analyze restricted to two-period sessions.
var compareCmd = &cobra.Command{
	Use:   "compare <session-key>",
	Short: "Generate period reports and their comparison for a session",
	Long: `The compare command writes a report for each of the two periods stored in
the session plus a comparison workbook. It fails when the session does not hold
both periods; a single transaction list is ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tax *float64
		if cmd.Flags().Changed("tax") {
			tax = &taxOverride
		}
		return runAnalyze(cmd.Context(), args[0], tax, true, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&sessionFile, "session-file", "", "Read the session from this JSON file instead of the sessions directory")
	compareCmd.Flags().Float64Var(&taxOverride, "tax", 0, "Tax percentage (0-100) overriding the session value")
}
