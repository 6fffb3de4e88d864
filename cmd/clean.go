package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-analytics-report/pkg/utils"
)

// retentionDays overrides retention_days when set.
var retentionDays int

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove reports older than the retention period",
	Long: `The clean command deletes .xlsx files in reports_dir whose modification time
is older than retention_days (or --days). A retention of 0 keeps everything.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.closer.Close()

		days := env.config.RetentionDays
		if cmd.Flags().Changed("days") {
			days = retentionDays
		}
		if days < 0 {
			return fmt.Errorf("--days must not be negative, got %d", days)
		}
		if days == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Retention disabled, nothing removed.")
			return nil
		}

		removed, err := utils.CleanOldReports(env.config.ReportsDir, time.Duration(days)*24*time.Hour, time.Now())
		if err != nil {
			env.logger.Error("cleanup failed", "dir", env.config.ReportsDir, "error", err)
			return err
		}

		env.logger.Info("old reports removed", "dir", env.config.ReportsDir, "removed", removed, "retention_days", days)
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d report(s) from %s\n", removed, env.config.ReportsDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().IntVar(&retentionDays, "days", 0, "Retention in days overriding retention_days")
}
