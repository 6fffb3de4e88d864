// =============================================================================
// Sales Analytics Report - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every other command
// (analyze, compare, clean, version) is attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (reporter)
//   ├── analyzeCmd (reporter analyze <session-key>)
//   ├── compareCmd (reporter compare <session-key>)
//   ├── cleanCmd   (reporter clean)
//   └── versionCmd (reporter version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading config.yaml
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-analytics-report/internal/config"
	"github.com/ginjaninja78/sales-analytics-report/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
var cfgFile string

// verbose forces debug logging regardless of log_level.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "reporter",
	Short: "Sales Analytics Report - Turn order sessions into Excel reports",
	Long: `Sales Analytics Report reads the transactions collected in a session and
writes Excel workbooks with a sales sheet, summary metrics and top lists.

When a session holds two periods, a report is written for each period plus a
comparison workbook with the change of every metric.

Example Usage:
  reporter analyze 42                         # Report for session 42
  reporter analyze any --session-file s.json  # Report for a session file
  reporter compare 42                         # Require a two-period comparison
  reporter clean                              # Remove reports past retention`,

	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// environment is what every command needs after startup.
type environment struct {
	config *config.MainConfig
	logger *slog.Logger
	closer io.Closer
}

// setup loads the configuration and builds the logger. The caller must close
// env.closer.
func setup() (*environment, error) {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load main config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	logger, closer := logging.Setup("reporter", logging.Options{
		Level:      level,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	logger.Debug("configuration loaded", "path", cfgFile, "reports_dir", cfg.ReportsDir)

	return &environment{config: cfg, logger: logger, closer: closer}, nil
}
