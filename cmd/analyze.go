// =============================================================================
// Sales Analytics Report - Analyze Command
// =============================================================================
//
// COMMAND USAGE:
//   reporter analyze <session-key> [flags]
//
// FLAGS:
//   --session-file : Read this session file instead of the configured store
//   --tax          : Tax percentage overriding the session and default_tax
//
// SESSION STORE:
//   --session-file, else Redis when redis_addr is set, else
//   <sessions_dir>/<key>.json
//
// PIPELINE:
//   1. Load configuration and set up logging
//   2. Load the session
//   3. Write one report, or two period reports plus a comparison
//   4. Print the written paths and a metrics summary
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ginjaninja78/sales-analytics-report/internal/analytics"
	"github.com/ginjaninja78/sales-analytics-report/internal/report"
	"github.com/ginjaninja78/sales-analytics-report/internal/session"
	"github.com/ginjaninja78/sales-analytics-report/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// sessionFile replaces the sessions directory lookup with one file.
var sessionFile string

// taxOverride is applied when the --tax flag is set.
var taxOverride float64

// =============================================================================
// ANALYZE COMMAND DEFINITION
// =============================================================================

var analyzeCmd = &cobra.Command{
	Use:   "analyze <session-key>",
	Short: "Generate the sales report for a session",
	Long: `The analyze command loads the session stored under <session-key> and writes
its Excel report into reports_dir.

A session with a single transaction list yields one report. A session with two
period lists yields a report per period and a comparison workbook. A session
with neither writes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tax *float64
		if cmd.Flags().Changed("tax") {
			tax = &taxOverride
		}
		return runAnalyze(cmd.Context(), args[0], tax, false, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(
		&sessionFile,
		"session-file",
		"",
		"Read the session from this JSON file instead of the sessions directory",
	)
	analyzeCmd.Flags().Float64Var(
		&taxOverride,
		"tax",
		0,
		"Tax percentage (0-100) overriding the session value",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runAnalyze wires the store, generator and orchestrator and runs one key.
// With requireComparison set, only the two-period form is accepted.
func runAnalyze(ctx context.Context, key string, tax *float64, requireComparison bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	env, err := setup()
	if err != nil {
		return err
	}
	defer env.closer.Close()

	var store session.Store
	switch {
	case sessionFile != "":
		store = session.SingleFile(sessionFile)
	case env.config.RedisAddr != "":
		client := session.NewRedisClient(env.config.RedisAddr, env.config.RedisPassword, env.config.RedisDB)
		defer client.Close()
		store = session.NewRedisStore(client, env.config.RedisKeyPrefix)
		env.logger.Debug("using redis session store", "addr", env.config.RedisAddr, "db", env.config.RedisDB)
	default:
		store = session.NewFileStore(env.config.SessionsDir)
	}
	if tax != nil {
		store = taxStore{Store: store, tax: *tax}
	}
	if requireComparison {
		store = periodsOnlyStore{Store: store}
	}

	generator := report.NewGenerator(utils.NewFileManager(env.config.ReportsDir), env.logger)
	orchestrator := report.NewOrchestrator(store, generator, env.config.DefaultTax, env.logger)

	outcome, err := orchestrator.Run(ctx, key)
	if err != nil {
		env.logger.Error("report generation failed", "key", key, "error", err)
		return err
	}

	if requireComparison && outcome.Mode != report.ModeComparison {
		return fmt.Errorf("session %q does not hold two periods to compare", key)
	}

	printOutcome(out, outcome)
	return nil
}

// =============================================================================
// STORE DECORATORS
// =============================================================================

// taxStore forces a tax rate onto every loaded session.
type taxStore struct {
	session.Store
	tax float64
}

func (s taxStore) GetData(ctx context.Context, key string) (*session.Data, error) {
	data, err := s.Store.GetData(ctx, key)
	if err != nil {
		return nil, err
	}
	tax := s.tax
	data.Tax = &tax
	return data, nil
}

// periodsOnlyStore hides the single transaction list so only a comparison
// can be produced.
type periodsOnlyStore struct {
	session.Store
}

func (s periodsOnlyStore) GetData(ctx context.Context, key string) (*session.Data, error) {
	data, err := s.Store.GetData(ctx, key)
	if err != nil {
		return nil, err
	}
	data.Transactions = nil
	return data, nil
}

// =============================================================================
// OUTPUT
// =============================================================================

// printOutcome writes the artifact paths and a localized metrics summary.
func printOutcome(out io.Writer, outcome *report.Outcome) {
	if outcome.Mode == report.ModeNone {
		fmt.Fprintln(out, "No transactions to report.")
		return
	}

	fmt.Fprintln(out, "=== Sales Analytics Report ===")
	for _, path := range outcome.Paths() {
		fmt.Fprintf(out, "Written: %s\n", path)
	}

	p := message.NewPrinter(language.Russian)
	for i, r := range outcome.Reports {
		if len(outcome.Reports) > 1 {
			p.Fprintf(out, "\nPeriod %d\n", i+1)
		} else {
			fmt.Fprintln(out)
		}
		printMetrics(p, out, r.Metrics)
		if r.Stats.RecordsSkipped > 0 {
			p.Fprintf(out, "Skipped records: %d\n", r.Stats.RecordsSkipped)
		}
	}
}

func printMetrics(p *message.Printer, out io.Writer, m analytics.Metrics) {
	for i, v := range m.Values() {
		p.Fprintf(out, "%-30s %.2f\n", analytics.MetricNames[i], v)
	}
}
