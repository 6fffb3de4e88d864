// =============================================================================
// Sales Analytics Report - Report Generator
// =============================================================================
//
// This module turns one batch of transactions into a written workbook.
//
// GENERATION PIPELINE (one period):
//   1. Normalize transactions and skip malformed records
//   2. Aggregate metrics and rankings
//   3. Lay out the workbook
//   4. Ensure the output directory exists
//   5. Write the workbook atomically
//
// COMPARISON:
//   Two Metrics values are diffed and written as a single-sheet workbook.
//
// A Generator holds no per-report state, so distinct callers may share one.
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/ginjaninja78/sales-analytics-report/internal/analytics"
	"github.com/ginjaninja78/sales-analytics-report/internal/types"
	"github.com/ginjaninja78/sales-analytics-report/internal/validation"
	"github.com/ginjaninja78/sales-analytics-report/internal/xlsxwriter"
	"github.com/ginjaninja78/sales-analytics-report/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// Period suffixes embedded in report file names.
const (
	SuffixSingle  = "single_report"
	SuffixPeriod1 = "period_1"
	SuffixPeriod2 = "period_2"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of generating one period report.
type Result struct {
	// Path is the written workbook.
	Path string

	// Metrics is the summary written to the "Метрики" sheet.
	Metrics analytics.Metrics

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// TransactionsReceived is the length of the input list.
	TransactionsReceived int

	// RowsWritten is the number of normalized rows in the sales sheet.
	RowsWritten int

	// RecordsSkipped is the number of malformed records left out.
	RecordsSkipped int

	// ProcessingTime is the time taken to build and write the report.
	ProcessingTime time.Duration
}

// =============================================================================
// GENERATOR STRUCTURE
// =============================================================================

// Generator writes period and comparison reports.
type Generator struct {
	files  *utils.FileManager
	logger Logger
}

// Logger is the logging surface used by this package. *slog.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NewGenerator creates a Generator writing into files.OutputDir.
func NewGenerator(files *utils.FileManager, logger Logger) *Generator {
	return &Generator{files: files, logger: logger}
}

// =============================================================================
// PERIOD REPORT
// =============================================================================

// GenerateReport builds and writes the workbook for one batch.
//
// PARAMETERS:
//   - callerID: Embedded in the file name.
//   - tax: Tax percentage applied to profit.
//   - transactions: The batch.
//   - suffix: One of the Suffix* constants.
//
// RETURNS:
//   - The Result on success. Nothing is written when an error is returned.
func (g *Generator) GenerateReport(callerID string, tax float64, transactions []types.Transaction, suffix string) (Result, error) {
	startTime := time.Now()

	analysis := analytics.Analyze(transactions, tax)
	for _, skipped := range analysis.Skipped {
		g.logger.Warn("skipping malformed record",
			"caller", callerID,
			"period", suffix,
			"index", skipped.Index,
			"order_id", skipped.OrderID,
			"field", skipped.Field,
			"reason", skipped.Reason,
		)
	}
	if len(analysis.Warnings) > 0 {
		g.logger.Warn("records kept with warnings",
			"caller", callerID,
			"period", suffix,
			"count", len(analysis.Warnings),
		)
		g.logger.Debug(validation.FormatErrors(analysis.Warnings), "caller", callerID, "period", suffix)
	}
	unknown := 0
	for _, row := range analysis.Rows {
		if !row.Status.Known() {
			unknown++
		}
	}
	if unknown > 0 {
		g.logger.Warn("rows with unknown status codes",
			"caller", callerID,
			"period", suffix,
			"count", unknown,
		)
	}
	g.logger.Debug("aggregated transactions",
		"caller", callerID,
		"period", suffix,
		"rows", len(analysis.Rows),
		"products", len(analysis.Products.ByUnitsSold),
		"customers", len(analysis.Customers),
	)

	f, err := xlsxwriter.BuildReport(analysis)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build report: %w", err)
	}
	defer f.Close()

	path := g.files.ReportPath(callerID, suffix)
	if err := g.write(path, f); err != nil {
		return Result{}, err
	}

	result := Result{
		Path:    path,
		Metrics: analysis.Metrics,
		Stats: ProcessingStats{
			TransactionsReceived: len(transactions),
			RowsWritten:          len(analysis.Rows),
			RecordsSkipped:       len(analysis.Skipped),
			ProcessingTime:       time.Since(startTime),
		},
	}
	g.logger.Info("report written",
		"caller", callerID,
		"period", suffix,
		"path", path,
		"rows", result.Stats.RowsWritten,
		"skipped", result.Stats.RecordsSkipped,
	)
	return result, nil
}

// =============================================================================
// COMPARISON REPORT
// =============================================================================

// GenerateComparison writes the period-over-period comparison workbook.
func (g *Generator) GenerateComparison(callerID string, period1, period2 analytics.Metrics) (string, error) {
	f, err := xlsxwriter.BuildComparison(analytics.Compare(period1, period2))
	if err != nil {
		return "", fmt.Errorf("failed to build comparison: %w", err)
	}
	defer f.Close()

	path := g.files.ComparisonPath(callerID)
	if err := g.write(path, f); err != nil {
		return "", err
	}

	g.logger.Info("comparison written", "caller", callerID, "path", path)
	return path, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// write ensures the output directory exists and stores the workbook at path.
func (g *Generator) write(path string, f *excelize.File) error {
	if err := g.files.EnsureOutputDir(); err != nil {
		return err
	}
	err := utils.WriteAtomic(path, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	})
	if err != nil {
		g.logger.Error("failed to write report", "path", path, "error", err)
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
