package report

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-analytics-report/internal/analytics"
	"github.com/ginjaninja78/sales-analytics-report/internal/logging"
	"github.com/ginjaninja78/sales-analytics-report/internal/types"
	"github.com/ginjaninja78/sales-analytics-report/internal/xlsxwriter"
	"github.com/ginjaninja78/sales-analytics-report/pkg/utils"
)

var fixedNow = time.Date(2024, 5, 1, 14, 30, 22, 0, time.UTC)

func tx(order, user string, status int, product string, price float64, count int, category string) types.Transaction {
	p := types.Decimal(price)
	c := count
	return types.Transaction{
		DatePayed: "2024-05-01",
		ID:        types.ID(order),
		UserID:    types.ID(user),
		Status:    status,
		Items: []types.LineItem{{
			ProductID:   "1",
			Count:       &c,
			ProductName: product,
			Price:       &p,
			Category:    &types.Category{Slug: category},
		}},
	}
}

func scenario() []types.Transaction {
	return []types.Transaction{
		tx("1", "u1", 7, "P1", 100, 2, "cat1"),
		tx("2", "u1", 8, "P1", 100, 1, "cat1"),
		tx("3", "u2", 7, "P2", 50, 1, "cat2"),
	}
}

func newTestGenerator(dir string) *Generator {
	files := utils.NewFileManager(dir)
	files.Now = func() time.Time { return fixedNow }
	return NewGenerator(files, logging.Discard())
}

func TestGenerator_GenerateReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	g := newTestGenerator(dir)

	result, err := g.GenerateReport("42", 10, scenario(), SuffixSingle)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "report_42_single_report_20240501_143022.xlsx"), result.Path)
	assert.Equal(t, 350.0, result.Metrics.TotalRevenue)
	assert.InDelta(t, 135.0, result.Metrics.TotalProfit, 1e-9)
	assert.Equal(t, 4, result.Metrics.TotalUnitsSold)
	assert.Equal(t, 2, result.Metrics.CompletedTransactions)
	assert.Equal(t, 175.0, result.Metrics.AverageOrderValue)
	assert.Equal(t, 3, result.Stats.TransactionsReceived)
	assert.Equal(t, 3, result.Stats.RowsWritten)
	assert.Zero(t, result.Stats.RecordsSkipped)

	f, err := excelize.OpenFile(result.Path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsxwriter.SheetSales, xlsxwriter.SheetMetrics, xlsxwriter.SheetTops}, f.GetSheetList())
	revenue, err := f.GetCellValue(xlsxwriter.SheetMetrics, "A2")
	require.NoError(t, err)
	assert.Equal(t, "350", revenue)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestGenerator_GenerateReport_SkipsMalformed(t *testing.T) {
	g := newTestGenerator(t.TempDir())

	broken := tx("9", "u9", 7, "P9", 1, 1, "c")
	broken.Items = nil

	result, err := g.GenerateReport("42", 0, append(scenario(), broken), SuffixPeriod1)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Stats.TransactionsReceived)
	assert.Equal(t, 3, result.Stats.RowsWritten)
	assert.Equal(t, 1, result.Stats.RecordsSkipped)
	assert.Equal(t, 350.0, result.Metrics.TotalRevenue)
}

func TestGenerator_GenerateReport_OutputDirFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	g := newTestGenerator(filepath.Join(blocker, "reports"))

	_, err := g.GenerateReport("42", 0, scenario(), SuffixSingle)
	assert.Error(t, err)
}

func TestGenerator_GenerateComparison(t *testing.T) {
	dir := t.TempDir()
	g := newTestGenerator(dir)

	p1 := analytics.Metrics{TotalRevenue: 100, TotalProfit: 90, TotalUnitsSold: 2, CompletedTransactions: 1, AverageOrderValue: 100}
	p2 := analytics.Metrics{TotalRevenue: 350, TotalProfit: 135, TotalUnitsSold: 4, CompletedTransactions: 2, AverageOrderValue: 175}

	path, err := g.GenerateComparison("42", p1, p2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "comparison_report_42_20240501_143022.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxwriter.SheetComparison)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Общая выручка", "100", "350", "250"}, rows[1])
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(msg string, args ...any) {}
func (l *recordingLogger) Info(msg string, args ...any)  {}
func (l *recordingLogger) Error(msg string, args ...any) {}
func (l *recordingLogger) Warn(msg string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprint(append([]any{msg}, args...)...))
}

func TestGenerator_GenerateReport_WarnsOnUnknownStatus(t *testing.T) {
	files := utils.NewFileManager(t.TempDir())
	files.Now = func() time.Time { return fixedNow }
	logger := &recordingLogger{}
	g := NewGenerator(files, logger)

	input := append(scenario(), tx("4", "u3", 999, "P3", 5, 1, "cat3"))
	result, err := g.GenerateReport("42", 0, input, SuffixSingle)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Stats.RowsWritten)

	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0], "rows with unknown status codes")
}
