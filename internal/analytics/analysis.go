package analytics

import (
	"github.com/ginjaninja78/sales-analytics-report/internal/types"
	"github.com/ginjaninja78/sales-analytics-report/internal/validation"
)

// Analysis is everything a period report is assembled from.
type Analysis struct {
	Rows       []Row
	Skipped    []*MalformedRecordError
	Warnings   []*validation.ValidationError
	Metrics    Metrics
	Products   ProductTops
	Customers  []CustomerStats
	Categories []CategoryStats
}

// Analyze runs the normalizer and every aggregation over one batch of
// transactions. It is pure: the same input always yields the same Analysis.
func Analyze(transactions []types.Transaction, tax float64) Analysis {
	rows, skipped, warnings := normalize(transactions, tax)
	return Analysis{
		Rows:       rows,
		Skipped:    skipped,
		Warnings:   warnings,
		Metrics:    CalculateMetrics(rows),
		Products:   TopProducts(rows),
		Customers:  TopCustomers(rows),
		Categories: TopCategories(rows),
	}
}
