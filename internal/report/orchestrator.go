package report

import (
	"context"
	"fmt"

	"github.com/ginjaninja78/sales-analytics-report/internal/session"
)

// Mode tells which kind of run the session data produced.
type Mode int

const (
	// ModeNone means the session carried neither a batch nor two periods.
	ModeNone Mode = iota
	ModeSingle
	ModeComparison
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeComparison:
		return "comparison"
	default:
		return "none"
	}
}

// Outcome lists everything written by one orchestrated run.
type Outcome struct {
	Mode Mode

	// Reports holds one Result for ModeSingle and two (period 1, period 2)
	// for ModeComparison.
	Reports []Result

	// ComparisonPath is set for ModeComparison.
	ComparisonPath string
}

// Paths returns every written artifact in generation order.
func (o *Outcome) Paths() []string {
	var paths []string
	for _, r := range o.Reports {
		paths = append(paths, r.Path)
	}
	if o.ComparisonPath != "" {
		paths = append(paths, o.ComparisonPath)
	}
	return paths
}

// Orchestrator fetches a session and writes the reports it calls for.
type Orchestrator struct {
	store      session.Store
	generator  *Generator
	defaultTax float64
	logger     Logger
}

// NewOrchestrator wires a session store to a generator. defaultTax applies
// when the session has no tax.
func NewOrchestrator(store session.Store, generator *Generator, defaultTax float64, logger Logger) *Orchestrator {
	return &Orchestrator{
		store:      store,
		generator:  generator,
		defaultTax: defaultTax,
		logger:     logger,
	}
}

// Run loads the session under key and generates:
//   - one report when the session has a single transaction list;
//   - two period reports plus a comparison when it has both period lists;
//   - nothing otherwise (ModeNone, no error).
//
// The single list wins when both forms are present.
func (o *Orchestrator) Run(ctx context.Context, key string) (*Outcome, error) {
	data, err := o.store.GetData(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %q: %w", key, err)
	}

	tax := o.defaultTax
	if data.Tax != nil {
		tax = *data.Tax
	}
	if tax < 0 || tax > 100 {
		return nil, fmt.Errorf("tax must be between 0 and 100, got %v", tax)
	}

	caller := data.CallerID.String()
	if caller == "" {
		caller = key
	}

	switch {
	case len(data.Transactions) > 0:
		result, err := o.generator.GenerateReport(caller, tax, data.Transactions, SuffixSingle)
		if err != nil {
			return nil, err
		}
		return &Outcome{Mode: ModeSingle, Reports: []Result{result}}, nil

	case len(data.TransactionsPeriod1) > 0 && len(data.TransactionsPeriod2) > 0:
		first, err := o.generator.GenerateReport(caller, tax, data.TransactionsPeriod1, SuffixPeriod1)
		if err != nil {
			return nil, fmt.Errorf("period 1: %w", err)
		}
		second, err := o.generator.GenerateReport(caller, tax, data.TransactionsPeriod2, SuffixPeriod2)
		if err != nil {
			return nil, fmt.Errorf("period 2: %w", err)
		}
		comparison, err := o.generator.GenerateComparison(caller, first.Metrics, second.Metrics)
		if err != nil {
			return nil, err
		}
		return &Outcome{
			Mode:           ModeComparison,
			Reports:        []Result{first, second},
			ComparisonPath: comparison,
		}, nil

	default:
		o.logger.Info("session has no transactions to report", "key", key)
		return &Outcome{Mode: ModeNone}, nil
	}
}
