// =============================================================================
// Sales Analytics Report - Main Entry Point
// =============================================================================
//
// USAGE:
//   reporter analyze <session-key>  - Write the report(s) for a session
//   reporter compare <session-key>  - Write period reports and their comparison
//   reporter clean                  - Remove reports past the retention period
//   reporter version                - Display the application version
//
// ARCHITECTURE:
//   - cmd/                : CLI command definitions (Cobra)
//   - internal/types      : Transaction input model
//   - internal/validation : Per-record checks
//   - internal/analytics  : Normalization, metrics and rankings
//   - internal/xlsxwriter : Workbook layout
//   - internal/report     : Generation and orchestration
//   - internal/session    : Session storage
//   - pkg/utils           : Report file naming and atomic writes
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/sales-analytics-report/cmd"
)

func main() {
	cmd.Execute()
}
