// =============================================================================
// Sales Analytics Report - XLSX Workbook Writer
// =============================================================================
//
// This module lays out analysis results as XLSX workbooks. It knows nothing
// about file names or directories; it only fills an in-memory excelize.File.
//
// PERIOD REPORT LAYOUT:
//   | Sheet         | Content                                                 |
//   |---------------|---------------------------------------------------------|
//   | Продажи       | Every normalized row under a 12-column header            |
//   | Метрики       | One header row of metric names and one row of values     |
//   | Топы товаров  | Sheet title, then titled tables stacked top to bottom    |
//
// STACKED SECTIONS ("Топы товаров"):
//   row r       : section title (bold)
//   row r+1     : table header
//   row r+2 ... : table rows
//   next section starts at r + len(rows) + SectionGap
//
// COMPARISON LAYOUT:
//   A single "Сравнительный отчет" sheet with one row per metric.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-analytics-report/internal/analytics"
)

// =============================================================================
// SHEET NAMES AND LAYOUT CONSTANTS
// =============================================================================

const (
	SheetSales      = "Продажи"
	SheetMetrics    = "Метрики"
	SheetTops       = "Топы товаров"
	SheetComparison = "Сравнительный отчет"

	// SectionGap is the distance from the last data row of one stacked table
	// to the title of the next, counted as in len(rows) + SectionGap.
	SectionGap = 3

	// firstSectionRow is where stacked sections begin, below the sheet title.
	firstSectionRow = 2
)

// SalesHeaders are the column headers of the sales sheet.
var SalesHeaders = []string{
	"Order ID", "User ID", "Date Payed", "Status", "Product ID", "Amount",
	"Product Name", "Price", "Revenue", "Profit", "Discount", "Category",
}

// =============================================================================
// TABLE AND SECTION
// =============================================================================

// Table is a header row followed by data rows.
type Table struct {
	Headers []string
	Rows    [][]interface{}
}

// Section is a titled table placed on a stacked sheet.
type Section struct {
	Title string
	Table Table
}

// styles holds the style IDs registered on a workbook.
type styles struct {
	sheetTitle   int
	sectionTitle int
	header       int
}

func registerStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	if s.sheetTitle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return s, fmt.Errorf("failed to create sheet title style: %w", err)
	}
	if s.sectionTitle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, fmt.Errorf("failed to create section title style: %w", err)
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Border:    []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}

	return s, nil
}

// =============================================================================
// LOW-LEVEL WRITERS
// =============================================================================

// cellName converts 0-based (col, row) coordinates to an "A1" reference.
func cellName(col, row int) (string, error) {
	return excelize.CoordinatesToCellName(col+1, row+1)
}

// writeTable writes a table with its header at the 0-based startRow.
//
// RETURNS:
//   - The number of spreadsheet rows occupied (header included).
func writeTable(f *excelize.File, sheet string, startRow int, table Table, headerStyle int) (int, error) {
	start, err := cellName(0, startRow)
	if err != nil {
		return 0, err
	}

	headers := make([]interface{}, len(table.Headers))
	for i, h := range table.Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(sheet, start, &headers); err != nil {
		return 0, fmt.Errorf("failed to write header on %s: %w", sheet, err)
	}
	if len(table.Headers) > 0 {
		end, err := cellName(len(table.Headers)-1, startRow)
		if err != nil {
			return 0, err
		}
		if err := f.SetCellStyle(sheet, start, end, headerStyle); err != nil {
			return 0, fmt.Errorf("failed to style header on %s: %w", sheet, err)
		}
	}

	for i := range table.Rows {
		cell, err := cellName(0, startRow+1+i)
		if err != nil {
			return 0, err
		}
		if err := f.SetSheetRow(sheet, cell, &table.Rows[i]); err != nil {
			return 0, fmt.Errorf("failed to write row %d on %s: %w", i+1, sheet, err)
		}
	}

	return 1 + len(table.Rows), nil
}

// writeSections stacks titled tables on one sheet starting at the 0-based
// row. Each table starts below the previous one's rows plus SectionGap.
//
// RETURNS:
//   - The row where a following section would start.
func writeSections(f *excelize.File, sheet string, row int, sections []Section, st styles) (int, error) {
	for _, section := range sections {
		title, err := cellName(0, row)
		if err != nil {
			return row, err
		}
		if err := f.SetCellValue(sheet, title, section.Title); err != nil {
			return row, fmt.Errorf("failed to write section title %q: %w", section.Title, err)
		}
		if err := f.SetCellStyle(sheet, title, title, st.sectionTitle); err != nil {
			return row, fmt.Errorf("failed to style section title %q: %w", section.Title, err)
		}

		if _, err := writeTable(f, sheet, row+1, section.Table, st.header); err != nil {
			return row, err
		}
		row += len(section.Table.Rows) + SectionGap
	}
	return row, nil
}

// =============================================================================
// WORKBOOK BUILDERS
// =============================================================================

// BuildReport assembles the three-sheet period report. The caller owns the
// returned file and must Close it.
func BuildReport(a analytics.Analysis) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := buildReport(f, a); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func buildReport(f *excelize.File, a analytics.Analysis) error {
	st, err := registerStyles(f)
	if err != nil {
		return err
	}

	// The default sheet becomes the sales sheet so it opens first.
	if err := f.SetSheetName(f.GetSheetName(0), SheetSales); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if _, err := writeTable(f, SheetSales, 0, SalesTable(a.Rows), st.header); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetMetrics); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetMetrics, err)
	}
	if _, err := writeTable(f, SheetMetrics, 0, MetricsTable(a.Metrics), st.header); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetTops); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetTops, err)
	}
	if err := f.SetCellValue(SheetTops, "A1", SheetTops); err != nil {
		return fmt.Errorf("failed to write sheet title: %w", err)
	}
	if err := f.SetCellStyle(SheetTops, "A1", "A1", st.sheetTitle); err != nil {
		return fmt.Errorf("failed to style sheet title: %w", err)
	}
	if _, err := writeSections(f, SheetTops, firstSectionRow, TopSections(a), st); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return nil
}

// BuildComparison assembles the single-sheet period comparison. The caller
// owns the returned file and must Close it.
func BuildComparison(deltas []analytics.Delta) (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := registerStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetName(f.GetSheetName(0), SheetComparison); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if _, err := writeTable(f, SheetComparison, 0, ComparisonTable(deltas), st.header); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// =============================================================================
// TABLE BUILDERS
// =============================================================================

// SalesTable lists every normalized row.
func SalesTable(rows []analytics.Row) Table {
	t := Table{Headers: SalesHeaders, Rows: make([][]interface{}, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, []interface{}{
			r.OrderID.CellValue(),
			r.UserID.CellValue(),
			r.DatePayed,
			r.StatusText,
			r.ProductID.CellValue(),
			r.Amount,
			r.ProductName,
			r.Price,
			r.Revenue,
			r.Profit,
			r.Discount,
			r.Category,
		})
	}
	return t
}

// MetricsTable is a single labelled row of the five metrics.
func MetricsTable(m analytics.Metrics) Table {
	return Table{
		Headers: analytics.MetricNames,
		Rows: [][]interface{}{{
			m.TotalRevenue,
			m.TotalProfit,
			m.TotalUnitsSold,
			m.CompletedTransactions,
			m.AverageOrderValue,
		}},
	}
}

// TopSections returns the stacked sections of the tops sheet in their fixed
// order: four product rankings, customers, categories.
func TopSections(a analytics.Analysis) []Section {
	product := func(title, column string, stats []analytics.ProductStats, value func(analytics.ProductStats) interface{}) Section {
		t := Table{Headers: []string{"Продукт", column}}
		for _, s := range stats {
			t.Rows = append(t.Rows, []interface{}{s.Name, value(s)})
		}
		return Section{Title: title, Table: t}
	}

	customers := Table{Headers: []string{"User ID", "Количество покупок"}}
	for _, c := range a.Customers {
		customers.Rows = append(customers.Rows, []interface{}{c.UserID.CellValue(), c.Purchases})
	}

	categories := Table{Headers: []string{"Категория", "Количество продаж", "Выручка"}}
	for _, c := range a.Categories {
		categories.Rows = append(categories.Rows, []interface{}{c.Slug, c.UnitsSold, c.Revenue})
	}

	return []Section{
		product("Топ по уникальным покупателям", "Уникальные покупатели", a.Products.ByUniqueBuyers,
			func(s analytics.ProductStats) interface{} { return s.UniqueBuyers }),
		product("Топ по количеству продаж", "Количество продаж", a.Products.ByUnitsSold,
			func(s analytics.ProductStats) interface{} { return s.UnitsSold }),
		product("Топ по среднему чеку", "Средний чек", a.Products.ByAverageCheck,
			func(s analytics.ProductStats) interface{} { return s.AverageCheck }),
		product("Топ по возвратам", "Возвраты", a.Products.ByReturns,
			func(s analytics.ProductStats) interface{} { return s.Returns }),
		{Title: "Топ покупателей", Table: customers},
		{Title: "Топ категории по количеству продаж", Table: categories},
	}
}

// ComparisonTable has one row per metric with both periods and the change.
func ComparisonTable(deltas []analytics.Delta) Table {
	t := Table{Headers: []string{"Показатель", "Период 1", "Период 2", "Изменение"}}
	for _, d := range deltas {
		t.Rows = append(t.Rows, []interface{}{d.Name, d.Period1, d.Period2, d.Change})
	}
	return t
}
