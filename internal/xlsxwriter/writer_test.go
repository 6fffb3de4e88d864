package xlsxwriter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-analytics-report/internal/analytics"
	"github.com/ginjaninja78/sales-analytics-report/internal/types"
)

func tx(order, user string, status int, product string, price float64, count int, category string) types.Transaction {
	p := types.Decimal(price)
	c := count
	return types.Transaction{
		DatePayed: "2024-05-01",
		ID:        types.ID(order),
		UserID:    types.ID(user),
		Status:    status,
		Items: []types.LineItem{{
			ProductID:   "77",
			Count:       &c,
			ProductName: product,
			Price:       &p,
			Category:    &types.Category{Slug: category},
		}},
	}
}

func scenarioAnalysis() analytics.Analysis {
	return analytics.Analyze([]types.Transaction{
		tx("1", "u1", 7, "P1", 100, 2, "cat1"),
		tx("2", "u1", 8, "P1", 100, 1, "cat1"),
		tx("3", "u2", 7, "P2", 50, 1, "cat2"),
	}, 10)
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	require.NoError(t, err)
	return v
}

func TestBuildReport_Sheets(t *testing.T) {
	f, err := BuildReport(scenarioAnalysis())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSales, SheetMetrics, SheetTops}, f.GetSheetList())
}

func TestBuildReport_SalesSheet(t *testing.T) {
	f, err := BuildReport(scenarioAnalysis())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetSales)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, SalesHeaders, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "u1", rows[1][1])
	assert.Equal(t, "2024-05-01", rows[1][2])
	assert.Equal(t, "Завершен", rows[1][3])
	assert.Equal(t, "77", rows[1][4])
	assert.Equal(t, "2", rows[1][5])
	assert.Equal(t, "P1", rows[1][6])
	assert.Equal(t, "100", rows[1][7])
	assert.Equal(t, "200", rows[1][8])
	assert.Equal(t, "cat1", rows[1][11])
	assert.Equal(t, "Возвращен полностью", rows[2][3])
}

func TestBuildReport_MetricsSheet(t *testing.T) {
	f, err := BuildReport(scenarioAnalysis())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetMetrics)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, analytics.MetricNames, rows[0])
	assert.Equal(t, "350", rows[1][0])
	assert.Equal(t, "4", rows[1][2])
	assert.Equal(t, "2", rows[1][3])
	assert.Equal(t, "175", rows[1][4])
}

func TestBuildReport_TopsLayout(t *testing.T) {
	f, err := BuildReport(scenarioAnalysis())
	require.NoError(t, err)
	defer f.Close()

	expected := map[string]string{
		"A1":  "Топы товаров",
		"A3":  "Топ по уникальным покупателям",
		"A4":  "Продукт",
		"B4":  "Уникальные покупатели",
		"A5":  "P1",
		"A8":  "Топ по количеству продаж",
		"A10": "P1",
		"B10": "3",
		"A13": "Топ по среднему чеку",
		"B15": "100",
		"A18": "Топ по возвратам",
		"B20": "1",
		"A23": "Топ покупателей",
		"A24": "User ID",
		"B24": "Количество покупок",
		"A25": "u1",
		"B25": "2",
		"A26": "u2",
		"A28": "Топ категории по количеству продаж",
		"C29": "Выручка",
		"A30": "cat1",
		"B30": "3",
		"C30": "300",
		"A31": "cat2",
	}
	for ref, want := range expected {
		assert.Equal(t, want, cell(t, f, SheetTops, ref), ref)
	}
}

func TestBuildReport_EmptyAnalysis(t *testing.T) {
	f, err := BuildReport(analytics.Analyze(nil, 0))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetSales)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	assert.Equal(t, "0", cell(t, f, SheetMetrics, "E2"))

	// empty tables still advance by SectionGap
	assert.Equal(t, "Топ по количеству продаж", cell(t, f, SheetTops, "A6"))
}

func TestWriteSections_NoOverlap(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	var sections []Section
	for i, n := range []int{1, 0, 4} {
		table := Table{Headers: []string{"k", "v"}}
		for j := 0; j < n; j++ {
			table.Rows = append(table.Rows, []interface{}{fmt.Sprintf("s%d-r%d", i, j), j})
		}
		sections = append(sections, Section{Title: fmt.Sprintf("title-%d", i), Table: table})
	}

	st, err := registerStyles(f)
	require.NoError(t, err)

	next, err := writeSections(f, "Sheet1", 0, sections, st)
	require.NoError(t, err)
	assert.Equal(t, 1+0+4+3*SectionGap, next)

	assert.Equal(t, "title-0", cell(t, f, "Sheet1", "A1"))
	assert.Equal(t, "k", cell(t, f, "Sheet1", "A2"))
	assert.Equal(t, "s0-r0", cell(t, f, "Sheet1", "A3"))
	assert.Equal(t, "title-1", cell(t, f, "Sheet1", "A5"))
	assert.Equal(t, "title-2", cell(t, f, "Sheet1", "A8"))
	assert.Equal(t, "s2-r3", cell(t, f, "Sheet1", "A13"))
}

func TestBuildComparison(t *testing.T) {
	p1 := analytics.Metrics{TotalRevenue: 100, TotalProfit: 90, TotalUnitsSold: 2, CompletedTransactions: 1, AverageOrderValue: 100}
	p2 := analytics.Metrics{TotalRevenue: 350, TotalProfit: 135, TotalUnitsSold: 4, CompletedTransactions: 2, AverageOrderValue: 175}

	f, err := BuildComparison(analytics.Compare(p1, p2))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetComparison}, f.GetSheetList())

	rows, err := f.GetRows(SheetComparison)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, []string{"Показатель", "Период 1", "Период 2", "Изменение"}, rows[0])
	assert.Equal(t, []string{"Общая выручка", "100", "350", "250"}, rows[1])
	assert.Equal(t, []string{"Общая прибыль", "90", "135", "45"}, rows[2])
	assert.Equal(t, []string{"Количество проданных товаров", "2", "4", "2"}, rows[3])
	assert.Equal(t, []string{"Количество успешных транзакций", "1", "2", "1"}, rows[4])
	assert.Equal(t, []string{"Средняя стоимость заказа", "100", "175", "75"}, rows[5])
}
