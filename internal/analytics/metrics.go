package analytics

// Metrics is the scalar summary of a row set.
type Metrics struct {
	TotalRevenue          float64
	TotalProfit           float64
	TotalUnitsSold        int
	CompletedTransactions int
	AverageOrderValue     float64
}

// MetricNames lists the display names of the five metrics in report order.
var MetricNames = []string{
	"Общая выручка",
	"Общая прибыль",
	"Количество проданных товаров",
	"Количество успешных транзакций",
	"Средняя стоимость заказа",
}

// Values returns the metrics in MetricNames order.
func (m Metrics) Values() []float64 {
	return []float64{
		m.TotalRevenue,
		m.TotalProfit,
		float64(m.TotalUnitsSold),
		float64(m.CompletedTransactions),
		m.AverageOrderValue,
	}
}

// CalculateMetrics reduces rows to a Metrics value.
//
// The average order value divides the revenue of all rows by the number of
// completed rows only; a zero completed count yields zero.
func CalculateMetrics(rows []Row) Metrics {
	var m Metrics
	for _, row := range rows {
		m.TotalRevenue += row.Revenue
		m.TotalProfit += row.Profit
		m.TotalUnitsSold += row.Amount
		if row.StatusText == LabelCompleted {
			m.CompletedTransactions++
		}
	}
	if m.CompletedTransactions > 0 {
		m.AverageOrderValue = m.TotalRevenue / float64(m.CompletedTransactions)
	}
	return m
}

// Delta is a single line of a period comparison.
type Delta struct {
	Name    string
	Period1 float64
	Period2 float64
	Change  float64
}

// Compare returns one Delta per metric, with Change = p2 - p1.
func Compare(p1, p2 Metrics) []Delta {
	v1, v2 := p1.Values(), p2.Values()
	deltas := make([]Delta, len(MetricNames))
	for i, name := range MetricNames {
		deltas[i] = Delta{
			Name:    name,
			Period1: v1[i],
			Period2: v2[i],
			Change:  v2[i] - v1[i],
		}
	}
	return deltas
}
