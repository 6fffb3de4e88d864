package analytics

import (
	"sort"

	"github.com/ginjaninja78/sales-analytics-report/internal/types"
)

// TopN is the truncation length of product and category rankings.
const TopN = 10

// ProductStats aggregates every row of one product name.
type ProductStats struct {
	Name         string
	UnitsSold    int
	Revenue      float64
	UniqueBuyers int
	Returns      int
	AverageCheck float64
}

// ProductTops holds the four product rankings, each at most TopN long.
type ProductTops struct {
	ByUniqueBuyers []ProductStats
	ByUnitsSold    []ProductStats
	ByAverageCheck []ProductStats
	ByReturns      []ProductStats
}

// CustomerStats is the number of orders placed by one user.
type CustomerStats struct {
	UserID    types.ID
	Purchases int
}

// CategoryStats aggregates every row of one category slug.
type CategoryStats struct {
	Slug      string
	UnitsSold int
	Revenue   float64
}

// ProductBreakdown aggregates rows per product name. The result is in order of
// first appearance.
func ProductBreakdown(rows []Row) []ProductStats {
	index := make(map[string]int)
	buyers := make(map[string]map[types.ID]struct{})
	var stats []ProductStats

	for _, row := range rows {
		i, ok := index[row.ProductName]
		if !ok {
			i = len(stats)
			index[row.ProductName] = i
			stats = append(stats, ProductStats{Name: row.ProductName})
			buyers[row.ProductName] = make(map[types.ID]struct{})
		}
		s := &stats[i]
		s.UnitsSold += row.Amount
		s.Revenue += row.Revenue
		buyers[row.ProductName][row.UserID] = struct{}{}
		if isReturnLabel(row.StatusText) {
			s.Returns++
		}
	}

	for i := range stats {
		stats[i].UniqueBuyers = len(buyers[stats[i].Name])
		if stats[i].UnitsSold != 0 {
			stats[i].AverageCheck = stats[i].Revenue / float64(stats[i].UnitsSold)
		}
	}
	return stats
}

// TopProducts ranks products four ways.
func TopProducts(rows []Row) ProductTops {
	stats := ProductBreakdown(rows)
	return ProductTops{
		ByUniqueBuyers: rankTop(stats, TopN, func(s ProductStats) float64 { return float64(s.UniqueBuyers) }),
		ByUnitsSold:    rankTop(stats, TopN, func(s ProductStats) float64 { return float64(s.UnitsSold) }),
		ByAverageCheck: rankTop(stats, TopN, func(s ProductStats) float64 { return s.AverageCheck }),
		ByReturns:      rankTop(stats, TopN, func(s ProductStats) float64 { return float64(s.Returns) }),
	}
}

// TopCustomers counts rows per user and ranks all users by that count.
func TopCustomers(rows []Row) []CustomerStats {
	index := make(map[types.ID]int)
	var stats []CustomerStats
	for _, row := range rows {
		i, ok := index[row.UserID]
		if !ok {
			i = len(stats)
			index[row.UserID] = i
			stats = append(stats, CustomerStats{UserID: row.UserID})
		}
		stats[i].Purchases++
	}
	return rankTop(stats, 0, func(s CustomerStats) float64 { return float64(s.Purchases) })
}

// TopCategories ranks categories by units sold.
func TopCategories(rows []Row) []CategoryStats {
	index := make(map[string]int)
	var stats []CategoryStats
	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(stats)
			index[row.Category] = i
			stats = append(stats, CategoryStats{Slug: row.Category})
		}
		stats[i].UnitsSold += row.Amount
		stats[i].Revenue += row.Revenue
	}
	return rankTop(stats, TopN, func(s CategoryStats) float64 { return float64(s.UnitsSold) })
}

// rankTop returns a copy of items sorted by key descending, ties kept in input
// order, truncated to limit entries (limit <= 0 keeps everything).
func rankTop[T any](items []T, limit int, key func(T) float64) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
