package analytics

import "github.com/ginjaninja78/sales-analytics-report/internal/types"

func tx(order, user string, status int, product string, price float64, count int, category string) types.Transaction {
	p := types.Decimal(price)
	c := count
	return types.Transaction{
		DatePayed: "2024-05-01T10:00:00",
		ID:        types.ID(order),
		UserID:    types.ID(user),
		Status:    status,
		Items: []types.LineItem{{
			ProductID:   types.ID("pid-" + product),
			Count:       &c,
			ProductName: product,
			Price:       &p,
			Category:    &types.Category{Slug: category},
		}},
	}
}

// scenario is the three-order example used across tests.
func scenario() []types.Transaction {
	return []types.Transaction{
		tx("1", "u1", 7, "P1", 100, 2, "cat1"),
		tx("2", "u1", 8, "P1", 100, 1, "cat1"),
		tx("3", "u2", 7, "P2", 50, 1, "cat2"),
	}
}
