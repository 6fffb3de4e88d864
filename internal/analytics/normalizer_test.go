package analytics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-analytics-report/internal/types"
)

func TestNormalize_Scenario(t *testing.T) {
	rows, skipped := Normalize(scenario(), 10)

	require.Empty(t, skipped)
	require.Len(t, rows, 3)

	assert.Equal(t, types.ID("1"), rows[0].OrderID)
	assert.Equal(t, types.ID("2"), rows[1].OrderID)
	assert.Equal(t, types.ID("3"), rows[2].OrderID)

	assert.Equal(t, "Завершен", rows[0].StatusText)
	assert.Equal(t, "Возвращен полностью", rows[1].StatusText)

	assert.Equal(t, 200.0, rows[0].Revenue)
	assert.Equal(t, 100.0, rows[1].Revenue)
	assert.Equal(t, 50.0, rows[2].Revenue)

	assert.InDelta(t, 180.0, rows[0].Profit, 1e-9)
	assert.InDelta(t, -90.0, rows[1].Profit, 1e-9)
	assert.InDelta(t, 45.0, rows[2].Profit, 1e-9)

	assert.Equal(t, "cat1", rows[0].Category)
	assert.Equal(t, types.ID("pid-P1"), rows[0].ProductID)
}

func TestNormalize_ProfitSign(t *testing.T) {
	for code := 0; code <= 18; code++ {
		rows, _ := Normalize([]types.Transaction{tx("1", "u", code, "P", 30, 3, "c")}, 20)
		require.Len(t, rows, 1)

		want := 90 * (1 - 20.0/100)
		if code == 8 {
			want = -want
		}
		assert.InDelta(t, want, rows[0].Profit, 1e-9, "status %d", code)
	}
}

func TestNormalize_UnknownStatus(t *testing.T) {
	rows, skipped := Normalize([]types.Transaction{tx("1", "u", 999, "P", 1, 1, "c")}, 0)

	assert.Empty(t, skipped)
	require.Len(t, rows, 1)
	assert.Equal(t, LabelUnknown, rows[0].StatusText)
	assert.Equal(t, Status(999), rows[0].Status)
}

func TestNormalize_SkipsMalformed(t *testing.T) {
	noItems := tx("2", "u", 7, "P", 1, 1, "c")
	noItems.Items = nil

	noSlug := tx("3", "u", 7, "P", 1, 1, "c")
	noSlug.Items[0].Category = nil

	input := []types.Transaction{
		tx("1", "u", 7, "P", 1, 1, "c"),
		noItems,
		noSlug,
		tx("4", "u", 7, "P", 1, 1, "c"),
	}

	rows, skipped := Normalize(input, 0)

	require.Len(t, rows, 2)
	assert.Equal(t, types.ID("1"), rows[0].OrderID)
	assert.Equal(t, types.ID("4"), rows[1].OrderID)

	require.Len(t, skipped, 2)
	assert.Equal(t, 1, skipped[0].Index)
	assert.Equal(t, "items", skipped[0].Field)
	assert.Equal(t, 2, skipped[1].Index)
	assert.Equal(t, "3", skipped[1].OrderID)
	assert.Equal(t, "items[0].category.slug", skipped[1].Field)
	assert.True(t, errors.Is(skipped[0], ErrMalformedRecord))
}

func TestNormalize_OnlyFirstItemRead(t *testing.T) {
	in := tx("1", "u", 7, "P1", 10, 1, "c")
	second := in.Items[0]
	second.ProductName = "P2"
	in.Items = append(in.Items, second)

	rows, _ := Normalize([]types.Transaction{in}, 0)

	require.Len(t, rows, 1)
	assert.Equal(t, "P1", rows[0].ProductName)

	a := Analyze([]types.Transaction{in}, 0)
	assert.Empty(t, a.Skipped)
	require.Len(t, a.Warnings, 1)
	assert.Equal(t, "items", a.Warnings[0].Field)
}

func TestNormalize_DiscountDefaultsToZero(t *testing.T) {
	in := tx("1", "u", 7, "P", 10, 1, "c")
	rows, _ := Normalize([]types.Transaction{in}, 0)
	assert.Equal(t, 0.0, rows[0].Discount)

	d := types.Decimal(2.5)
	in.Items[0].Discount = &d
	rows, _ = Normalize([]types.Transaction{in}, 0)
	assert.Equal(t, 2.5, rows[0].Discount)
}

func TestNormalize_UnicodeNames(t *testing.T) {
	composed := tx("1", "u1", 7, "Чай \u0439", 10, 1, "c")
	decomposed := tx("2", "u2", 7, "Чай \u0438\u0306", 10, 1, "c")

	rows, _ := Normalize([]types.Transaction{composed, decomposed}, 0)

	require.Len(t, rows, 2)
	assert.Equal(t, rows[0].ProductName, rows[1].ProductName)
	assert.Len(t, ProductBreakdown(rows), 1)
}
