package analytics

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/ginjaninja78/sales-analytics-report/internal/types"
	"github.com/ginjaninja78/sales-analytics-report/internal/validation"
)

// ErrMalformedRecord is wrapped by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed transaction record")

// MalformedRecordError describes a transaction that was skipped by Normalize.
type MalformedRecordError struct {
	Index   int
	OrderID string
	Field   string
	Reason  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d (order %q): %s: %s", e.Index, e.OrderID, e.Field, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

// Row is one normalized order line.
type Row struct {
	OrderID     types.ID
	UserID      types.ID
	DatePayed   string
	Status      Status
	StatusText  string
	ProductID   types.ID
	Amount      int
	ProductName string
	Price       float64
	Revenue     float64
	Profit      float64
	Discount    float64
	Category    string
}

// Normalize flattens raw transactions into rows, one per valid transaction and
// in input order. tax is a percentage in [0, 100].
//
// Records failing validation are skipped and returned as MalformedRecordErrors;
// they never contribute to any aggregate.
func Normalize(transactions []types.Transaction, tax float64) ([]Row, []*MalformedRecordError) {
	rows, skipped, _ := normalize(transactions, tax)
	return rows, skipped
}

// normalize is Normalize that also returns the non-fatal findings of kept
// records, such as ignored extra line items.
func normalize(transactions []types.Transaction, tax float64) ([]Row, []*MalformedRecordError, []*validation.ValidationError) {
	rows := make([]Row, 0, len(transactions))
	var skipped []*MalformedRecordError
	var warnings []*validation.ValidationError

	keep := 1 - tax/100

	for i, tx := range transactions {
		result := validation.ValidateTransaction(tx, i)
		if !result.IsValid {
			first := result.FirstError()
			skipped = append(skipped, &MalformedRecordError{
				Index:   i,
				OrderID: tx.ID.String(),
				Field:   first.Field,
				Reason:  first.Message,
			})
			continue
		}
		warnings = append(warnings, result.Errors...)

		item := tx.Items[0]
		status := Status(tx.Status)
		price := item.Price.Float64()
		amount := *item.Count
		revenue := price * float64(amount)

		profit := revenue * keep
		if status == StatusRefundedFully {
			profit = -profit
		}

		rows = append(rows, Row{
			OrderID:     tx.ID,
			UserID:      tx.UserID,
			DatePayed:   tx.DatePayed,
			Status:      status,
			StatusText:  status.Label(),
			ProductID:   item.ProductID,
			Amount:      amount,
			ProductName: norm.NFC.String(item.ProductName),
			Price:       price,
			Revenue:     revenue,
			Profit:      profit,
			Discount:    item.Discount.Float64(),
			Category:    norm.NFC.String(item.Category.Slug),
		})
	}

	return rows, skipped, warnings
}
