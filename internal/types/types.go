// =============================================================================
// Sales Analytics Report - Shared Types
// =============================================================================
//
// This package contains the wire types consumed from the session store. They
// are shared by:
//   - session    (decoding stored session data)
//   - validation (malformed record detection)
//   - analytics  (normalization)
//
// WIRE SHAPE (one transaction):
//   {
//     "date_payed": "2024-05-01T10:00:00",
//     "id": 101,
//     "user_id": 5,
//     "status": 7,
//     "items": [{"product_id": 9, "count": 2, "product_name": "Mug",
//                "price": "100.00", "discount": 0, "category": {"slug": "kitchen"}}]
//   }
//
// Identifiers, prices, counts and status codes arrive as either JSON numbers
// or JSON strings depending on the upstream marketplace API version, so both
// are accepted.
//
// =============================================================================

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

// Transaction is a single order as delivered by the marketplace.
// Only the first element of Items is ever read.
type Transaction struct {
	// DatePayed is the payment timestamp exactly as delivered.
	DatePayed string `json:"date_payed"`

	// ID is the order identifier.
	ID ID `json:"id"`

	// UserID identifies the buyer.
	UserID ID `json:"user_id"`

	// Status is the numeric order status code (1-17 are known).
	Status int `json:"status"`

	// Items holds the order line items.
	Items []LineItem `json:"items"`
}

// LineItem is a single product line of an order.
// Pointer fields distinguish "absent" from a legitimate zero.
type LineItem struct {
	ProductID   ID        `json:"product_id"`
	Count       *int      `json:"count"`
	ProductName string    `json:"product_name"`
	Price       *Decimal  `json:"price"`
	Discount    *Decimal  `json:"discount"`
	Category    *Category `json:"category"`
}

// Category is the product category reference carried by a line item.
type Category struct {
	Slug string `json:"slug"`
}

// UnmarshalJSON decodes a transaction, accepting the status as a number or a
// numeric string.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	aux := struct {
		*plain
		Status flexInt `json:"status"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.Status = int(aux.Status)
	return nil
}

// UnmarshalJSON decodes a line item, accepting the count as a number or a
// numeric string.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	type plain LineItem
	aux := struct {
		*plain
		Count *flexInt `json:"count"`
	}{plain: (*plain)(li)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	li.Count = nil
	if aux.Count != nil {
		c := int(*aux.Count)
		li.Count = &c
	}
	return nil
}

// FirstItem returns the first line item, or false when there is none.
func (t Transaction) FirstItem() (LineItem, bool) {
	if len(t.Items) == 0 {
		return LineItem{}, false
	}
	return t.Items[0], true
}

// =============================================================================
// FLEXIBLE SCALARS
// =============================================================================

// ID is an opaque identifier that may be encoded as a JSON number or string.
type ID string

// UnmarshalJSON accepts `123`, `"123"`, `"u1"` and `null`.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// CellValue returns the identifier as an int64 when it is purely numeric so
// spreadsheets render it as a number, and as a string otherwise.
func (id ID) CellValue() interface{} {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return n
	}
	return string(id)
}

// flexInt is an integer that may be encoded as a JSON number or string.
type flexInt int

// UnmarshalJSON accepts `2`, `2.0`, `"2"` and `null`.
func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		data = bytes.TrimSpace([]byte(s))
	}
	if v, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*n = flexInt(v)
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || f != math.Trunc(f) {
		return fmt.Errorf("invalid integer %q", data)
	}
	*n = flexInt(f)
	return nil
}

// Decimal is a monetary amount that may be encoded as a JSON number or string.
type Decimal float64

// UnmarshalJSON accepts `100`, `100.5` and `"100.50"`.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid decimal: %w", err)
		}
		data = []byte(s)
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", data, err)
	}
	*d = Decimal(v)
	return nil
}

// Float64 returns the value, treating a nil Decimal as zero.
func (d *Decimal) Float64() float64 {
	if d == nil {
		return 0
	}
	return float64(*d)
}
