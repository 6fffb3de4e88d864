// =============================================================================
// Sales Analytics Report - Record Validation
// =============================================================================
//
// This module checks raw transactions before they are normalized. A record
// that fails any "error" rule is malformed and must not reach the arithmetic
// in the normalizer; "warning" rules are informational only.
//
// RULES:
//   | Field                   | Rule      | Severity |
//   |-------------------------|-----------|----------|
//   | id                      | required  | error    |
//   | user_id                 | required  | error    |
//   | items                   | non_empty | error    |
//   | items[0].count          | required  | error    |
//   | items[0].price          | required  | error    |
//   | items[0].product_name   | required  | error    |
//   | items[0].category.slug  | required  | error    |
//   | items                   | single    | warning  |
//
// date_payed and discount are optional: the first is display-only and the
// second defaults to zero.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/sales-analytics-report/internal/types"
)

// =============================================================================
// SEVERITIES
// =============================================================================

const (
	// SeverityError marks a record as malformed.
	SeverityError = "error"

	// SeverityWarning is reported but does not reject the record.
	SeverityWarning = "warning"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation finding.
type ValidationError struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// Field is the wire path of the offending field (e.g. "items[0].price").
	Field string

	// Rule is the validation rule that was violated.
	Rule string

	// Message is a human-readable error message.
	Message string

	// Index is the 0-based position of the record in the input list.
	Index int

	// OrderID is the order identifier, if present.
	OrderID string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] Record %d (order '%s'), Field '%s': %s",
		strings.ToUpper(e.Severity),
		e.Index,
		e.OrderID,
		e.Field,
		e.Message,
	)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the findings for one record.
type ValidationResult struct {
	// IsValid is true if there are no SeverityError findings.
	IsValid bool

	// Errors contains all findings, warnings included.
	Errors []*ValidationError

	// ErrorCount is the number of SeverityError findings.
	ErrorCount int

	// WarningCount is the number of SeverityWarning findings.
	WarningCount int
}

// FirstError returns the first SeverityError finding, or nil.
func (r *ValidationResult) FirstError() *ValidationError {
	for _, err := range r.Errors {
		if err.Severity == SeverityError {
			return err
		}
	}
	return nil
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// ValidateTransaction checks a single raw transaction.
//
// PARAMETERS:
//   - tx: The transaction to check.
//   - index: Its position in the input list (for reporting).
//
// RETURNS:
//   - A ValidationResult; IsValid is false when the record must be skipped.
func ValidateTransaction(tx types.Transaction, index int) *ValidationResult {
	result := &ValidationResult{IsValid: true}

	add := func(severity, field, rule, message string) {
		result.Errors = append(result.Errors, &ValidationError{
			Severity: severity,
			Field:    field,
			Rule:     rule,
			Message:  message,
			Index:    index,
			OrderID:  tx.ID.String(),
		})
		if severity == SeverityError {
			result.ErrorCount++
			result.IsValid = false
		} else {
			result.WarningCount++
		}
	}

	// =========================================================================
	// ORDER-LEVEL FIELDS
	// =========================================================================

	if tx.ID == "" {
		add(SeverityError, "id", "required", "order id is missing")
	}
	if tx.UserID == "" {
		add(SeverityError, "user_id", "required", "user id is missing")
	}

	// =========================================================================
	// LINE ITEM
	// =========================================================================

	item, ok := tx.FirstItem()
	if !ok {
		add(SeverityError, "items", "non_empty", "order has no line items")
		return result
	}
	if len(tx.Items) > 1 {
		add(SeverityWarning, "items", "single",
			fmt.Sprintf("order has %d line items, only the first is used", len(tx.Items)))
	}

	if item.Count == nil {
		add(SeverityError, "items[0].count", "required", "item count is missing")
	}
	if item.Price == nil {
		add(SeverityError, "items[0].price", "required", "item price is missing")
	}
	if item.ProductName == "" {
		add(SeverityError, "items[0].product_name", "required", "product name is missing")
	}
	if item.Category == nil || item.Category.Slug == "" {
		add(SeverityError, "items[0].category.slug", "required", "category slug is missing")
	}

	return result
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats validation errors for display or logging.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Validation completed with %d finding(s):\n\n", len(errors)))

	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return builder.String()
}
