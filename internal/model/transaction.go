// Package model defines the transaction shape and analytics results shared
// across the application.
package model

// Transaction represents a single financial movement from any source.
// Positive amounts are income, negative amounts are expenses. All coercion
// and defaulting happens at the loader boundary; analytics consume the record
// as-is.
type Transaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"` // empty means "categorize at aggregation time"
	Type        string  `json:"type,omitempty"`     // TypeIncome, TypeExpense, or empty
	Amount      float64 `json:"amount"`
}

// Transaction type values. Loaders default the type from the sign of the
// amount when the source does not carry one.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Categories assigned by the keyword categorizer. Explicit categories on a
// transaction are free-form strings and may fall outside this set.
const (
	CategoryTransport = "Transport"
	CategoryDining    = "Dining"
	CategoryIncome    = "Income"
	CategoryRent      = "Rent"
	CategoryOther     = "Other"
)

// DefaultType returns the transaction type implied by the sign of amount, or
// empty for a zero amount.
func DefaultType(amount float64) string {
	switch {
	case amount > 0:
		return TypeIncome
	case amount < 0:
		return TypeExpense
	default:
		return ""
	}
}
