package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// IsValid reports whether the transaction type is known.
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// TransactionStatus tracks settlement of a transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
)

// IsValid reports whether the status is known.
func (s TransactionStatus) IsValid() bool {
	return s == TransactionPending || s == TransactionCompleted
}

// Transaction is a money record on the accounting screen. Amount is always
// the USD-normalized value; OriginalAmount/OriginalCurrency preserve the
// entry's input form and take precedence when recomputing totals, since the
// stored normalized amount may be stale relative to a corrected original.
type Transaction struct {
	TransactionID    string            `json:"transactionID"`
	UserID           string            `json:"userID"` // owning user (row filter)
	PropertyID       *string           `json:"propertyID,omitempty"`
	Date             time.Time         `json:"date"`
	Description      string            `json:"description"`
	Amount           decimal.Decimal   `json:"amount"` // USD-normalized
	OriginalAmount   *decimal.Decimal  `json:"originalAmount,omitempty"`
	OriginalCurrency Currency          `json:"originalCurrency,omitempty"`
	Type             TransactionType   `json:"type"`
	Category         string            `json:"category"`
	Status           TransactionStatus `json:"status"`
	AuditFields
}
