package dto

import (
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount is in the entry currency; the service normalizes it to USD and keeps
// the original alongside.
type CreateTransactionRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    domain.Currency `json:"currency" binding:"required,oneof=USD TRY"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Category    string          `json:"category" binding:"required"`
	Status      string          `json:"status" binding:"omitempty,oneof=pending completed"`
	PropertyID  *string         `json:"propertyID"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
type UpdateTransactionRequest struct {
	Date        *time.Time       `json:"date"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *domain.Currency `json:"currency" binding:"omitempty,oneof=USD TRY"`
	Type        *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Category    *string          `json:"category"`
	Status      *string          `json:"status" binding:"omitempty,oneof=pending completed"`
	PropertyID  *string          `json:"propertyID"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID    string           `json:"transactionID"`
	UserID           string           `json:"userID"`
	PropertyID       *string          `json:"propertyID,omitempty"`
	Date             time.Time        `json:"date"`
	Description      string           `json:"description"`
	Amount           decimal.Decimal  `json:"amount"` // USD
	OriginalAmount   *decimal.Decimal `json:"originalAmount,omitempty"`
	OriginalCurrency string           `json:"originalCurrency,omitempty"`
	Type             string           `json:"type"`
	Category         string           `json:"category"`
	Status           string           `json:"status"`
	CreatedAt        time.Time        `json:"createdAt"`
	LastUpdatedAt    time.Time        `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    t.TransactionID,
		UserID:           t.UserID,
		PropertyID:       t.PropertyID,
		Date:             t.Date,
		Description:      t.Description,
		Amount:           t.Amount,
		OriginalAmount:   t.OriginalAmount,
		OriginalCurrency: string(t.OriginalCurrency),
		Type:             string(t.Type),
		Category:         t.Category,
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt,
		LastUpdatedAt:    t.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a slice of domain.Transaction to response DTOs
func ToListTransactionsResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// TransactionSummaryParams defines the date range for a summary query.
type TransactionSummaryParams struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

// TransactionSummaryResponse is income/expense/net totals for a date range.
type TransactionSummaryResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Net           decimal.Decimal `json:"net"`
}

// ToTransactionSummaryResponse converts a domain.TransactionSummary to its DTO
func ToTransactionSummaryResponse(s domain.TransactionSummary) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		Net:           s.Net,
	}
}
