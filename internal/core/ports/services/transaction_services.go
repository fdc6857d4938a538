package services

import (
	"context"
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/hostvana/property_management_app/internal/dto"
)

// TransactionReaderSvc defines read operations for money records
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction, enforcing row ownership.
	GetTransactionByID(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error)

	// ListTransactions retrieves the caller's transactions, newest first.
	ListTransactions(ctx context.Context, requestingUserID string, limit, offset int) ([]domain.Transaction, error)

	// SummarizeTransactions computes income/expense/net USD totals for the
	// caller's records within [from, to].
	SummarizeTransactions(ctx context.Context, requestingUserID string, from, to time.Time) (domain.TransactionSummary, error)
}

// TransactionWriterSvc defines write operations for money records
type TransactionWriterSvc interface {
	// CreateTransaction records a transaction, normalizing the amount to USD.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, requestingUserID string) (*domain.Transaction, error)

	// UpdateTransaction updates a transaction the caller owns, renormalizing
	// when the amount or currency changes.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction the caller owns.
	DeleteTransaction(ctx context.Context, transactionID string, requestingUserID string) error
}

// TransactionSvcFacade combines all transaction service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
