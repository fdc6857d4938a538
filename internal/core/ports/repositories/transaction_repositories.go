package repositories

import (
	"context"
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// TransactionReader defines read operations for money records
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByUser retrieves a user's transactions, newest first.
	FindTransactionsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error)

	// FindTransactionsInRange retrieves a user's transactions dated within [from, to].
	FindTransactionsInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error)

	// FindTransactionsByProperty retrieves income/expense records linked to a property within [from, to].
	FindTransactionsByProperty(ctx context.Context, propertyID string, from, to time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for money records
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
