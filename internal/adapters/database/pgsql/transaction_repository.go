package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
)

// PgxTransactionRepository persists money records.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

const selectTransactionFields = `
	transaction_id, user_id, property_id, date, description, amount,
	original_amount, original_currency, type, category, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var originalCurrency *string
	err := row.Scan(
		&t.TransactionID,
		&t.UserID,
		&t.PropertyID,
		&t.Date,
		&t.Description,
		&t.Amount,
		&t.OriginalAmount,
		&originalCurrency,
		&t.Type,
		&t.Category,
		&t.Status,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if originalCurrency != nil {
		t.OriginalCurrency = domain.Currency(*originalCurrency)
	}
	return &t, nil
}

// SaveTransaction persists a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, user_id, property_id, date, description, amount,
			original_amount, original_currency, type, category, status,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.PropertyID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.OriginalAmount,
		nullableCurrency(txn.OriginalCurrency),
		txn.Type,
		txn.Category,
		txn.Status,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	return translateError(err, "failed to save transaction")
}

// FindTransactionByID retrieves a specific transaction.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + selectTransactionFields + ` FROM transactions WHERE transaction_id = $1`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, translateError(err, "failed to find transaction by ID")
	}
	return txn, nil
}

// FindTransactionsByUser retrieves a user's transactions, newest first.
func (r *PgxTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.queryTransactions(ctx, query, userID, limit, offset)
}

// FindTransactionsInRange retrieves a user's transactions dated within [from, to].
func (r *PgxTransactionRepository) FindTransactionsInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`
	return r.queryTransactions(ctx, query, userID, from, to)
}

// FindTransactionsByProperty retrieves records linked to a property within [from, to].
func (r *PgxTransactionRepository) FindTransactionsByProperty(ctx context.Context, propertyID string, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE property_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`
	return r.queryTransactions(ctx, query, propertyID, from, to)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to query transactions")
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan transaction row")
		}
		txns = append(txns, *txn)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "error iterating transaction rows")
	}
	return txns, nil
}

// UpdateTransaction updates an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET property_id = $1, date = $2, description = $3, amount = $4,
			original_amount = $5, original_currency = $6, type = $7,
			category = $8, status = $9, last_updated_at = $10, last_updated_by = $11
		WHERE transaction_id = $12
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		txn.PropertyID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.OriginalAmount,
		nullableCurrency(txn.OriginalCurrency),
		txn.Type,
		txn.Category,
		txn.Status,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
		txn.TransactionID,
	)
	if err != nil {
		return translateError(err, "failed to update transaction")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return translateError(err, "failed to delete transaction")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
