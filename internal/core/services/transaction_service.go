package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
	"github.com/hostvana/property_management_app/internal/utils/finance"
)

// transactionService implements TransactionSvcFacade. Every record is scoped
// to its owning user; amounts are normalized to USD at write time with the
// entry form preserved alongside.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: transactionRepo}
}

// GetTransactionByID retrieves a transaction, enforcing row ownership.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if txn.UserID != requestingUserID {
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}

// ListTransactions retrieves the caller's transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, requestingUserID string, limit, offset int) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, requestingUserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// SummarizeTransactions computes income/expense/net USD totals for the
// caller's records within [from, to].
func (s *transactionService) SummarizeTransactions(ctx context.Context, requestingUserID string, from, to time.Time) (domain.TransactionSummary, error) {
	txns, err := s.transactionRepo.FindTransactionsInRange(ctx, requestingUserID, from, to)
	if err != nil {
		return domain.TransactionSummary{}, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	income, expenses := decimal.Zero, decimal.Zero
	for _, txn := range txns {
		usd := finance.ToUSD(txn)
		switch txn.Type {
		case domain.TransactionIncome:
			income = income.Add(usd)
		case domain.TransactionExpense:
			expenses = expenses.Add(usd)
		}
	}

	return domain.TransactionSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Net:           income.Sub(expenses),
	}, nil
}

// CreateTransaction records a transaction, normalizing the amount to USD.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, req.Type)
	}
	if !req.Currency.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, req.Currency)
	}
	status := domain.TransactionCompleted
	if req.Status != "" {
		status = domain.TransactionStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, req.Status)
		}
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        requestingUserID,
		PropertyID:    req.PropertyID,
		Date:          req.Date,
		Description:   req.Description,
		Amount:        finance.NormalizeAmount(req.Amount, req.Currency),
		Type:          txnType,
		Category:      req.Category,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if req.Currency != domain.CurrencyUSD {
		amount := req.Amount
		txn.OriginalAmount = &amount
		txn.OriginalCurrency = req.Currency
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// UpdateTransaction updates a transaction the caller owns, renormalizing when
// the amount or currency changes.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, transactionID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.PropertyID != nil {
		txn.PropertyID = req.PropertyID
	}
	if req.Type != nil {
		txnType := domain.TransactionType(*req.Type)
		if !txnType.IsValid() {
			return nil, fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, *req.Type)
		}
		txn.Type = txnType
	}
	if req.Status != nil {
		status := domain.TransactionStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, *req.Status)
		}
		txn.Status = status
	}
	if req.Amount != nil || req.Currency != nil {
		amount := txn.Amount
		if txn.OriginalAmount != nil {
			amount = *txn.OriginalAmount
		}
		if req.Amount != nil {
			amount = *req.Amount
		}
		currency := txn.OriginalCurrency
		if currency == "" {
			currency = domain.CurrencyUSD
		}
		if req.Currency != nil {
			currency = *req.Currency
		}
		if !currency.IsValid() {
			return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, currency)
		}
		txn.Amount = finance.NormalizeAmount(amount, currency)
		if currency != domain.CurrencyUSD {
			txn.OriginalAmount = &amount
			txn.OriginalCurrency = currency
		} else {
			txn.OriginalAmount = nil
			txn.OriginalCurrency = ""
		}
	}

	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = requestingUserID

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

// DeleteTransaction removes a transaction the caller owns.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, requestingUserID string) error {
	if _, err := s.GetTransactionByID(ctx, transactionID, requestingUserID); err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
