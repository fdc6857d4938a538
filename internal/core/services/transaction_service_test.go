package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/core/services"
	"github.com/hostvana/property_management_app/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, from, to)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByProperty(ctx context.Context, propertyID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, propertyID, from, to)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.TransactionSvcFacade
	userID      string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo)
	suite.userID = uuid.NewString()
}

// --- CreateTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NormalizesTRY() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		Description: "February rent, unit 2A",
		Amount:      decimal.RequireFromString("3539"),
		Currency:    domain.CurrencyTRY,
		Type:        string(domain.TransactionIncome),
		Category:    "rent",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	// 3539 TRY at the pinned 35.39 rate is exactly 100 USD.
	suite.True(txn.Amount.Equal(decimal.NewFromInt(100)), "got %s", txn.Amount)
	suite.Require().NotNil(txn.OriginalAmount)
	suite.True(txn.OriginalAmount.Equal(req.Amount))
	suite.Equal(domain.CurrencyTRY, txn.OriginalCurrency)
	suite.Equal(suite.userID, txn.UserID)
	suite.Equal(domain.TransactionCompleted, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_USDPassthrough() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC),
		Description: "Plumber visit",
		Amount:      decimal.RequireFromString("120.50"),
		Currency:    domain.CurrencyUSD,
		Type:        string(domain.TransactionExpense),
		Category:    "maintenance",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(req.Amount))
	suite.Nil(txn.OriginalAmount)
	suite.Empty(txn.OriginalCurrency)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidType() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now(),
		Description: "Mystery",
		Amount:      decimal.NewFromInt(10),
		Currency:    domain.CurrencyUSD,
		Type:        "transfer",
		Category:    "misc",
	}

	txn, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnsupportedCurrency() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now(),
		Description: "Euro rent",
		Amount:      decimal.NewFromInt(10),
		Currency:    domain.Currency("EUR"),
		Type:        string(domain.TransactionIncome),
		Category:    "rent",
	}

	txn, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

// --- GetTransactionByID Tests ---

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_OtherUsersRowHidden() {
	ctx := context.Background()
	txnID := uuid.NewString()
	foreign := &domain.Transaction{TransactionID: txnID, UserID: uuid.NewString()}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(foreign, nil).Once()

	txn, err := suite.service.GetTransactionByID(ctx, txnID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(txn)
	// Another user's row reads as absent, not forbidden.
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_Owned() {
	ctx := context.Background()
	txnID := uuid.NewString()
	owned := &domain.Transaction{TransactionID: txnID, UserID: suite.userID}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(owned, nil).Once()

	txn, err := suite.service.GetTransactionByID(ctx, txnID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(txnID, txn.TransactionID)
}

// --- SummarizeTransactions Tests ---

func (suite *TransactionServiceTestSuite) TestSummarizeTransactions_MixedCurrencies() {
	ctx := context.Background()
	from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	tryAmount := decimal.RequireFromString("3539")
	txns := []domain.Transaction{
		{
			Type:   domain.TransactionIncome,
			Amount: decimal.NewFromInt(200),
		},
		{
			Type:             domain.TransactionIncome,
			Amount:           decimal.NewFromInt(100),
			OriginalAmount:   &tryAmount,
			OriginalCurrency: domain.CurrencyTRY,
		},
		{
			Type:   domain.TransactionExpense,
			Amount: decimal.NewFromInt(50),
		},
	}

	suite.mockTxnRepo.On("FindTransactionsInRange", ctx, suite.userID, from, to).
		Return(txns, nil).Once()

	summary, err := suite.service.SummarizeTransactions(ctx, suite.userID, from, to)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(300)), "income %s", summary.TotalIncome)
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(50)), "expenses %s", summary.TotalExpenses)
	suite.True(summary.Net.Equal(decimal.NewFromInt(250)), "net %s", summary.Net)
}

func (suite *TransactionServiceTestSuite) TestSummarizeTransactions_Empty() {
	ctx := context.Background()
	from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)

	suite.mockTxnRepo.On("FindTransactionsInRange", ctx, suite.userID, from, to).
		Return([]domain.Transaction{}, nil).Once()

	summary, err := suite.service.SummarizeTransactions(ctx, suite.userID, from, to)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.IsZero())
	suite.True(summary.TotalExpenses.IsZero())
	suite.True(summary.Net.IsZero())
}

// --- UpdateTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_CurrencyChangeToUSDClearsOriginal() {
	ctx := context.Background()
	txnID := uuid.NewString()
	tryAmount := decimal.RequireFromString("3539")
	existing := &domain.Transaction{
		TransactionID:    txnID,
		UserID:           suite.userID,
		Amount:           decimal.NewFromInt(100),
		OriginalAmount:   &tryAmount,
		OriginalCurrency: domain.CurrencyTRY,
		Type:             domain.TransactionIncome,
		Status:           domain.TransactionCompleted,
	}
	usd := domain.CurrencyUSD
	newAmount := decimal.NewFromInt(150)
	req := dto.UpdateTransactionRequest{Amount: &newAmount, Currency: &usd}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(newAmount) && txn.OriginalAmount == nil && txn.OriginalCurrency == ""
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, txnID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.Nil(updated.OriginalAmount)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AmountOnlyKeepsEntryCurrency() {
	ctx := context.Background()
	txnID := uuid.NewString()
	tryAmount := decimal.RequireFromString("3539")
	existing := &domain.Transaction{
		TransactionID:    txnID,
		UserID:           suite.userID,
		Amount:           decimal.NewFromInt(100),
		OriginalAmount:   &tryAmount,
		OriginalCurrency: domain.CurrencyTRY,
		Type:             domain.TransactionIncome,
		Status:           domain.TransactionCompleted,
	}
	newAmount := decimal.RequireFromString("7078")
	req := dto.UpdateTransactionRequest{Amount: &newAmount}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, txnID, req, suite.userID)

	suite.Require().NoError(err)
	// The entry stays in TRY, so the normalized amount is recomputed.
	suite.True(updated.Amount.Equal(decimal.NewFromInt(200)), "got %s", updated.Amount)
	suite.Require().NotNil(updated.OriginalAmount)
	suite.True(updated.OriginalAmount.Equal(newAmount))
	suite.Equal(domain.CurrencyTRY, updated.OriginalCurrency)
}

// --- DeleteTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotOwned() {
	ctx := context.Background()
	txnID := uuid.NewString()
	foreign := &domain.Transaction{TransactionID: txnID, UserID: uuid.NewString()}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(foreign, nil).Once()

	err := suite.service.DeleteTransaction(ctx, txnID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction")
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	owned := &domain.Transaction{TransactionID: txnID, UserID: suite.userID}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(owned, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, txnID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, txnID, suite.userID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
