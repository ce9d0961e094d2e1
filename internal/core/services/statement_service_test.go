package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/testebank/testebank_backend/internal/core/domain"
	portssvc "github.com/testebank/testebank_backend/internal/core/ports/services"
	"github.com/testebank/testebank_backend/internal/core/services"
	"github.com/testebank/testebank_backend/internal/utils/pagination"
)

func TestBuildStatement(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	credits := []domain.BalanceCredit{
		{CreditID: "c1", Amount: decimal.NewFromInt(100), CreatedAt: base.Add(3 * time.Hour)},
		{CreditID: "c2", Amount: decimal.NewFromInt(20), CreatedAt: base.Add(1 * time.Hour)},
	}
	payments := []domain.DebtPayment{
		{PaymentID: "p1", Description: "Rent", Amount: decimal.NewFromInt(60), PaidAt: base.Add(2 * time.Hour)},
		{PaymentID: "p2", Description: "Water", Amount: decimal.NewFromInt(15), PaidAt: base},
	}

	txns := services.BuildStatement(credits, payments)

	require.Len(t, txns, 4)
	for i := 1; i < len(txns); i++ {
		assert.False(t, txns[i].Timestamp.After(txns[i-1].Timestamp), "entries must be newest first")
	}

	assert.Equal(t, []string{"c1", "p1", "c2", "p2"}, []string{txns[0].ID, txns[1].ID, txns[2].ID, txns[3].ID})

	assert.Equal(t, domain.KindCredit, txns[0].Kind)
	assert.Equal(t, domain.CreditDescription, txns[0].Description)
	assert.Equal(t, domain.KindDebit, txns[1].Kind)
	assert.Equal(t, "Rent", txns[1].Description)
}

func TestBuildStatement_TieBreaksOnIDDescending(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	txns := services.BuildStatement(
		[]domain.BalanceCredit{{CreditID: "a-credit", Amount: decimal.NewFromInt(10), CreatedAt: ts}},
		[]domain.DebtPayment{{PaymentID: "z-payment", Description: "Tie", Amount: decimal.NewFromInt(10), PaidAt: ts}},
	)

	require.Len(t, txns, 2)
	assert.Equal(t, "z-payment", txns[0].ID)
	assert.Equal(t, "a-credit", txns[1].ID)
}

func TestBuildStatement_Empty(t *testing.T) {
	txns := services.BuildStatement(nil, nil)
	assert.Empty(t, txns)
}

// --- Test Suite ---
type StatementServiceTestSuite struct {
	suite.Suite
	mockHistoryRepo *MockHistoryRepository
	service         portssvc.StatementSvcFacade
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockHistoryRepo = new(MockHistoryRepository)
	suite.service = services.NewStatementService(suite.mockHistoryRepo)
}

func (suite *StatementServiceTestSuite) TestGetStatement_MergesBothSources() {
	ctx := context.Background()
	userID := uuid.NewString()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	credits := []domain.BalanceCredit{
		{CreditID: "c1", UserID: userID, Amount: decimal.NewFromInt(100), CreatedAt: base.Add(2 * time.Hour)},
	}
	payments := []domain.DebtPayment{
		{PaymentID: "p1", UserID: userID, Description: "Rent", Amount: decimal.NewFromInt(60), PaidAt: base.Add(time.Hour)},
	}

	suite.mockHistoryRepo.On("ListBalanceCredits", mock.Anything, userID, time.Time{}, "", 51).Return(credits, nil).Once()
	suite.mockHistoryRepo.On("ListDebtPayments", mock.Anything, userID, time.Time{}, "", 51).Return(payments, nil).Once()

	txns, token, err := suite.service.GetStatement(ctx, userID, 50, "")

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal("c1", txns[0].ID)
	suite.Equal("p1", txns[1].ID)
	suite.Empty(token)

	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestGetStatement_PagesAndReturnsToken() {
	ctx := context.Background()
	userID := uuid.NewString()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	credits := []domain.BalanceCredit{
		{CreditID: "c1", UserID: userID, Amount: decimal.NewFromInt(10), CreatedAt: base.Add(3 * time.Hour)},
		{CreditID: "c2", UserID: userID, Amount: decimal.NewFromInt(10), CreatedAt: base.Add(time.Hour)},
	}
	payments := []domain.DebtPayment{
		{PaymentID: "p1", UserID: userID, Description: "Rent", Amount: decimal.NewFromInt(60), PaidAt: base.Add(2 * time.Hour)},
	}

	suite.mockHistoryRepo.On("ListBalanceCredits", mock.Anything, userID, time.Time{}, "", 3).Return(credits, nil).Once()
	suite.mockHistoryRepo.On("ListDebtPayments", mock.Anything, userID, time.Time{}, "", 3).Return(payments, nil).Once()

	txns, token, err := suite.service.GetStatement(ctx, userID, 2, "")

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal("c1", txns[0].ID)
	suite.Equal("p1", txns[1].ID)
	suite.Require().NotEmpty(token)

	cursorTS, cursorID, err := pagination.DecodeHistoryCursor(token)
	suite.Require().NoError(err)
	suite.True(cursorTS.Equal(txns[1].Timestamp))
	suite.Equal(txns[1].ID, cursorID)
}

// A single source can fill the page by itself; the cursor must still come
// back, otherwise every entry older than the first page is unreachable.
func (suite *StatementServiceTestSuite) TestGetStatement_FullPageFromSingleSource() {
	ctx := context.Background()
	userID := uuid.NewString()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Three of many credits in the source; the over-fetched third row is how
	// the service learns there is more.
	credits := []domain.BalanceCredit{
		{CreditID: "c1", UserID: userID, Amount: decimal.NewFromInt(10), CreatedAt: base.Add(3 * time.Hour)},
		{CreditID: "c2", UserID: userID, Amount: decimal.NewFromInt(10), CreatedAt: base.Add(2 * time.Hour)},
		{CreditID: "c3", UserID: userID, Amount: decimal.NewFromInt(10), CreatedAt: base.Add(time.Hour)},
	}

	suite.mockHistoryRepo.On("ListBalanceCredits", mock.Anything, userID, time.Time{}, "", 3).Return(credits, nil).Once()
	suite.mockHistoryRepo.On("ListDebtPayments", mock.Anything, userID, time.Time{}, "", 3).Return([]domain.DebtPayment{}, nil).Once()

	txns, token, err := suite.service.GetStatement(ctx, userID, 2, "")

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal("c1", txns[0].ID)
	suite.Equal("c2", txns[1].ID)
	suite.Require().NotEmpty(token, "a full page must carry a cursor to the rest")

	cursorTS, cursorID, err := pagination.DecodeHistoryCursor(token)
	suite.Require().NoError(err)
	suite.True(cursorTS.Equal(txns[1].Timestamp))
	suite.Equal("c2", cursorID)
}

func (suite *StatementServiceTestSuite) TestGetStatement_BadCursor() {
	ctx := context.Background()

	txns, token, err := suite.service.GetStatement(ctx, uuid.NewString(), 10, "not-a-cursor")

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.Empty(token)
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "ListBalanceCredits", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestClearStatement_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockHistoryRepo.On("ClearHistory", ctx, userID).Return(nil).Once()

	err := suite.service.ClearStatement(ctx, userID)

	suite.Require().NoError(err)
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
