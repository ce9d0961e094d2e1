package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/testebank/testebank_backend/internal/apperrors"
	"github.com/testebank/testebank_backend/internal/core/domain"
	portssvc "github.com/testebank/testebank_backend/internal/core/ports/services"
	"github.com/testebank/testebank_backend/internal/core/services"
)

// --- Mock HistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) ListBalanceCredits(ctx context.Context, userID string, before time.Time, beforeID string, limit int) ([]domain.BalanceCredit, error) {
	args := m.Called(ctx, userID, before, beforeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceCredit), args.Error(1)
}

func (m *MockHistoryRepository) ListDebtPayments(ctx context.Context, userID string, before time.Time, beforeID string, limit int) ([]domain.DebtPayment, error) {
	args := m.Called(ctx, userID, before, beforeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtPayment), args.Error(1)
}

func (m *MockHistoryRepository) CreditBalance(ctx context.Context, credit domain.BalanceCredit) (decimal.Decimal, error) {
	args := m.Called(ctx, credit)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockHistoryRepository) ClearHistory(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type BalanceServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockHistoryRepo *MockHistoryRepository
	service         portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockHistoryRepo = new(MockHistoryRepository)
	suite.service = services.NewBalanceService(suite.mockUserRepo, suite.mockHistoryRepo)
}

// --- Test Cases ---

func (suite *BalanceServiceTestSuite) TestGetAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Name: "Ana", Balance: decimal.NewFromInt(100)}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	got, err := suite.service.GetAccount(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(user, got)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestAddFunds_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockHistoryRepo.On("CreditBalance", ctx, mock.MatchedBy(func(c domain.BalanceCredit) bool {
		return c.UserID == userID && c.Amount.Equal(decimal.NewFromInt(50)) && c.CreditID != ""
	})).Return(decimal.NewFromInt(150), nil).Once()

	credit, balance, err := suite.service.AddFunds(ctx, userID, "50")

	suite.Require().NoError(err)
	suite.Require().NotNil(credit)
	suite.True(credit.Amount.Equal(decimal.NewFromInt(50)))
	suite.True(balance.Equal(decimal.NewFromInt(150)))

	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestAddFunds_RejectsBadAmounts() {
	ctx := context.Background()
	userID := uuid.NewString()

	for _, raw := range []string{"abc", "", "0", "-5"} {
		credit, _, err := suite.service.AddFunds(ctx, userID, raw)
		suite.Require().ErrorIs(err, apperrors.ErrValidation, "amount %q", raw)
		suite.Nil(credit)
	}

	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "CreditBalance", mock.Anything, mock.Anything)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
