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
	"github.com/testebank/testebank_backend/internal/dto"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock DebtRepository ---
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListDebtsByUser(ctx context.Context, userID string) ([]domain.Debt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) SettleDebt(ctx context.Context, debt domain.Debt, payment domain.DebtPayment) (decimal.Decimal, error) {
	args := m.Called(ctx, debt, payment)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type DebtServiceTestSuite struct {
	suite.Suite
	mockDebtRepo *MockDebtRepository
	mockUserRepo *MockUserRepository
	service      portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewDebtService(suite.mockDebtRepo, suite.mockUserRepo)
}

// --- Test Cases ---

func (suite *DebtServiceTestSuite) TestCreateDebt_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateDebtRequest{
		Description: "Electricity bill",
		Amount:      "120.50",
		DueDate:     "15/06/2025",
	}

	suite.mockDebtRepo.On("SaveDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.UserID == userID &&
			d.Description == req.Description &&
			d.Amount.Equal(decimal.RequireFromString("120.50")) &&
			d.DueDate.Format("2006-01-02") == "2025-06-15"
	})).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.NotEmpty(debt.DebtID)
	suite.Equal(userID, debt.UserID)

	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_MasksRawDigitsDueDate() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateDebtRequest{
		Description: "Phone bill",
		Amount:      "75",
		DueDate:     "15062025",
	}

	suite.mockDebtRepo.On("SaveDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.DueDate.Format("2006-01-02") == "2025-06-15"
	})).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_InvalidDueDate() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Description: "Rent",
		Amount:      "900",
		DueDate:     "31/02/2024",
	}

	debt, err := suite.service.CreateDebt(ctx, uuid.NewString(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(debt)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_InvalidAmount() {
	ctx := context.Background()
	userID := uuid.NewString()

	for _, amount := range []string{"abc", "0", "-12.30"} {
		req := dto.CreateDebtRequest{
			Description: "Rent",
			Amount:      amount,
			DueDate:     "01/12/2025",
		}
		debt, err := suite.service.CreateDebt(ctx, userID, req)
		suite.Require().ErrorIs(err, apperrors.ErrValidation, "amount %q", amount)
		suite.Nil(debt)
	}
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_BlankDescription() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Description: "   ",
		Amount:      "10",
		DueDate:     "01/12/2025",
	}

	debt, err := suite.service.CreateDebt(ctx, uuid.NewString(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(debt)
}

func (suite *DebtServiceTestSuite) TestListDebts_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.Debt{
		{DebtID: uuid.NewString(), UserID: userID, Description: "Water", Amount: decimal.NewFromInt(40)},
		{DebtID: uuid.NewString(), UserID: userID, Description: "Internet", Amount: decimal.NewFromInt(80)},
	}

	suite.mockDebtRepo.On("ListDebtsByUser", ctx, userID).Return(expected, nil).Once()

	debts, err := suite.service.ListDebts(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, debts)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestPayDebt_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	debt := &domain.Debt{
		DebtID:      uuid.NewString(),
		UserID:      userID,
		Description: "Gym membership",
		Amount:      decimal.NewFromInt(50),
	}
	user := &domain.User{UserID: userID, Balance: decimal.NewFromInt(200)}

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockDebtRepo.On("SettleDebt", ctx, *debt, mock.MatchedBy(func(p domain.DebtPayment) bool {
		return p.UserID == userID &&
			p.Description == debt.Description &&
			p.Amount.Equal(debt.Amount) &&
			p.PaymentID != ""
	})).Return(decimal.NewFromInt(150), nil).Once()

	payment, balance, err := suite.service.PayDebt(ctx, userID, debt.DebtID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(debt.Description, payment.Description)
	suite.True(balance.Equal(decimal.NewFromInt(150)))

	suite.mockDebtRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestPayDebt_InsufficientFunds() {
	ctx := context.Background()
	userID := uuid.NewString()
	debt := &domain.Debt{
		DebtID:      uuid.NewString(),
		UserID:      userID,
		Description: "Car repair",
		Amount:      decimal.NewFromInt(150),
	}
	user := &domain.User{UserID: userID, Balance: decimal.NewFromInt(100)}

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	payment, _, err := suite.service.PayDebt(ctx, userID, debt.DebtID)

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(payment)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SettleDebt", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestPayDebt_NotOwner() {
	ctx := context.Background()
	debt := &domain.Debt{
		DebtID:      uuid.NewString(),
		UserID:      uuid.NewString(),
		Description: "Someone else's debt",
		Amount:      decimal.NewFromInt(10),
	}

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(debt, nil).Once()

	payment, _, err := suite.service.PayDebt(ctx, uuid.NewString(), debt.DebtID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payment)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestPayDebt_DebtNotFound() {
	ctx := context.Background()
	debtID := uuid.NewString()

	suite.mockDebtRepo.On("FindDebtByID", ctx, debtID).Return(nil, apperrors.ErrNotFound).Once()

	payment, _, err := suite.service.PayDebt(ctx, uuid.NewString(), debtID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payment)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
