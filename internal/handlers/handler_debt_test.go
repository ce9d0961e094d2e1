package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/testebank/testebank_backend/internal/apperrors"
	"github.com/testebank/testebank_backend/internal/core/domain"
	portssvc "github.com/testebank/testebank_backend/internal/core/ports/services"
	"github.com/testebank/testebank_backend/internal/dto"
	"github.com/testebank/testebank_backend/internal/handlers"
	"github.com/testebank/testebank_backend/internal/middleware"
)

// --- Mock DebtService ---
type MockDebtService struct {
	mock.Mock
}

func (m *MockDebtService) CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtService) PayDebt(ctx context.Context, userID string, debtID string) (*domain.DebtPayment, decimal.Decimal, error) {
	args := m.Called(ctx, userID, debtID)
	if args.Get(0) == nil {
		return nil, decimal.Zero, args.Error(2)
	}
	return args.Get(0).(*domain.DebtPayment), args.Get(1).(decimal.Decimal), args.Error(2)
}

var _ portssvc.DebtSvcFacade = (*MockDebtService)(nil)

// --- Test Suite ---
type DebtHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockDebtService *MockDebtService
	jwtSecret       string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *DebtHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "testebank-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *DebtHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidators())
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockDebtService = new(MockDebtService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDebtRoutes(v1, suite.mockDebtService)
}

// --- Test Cases ---

func (suite *DebtHandlerTestSuite) TestCreateDebt_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateDebtRequest{
		Description: "Electricity bill",
		Amount:      "120.50",
		DueDate:     "15/06/2025",
	}
	created := &domain.Debt{
		DebtID:      uuid.NewString(),
		UserID:      userID,
		Description: reqBody.Description,
		Amount:      decimal.RequireFromString("120.50"),
		DueDate:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now(),
	}

	suite.mockDebtService.On("CreateDebt", mock.Anything, userID, reqBody).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/debts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.DebtResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.DebtID, resp.DebtID)
	suite.Equal("15/06/2025", resp.DueDate)

	suite.mockDebtService.AssertExpectations(suite.T())
}

func (suite *DebtHandlerTestSuite) TestCreateDebt_ValidationError() {
	userID := uuid.NewString()
	reqBody := dto.CreateDebtRequest{
		Description: "Rent",
		Amount:      "abc",
		DueDate:     "15/06/2025",
	}

	suite.mockDebtService.On("CreateDebt", mock.Anything, userID, reqBody).
		Return(nil, apperrors.ErrValidation).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/debts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *DebtHandlerTestSuite) TestListDebts_Success() {
	userID := uuid.NewString()
	debts := []domain.Debt{
		{DebtID: uuid.NewString(), UserID: userID, Description: "Water", Amount: decimal.NewFromInt(40), DueDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockDebtService.On("ListDebts", mock.Anything, userID).Return(debts, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/debts", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListDebtsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Debts, 1)
	suite.Equal("01/07/2025", resp.Debts[0].DueDate)
}

func (suite *DebtHandlerTestSuite) TestPayDebt_Success() {
	userID := uuid.NewString()
	debtID := uuid.NewString()
	payment := &domain.DebtPayment{
		PaymentID:   uuid.NewString(),
		UserID:      userID,
		Description: "Gym membership",
		Amount:      decimal.NewFromInt(50),
		PaidAt:      time.Now(),
	}

	suite.mockDebtService.On("PayDebt", mock.Anything, userID, debtID).
		Return(payment, decimal.NewFromInt(150), nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/debts/"+debtID+"/pay", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PayDebtResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(payment.PaymentID, resp.PaymentID)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(150)))
}

func (suite *DebtHandlerTestSuite) TestPayDebt_InsufficientFunds() {
	userID := uuid.NewString()
	debtID := uuid.NewString()

	suite.mockDebtService.On("PayDebt", mock.Anything, userID, debtID).
		Return(nil, decimal.Zero, apperrors.ErrInsufficientFunds).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/debts/"+debtID+"/pay", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *DebtHandlerTestSuite) TestPayDebt_NotFound() {
	userID := uuid.NewString()
	debtID := uuid.NewString()

	suite.mockDebtService.On("PayDebt", mock.Anything, userID, debtID).
		Return(nil, decimal.Zero, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/debts/"+debtID+"/pay", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DebtHandlerTestSuite) TestCreateDebt_NoToken() {
	body, _ := json.Marshal(dto.CreateDebtRequest{Description: "Rent", Amount: "10", DueDate: "01/12/2025"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/debts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDebtService.AssertNotCalled(suite.T(), "CreateDebt", mock.Anything, mock.Anything, mock.Anything)
}

func TestDebtHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DebtHandlerTestSuite))
}
