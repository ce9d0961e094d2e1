package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/testebank/testebank_backend/internal/apperrors"
	"github.com/testebank/testebank_backend/internal/core/domain"
	portsrepo "github.com/testebank/testebank_backend/internal/core/ports/repositories"
	portssvc "github.com/testebank/testebank_backend/internal/core/ports/services"
)

// balanceService implements BalanceSvcFacade.
type balanceService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	historyRepo portsrepo.HistoryRepositoryFacade
}

// NewBalanceService creates a new balance service.
func NewBalanceService(userRepo portsrepo.UserRepositoryFacade, historyRepo portsrepo.HistoryRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{userRepo: userRepo, historyRepo: historyRepo}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// GetAccount returns the user's profile with the current balance.
func (s *balanceService) GetAccount(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// AddFunds parses the raw amount text and credits the balance. Text that does
// not parse to a positive amount is rejected with ErrValidation so the caller
// can tell the user, instead of the request quietly doing nothing.
func (s *balanceService) AddFunds(ctx context.Context, userID string, rawAmount string) (*domain.BalanceCredit, decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: amount must be a number", apperrors.ErrValidation)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, decimal.Zero, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	credit := domain.BalanceCredit{
		CreditID:  uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now(),
	}

	newBalance, err := s.historyRepo.CreditBalance(ctx, credit)
	if err != nil {
		s.LogError(ctx, err, "Failed to credit balance")
		return nil, decimal.Zero, err
	}

	s.LogInfo(ctx, "Funds added", "creditID", credit.CreditID)
	return &credit, newBalance, nil
}
