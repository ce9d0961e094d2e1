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
	"github.com/testebank/testebank_backend/internal/dto"
	"github.com/testebank/testebank_backend/internal/utils/dateutil"
)

// debtService implements DebtSvcFacade.
type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepositoryFacade
	userRepo portsrepo.UserRepositoryFacade
}

// NewDebtService creates a new debt service.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.DebtSvcFacade {
	return &debtService{debtRepo: debtRepo, userRepo: userRepo}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// CreateDebt validates the raw form fields and persists a new debt. The due
// date arrives in DD/MM/YYYY display form and the amount as free text; both
// are rejected with ErrValidation rather than silently dropped.
func (s *debtService) CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return nil, fmt.Errorf("%w: amount must be a number", apperrors.ErrValidation)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	// Accept the date as typed; masking is idempotent on already-formatted input.
	display := dateutil.FormatDisplayDate(req.DueDate)
	if !dateutil.IsValidCalendarDate(display) {
		return nil, fmt.Errorf("%w: due date %q is not a valid calendar date", apperrors.ErrValidation, req.DueDate)
	}
	dueDate, err := time.Parse(dateutil.StorageLayout, dateutil.ToStorageDate(display))
	if err != nil {
		return nil, fmt.Errorf("%w: due date %q is not a valid calendar date", apperrors.ErrValidation, req.DueDate)
	}

	debt := domain.Debt{
		DebtID:      uuid.NewString(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		DueDate:     dueDate,
		CreatedAt:   time.Now(),
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt")
		return nil, err
	}

	s.LogInfo(ctx, "Debt created", "debtID", debt.DebtID)
	return &debt, nil
}

// ListDebts returns the user's open debts ordered by due date ascending.
func (s *debtService) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebtsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts")
		return nil, err
	}
	return debts, nil
}

// PayDebt settles a debt for its owner. The balance sufficiency check here is
// advisory; the repository re-checks it under a row lock, so a concurrent
// payment cannot drive the balance negative.
func (s *debtService) PayDebt(ctx context.Context, userID string, debtID string) (*domain.DebtPayment, decimal.Decimal, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if debt.UserID != userID {
		// Do not leak that the debt exists at all.
		return nil, decimal.Zero, apperrors.ErrNotFound
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if user.Balance.LessThan(debt.Amount) {
		return nil, decimal.Zero, fmt.Errorf("%w: balance %s does not cover %s",
			apperrors.ErrInsufficientFunds, user.Balance.String(), debt.Amount.String())
	}

	payment := domain.DebtPayment{
		PaymentID:   uuid.NewString(),
		UserID:      userID,
		Description: debt.Description,
		Amount:      debt.Amount,
		PaidAt:      time.Now(),
	}

	newBalance, err := s.debtRepo.SettleDebt(ctx, *debt, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to settle debt", "debtID", debtID)
		return nil, decimal.Zero, err
	}

	s.LogInfo(ctx, "Debt paid", "debtID", debtID, "paymentID", payment.PaymentID)
	return &payment, newBalance, nil
}
