package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/testebank/testebank_backend/internal/core/domain"
)

// DebtReader defines read operations for debt data.
type DebtReader interface {
	// FindDebtByID retrieves a single open debt.
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// ListDebtsByUser retrieves a user's open debts ordered by due date ascending.
	ListDebtsByUser(ctx context.Context, userID string) ([]domain.Debt, error)
}

// DebtWriter defines write operations for debt data.
type DebtWriter interface {
	// SaveDebt persists a new debt.
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// SettleDebt pays a debt atomically: inside one database transaction it
	// locks the owner's account row, re-checks that the balance covers the
	// debt, inserts the payment record, decrements the balance and deletes the
	// debt. Returns the balance after the debit. A stale sufficiency check in
	// the caller is caught here and surfaces as ErrInsufficientFunds.
	SettleDebt(ctx context.Context, debt domain.Debt, payment domain.DebtPayment) (decimal.Decimal, error)
}

// DebtRepositoryFacade combines all debt-related repository interfaces.
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
