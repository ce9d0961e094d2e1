package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/testebank/testebank_backend/internal/core/domain"
	"github.com/testebank/testebank_backend/internal/dto"
)

// DebtSvcFacade defines the debt lifecycle: create, list, pay. A debt is
// either open or paid; payment deletes it.
type DebtSvcFacade interface {
	// CreateDebt validates the form and persists a new debt for the user.
	CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error)

	// ListDebts returns the user's open debts ordered by due date ascending.
	ListDebts(ctx context.Context, userID string) ([]domain.Debt, error)

	// PayDebt settles a debt: records the payment, debits the balance and
	// deletes the debt, all atomically. Returns the payment record and the
	// balance after the debit.
	PayDebt(ctx context.Context, userID string, debtID string) (*domain.DebtPayment, decimal.Decimal, error)
}

// BalanceSvcFacade defines balance reads and top-ups.
type BalanceSvcFacade interface {
	// GetAccount returns the user's profile with the current balance.
	GetAccount(ctx context.Context, userID string) (*domain.User, error)

	// AddFunds parses the raw amount text, credits the balance and appends the
	// history record. Returns the credit record and the balance after it.
	AddFunds(ctx context.Context, userID string, rawAmount string) (*domain.BalanceCredit, decimal.Decimal, error)
}

// StatementSvcFacade defines the merged transaction statement.
type StatementSvcFacade interface {
	// GetStatement fetches both history collections and assembles them into
	// one list sorted by timestamp descending. nextToken pages into older
	// entries; the returned token is empty on the last page.
	GetStatement(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Transaction, string, error)

	// ClearStatement bulk-deletes the user's history rows. The balance is
	// left as is; this clears the view, it does not reset the account.
	ClearStatement(ctx context.Context, userID string) error
}
