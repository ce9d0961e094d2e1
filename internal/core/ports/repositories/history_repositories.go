package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/testebank/testebank_backend/internal/core/domain"
)

// HistoryReader defines read operations over the two statement sources. Both
// listings are ordered by (timestamp, id) descending; the `before`/`beforeID`
// pair is a compound cursor selecting only rows strictly older than it, so
// timestamp collisions on a page boundary cannot skip rows. A zero `before`
// means no cursor and limit <= 0 means no limit.
type HistoryReader interface {
	// ListBalanceCredits retrieves a user's balance top-ups, newest first.
	ListBalanceCredits(ctx context.Context, userID string, before time.Time, beforeID string, limit int) ([]domain.BalanceCredit, error)

	// ListDebtPayments retrieves a user's settled-debt records, newest first.
	ListDebtPayments(ctx context.Context, userID string, before time.Time, beforeID string, limit int) ([]domain.DebtPayment, error)
}

// HistoryWriter defines write operations for the credit history.
type HistoryWriter interface {
	// CreditBalance adds funds atomically: inside one database transaction it
	// locks the owner's account row, increments the balance and appends the
	// credit record. Returns the balance after the credit.
	CreditBalance(ctx context.Context, credit domain.BalanceCredit) (decimal.Decimal, error)
}

// HistoryCleaner defines the bulk statement-clear operation.
type HistoryCleaner interface {
	// ClearHistory deletes all of the user's balance credits and debt payments
	// in one transaction. The account balance is deliberately untouched.
	ClearHistory(ctx context.Context, userID string) error
}

// HistoryRepositoryFacade combines all history-related repository interfaces.
type HistoryRepositoryFacade interface {
	HistoryReader
	HistoryWriter
	HistoryCleaner
}
