package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceCredit records a single balance top-up. Append-only; rows are only
// ever removed in bulk by a statement clear.
type BalanceCredit struct {
	CreditID  string          `json:"creditID"` // Primary Key (UUID)
	UserID    string          `json:"userID"`   // FK -> users.user_id
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// DebtPayment records the settlement of a debt. The description is copied from
// the debt at payment time because the debt row is deleted in the same
// transaction.
type DebtPayment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`    // FK -> users.user_id
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAt      time.Time       `json:"paidAt"`
}
