package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceCredit is the database representation of a balance top-up row.
type BalanceCredit struct {
	CreditID  string          `db:"credit_id"`
	UserID    string          `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

// DebtPayment is the database representation of a settled-debt row.
type DebtPayment struct {
	PaymentID   string          `db:"payment_id"`
	UserID      string          `db:"user_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	PaidAt      time.Time       `db:"paid_at"`
}
