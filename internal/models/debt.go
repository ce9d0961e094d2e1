package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is the database representation of an open debt. due_date is a DATE
// column; the time component is always midnight UTC.
type Debt struct {
	DebtID      string          `db:"debt_id"`
	UserID      string          `db:"user_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	DueDate     time.Time       `db:"due_date"`
	CreatedAt   time.Time       `db:"created_at"`
}
