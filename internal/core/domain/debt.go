package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is an amount owed by a user, due on some calendar date. A debt has no
// update operation: it either stays open or is deleted when paid.
type Debt struct {
	DebtID      string          `json:"debtID"` // Primary Key (UUID)
	UserID      string          `json:"userID"` // FK -> users.user_id
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`  // > 0 at creation
	DueDate     time.Time       `json:"dueDate"` // date-only semantics, stored as DATE
	CreatedAt   time.Time       `json:"createdAt"`
}
