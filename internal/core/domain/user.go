package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an account holder. The balance is the persisted, authoritative
// value; history rows in balance_credits/debt_payments explain how it got there.
type User struct {
	UserID       string          `json:"userID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Balance      decimal.Decimal `json:"balance"`
	AuditFields

	// Refresh token fields; hash only, never the raw token.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
