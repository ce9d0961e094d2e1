package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// User is the database representation of an account holder.
type User struct {
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	Email        string          `db:"email"`
	PasswordHash string          `db:"password_hash"`
	Balance      decimal.Decimal `db:"balance"`
	CreatedAt    time.Time       `db:"created_at"`
	LastUpdatedAt time.Time      `db:"last_updated_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
