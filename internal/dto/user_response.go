package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/testebank/testebank_backend/internal/core/domain"
	"github.com/testebank/testebank_backend/internal/utils"
)

// UserResponse is the outward-facing shape of a user profile. BalanceDisplay
// carries the balance pre-formatted the way the app renders it.
type UserResponse struct {
	UserID         string          `json:"userID"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceDisplay string          `json:"balanceDisplay"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Name:           u.Name,
		Email:          u.Email,
		Balance:        u.Balance,
		BalanceDisplay: utils.FormatBRL(u.Balance),
		CreatedAt:      u.CreatedAt,
	}
}
