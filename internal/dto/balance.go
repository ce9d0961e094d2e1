package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddFundsRequest carries the top-up form. Amount is the raw text the user
// typed; the service validates it parses to a positive decimal.
type AddFundsRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// AddFundsResponse reports the recorded credit and the balance after it.
type AddFundsResponse struct {
	CreditID  string          `json:"creditID"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
	Balance   decimal.Decimal `json:"balance"`
}
