package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/testebank/testebank_backend/internal/core/domain"
	"github.com/testebank/testebank_backend/internal/utils/dateutil"
)

// CreateDebtRequest carries the new-debt form. Amount and due date arrive as
// the raw text the user typed; the service validates and converts both.
type CreateDebtRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	DueDate     string `json:"dueDate" binding:"required,displaydate"`
}

// DebtResponse is the outward-facing shape of an open debt. DueDate is
// rendered in the DD/MM/YYYY display form.
type DebtResponse struct {
	DebtID      string          `json:"debtID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"dueDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToDebtResponse converts a domain.Debt to its response DTO.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:      d.DebtID,
		Description: d.Description,
		Amount:      d.Amount,
		DueDate:     dateutil.ToDisplayDate(d.DueDate.Format(dateutil.StorageLayout)),
		CreatedAt:   d.CreatedAt,
	}
}

// ListDebtsResponse wraps the list of open debts.
type ListDebtsResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// ToListDebtsResponse converts a slice of domain.Debt to the list DTO.
func ToListDebtsResponse(debts []domain.Debt) ListDebtsResponse {
	out := make([]DebtResponse, len(debts))
	for i := range debts {
		out[i] = ToDebtResponse(&debts[i])
	}
	return ListDebtsResponse{Debts: out}
}

// PayDebtResponse reports the result of a successful payment.
type PayDebtResponse struct {
	PaymentID   string          `json:"paymentID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAt      time.Time       `json:"paidAt"`
	Balance     decimal.Decimal `json:"balance"`
}
