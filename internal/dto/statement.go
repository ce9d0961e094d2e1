package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/testebank/testebank_backend/internal/core/domain"
	"github.com/testebank/testebank_backend/internal/utils"
	"github.com/testebank/testebank_backend/internal/utils/dateutil"
)

// StatementParams defines query parameters for reading the statement.
type StatementParams struct {
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse is one statement line. Date is the DD/MM/YYYY display
// form of Timestamp and AmountDisplay the formatted amount, matching what the
// app renders.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amountDisplay"`
	Date          string          `json:"date"`
	Timestamp     time.Time       `json:"timestamp"`
	Kind          string          `json:"kind"`
}

// StatementResponse wraps the merged, time-ordered transaction list. NextToken
// is empty when there are no older entries.
type StatementResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToStatementResponse converts the assembled transactions to the response DTO.
func ToStatementResponse(txns []domain.Transaction, nextToken string) StatementResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = TransactionResponse{
			ID:            t.ID,
			Description:   t.Description,
			Amount:        t.Amount,
			AmountDisplay: utils.FormatBRL(t.Amount),
			Date:          dateutil.ToDisplayDate(t.Timestamp.Format(time.RFC3339)),
			Timestamp:     t.Timestamp,
			Kind:          string(t.Kind),
		}
	}
	return StatementResponse{Transactions: out, NextToken: nextToken}
}
