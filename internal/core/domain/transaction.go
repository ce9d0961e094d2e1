package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags a statement line as money in or money out.
type TransactionKind string

const (
	KindCredit TransactionKind = "CREDIT"
	KindDebit  TransactionKind = "DEBIT"
)

// CreditDescription is the fixed label shown for balance top-ups on the
// statement; payments keep the description copied from the paid debt.
const CreditDescription = "Funds added"

// Transaction is the statement view-model: a balance credit or a debt payment
// projected into one shape. It is built fresh on every statement read and never
// persisted.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	Kind        TransactionKind `json:"kind"`
}
