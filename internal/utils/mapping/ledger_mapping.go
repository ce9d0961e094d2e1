package mapping

import (
	"github.com/testebank/testebank_backend/internal/core/domain"
	"github.com/testebank/testebank_backend/internal/models"
)

func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:      d.DebtID,
		UserID:      d.UserID,
		Description: d.Description,
		Amount:      d.Amount,
		DueDate:     d.DueDate,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:      m.DebtID,
		UserID:      m.UserID,
		Description: m.Description,
		Amount:      m.Amount,
		DueDate:     m.DueDate,
		CreatedAt:   m.CreatedAt,
	}
}

func ToModelBalanceCredit(d domain.BalanceCredit) models.BalanceCredit {
	return models.BalanceCredit{
		CreditID:  d.CreditID,
		UserID:    d.UserID,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
	}
}

func ToDomainBalanceCredit(m models.BalanceCredit) domain.BalanceCredit {
	return domain.BalanceCredit{
		CreditID:  m.CreditID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

func ToModelDebtPayment(d domain.DebtPayment) models.DebtPayment {
	return models.DebtPayment{
		PaymentID:   d.PaymentID,
		UserID:      d.UserID,
		Description: d.Description,
		Amount:      d.Amount,
		PaidAt:      d.PaidAt,
	}
}

func ToDomainDebtPayment(m models.DebtPayment) domain.DebtPayment {
	return domain.DebtPayment{
		PaymentID:   m.PaymentID,
		UserID:      m.UserID,
		Description: m.Description,
		Amount:      m.Amount,
		PaidAt:      m.PaidAt,
	}
}
