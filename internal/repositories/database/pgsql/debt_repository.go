package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/testebank/testebank_backend/internal/apperrors"
	"github.com/testebank/testebank_backend/internal/core/domain"
	portsrepo "github.com/testebank/testebank_backend/internal/core/ports/repositories"
	"github.com/testebank/testebank_backend/internal/models"
	"github.com/testebank/testebank_backend/internal/utils/mapping"
)

type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(db *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	query := `
		INSERT INTO debts (debt_id, user_id, description, amount, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.UserID,
		m.Description,
		m.Amount,
		m.DueDate,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save debt: %w", err)
	}
	return nil
}

func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	query := `
		SELECT debt_id, user_id, description, amount, due_date, created_at
		FROM debts
		WHERE debt_id = $1;
	`
	var m models.Debt
	err := r.Pool.QueryRow(ctx, query, debtID).Scan(
		&m.DebtID,
		&m.UserID,
		&m.Description,
		&m.Amount,
		&m.DueDate,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by ID %s: %w", debtID, err)
	}
	d := mapping.ToDomainDebt(m)
	return &d, nil
}

func (r *PgxDebtRepository) ListDebtsByUser(ctx context.Context, userID string) ([]domain.Debt, error) {
	query := `
		SELECT debt_id, user_id, description, amount, due_date, created_at
		FROM debts
		WHERE user_id = $1
		ORDER BY due_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts for user %s: %w", userID, err)
	}
	defer rows.Close()

	debts := make([]domain.Debt, 0)
	for rows.Next() {
		var m models.Debt
		if err := rows.Scan(&m.DebtID, &m.UserID, &m.Description, &m.Amount, &m.DueDate, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, mapping.ToDomainDebt(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating debt rows: %w", err)
	}
	return debts, nil
}

// SettleDebt performs the whole payment inside one transaction: it locks the
// owner's account row, re-checks the balance against the debt amount, inserts
// the payment record, debits the balance and deletes the debt. Rolling back on
// any failure means there is no state where the payment exists but the debt or
// balance was left untouched.
func (r *PgxDebtRepository) SettleDebt(ctx context.Context, debt domain.Debt, payment domain.DebtPayment) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, `
		SELECT balance FROM users
		WHERE user_id = $1
		FOR UPDATE;
	`, debt.UserID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to lock account row: %w", err)
	}

	if balance.LessThan(debt.Amount) {
		return decimal.Zero, fmt.Errorf("%w: balance %s does not cover %s",
			apperrors.ErrInsufficientFunds, balance.String(), debt.Amount.String())
	}

	p := mapping.ToModelDebtPayment(payment)
	_, err = tx.Exec(ctx, `
		INSERT INTO debt_payments (payment_id, user_id, description, amount, paid_at)
		VALUES ($1, $2, $3, $4, $5);
	`, p.PaymentID, p.UserID, p.Description, p.Amount, p.PaidAt)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to insert debt payment: %w", err)
	}

	newBalance := balance.Sub(debt.Amount)
	_, err = tx.Exec(ctx, `
		UPDATE users SET balance = $2, last_updated_at = NOW()
		WHERE user_id = $1;
	`, debt.UserID, newBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to debit balance: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM debts WHERE debt_id = $1;`, debt.DebtID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to delete debt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Already paid by a concurrent request; the row lock serialized us
		// behind it.
		return decimal.Zero, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}
