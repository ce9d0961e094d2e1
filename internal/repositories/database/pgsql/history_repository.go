package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/testebank/testebank_backend/internal/apperrors"
	"github.com/testebank/testebank_backend/internal/core/domain"
	portsrepo "github.com/testebank/testebank_backend/internal/core/ports/repositories"
	"github.com/testebank/testebank_backend/internal/models"
	"github.com/testebank/testebank_backend/internal/utils/mapping"
)

type PgxHistoryRepository struct {
	BaseRepository
}

func newPgxHistoryRepository(db *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

func (r *PgxHistoryRepository) ListBalanceCredits(ctx context.Context, userID string, before time.Time, beforeID string, limit int) ([]domain.BalanceCredit, error) {
	query := `
		SELECT credit_id, user_id, amount, created_at
		FROM balance_credits
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR (created_at, credit_id) < ($2, $3::uuid))
		ORDER BY created_at DESC, credit_id DESC
		LIMIT $4;
	`
	rows, err := r.Pool.Query(ctx, query, userID, nullableTime(before), nullableText(beforeID), nullableLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list balance credits for user %s: %w", userID, err)
	}
	defer rows.Close()

	credits := make([]domain.BalanceCredit, 0)
	for rows.Next() {
		var m models.BalanceCredit
		if err := rows.Scan(&m.CreditID, &m.UserID, &m.Amount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan balance credit row: %w", err)
		}
		credits = append(credits, mapping.ToDomainBalanceCredit(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating balance credit rows: %w", err)
	}
	return credits, nil
}

func (r *PgxHistoryRepository) ListDebtPayments(ctx context.Context, userID string, before time.Time, beforeID string, limit int) ([]domain.DebtPayment, error) {
	query := `
		SELECT payment_id, user_id, description, amount, paid_at
		FROM debt_payments
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR (paid_at, payment_id) < ($2, $3::uuid))
		ORDER BY paid_at DESC, payment_id DESC
		LIMIT $4;
	`
	rows, err := r.Pool.Query(ctx, query, userID, nullableTime(before), nullableText(beforeID), nullableLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list debt payments for user %s: %w", userID, err)
	}
	defer rows.Close()

	payments := make([]domain.DebtPayment, 0)
	for rows.Next() {
		var m models.DebtPayment
		if err := rows.Scan(&m.PaymentID, &m.UserID, &m.Description, &m.Amount, &m.PaidAt); err != nil {
			return nil, fmt.Errorf("failed to scan debt payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainDebtPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating debt payment rows: %w", err)
	}
	return payments, nil
}

// CreditBalance increments the balance and appends the history record in one
// transaction, under a row lock so concurrent credits never lose an update.
func (r *PgxHistoryRepository) CreditBalance(ctx context.Context, credit domain.BalanceCredit) (decimal.Decimal, error) {
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
	`, credit.UserID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to lock account row: %w", err)
	}

	m := mapping.ToModelBalanceCredit(credit)
	_, err = tx.Exec(ctx, `
		INSERT INTO balance_credits (credit_id, user_id, amount, created_at)
		VALUES ($1, $2, $3, $4);
	`, m.CreditID, m.UserID, m.Amount, m.CreatedAt)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to insert balance credit: %w", err)
	}

	newBalance := balance.Add(credit.Amount)
	_, err = tx.Exec(ctx, `
		UPDATE users SET balance = $2, last_updated_at = NOW()
		WHERE user_id = $1;
	`, credit.UserID, newBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to credit balance: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// ClearHistory deletes both history collections in one transaction. The
// account balance is deliberately untouched: this clears the statement view,
// it does not reset the account.
func (r *PgxHistoryRepository) ClearHistory(ctx context.Context, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	if _, err := tx.Exec(ctx, `DELETE FROM balance_credits WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete balance credits: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM debt_payments WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete debt payments: %w", err)
	}

	return r.Commit(ctx, tx)
}

// nullableTime maps the zero time to NULL so the cursor predicate drops out.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// nullableText maps the empty string to NULL so the compound cursor predicate
// stays well-formed when there is no cursor.
func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nullableLimit maps a non-positive limit to NULL, which postgres treats as
// LIMIT ALL.
func nullableLimit(limit int) *int {
	if limit <= 0 {
		return nil
	}
	return &limit
}
