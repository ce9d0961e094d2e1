package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/testebank/testebank_backend/internal/apperrors"
	"github.com/testebank/testebank_backend/internal/core/domain"
	portsrepo "github.com/testebank/testebank_backend/internal/core/ports/repositories"
	portssvc "github.com/testebank/testebank_backend/internal/core/ports/services"
	"github.com/testebank/testebank_backend/internal/utils/pagination"
)

// statementService implements StatementSvcFacade.
type statementService struct {
	BaseService
	historyRepo portsrepo.HistoryRepositoryFacade
}

// NewStatementService creates a new statement service.
func NewStatementService(historyRepo portsrepo.HistoryRepositoryFacade) portssvc.StatementSvcFacade {
	return &statementService{historyRepo: historyRepo}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// BuildStatement projects balance credits and debt payments into one
// transaction list sorted by (timestamp, ID) descending. Credits carry the
// fixed label, payments the description copied from the paid debt. The ID
// tie-break matches the per-source ordering in the repository queries, which
// keeps the compound page cursor total: a row equal in timestamp to the page
// boundary still lands on exactly one page.
func BuildStatement(credits []domain.BalanceCredit, payments []domain.DebtPayment) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(credits)+len(payments))

	for _, c := range credits {
		txns = append(txns, domain.Transaction{
			ID:          c.CreditID,
			Description: domain.CreditDescription,
			Amount:      c.Amount,
			Timestamp:   c.CreatedAt,
			Kind:        domain.KindCredit,
		})
	}
	for _, p := range payments {
		txns = append(txns, domain.Transaction{
			ID:          p.PaymentID,
			Description: p.Description,
			Amount:      p.Amount,
			Timestamp:   p.PaidAt,
			Kind:        domain.KindDebit,
		})
	}

	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Timestamp.Equal(txns[j].Timestamp) {
			return txns[i].Timestamp.After(txns[j].Timestamp)
		}
		return txns[i].ID > txns[j].ID
	})

	return txns
}

// GetStatement fetches both history collections concurrently, assembles them
// and pages the result. Each source arrives pre-sorted descending by its own
// timestamp column, but the merged result is re-sorted regardless, so the
// source ordering is not load-bearing.
func (s *statementService) GetStatement(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	var (
		before   time.Time
		beforeID string
	)
	if nextToken != "" {
		var err error
		before, beforeID, err = pagination.DecodeHistoryCursor(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: bad statement cursor", apperrors.ErrValidation)
		}
	}

	// Over-fetch by one row per source: a single source can fill the whole
	// page on its own, so truncation is only detectable when the combined
	// fetch can exceed the page size.
	fetchLimit := limit
	if limit > 0 {
		fetchLimit = limit + 1
	}

	var (
		credits  []domain.BalanceCredit
		payments []domain.DebtPayment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		credits, err = s.historyRepo.ListBalanceCredits(gctx, userID, before, beforeID, fetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.historyRepo.ListDebtPayments(gctx, userID, before, beforeID, fetchLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to fetch statement history")
		return nil, "", err
	}

	txns := BuildStatement(credits, payments)

	token := ""
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token = pagination.EncodeHistoryCursor(last.Timestamp, last.ID)
	}

	return txns, token, nil
}

// ClearStatement wipes the user's history rows. The balance stays as it is:
// this clears the view, it does not reset the account.
func (s *statementService) ClearStatement(ctx context.Context, userID string) error {
	if err := s.historyRepo.ClearHistory(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear statement")
		return err
	}
	s.LogInfo(ctx, "Statement cleared")
	return nil
}
