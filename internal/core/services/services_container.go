package services

import (
	portsrepo "github.com/testebank/testebank_backend/internal/core/ports/repositories"
	portssvc "github.com/testebank/testebank_backend/internal/core/ports/services"
	"github.com/testebank/testebank_backend/internal/platform/config"
)

// NewServiceContainer wires the repositories into the full service set.
func NewServiceContainer(
	cfg *config.Config,
	userRepo portsrepo.UserRepositoryFacade,
	debtRepo portsrepo.DebtRepositoryFacade,
	historyRepo portsrepo.HistoryRepositoryFacade,
) *portssvc.ServiceContainer {
	userService := NewUserService(userRepo)
	return &portssvc.ServiceContainer{
		User:        userService,
		Token:       NewTokenService(cfg, userService),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Debt:        NewDebtService(debtRepo, userRepo),
		Balance:     NewBalanceService(userRepo, historyRepo),
		Statement:   NewStatementService(historyRepo),
	}
}
