package repositories

// RepositoryProvider holds instances of all the repository facades. Services
// are wired against this rather than concrete adapter types.
type RepositoryProvider struct {
	UserRepo    UserRepositoryFacade
	DebtRepo    DebtRepositoryFacade
	HistoryRepo HistoryRepositoryFacade
}
