package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this rather than concrete service types.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Debt        DebtSvcFacade
	Balance     BalanceSvcFacade
	Statement   StatementSvcFacade
}
