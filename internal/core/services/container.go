package services

import (
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:    NewAccountService(repos.AccountRepo),
		Journal:    NewJournalService(repos.JournalRepo, repos.AccountRepo, repos.TxManager),
		Ledger:     NewLedgerService(repos.AccountRepo, repos.ReportingRepo),
		CostCenter: NewCostCenterService(repos.CostCenterRepo),
		Reporting:  NewReportingService(repos.ReportingRepo, repos.CostCenterRepo),
	}
}
