package pgsql

import (
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	costCenterRepo := newPgxCostCenterRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:    accountRepo,
		JournalRepo:    journalRepo,
		CostCenterRepo: costCenterRepo,
		ReportingRepo:  reportingRepo,
		TxManager:      &BaseRepository{Pool: dbPool},
	}
}
