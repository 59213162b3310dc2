package repositories

// RepositoryProvider bundles every repository implementation handed to
// the service layer.
type RepositoryProvider struct {
	AccountRepo    AccountRepositoryFacade
	JournalRepo    JournalRepositoryFacade
	CostCenterRepo CostCenterRepositoryFacade
	ReportingRepo  ReportingReader
	TxManager      TransactionManager
}
