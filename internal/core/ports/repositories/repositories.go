package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UnitOfWork      UnitOfWork
	StagingRepo     StagingRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	DirectoryRepo   DirectoryReader
	ReportingRepo   ReportingRepository
}
