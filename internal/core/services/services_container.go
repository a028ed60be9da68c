package services

import (
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Staging:      NewStagingService(repos.UnitOfWork, repos.StagingRepo, options...),
		Confirmation: NewConfirmationService(repos.UnitOfWork, repos.StagingRepo, repos.DirectoryRepo, options...),
		Transactions: NewTransactionService(repos.UnitOfWork, repos.TransactionRepo, repos.DirectoryRepo, options...),
		Journal:      NewJournalService(repos.UnitOfWork, repos.TransactionRepo, repos.JournalRepo, options...),
		Reporting:    NewReportingService(repos.ReportingRepo, options...),
	}
}
