package services_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/core/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/repositories/database/boltstore"
)

const companyID = "co-1"

var (
	fixedNow = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	txDate   = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
)

func amt(s string) domain.Amount {
	return domain.MustParseAmount(s)
}

// sequentialIDs is safe for the concurrent tests.
func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("id-%04d", n.Add(1))
	}
}

// LedgerServicesTestSuite runs the services against a real bbolt file.
type LedgerServicesTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *boltstore.Store
	repos portsrepo.RepositoryProvider
	svc   *portssvc.ServiceContainer
}

func TestLedgerServicesTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServicesTestSuite))
}

func (s *LedgerServicesTestSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := boltstore.Open(filepath.Join(s.T().TempDir(), "ledger.db"))
	s.Require().NoError(err)
	s.store = store
	s.repos = store.NewRepositoryProvider()
	s.svc = services.NewServiceContainer(s.repos,
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithIDGenerator(sequentialIDs()))

	dir := store.Directory()
	for _, a := range []domain.Account{
		{AccountID: "checking", Name: "Checking", AccountType: domain.Asset},
		{AccountID: "savings", Name: "Savings", AccountType: domain.Asset},
		{AccountID: "office-supplies", Name: "Office Supplies", AccountType: domain.Expense},
		{AccountID: "software", Name: "Software", AccountType: domain.Expense},
		{AccountID: "equipment", Name: "Equipment", AccountType: domain.Asset},
		{AccountID: "revenue", Name: "Sales", AccountType: domain.Revenue},
	} {
		a.CompanyID = companyID
		s.Require().NoError(dir.SaveAccount(s.ctx, a))
	}
	s.Require().NoError(dir.SaveAccount(s.ctx, domain.Account{AccountID: "foreign", CompanyID: "co-2", Name: "Other", AccountType: domain.Expense}))
	s.Require().NoError(dir.SavePayee(s.ctx, domain.Payee{PayeeID: "office-depot", CompanyID: companyID, Name: "Office Depot"}))
}

func (s *LedgerServicesTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *LedgerServicesTestSuite) importRow(row dto.ImportStagingRowRequest) domain.ImportedTransaction {
	rows, err := s.svc.Staging.ImportStaging(s.ctx, companyID, dto.ImportStagingRequest{Rows: []dto.ImportStagingRowRequest{row}})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	return rows[0]
}

func officeDepotRow() dto.ImportStagingRowRequest {
	return dto.ImportStagingRowRequest{
		Date:            txDate,
		Description:     "Office Depot",
		Spent:           amt("50.00"),
		SourceAccountID: "checking",
	}
}

type lineTuple struct {
	Account string
	Debit   string
	Credit  string
}

func (s *LedgerServicesTestSuite) linesOf(transactionID string) []lineTuple {
	lines, err := s.repos.JournalRepo.ListLinesByTransaction(s.ctx, companyID, transactionID)
	s.Require().NoError(err)
	out := make([]lineTuple, len(lines))
	for i, l := range lines {
		out[i] = lineTuple{Account: l.AccountID, Debit: l.Debit.String(), Credit: l.Credit.String()}
	}
	return out
}

func (s *LedgerServicesTestSuite) stagingCount() int {
	rows, err := s.svc.Staging.ListStaging(s.ctx, companyID)
	s.Require().NoError(err)
	return len(rows)
}

// --- moveOne ---

func (s *LedgerServicesTestSuite) TestMoveOne_SimpleSpend() {
	row := s.importRow(officeDepotRow())

	tx, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID:              row.ImportedID,
		SelectedCategoryID:      "office-supplies",
		CorrespondingCategoryID: "checking",
		PayeeID:                 "office-depot",
	})
	s.Require().NoError(err)
	s.Equal(row.ImportedID, tx.ImportedID)
	s.Equal(txDate, tx.Date)
	s.Equal("office-depot", tx.PayeeID)
	s.Equal(fixedNow, tx.CreatedAt)

	s.Equal([]lineTuple{
		{Account: "office-supplies", Debit: "50.00", Credit: "0.00"},
		{Account: "checking", Debit: "0.00", Credit: "50.00"},
	}, s.linesOf(tx.TransactionID))
	s.Zero(s.stagingCount())

	stored, err := s.svc.Transactions.GetTransaction(s.ctx, companyID, tx.TransactionID)
	s.Require().NoError(err)
	s.Equal("office-supplies", stored.SelectedCategoryID())
}

func (s *LedgerServicesTestSuite) TestMoveOne_SplitSpend() {
	row := s.importRow(officeDepotRow())

	tx, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID:              row.ImportedID,
		CorrespondingCategoryID: "checking",
		SplitAllocation: []dto.SplitAllocationRequest{
			{CategoryID: "office-supplies", Spent: amt("30.00")},
			{CategoryID: "software", Spent: amt("20.00")},
		},
	})
	s.Require().NoError(err)
	s.Equal([]lineTuple{
		{Account: "office-supplies", Debit: "30.00", Credit: "0.00"},
		{Account: "software", Debit: "20.00", Credit: "0.00"},
		{Account: "checking", Debit: "0.00", Credit: "50.00"},
	}, s.linesOf(tx.TransactionID))
}

func (s *LedgerServicesTestSuite) TestMoveOne_SimpleReceive() {
	row := s.importRow(dto.ImportStagingRowRequest{
		Date:            txDate,
		Description:     "Client payment",
		Received:        amt("1000.00"),
		SourceAccountID: "checking",
	})

	tx, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID:              row.ImportedID,
		SelectedCategoryID:      "revenue",
		CorrespondingCategoryID: "checking",
	})
	s.Require().NoError(err)
	s.Equal([]lineTuple{
		{Account: "revenue", Debit: "0.00", Credit: "1000.00"},
		{Account: "checking", Debit: "1000.00", Credit: "0.00"},
	}, s.linesOf(tx.TransactionID))
}

func (s *LedgerServicesTestSuite) TestMoveOne_SplitMismatchLeavesStagingUntouched() {
	row := s.importRow(officeDepotRow())

	_, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID:              row.ImportedID,
		CorrespondingCategoryID: "checking",
		SplitAllocation: []dto.SplitAllocationRequest{
			{CategoryID: "office-supplies", Spent: amt("30.00")},
			{CategoryID: "software", Spent: amt("15.00")},
		},
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(1, s.stagingCount())

	txs, err := s.svc.Transactions.ListTransactions(s.ctx, companyID)
	s.Require().NoError(err)
	s.Empty(txs)
}

func (s *LedgerServicesTestSuite) TestMoveOne_UsesStagedSplitWhenRequestHasNone() {
	row := officeDepotRow()
	row.SplitAllocation = []dto.SplitAllocationRequest{
		{CategoryID: "equipment", Spent: amt("80.00")},
		{CategoryID: "office-supplies", Received: amt("30.00")},
	}
	staged := s.importRow(row)

	tx, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID:              staged.ImportedID,
		CorrespondingCategoryID: "checking",
	})
	s.Require().NoError(err)
	s.Len(tx.Split(), 2)
	s.Equal([]lineTuple{
		{Account: "equipment", Debit: "80.00", Credit: "0.00"},
		{Account: "office-supplies", Debit: "0.00", Credit: "30.00"},
		{Account: "checking", Debit: "0.00", Credit: "50.00"},
	}, s.linesOf(tx.TransactionID))
}

func (s *LedgerServicesTestSuite) TestMoveOne_Rejections() {
	row := s.importRow(officeDepotRow())

	_, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID: "nope", SelectedCategoryID: "office-supplies", CorrespondingCategoryID: "checking",
	})
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID: row.ImportedID, SelectedCategoryID: "foreign", CorrespondingCategoryID: "checking",
	})
	s.ErrorIs(err, apperrors.ErrInvalidReference, "accounts of another company are not visible")

	_, err = s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID: row.ImportedID, SelectedCategoryID: "office-supplies", CorrespondingCategoryID: "checking", PayeeID: "ghost",
	})
	s.ErrorIs(err, apperrors.ErrInvalidReference)

	_, err = s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID: row.ImportedID, CorrespondingCategoryID: "checking",
	})
	s.ErrorIs(err, apperrors.ErrValidation, "neither a category nor a split")

	_, err = s.svc.Confirmation.MoveOne(s.ctx, "co-2", dto.MoveRequest{
		ImportedID: row.ImportedID, SelectedCategoryID: "foreign", CorrespondingCategoryID: "foreign",
	})
	s.ErrorIs(err, apperrors.ErrNotFound, "staging rows are company scoped")

	s.Equal(1, s.stagingCount())
}

func (s *LedgerServicesTestSuite) TestMoveOne_SecondMoveOfSameRowFails() {
	row := s.importRow(officeDepotRow())
	req := dto.MoveRequest{ImportedID: row.ImportedID, SelectedCategoryID: "office-supplies", CorrespondingCategoryID: "checking"}

	_, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, req)
	s.Require().NoError(err)
	_, err = s.svc.Confirmation.MoveOne(s.ctx, companyID, req)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServicesTestSuite) TestMoveOne_ConcurrentMovesConfirmOnce() {
	row := s.importRow(officeDepotRow())
	req := dto.MoveRequest{ImportedID: row.ImportedID, SelectedCategoryID: "office-supplies", CorrespondingCategoryID: "checking"}

	const movers = 8
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		notFound  atomic.Int32
	)
	for range movers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, req)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, apperrors.ErrNotFound):
				notFound.Add(1)
			}
		}()
	}
	wg.Wait()

	s.EqualValues(1, succeeded.Load())
	s.EqualValues(movers-1, notFound.Load())

	txs, err := s.svc.Transactions.ListTransactions(s.ctx, companyID)
	s.Require().NoError(err)
	s.Len(txs, 1)
	lines, err := s.repos.JournalRepo.ListLines(s.ctx, companyID, domain.JournalFilter{})
	s.Require().NoError(err)
	s.Len(lines, 2)
}

// failingJournalUoW fails every journal write made inside a unit of work.
type failingJournalUoW struct {
	inner portsrepo.UnitOfWork
}

type failingJournal struct {
	portsrepo.JournalRepositoryFacade
}

func (failingJournal) SaveLines(context.Context, []domain.JournalLine) error {
	return errors.New("disk full")
}

func (u failingJournalUoW) Do(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	return u.inner.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		repos.Journal = failingJournal{repos.Journal}
		return fn(ctx, repos)
	})
}

func (s *LedgerServicesTestSuite) TestMoveOne_JournalFailureRollsBack() {
	row := s.importRow(officeDepotRow())
	mover := services.NewConfirmationService(failingJournalUoW{inner: s.repos.UnitOfWork}, s.repos.StagingRepo, s.repos.DirectoryRepo)

	_, err := mover.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID: row.ImportedID, SelectedCategoryID: "office-supplies", CorrespondingCategoryID: "checking",
	})
	s.ErrorIs(err, apperrors.ErrPersistence)

	s.Equal(1, s.stagingCount(), "staging row restored")
	txs, err := s.svc.Transactions.ListTransactions(s.ctx, companyID)
	s.Require().NoError(err)
	s.Empty(txs, "no confirmed transaction survives the rollback")
}

// --- moveMany ---

func (s *LedgerServicesTestSuite) TestMoveMany_AllOrNothing() {
	a := s.importRow(officeDepotRow())
	b := s.importRow(dto.ImportStagingRowRequest{Date: txDate, Description: "Client", Received: amt("10.00"), SourceAccountID: "checking"})

	_, err := s.svc.Confirmation.MoveMany(s.ctx, companyID, dto.MoveManyRequest{Moves: []dto.MoveRequest{
		{ImportedID: a.ImportedID, SelectedCategoryID: "office-supplies", CorrespondingCategoryID: "checking"},
		{ImportedID: "missing", SelectedCategoryID: "revenue", CorrespondingCategoryID: "checking"},
	}})
	var conflict *apperrors.ConflictError
	s.Require().ErrorAs(err, &conflict)
	s.Equal([]string{"missing"}, conflict.MissingIDs)
	s.Equal(2, s.stagingCount())

	_, err = s.svc.Confirmation.MoveMany(s.ctx, companyID, dto.MoveManyRequest{Moves: []dto.MoveRequest{
		{ImportedID: a.ImportedID, SelectedCategoryID: "office-supplies", CorrespondingCategoryID: "checking"},
		{ImportedID: b.ImportedID, SelectedCategoryID: "ghost", CorrespondingCategoryID: "checking"},
	}})
	s.ErrorIs(err, apperrors.ErrInvalidReference)
	s.Equal(2, s.stagingCount())

	confirmed, err := s.svc.Confirmation.MoveMany(s.ctx, companyID, dto.MoveManyRequest{Moves: []dto.MoveRequest{
		{ImportedID: a.ImportedID, SelectedCategoryID: "office-supplies", CorrespondingCategoryID: "checking"},
		{ImportedID: b.ImportedID, SelectedCategoryID: "revenue", CorrespondingCategoryID: "checking"},
	}})
	s.Require().NoError(err)
	s.Len(confirmed, 2)
	s.Zero(s.stagingCount())

	lines, err := s.repos.JournalRepo.ListLines(s.ctx, companyID, domain.JournalFilter{})
	s.Require().NoError(err)
	s.Len(lines, 4)
}

func (s *LedgerServicesTestSuite) TestMoveMany_RejectsDuplicatesAndEmpty() {
	a := s.importRow(officeDepotRow())

	_, err := s.svc.Confirmation.MoveMany(s.ctx, companyID, dto.MoveManyRequest{})
	s.ErrorIs(err, apperrors.ErrValidation)

	move := dto.MoveRequest{ImportedID: a.ImportedID, SelectedCategoryID: "office-supplies", CorrespondingCategoryID: "checking"}
	_, err = s.svc.Confirmation.MoveMany(s.ctx, companyID, dto.MoveManyRequest{Moves: []dto.MoveRequest{move, move}})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(1, s.stagingCount())
}

// --- edit / undo / delete ---

func (s *LedgerServicesTestSuite) moveOfficeDepot() *domain.ConfirmedTransaction {
	row := s.importRow(officeDepotRow())
	tx, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID: row.ImportedID, SelectedCategoryID: "office-supplies", CorrespondingCategoryID: "checking",
	})
	s.Require().NoError(err)
	return tx
}

func (s *LedgerServicesTestSuite) TestEditCategorization_ReplacesLines() {
	tx := s.moveOfficeDepot()

	edited, err := s.svc.Transactions.EditCategorization(s.ctx, companyID, tx.TransactionID, dto.EditCategorizationRequest{
		SplitAllocation: []dto.SplitAllocationRequest{
			{CategoryID: "office-supplies", Spent: amt("10.00")},
			{CategoryID: "software", Spent: amt("40.00")},
		},
	})
	s.Require().NoError(err)
	s.True(edited.Spent.Equal(amt("50")), "amounts are preserved")
	s.Equal([]lineTuple{
		{Account: "office-supplies", Debit: "10.00", Credit: "0.00"},
		{Account: "software", Debit: "40.00", Credit: "0.00"},
		{Account: "checking", Debit: "0.00", Credit: "50.00"},
	}, s.linesOf(tx.TransactionID))

	_, err = s.svc.Transactions.EditCategorization(s.ctx, companyID, tx.TransactionID, dto.EditCategorizationRequest{
		SelectedCategoryID: "ghost",
	})
	s.ErrorIs(err, apperrors.ErrInvalidReference)
	s.Len(s.linesOf(tx.TransactionID), 3, "rejected edit leaves lines alone")

	_, err = s.svc.Transactions.EditCategorization(s.ctx, companyID, "missing", dto.EditCategorizationRequest{SelectedCategoryID: "software"})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServicesTestSuite) TestEditCategorization_SplitBackToSimple() {
	tx := s.moveOfficeDepot()
	_, err := s.svc.Transactions.EditCategorization(s.ctx, companyID, tx.TransactionID, dto.EditCategorizationRequest{
		SplitAllocation: []dto.SplitAllocationRequest{
			{CategoryID: "office-supplies", Spent: amt("10.00")},
			{CategoryID: "software", Spent: amt("40.00")},
		},
	})
	s.Require().NoError(err)

	edited, err := s.svc.Transactions.EditCategorization(s.ctx, companyID, tx.TransactionID, dto.EditCategorizationRequest{
		SelectedCategoryID: "software",
	})
	s.Require().NoError(err)
	s.Equal("software", edited.SelectedCategoryID())
	s.Nil(edited.Split())
	s.Equal([]lineTuple{
		{Account: "software", Debit: "50.00", Credit: "0.00"},
		{Account: "checking", Debit: "0.00", Credit: "50.00"},
	}, s.linesOf(tx.TransactionID))

	stored, err := s.svc.Transactions.GetTransaction(s.ctx, companyID, tx.TransactionID)
	s.Require().NoError(err)
	s.Equal("software", stored.SelectedCategoryID())
	s.Nil(stored.Split())
}

func (s *LedgerServicesTestSuite) TestEditCategorization_ChangesCorrespondingAccount() {
	tx := s.moveOfficeDepot()
	savings := "savings"

	edited, err := s.svc.Transactions.EditCategorization(s.ctx, companyID, tx.TransactionID, dto.EditCategorizationRequest{
		SelectedCategoryID:      "office-supplies",
		CorrespondingCategoryID: &savings,
	})
	s.Require().NoError(err)
	s.Equal("savings", edited.CorrespondingCategoryID)
	s.Equal([]lineTuple{
		{Account: "office-supplies", Debit: "50.00", Credit: "0.00"},
		{Account: "savings", Debit: "0.00", Credit: "50.00"},
	}, s.linesOf(tx.TransactionID))

	tb, err := s.svc.Reporting.TrialBalance(s.ctx, companyID, txDate)
	s.Require().NoError(err)
	for _, r := range tb.Rows {
		s.NotEqual("checking", r.AccountID, "old corresponding account keeps no lines")
	}

	cleared := ""
	_, err = s.svc.Transactions.EditCategorization(s.ctx, companyID, tx.TransactionID, dto.EditCategorizationRequest{
		SelectedCategoryID:      "office-supplies",
		CorrespondingCategoryID: &cleared,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	ghost := "ghost"
	_, err = s.svc.Transactions.EditCategorization(s.ctx, companyID, tx.TransactionID, dto.EditCategorizationRequest{
		SelectedCategoryID:      "office-supplies",
		CorrespondingCategoryID: &ghost,
	})
	s.ErrorIs(err, apperrors.ErrInvalidReference)
	s.Equal("savings", s.linesOf(tx.TransactionID)[1].Account, "rejected edit leaves lines alone")
}

func (s *LedgerServicesTestSuite) TestUndo_RoundTrip() {
	row := officeDepotRow()
	row.SplitAllocation = []dto.SplitAllocationRequest{
		{CategoryID: "office-supplies", Spent: amt("30.00")},
		{CategoryID: "software", Spent: amt("20.00")},
	}
	staged := s.importRow(row)
	tx, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{ImportedID: staged.ImportedID, CorrespondingCategoryID: "checking"})
	s.Require().NoError(err)

	back, err := s.svc.Transactions.UndoTransaction(s.ctx, companyID, tx.TransactionID)
	s.Require().NoError(err)
	s.NotEqual(staged.ImportedID, back.ImportedID)
	s.Equal(staged.Date, back.Date)
	s.Equal(staged.Description, back.Description)
	s.True(staged.Spent.Equal(back.Spent))
	s.Len(back.SplitAllocation, 2)

	s.Empty(s.linesOf(tx.TransactionID))
	_, err = s.svc.Transactions.GetTransaction(s.ctx, companyID, tx.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.svc.Transactions.UndoTransaction(s.ctx, companyID, tx.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	again, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{ImportedID: back.ImportedID, CorrespondingCategoryID: "checking"})
	s.Require().NoError(err)
	s.Len(s.linesOf(again.TransactionID), 3)
}

func (s *LedgerServicesTestSuite) TestDeleteTransaction() {
	tx := s.moveOfficeDepot()

	s.Require().NoError(s.svc.Transactions.DeleteTransaction(s.ctx, companyID, tx.TransactionID))
	s.Empty(s.linesOf(tx.TransactionID))
	s.Zero(s.stagingCount(), "delete does not return the row to staging")
	s.ErrorIs(s.svc.Transactions.DeleteTransaction(s.ctx, companyID, tx.TransactionID), apperrors.ErrNotFound)
}

// --- resync / verify ---

func (s *LedgerServicesTestSuite) TestResync_NoTransactions() {
	_, err := s.svc.Journal.ResyncJournal(s.ctx, companyID)
	s.ErrorIs(err, apperrors.ErrNoTransactions)
}

func (s *LedgerServicesTestSuite) TestResync_RepairsDriftAndIsIdempotent() {
	tx := s.moveOfficeDepot()
	other := s.moveOfficeDepot()

	// simulate drift: one transaction loses its lines, and a stray line appears
	_, err := s.repos.JournalRepo.DeleteLinesByTransaction(s.ctx, companyID, tx.TransactionID)
	s.Require().NoError(err)
	s.Require().NoError(s.repos.JournalRepo.SaveLines(s.ctx, []domain.JournalLine{{
		LineID: "stray", TransactionID: "orphan", CompanyID: companyID, LineNo: 1, Date: txDate,
		AccountID: "checking", Debit: amt("1.00"),
	}}))

	report, err := s.svc.Journal.VerifyJournal(s.ctx, companyID)
	s.Require().NoError(err)
	s.Equal(2, report.TransactionsScanned)
	s.Require().Len(report.Drift, 2)
	s.Equal(tx.TransactionID, report.Drift[0].TransactionID)
	s.Equal("orphan", report.Drift[1].TransactionID)

	first, err := s.svc.Journal.ResyncJournal(s.ctx, companyID)
	s.Require().NoError(err)
	s.Equal(2, first.Transactions)
	s.EqualValues(3, first.LinesDeleted)
	s.Equal(4, first.LinesInserted)

	report, err = s.svc.Journal.VerifyJournal(s.ctx, companyID)
	s.Require().NoError(err)
	s.Empty(report.Drift)

	before := append(s.linesOf(tx.TransactionID), s.linesOf(other.TransactionID)...)
	second, err := s.svc.Journal.ResyncJournal(s.ctx, companyID)
	s.Require().NoError(err)
	s.EqualValues(4, second.LinesDeleted)
	s.Equal(before, append(s.linesOf(tx.TransactionID), s.linesOf(other.TransactionID)...))
}

func (s *LedgerServicesTestSuite) TestResync_FailureKeepsPreviousJournal() {
	s.moveOfficeDepot()
	journal := services.NewJournalService(failingJournalUoW{inner: s.repos.UnitOfWork}, s.repos.TransactionRepo, s.repos.JournalRepo)

	_, err := journal.ResyncJournal(s.ctx, companyID)
	s.ErrorIs(err, apperrors.ErrPersistence)

	lines, err := s.repos.JournalRepo.ListLines(s.ctx, companyID, domain.JournalFilter{})
	s.Require().NoError(err)
	s.Len(lines, 2)
}

// --- journal stream ---

func (s *LedgerServicesTestSuite) TestListJournalLines_PagesAndFilters() {
	for range 3 {
		s.moveOfficeDepot()
	}

	var all []domain.JournalLine
	params := dto.ListJournalLinesParams{Limit: 4}
	for {
		page, err := s.svc.Journal.ListJournalLines(s.ctx, companyID, params)
		s.Require().NoError(err)
		all = append(all, page.Lines...)
		if page.Next == nil {
			break
		}
		resp := dto.ToListJournalLinesResponse(page)
		s.Require().NotEmpty(resp.NextToken)
		params.NextToken = resp.NextToken
	}
	s.Len(all, 6)

	later := txDate.AddDate(0, 0, 1)
	page, err := s.svc.Journal.ListJournalLines(s.ctx, companyID, dto.ListJournalLinesParams{From: &later})
	s.Require().NoError(err)
	s.Empty(page.Lines)

	_, err = s.svc.Journal.ListJournalLines(s.ctx, companyID, dto.ListJournalLinesParams{From: &later, To: &txDate})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Journal.ListJournalLines(s.ctx, companyID, dto.ListJournalLinesParams{NextToken: "%%%"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- staging ---

func (s *LedgerServicesTestSuite) TestImportStaging_ValidatesEveryRow() {
	_, err := s.svc.Staging.ImportStaging(s.ctx, companyID, dto.ImportStagingRequest{Rows: []dto.ImportStagingRowRequest{
		officeDepotRow(),
		{Date: txDate, Description: "both sides", Spent: amt("1"), Received: amt("1"), SourceAccountID: "checking"},
		{Date: txDate, Description: "neither side", SourceAccountID: "checking"},
	}})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "row 1")
	s.Contains(err.Error(), "row 2")
	s.Zero(s.stagingCount(), "nothing is saved when any row is invalid")
}

func (s *LedgerServicesTestSuite) TestImportStaging_KeepsCallerCalendarDate() {
	row := officeDepotRow()
	row.Date = time.Date(2024, 3, 1, 22, 0, 0, 0, time.FixedZone("EST", -5*3600))

	imported := s.importRow(row)
	s.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), imported.Date)
}

func (s *LedgerServicesTestSuite) TestDeleteStaging_IsIdempotent() {
	a := s.importRow(officeDepotRow())
	b := s.importRow(officeDepotRow())

	s.Require().NoError(s.svc.Staging.DeleteStaging(s.ctx, companyID, a.ImportedID))
	s.Require().NoError(s.svc.Staging.DeleteStaging(s.ctx, companyID, a.ImportedID))

	n, err := s.svc.Staging.DeleteStagingMany(s.ctx, companyID, []string{a.ImportedID, b.ImportedID})
	s.Require().NoError(err)
	s.EqualValues(1, n)
	s.Zero(s.stagingCount())
}

// --- reporting ---

func (s *LedgerServicesTestSuite) TestTrialBalance() {
	s.moveOfficeDepot()
	row := s.importRow(dto.ImportStagingRowRequest{Date: txDate, Description: "Client", Received: amt("200.00"), SourceAccountID: "checking"})
	_, err := s.svc.Confirmation.MoveOne(s.ctx, companyID, dto.MoveRequest{
		ImportedID: row.ImportedID, SelectedCategoryID: "revenue", CorrespondingCategoryID: "checking",
	})
	s.Require().NoError(err)

	tb, err := s.svc.Reporting.TrialBalance(s.ctx, companyID, txDate)
	s.Require().NoError(err)
	s.Equal("250.00", tb.TotalDebit.String())
	s.Equal("250.00", tb.TotalCredit.String())

	balances := map[string]string{}
	for _, r := range tb.Rows {
		balances[r.AccountID] = r.Balance.String()
	}
	s.Equal(map[string]string{
		"checking":        "150.00",
		"revenue":         "200.00",
		"office-supplies": "50.00",
	}, balances)

	early, err := s.svc.Reporting.TrialBalance(s.ctx, companyID, txDate.AddDate(0, 0, -1))
	s.Require().NoError(err)
	s.Empty(early.Rows)
}
