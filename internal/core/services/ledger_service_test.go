package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tablestack/resto_ledger_app/internal/apperrors"
	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	portsrepo "github.com/tablestack/resto_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tablestack/resto_ledger_app/internal/core/ports/services"
	"github.com/tablestack/resto_ledger_app/internal/core/services"
	"github.com/tablestack/resto_ledger_app/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepository = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, entry, lines, balanceChanges)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	return args.Get(0).(domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByOutlet(ctx context.Context, outletID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, outletID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		t := args.Get(1).(string)
		token = &t
	}
	return args.Get(0).([]domain.JournalEntry), token, args.Error(2)
}

func (m *MockJournalRepository) ListLinesByAccountID(ctx context.Context, outletID string, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	args := m.Called(ctx, outletID, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		t := args.Get(1).(string)
		token = &t
	}
	return args.Get(0).([]domain.JournalLine), token, args.Error(2)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (domain.Account, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, outletID string, name string) (domain.Account, error) {
	args := m.Called(ctx, outletID, name)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, outletID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, outletID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, deactivatedAt time.Time) error {
	args := m.Called(ctx, accountID, deactivatedAt)
	return args.Error(0)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockJournalRepo  *MockJournalRepository
	mockAccountRepo  *MockAccountRepository
	service          portssvc.LedgerSvcFacade
	outletID         string
	cashAccount      domain.Account
	payableAccount   domain.Account
	revenueAccount   domain.Account
	expenseAccount   domain.Account
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.mockJournalRepo, suite.mockAccountRepo)

	suite.outletID = uuid.NewString()

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		OutletID:    suite.outletID,
		Name:        "Cash on Hand",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.payableAccount = domain.Account{
		AccountID:   uuid.NewString(),
		OutletID:    suite.outletID,
		Name:        "Accounts Payable",
		AccountType: domain.Liability,
		IsActive:    true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:   uuid.NewString(),
		OutletID:    suite.outletID,
		Name:        "Sales Revenue",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
	suite.expenseAccount = domain.Account{
		AccountID:   uuid.NewString(),
		OutletID:    suite.outletID,
		Name:        "Cost of Goods Sold",
		AccountType: domain.Expense,
		IsActive:    true,
	}
}

func (suite *LedgerServiceTestSuite) accountsByID(accounts ...domain.Account) map[string]domain.Account {
	m := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		m[a.AccountID] = a
	}
	return m
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		Description: "Daily cash sales",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{suite.cashAccount.AccountID, suite.revenueAccount.AccountID}).
		Return(suite.accountsByID(suite.cashAccount, suite.revenueAccount), nil).Once()

	var capturedChanges map[string]decimal.Decimal
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), mock.AnythingOfType("map[string]decimal.Decimal")).
		Run(func(args mock.Arguments) {
			capturedChanges = args.Get(3).(map[string]decimal.Decimal)
		}).
		Return(nil).Once()

	entry, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(suite.outletID, entry.OutletID)
	suite.Equal(req.Description, entry.Description)
	suite.Len(entry.Lines, 2)
	suite.Equal(suite.cashAccount.AccountID, entry.Lines[0].AccountID)

	// Asset debited 100 goes up by 100, revenue credited 100 goes up by 100.
	suite.True(capturedChanges[suite.cashAccount.AccountID].Equal(decimal.NewFromInt(100)))
	suite.True(capturedChanges[suite.revenueAccount.AccountID].Equal(decimal.NewFromInt(100)))

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		Description: "Broken entry",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(90)},
		},
	}

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnbalancedEntry)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_WithinTolerance() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		Description: "Rounding residue",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromFloat(100.00)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromFloat(99.995)},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.cashAccount, suite.revenueAccount), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostEntry_JustOverTolerance() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		Description: "Off by more than a cent",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromFloat(100.00)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromFloat(99.98)},
		},
	}

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnbalancedEntry)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_TooFewLines() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		Description: "Single line",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
		},
	}

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryMinLines)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_MissingAccountReference() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		Description: "No account on second line",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(50)},
			{Credit: decimal.NewFromInt(50)},
		},
	}

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrMissingAccountReference)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_NegativeAmount() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		Description: "Negative debit",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(-50)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(-50)},
		},
	}

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_ResolvesAccountsByName() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		Description: "Name references",
		Lines: []dto.EntryLineRequest{
			{AccountName: "Cash on Hand", Debit: decimal.NewFromInt(75)},
			{AccountName: "Sales Revenue", Credit: decimal.NewFromInt(75)},
		},
	}

	suite.mockAccountRepo.On("FindAccountByName", ctx, suite.outletID, "Cash on Hand").Return(suite.cashAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByName", ctx, suite.outletID, "Sales Revenue").Return(suite.revenueAccount, nil).Once()

	var capturedLines []domain.JournalLine
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedLines = args.Get(2).([]domain.JournalLine)
		}).
		Return(nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().NoError(err)
	suite.Require().Len(capturedLines, 2)
	// Name references resolve to the same account ids as direct id references.
	suite.Equal(suite.cashAccount.AccountID, capturedLines[0].AccountID)
	suite.Equal(suite.revenueAccount.AccountID, capturedLines[1].AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostEntry_UnknownAccountName() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		Description: "Bad name",
		Lines: []dto.EntryLineRequest{
			{AccountName: "No Such Account", Debit: decimal.NewFromInt(10)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(10)},
		},
	}

	suite.mockAccountRepo.On("FindAccountByName", ctx, suite.outletID, "No Such Account").
		Return(domain.Account{}, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_AccountFromOtherOutlet() {
	ctx := context.Background()
	foreign := suite.cashAccount
	foreign.OutletID = uuid.NewString()

	req := dto.PostEntryRequest{
		Description: "Cross tenant reference",
		Lines: []dto.EntryLineRequest{
			{AccountID: foreign.AccountID, Debit: decimal.NewFromInt(10)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(10)},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(foreign, suite.revenueAccount), nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_InactiveAccount() {
	ctx := context.Background()
	inactive := suite.cashAccount
	inactive.IsActive = false

	req := dto.PostEntryRequest{
		Description: "Posting to deactivated account",
		Lines: []dto.EntryLineRequest{
			{AccountID: inactive.AccountID, Debit: decimal.NewFromInt(10)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(10)},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(inactive, suite.revenueAccount), nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountInactive)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_SignRules() {
	ctx := context.Background()
	// Expense up 40, liability up 40, asset up 60, revenue up 60.
	req := dto.PostEntryRequest{
		Description: "Mixed account types",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.expenseAccount.AccountID, Debit: decimal.NewFromInt(40)},
			{AccountID: suite.payableAccount.AccountID, Credit: decimal.NewFromInt(40)},
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(60)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(60)},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.expenseAccount, suite.payableAccount, suite.cashAccount, suite.revenueAccount), nil).Once()

	var capturedChanges map[string]decimal.Decimal
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedChanges = args.Get(3).(map[string]decimal.Decimal)
		}).
		Return(nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().NoError(err)
	suite.True(capturedChanges[suite.expenseAccount.AccountID].Equal(decimal.NewFromInt(40)))
	suite.True(capturedChanges[suite.payableAccount.AccountID].Equal(decimal.NewFromInt(40)))
	suite.True(capturedChanges[suite.cashAccount.AccountID].Equal(decimal.NewFromInt(60)))
	suite.True(capturedChanges[suite.revenueAccount.AccountID].Equal(decimal.NewFromInt(60)))
}

func (suite *LedgerServiceTestSuite) TestPostEntry_DebitedLiabilityGoesDown() {
	ctx := context.Background()
	// Paying a supplier: liability down 40, asset down 40.
	req := dto.PostEntryRequest{
		Description: "Supplier payment",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.payableAccount.AccountID, Debit: decimal.NewFromInt(40)},
			{AccountID: suite.cashAccount.AccountID, Credit: decimal.NewFromInt(40)},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.payableAccount, suite.cashAccount), nil).Once()

	var capturedChanges map[string]decimal.Decimal
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedChanges = args.Get(3).(map[string]decimal.Decimal)
		}).
		Return(nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().NoError(err)
	suite.True(capturedChanges[suite.payableAccount.AccountID].Equal(decimal.NewFromInt(-40)))
	suite.True(capturedChanges[suite.cashAccount.AccountID].Equal(decimal.NewFromInt(-40)))
}

func (suite *LedgerServiceTestSuite) TestPostEntry_SaveFailurePropagates() {
	ctx := context.Background()
	req := dto.PostEntryRequest{
		Description: "Save fails",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(10)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(10)},
		},
	}

	saveErr := apperrors.NewAppError(500, "db down", apperrors.ErrInternal)
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.cashAccount, suite.revenueAccount), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(saveErr).Once()

	_, err := suite.service.PostEntry(ctx, suite.outletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInternal)
}

func (suite *LedgerServiceTestSuite) TestGetEntry_WrongOutlet() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		EntryID:  entryID,
		OutletID: uuid.NewString(),
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()

	_, err := suite.service.GetEntry(ctx, suite.outletID, entryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestReverseEntry_SwapsDebitAndCredit() {
	ctx := context.Background()
	entryID := uuid.NewString()
	original := domain.JournalEntry{
		EntryID:     entryID,
		OutletID:    suite.outletID,
		Description: "Daily cash sales",
	}
	originalLines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(originalLines, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.cashAccount, suite.revenueAccount), nil).Once()

	var capturedEntry domain.JournalEntry
	var capturedLines []domain.JournalLine
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedEntry = args.Get(1).(domain.JournalEntry)
			capturedLines = args.Get(2).([]domain.JournalLine)
		}).
		Return(nil).Once()

	reversal, err := suite.service.ReverseEntry(ctx, suite.outletID, entryID)

	suite.Require().NoError(err)
	suite.NotEqual(entryID, reversal.EntryID)
	suite.Equal(entryID, capturedEntry.ReferenceID)
	suite.Equal(domain.ReferenceTypeReversal, capturedEntry.ReferenceType)
	suite.Equal("Reversal of: Daily cash sales", capturedEntry.Description)

	suite.Require().Len(capturedLines, 2)
	suite.True(capturedLines[0].Credit.Equal(decimal.NewFromInt(100)))
	suite.True(capturedLines[0].Debit.IsZero())
	suite.True(capturedLines[1].Debit.Equal(decimal.NewFromInt(100)))
	suite.True(capturedLines[1].Credit.IsZero())

	// The original entry must never be written back.
	suite.mockJournalRepo.AssertNumberOfCalls(suite.T(), "SaveEntry", 1)
}

// --- Concurrency ---

// fakeBalanceStore applies balance deltas under a mutex, imitating the
// atomic in-database increment. Concurrent postings must sum exactly.
type fakeBalanceStore struct {
	MockJournalRepository
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	saves    int
}

func (f *fakeBalanceStore) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for accountID, delta := range balanceChanges {
		f.balances[accountID] = f.balances[accountID].Add(delta)
	}
	f.saves++
	return nil
}

func (suite *LedgerServiceTestSuite) TestPostEntry_ConcurrentPostings() {
	ctx := context.Background()
	store := &fakeBalanceStore{balances: make(map[string]decimal.Decimal)}
	service := services.NewLedgerService(store, suite.mockAccountRepo)

	const workers = 20
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.cashAccount, suite.revenueAccount), nil).Times(workers)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := dto.PostEntryRequest{
				Description: "Concurrent sale",
				Lines: []dto.EntryLineRequest{
					{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(5)},
					{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(5)},
				},
			}
			_, err := service.PostEntry(ctx, suite.outletID, req)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		suite.Require().NoError(err)
	}
	suite.Equal(workers, store.saves)
	suite.True(store.balances[suite.cashAccount.AccountID].Equal(decimal.NewFromInt(5*workers)))
	suite.True(store.balances[suite.revenueAccount.AccountID].Equal(decimal.NewFromInt(5*workers)))
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
