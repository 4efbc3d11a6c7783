package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tablestack/resto_ledger_app/internal/apperrors"
	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	portsrepo "github.com/tablestack/resto_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tablestack/resto_ledger_app/internal/core/ports/services"
	"github.com/tablestack/resto_ledger_app/internal/dto"
	"github.com/tablestack/resto_ledger_app/internal/utils/accounting"
)

// balanceTolerance is the largest absolute difference between debit and
// credit totals that still counts as balanced. Amounts are entered with two
// decimal places, so anything above a cent is a real imbalance.
var balanceTolerance = decimal.NewFromFloat(0.01)

var (
	// ErrEntryMinLines rejects entries with fewer than two lines.
	ErrEntryMinLines = fmt.Errorf("%w: journal entry requires at least two lines", apperrors.ErrValidation)
	// ErrMissingAccountReference rejects lines that name no account at all.
	ErrMissingAccountReference = fmt.Errorf("%w: journal line must reference an account by id or name", apperrors.ErrValidation)
	// ErrUnbalancedEntry rejects entries whose debit and credit totals differ
	// by more than the tolerance.
	ErrUnbalancedEntry = fmt.Errorf("%w: journal entry debits and credits do not balance", apperrors.ErrValidation)
	// ErrAccountNotFound rejects references to accounts that do not exist
	// within the outlet.
	ErrAccountNotFound = fmt.Errorf("%w: account not found", apperrors.ErrNotFound)
	// ErrAccountInactive rejects postings to deactivated accounts.
	ErrAccountInactive = fmt.Errorf("%w: account is inactive", apperrors.ErrValidation)
)

type ledgerService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// NewLedgerService creates the journal posting service.
func NewLedgerService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// PostEntry runs the full posting pipeline: structural validation, the
// balance check, account resolution, and the atomic save of the entry with
// its balance deltas. No write happens until every check has passed.
func (s *ledgerService) PostEntry(ctx context.Context, outletID string, req dto.PostEntryRequest) (domain.JournalEntry, error) {
	logger := s.GetLogger(ctx)

	if len(req.Lines) < 2 {
		return domain.JournalEntry{}, ErrEntryMinLines
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range req.Lines {
		if line.AccountRef().IsZero() {
			return domain.JournalEntry{}, fmt.Errorf("line %d: %w", i+1, ErrMissingAccountReference)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return domain.JournalEntry{}, fmt.Errorf("%w: line %d: amounts must not be negative", apperrors.ErrValidation, i+1)
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(balanceTolerance) {
		return domain.JournalEntry{}, fmt.Errorf("%w: debit total %s != credit total %s",
			ErrUnbalancedEntry, totalDebit.String(), totalCredit.String())
	}

	accounts, err := s.resolveAccounts(ctx, outletID, req.Lines)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	balanceChanges := make(map[string]decimal.Decimal, len(accounts))
	now := time.Now().UTC()
	entryDate := now
	if req.Date != nil {
		entryDate = req.Date.UTC()
	}

	entry := domain.JournalEntry{
		EntryID:       uuid.NewString(),
		OutletID:      outletID,
		EntryDate:     entryDate,
		Description:   req.Description,
		ReferenceID:   req.ReferenceID,
		ReferenceType: req.ReferenceType,
		CreatedAt:     now,
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		account := accounts[i]
		description := lineReq.Description
		if description == "" {
			description = req.Description
		}
		line := domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entry.EntryID,
			AccountID:   account.AccountID,
			Debit:       lineReq.Debit,
			Credit:      lineReq.Credit,
			Description: description,
			CreatedAt:   now,
		}
		delta, err := accounting.SignedDelta(line, account.AccountType)
		if err != nil {
			return domain.JournalEntry{}, fmt.Errorf("%w: %s", apperrors.ErrInternal, err)
		}
		balanceChanges[account.AccountID] = balanceChanges[account.AccountID].Add(delta)
		lines[i] = line
	}
	entry.Lines = lines

	if err := s.journalRepo.SaveEntry(ctx, entry, lines, balanceChanges); err != nil {
		s.LogError(ctx, "failed to save journal entry", "error", err, "outletId", outletID)
		return domain.JournalEntry{}, err
	}

	logger.InfoContext(ctx, "journal entry posted",
		"entryId", entry.EntryID,
		"outletId", outletID,
		"lineCount", len(lines),
	)
	return entry, nil
}

// resolveAccounts maps each request line to its account. Lines referencing
// the same account share one lookup. Accounts outside the outlet are treated
// as not found rather than leaked across tenants.
func (s *ledgerService) resolveAccounts(ctx context.Context, outletID string, lines []dto.EntryLineRequest) ([]domain.Account, error) {
	var ids []string
	for _, line := range lines {
		if id, ok := line.AccountRef().ID(); ok {
			ids = append(ids, id)
		}
	}

	byID := make(map[string]domain.Account)
	if len(ids) > 0 {
		found, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(ids))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch accounts: %w", err)
		}
		byID = found
	}

	byName := make(map[string]domain.Account)
	resolved := make([]domain.Account, len(lines))
	for i, line := range lines {
		ref := line.AccountRef()
		if id, ok := ref.ID(); ok {
			account, ok := byID[id]
			if !ok || account.OutletID != outletID {
				return nil, fmt.Errorf("%w: id %s", ErrAccountNotFound, id)
			}
			if !account.IsActive {
				return nil, fmt.Errorf("%w: id %s", ErrAccountInactive, id)
			}
			resolved[i] = account
			continue
		}

		name, _ := ref.Name()
		account, ok := byName[name]
		if !ok {
			fetched, err := s.accountRepo.FindAccountByName(ctx, outletID, name)
			if err != nil {
				if apperrors.IsNotFound(err) {
					return nil, fmt.Errorf("%w: name %q", ErrAccountNotFound, name)
				}
				return nil, fmt.Errorf("failed to fetch account %q: %w", name, err)
			}
			byName[name] = fetched
			account = fetched
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: name %q", ErrAccountInactive, name)
		}
		resolved[i] = account
	}
	return resolved, nil
}

func (s *ledgerService) GetEntry(ctx context.Context, outletID string, entryID string) (domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	if entry.OutletID != outletID {
		return domain.JournalEntry{}, apperrors.NewNotFoundError(fmt.Sprintf("journal entry %s not found", entryID))
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	entry.Lines = lines
	return entry, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, outletID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.journalRepo.ListEntriesByOutlet(ctx, outletID, limit, nextToken)
}

func (s *ledgerService) ListLinesByAccount(ctx context.Context, outletID string, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: id %s", ErrAccountNotFound, accountID)
		}
		return nil, nil, err
	}
	if account.OutletID != outletID {
		return nil, nil, fmt.Errorf("%w: id %s", ErrAccountNotFound, accountID)
	}
	return s.journalRepo.ListLinesByAccountID(ctx, outletID, accountID, limit, nextToken)
}

// ReverseEntry posts a compensating entry with every line's debit and credit
// swapped. The original entry stays immutable; the reversal references it
// through referenceId and referenceType.
func (s *ledgerService) ReverseEntry(ctx context.Context, outletID string, entryID string) (domain.JournalEntry, error) {
	original, err := s.GetEntry(ctx, outletID, entryID)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	reqLines := make([]dto.EntryLineRequest, len(original.Lines))
	for i, line := range original.Lines {
		reqLines[i] = dto.EntryLineRequest{
			AccountID:   line.AccountID,
			Debit:       line.Credit,
			Credit:      line.Debit,
			Description: line.Description,
		}
	}

	req := dto.PostEntryRequest{
		Description:   fmt.Sprintf("Reversal of: %s", original.Description),
		ReferenceID:   original.EntryID,
		ReferenceType: domain.ReferenceTypeReversal,
		Lines:         reqLines,
	}
	return s.PostEntry(ctx, outletID, req)
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
