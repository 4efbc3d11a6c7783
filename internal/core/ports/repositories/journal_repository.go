package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
)

// JournalRepository defines persistence operations for journal entries and lines.
type JournalRepository interface {
	// SaveEntry atomically persists the entry, its lines and the signed balance
	// deltas for the touched accounts. Either everything commits or nothing does.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error
	// FindEntryByID fetches a single entry without its lines.
	// Returns apperrors.ErrNotFound if no such entry exists.
	FindEntryByID(ctx context.Context, entryID string) (domain.JournalEntry, error)
	// FindLinesByEntryID fetches the lines of an entry in insertion order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
	// ListEntriesByOutlet returns up to limit entries for an outlet, newest first,
	// together with a token for the next page when more entries remain.
	ListEntriesByOutlet(ctx context.Context, outletID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
	// ListLinesByAccountID returns up to limit lines touching the account, newest
	// first, together with a token for the next page when more lines remain.
	ListLinesByAccountID(ctx context.Context, outletID string, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error)
}
