package services

import (
	"context"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	"github.com/tablestack/resto_ledger_app/internal/dto"
)

// LedgerSvcFacade exposes journal posting and retrieval operations.
type LedgerSvcFacade interface {
	// PostEntry validates and atomically persists a balanced journal entry
	// together with the balance updates of every referenced account.
	PostEntry(ctx context.Context, outletID string, req dto.PostEntryRequest) (domain.JournalEntry, error)
	// GetEntry fetches an entry and its lines, scoped to the outlet.
	GetEntry(ctx context.Context, outletID string, entryID string) (domain.JournalEntry, error)
	// ListEntries returns one page of entries for the outlet, newest first.
	ListEntries(ctx context.Context, outletID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
	// ListLinesByAccount returns one page of lines touching the account.
	ListLinesByAccount(ctx context.Context, outletID string, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error)
	// ReverseEntry posts a compensating entry that negates the original.
	// The original entry is left untouched.
	ReverseEntry(ctx context.Context, outletID string, entryID string) (domain.JournalEntry, error)
}
