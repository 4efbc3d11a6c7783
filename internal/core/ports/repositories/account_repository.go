package repositories

import (
	"context"
	"time"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
)

// AccountRepository defines persistence operations for ledger accounts.
type AccountRepository interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
	// FindAccountByID fetches a single account by its id.
	// Returns apperrors.ErrNotFound if no such account exists.
	FindAccountByID(ctx context.Context, accountID string) (domain.Account, error)
	// FindAccountByName fetches the account with the exact given name within an outlet.
	// Returns apperrors.ErrNotFound if no such account exists.
	FindAccountByName(ctx context.Context, outletID string, name string) (domain.Account, error)
	// FindAccountsByIDs fetches the given accounts, keyed by account id.
	// Missing ids are simply absent from the result map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	// ListAccounts returns the accounts of an outlet ordered by code.
	ListAccounts(ctx context.Context, outletID string, limit int, offset int) ([]domain.Account, error)
	// UpdateAccount persists mutable account attributes (name, code, description).
	UpdateAccount(ctx context.Context, account domain.Account) error
	// DeactivateAccount marks an account inactive. Accounts are never hard deleted.
	DeactivateAccount(ctx context.Context, accountID string, deactivatedAt time.Time) error
}
