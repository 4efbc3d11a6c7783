package services

import (
	"context"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	"github.com/tablestack/resto_ledger_app/internal/dto"
)

// AccountSvcFacade exposes account management operations.
type AccountSvcFacade interface {
	// CreateAccount creates a ledger account within the outlet.
	CreateAccount(ctx context.Context, outletID string, req dto.CreateAccountRequest) (domain.Account, error)
	// GetAccount fetches an account, scoped to the outlet.
	GetAccount(ctx context.Context, outletID string, accountID string) (domain.Account, error)
	// ListAccounts returns the accounts of the outlet ordered by code.
	ListAccounts(ctx context.Context, outletID string, params dto.ListAccountsParams) ([]domain.Account, error)
	// UpdateAccount updates mutable account attributes.
	UpdateAccount(ctx context.Context, outletID string, accountID string, req dto.UpdateAccountRequest) (domain.Account, error)
	// DeactivateAccount marks an account inactive. System accounts cannot be
	// deactivated.
	DeactivateAccount(ctx context.Context, outletID string, accountID string) error
}
