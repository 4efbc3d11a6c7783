package repositories

import (
	"context"
	"time"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
)

// OutletRepository defines persistence operations for outlets.
type OutletRepository interface {
	// SaveOutlet persists a new outlet together with its seeded default
	// accounts in a single transaction.
	SaveOutlet(ctx context.Context, outlet domain.Outlet, defaultAccounts []domain.Account) error
	// FindOutletByID fetches a single outlet by its id.
	// Returns apperrors.ErrNotFound if no such outlet exists.
	FindOutletByID(ctx context.Context, outletID string) (domain.Outlet, error)
	// ListOutlets returns all outlets ordered by creation time.
	ListOutlets(ctx context.Context, limit int, offset int) ([]domain.Outlet, error)
	// DeactivateOutlet marks an outlet inactive. Outlets are never hard deleted.
	DeactivateOutlet(ctx context.Context, outletID string, deactivatedAt time.Time) error
}
