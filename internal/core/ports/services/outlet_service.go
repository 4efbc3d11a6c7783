package services

import (
	"context"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	"github.com/tablestack/resto_ledger_app/internal/dto"
)

// OutletSvcFacade exposes outlet management operations.
type OutletSvcFacade interface {
	// CreateOutlet registers an outlet and seeds its default chart of accounts.
	CreateOutlet(ctx context.Context, req dto.CreateOutletRequest) (domain.Outlet, error)
	// GetOutlet fetches a single outlet.
	GetOutlet(ctx context.Context, outletID string) (domain.Outlet, error)
	// ListOutlets returns outlets ordered by creation time.
	ListOutlets(ctx context.Context, params dto.ListOutletsParams) ([]domain.Outlet, error)
	// DeactivateOutlet marks an outlet inactive.
	DeactivateOutlet(ctx context.Context, outletID string) error
}
