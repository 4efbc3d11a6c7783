package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	portsrepo "github.com/tablestack/resto_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tablestack/resto_ledger_app/internal/core/ports/services"
	"github.com/tablestack/resto_ledger_app/internal/dto"
)

// defaultAccountSeed describes one account of the default chart created for
// every new outlet.
type defaultAccountSeed struct {
	code        string
	name        string
	accountType domain.AccountType
}

var defaultChart = []defaultAccountSeed{
	{code: "1000", name: "Cash on Hand", accountType: domain.Asset},
	{code: "1010", name: "Bank Account", accountType: domain.Asset},
	{code: "1200", name: "Inventory Asset", accountType: domain.Asset},
	{code: "2000", name: "Accounts Payable", accountType: domain.Liability},
	{code: "4000", name: "Sales Revenue", accountType: domain.Revenue},
	{code: "5000", name: "Cost of Goods Sold", accountType: domain.Expense},
}

type outletService struct {
	BaseService
	outletRepo portsrepo.OutletRepository
}

var _ portssvc.OutletSvcFacade = (*outletService)(nil)

// NewOutletService creates the outlet management service.
func NewOutletService(outletRepo portsrepo.OutletRepository) portssvc.OutletSvcFacade {
	return &outletService{outletRepo: outletRepo}
}

// CreateOutlet registers the outlet and seeds its default chart of accounts
// in the same transaction, so a new outlet can post entries immediately.
func (s *outletService) CreateOutlet(ctx context.Context, req dto.CreateOutletRequest) (domain.Outlet, error) {
	now := time.Now().UTC()
	outlet := domain.Outlet{
		OutletID:  uuid.NewString(),
		BrandName: req.BrandName,
		Name:      req.Name,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	defaults := make([]domain.Account, len(defaultChart))
	for i, seed := range defaultChart {
		defaults[i] = domain.Account{
			AccountID:   uuid.NewString(),
			OutletID:    outlet.OutletID,
			Name:        seed.name,
			Code:        seed.code,
			AccountType: seed.accountType,
			IsSystem:    true,
			IsActive:    true,
			Balance:     decimal.Zero,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}

	if err := s.outletRepo.SaveOutlet(ctx, outlet, defaults); err != nil {
		s.LogError(ctx, "failed to create outlet", "error", err, "name", req.Name)
		return domain.Outlet{}, err
	}
	s.LogInfo(ctx, "outlet created", "outletId", outlet.OutletID, "defaultAccounts", len(defaults))
	return outlet, nil
}

func (s *outletService) GetOutlet(ctx context.Context, outletID string) (domain.Outlet, error) {
	return s.outletRepo.FindOutletByID(ctx, outletID)
}

func (s *outletService) ListOutlets(ctx context.Context, params dto.ListOutletsParams) ([]domain.Outlet, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.outletRepo.ListOutlets(ctx, limit, offset)
}

func (s *outletService) DeactivateOutlet(ctx context.Context, outletID string) error {
	if _, err := s.outletRepo.FindOutletByID(ctx, outletID); err != nil {
		return err
	}
	if err := s.outletRepo.DeactivateOutlet(ctx, outletID, time.Now().UTC()); err != nil {
		s.LogError(ctx, "failed to deactivate outlet", "error", err, "outletId", outletID)
		return err
	}
	s.LogInfo(ctx, "outlet deactivated", "outletId", outletID)
	return nil
}
