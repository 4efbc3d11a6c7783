package services

import (
	"context"
	"time"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	portsrepo "github.com/tablestack/resto_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tablestack/resto_ledger_app/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	outletRepo    portsrepo.OutletRepository
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// NewReportingService creates the read-only reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, outletRepo portsrepo.OutletRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		outletRepo:    outletRepo,
	}
}

func (s *reportingService) GetTrialBalance(ctx context.Context, outletID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	if _, err := s.outletRepo.FindOutletByID(ctx, outletID); err != nil {
		return nil, err
	}
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, outletID, asOf)
	if err != nil {
		s.LogError(ctx, "failed to build trial balance", "error", err, "outletId", outletID)
		return nil, err
	}
	return rows, nil
}
