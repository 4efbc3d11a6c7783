package services

import (
	"context"
	"time"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
)

// ReportingSvcFacade exposes read-only ledger reports.
type ReportingSvcFacade interface {
	// GetTrialBalance returns per-account debit and credit totals for the
	// outlet as of the given time.
	GetTrialBalance(ctx context.Context, outletID string, asOf time.Time) ([]domain.TrialBalanceRow, error)
}
