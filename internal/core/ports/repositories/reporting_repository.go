package repositories

import (
	"context"
	"time"

	"github.com/tablestack/resto_ledger_app/internal/core/domain"
)

// ReportingRepository defines read-only aggregate queries over the ledger.
type ReportingRepository interface {
	// GetTrialBalanceData returns per-account debit and credit totals for the
	// outlet, covering lines posted up to and including asOf.
	GetTrialBalanceData(ctx context.Context, outletID string, asOf time.Time) ([]domain.TrialBalanceRow, error)
}
