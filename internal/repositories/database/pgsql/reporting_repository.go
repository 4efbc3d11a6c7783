package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tablestack/resto_ledger_app/internal/apperrors"
	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	portsrepo "github.com/tablestack/resto_ledger_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// GetTrialBalanceData aggregates per-account debit and credit totals over
// lines whose entry is dated at or before asOf. The date filter sits on the
// inner line-to-entry join, ahead of the outer join, so accounts with no
// qualifying lines still appear with zero totals.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, outletID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.name,
			a.code,
			a.account_type,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM accounts a
		LEFT JOIN (
			journal_lines l
			JOIN journal_entries e ON e.entry_id = l.entry_id AND e.entry_date <= $2
		) ON l.account_id = a.account_id
		WHERE a.outlet_id = $1
		GROUP BY a.account_id, a.name, a.code, a.account_type
		ORDER BY a.code, a.name;
	`
	rows, err := r.Pool.Query(ctx, query, outletID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance for outlet "+outletID, err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		err := rows.Scan(
			&row.AccountID,
			&row.AccountName,
			&row.AccountCode,
			&row.AccountType,
			&row.Debit,
			&row.Credit,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}
	return result, nil
}
