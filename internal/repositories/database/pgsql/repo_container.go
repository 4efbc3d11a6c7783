package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tablestack/resto_ledger_app/internal/core/ports/repositories"
)

// RepositoryContainer bundles the pgsql repository implementations.
type RepositoryContainer struct {
	AccountRepo   portsrepo.AccountRepository
	JournalRepo   portsrepo.JournalRepository
	OutletRepo    portsrepo.OutletRepository
	ReportingRepo portsrepo.ReportingRepository
}

// NewRepositoryContainer wires all repositories onto the shared pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	accountRepo := newPgxAccountRepository(pool)
	return &RepositoryContainer{
		AccountRepo:   accountRepo,
		JournalRepo:   newPgxJournalRepository(pool, accountRepo),
		OutletRepo:    newPgxOutletRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}
