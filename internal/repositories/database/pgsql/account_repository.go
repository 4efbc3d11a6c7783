package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tablestack/resto_ledger_app/internal/apperrors"
	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	portsrepo "github.com/tablestack/resto_ledger_app/internal/core/ports/repositories"
	"github.com/tablestack/resto_ledger_app/internal/models"
	"github.com/tablestack/resto_ledger_app/internal/utils/mapping"
)

const accountColumns = `account_id, outlet_id, name, code, account_type, description, is_system, is_active, balance, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// SaveAccount inserts a new account. A duplicate name within the same outlet
// maps to apperrors.ErrDuplicate via the unique constraint.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.OutletID,
		m.Name,
		m.Code,
		m.AccountType,
		m.Description,
		m.IsSystem,
		m.IsActive,
		m.Balance,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "account name already exists in this outlet", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := r.scanAccountRow(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, apperrors.ErrNotFound
		}
		return domain.Account{}, apperrors.NewAppError(500, "failed to find account by id "+accountID, err)
	}
	return mapping.ToDomainAccount(m), nil
}

func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, outletID string, name string) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE outlet_id = $1 AND name = $2;`
	m, err := r.scanAccountRow(r.Pool.QueryRow(ctx, query, outletID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, apperrors.ErrNotFound
		}
		return domain.Account{}, apperrors.NewAppError(500, "failed to find account by name "+name, err)
	}
	return mapping.ToDomainAccount(m), nil
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by ids", err)
	}
	defer rows.Close()

	found := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := r.scanAccountRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		found[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return found, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, outletID string, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE outlet_id = $1
		ORDER BY code, name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, outletID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts for outlet "+outletID, err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		m, err := r.scanAccountRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// UpdateAccount persists name, code and description changes. Balance and
// account type are deliberately excluded; balances only move through the
// posting path.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, code = $3, description = $4, last_updated_at = $5
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.Name,
		account.Code,
		account.Description,
		account.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "account name already exists in this outlet", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to update account "+account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, deactivatedAt time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, deactivatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// lockAccountsForUpdate fetches the given accounts inside tx with row locks.
// Rows are locked in a fixed id order so concurrent postings touching the
// same accounts cannot deadlock. Returns ErrNotFound if any id is missing.
func (r *PgxAccountRepository) lockAccountsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock accounts", err)
	}
	defer rows.Close()

	locked := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := r.scanAccountRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked account row", err)
		}
		locked[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked account rows", err)
	}

	for _, id := range accountIDs {
		if _, ok := locked[id]; !ok {
			return nil, apperrors.NewNotFoundError("account " + id + " not found")
		}
	}
	return locked, nil
}

// incrementBalancesInTx applies signed balance deltas atomically inside tx.
// The increment happens in SQL against the current stored value, never as a
// read-modify-write from application memory.
func (r *PgxAccountRepository) incrementBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedAt time.Time) error {
	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3
		WHERE account_id = $1;
	`
	batch := &pgx.Batch{}
	for accountID, delta := range balanceChanges {
		batch.Queue(query, accountID, delta, updatedAt)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to apply balance updates", err)
	}
	return nil
}

// scanAccountRow scans one accounts row in accountColumns order.
func (r *PgxAccountRepository) scanAccountRow(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.OutletID,
		&m.Name,
		&m.Code,
		&m.AccountType,
		&m.Description,
		&m.IsSystem,
		&m.IsActive,
		&m.Balance,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}
