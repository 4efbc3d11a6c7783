package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tablestack/resto_ledger_app/internal/apperrors"
	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	portsrepo "github.com/tablestack/resto_ledger_app/internal/core/ports/repositories"
	"github.com/tablestack/resto_ledger_app/internal/models"
	"github.com/tablestack/resto_ledger_app/internal/utils/mapping"
)

type PgxOutletRepository struct {
	BaseRepository
}

var _ portsrepo.OutletRepository = (*PgxOutletRepository)(nil)

func newPgxOutletRepository(pool *pgxpool.Pool) *PgxOutletRepository {
	return &PgxOutletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// SaveOutlet inserts the outlet and its seeded default accounts in one
// transaction, so no outlet ever exists without its chart of accounts.
func (r *PgxOutletRepository) SaveOutlet(ctx context.Context, outlet domain.Outlet, defaultAccounts []domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelOutlet(outlet)
	outletQuery := `
		INSERT INTO outlets (outlet_id, brand_name, name, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, outletQuery,
		m.OutletID,
		m.BrandName,
		m.Name,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "outlet already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert outlet "+m.OutletID, err)
	}

	accountQuery := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	batch := &pgx.Batch{}
	for _, account := range defaultAccounts {
		ma := mapping.ToModelAccount(account)
		batch.Queue(accountQuery,
			ma.AccountID,
			ma.OutletID,
			ma.Name,
			ma.Code,
			ma.AccountType,
			ma.Description,
			ma.IsSystem,
			ma.IsActive,
			ma.Balance,
			ma.CreatedAt,
			ma.LastUpdatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to seed default accounts for outlet "+m.OutletID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOutletRepository) FindOutletByID(ctx context.Context, outletID string) (domain.Outlet, error) {
	query := `
		SELECT outlet_id, brand_name, name, is_active, created_at, last_updated_at
		FROM outlets
		WHERE outlet_id = $1;
	`
	var m models.Outlet
	err := r.Pool.QueryRow(ctx, query, outletID).Scan(
		&m.OutletID,
		&m.BrandName,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Outlet{}, apperrors.ErrNotFound
		}
		return domain.Outlet{}, apperrors.NewAppError(500, "failed to find outlet "+outletID, err)
	}
	return mapping.ToDomainOutlet(m), nil
}

func (r *PgxOutletRepository) ListOutlets(ctx context.Context, limit int, offset int) ([]domain.Outlet, error) {
	query := `
		SELECT outlet_id, brand_name, name, is_active, created_at, last_updated_at
		FROM outlets
		ORDER BY created_at
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query outlets", err)
	}
	defer rows.Close()

	outlets := []domain.Outlet{}
	for rows.Next() {
		var m models.Outlet
		err := rows.Scan(
			&m.OutletID,
			&m.BrandName,
			&m.Name,
			&m.IsActive,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan outlet row", err)
		}
		outlets = append(outlets, mapping.ToDomainOutlet(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating outlet rows", err)
	}
	return outlets, nil
}

func (r *PgxOutletRepository) DeactivateOutlet(ctx context.Context, outletID string, deactivatedAt time.Time) error {
	query := `
		UPDATE outlets
		SET is_active = FALSE, last_updated_at = $2
		WHERE outlet_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, outletID, deactivatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate outlet "+outletID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
