package pgsql

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tablestack/resto_ledger_app/internal/apperrors"
	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	portsrepo "github.com/tablestack/resto_ledger_app/internal/core/ports/repositories"
	"github.com/tablestack/resto_ledger_app/internal/models"
	"github.com/tablestack/resto_ledger_app/internal/utils/accounting"
	"github.com/tablestack/resto_ledger_app/internal/utils/mapping"
	"github.com/tablestack/resto_ledger_app/internal/utils/pagination"
)

type PgxJournalRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxJournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// SaveEntry persists the entry, its lines and the balance deltas in one
// database transaction. Touched account rows are locked first so the running
// balances written on the lines are consistent with the balance increments.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (entry_id, outlet_id, entry_date, description, reference_id, reference_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, entryQuery,
		m.EntryID,
		m.OutletID,
		m.EntryDate,
		m.Description,
		m.ReferenceID,
		m.ReferenceType,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	accountIDs := make([]string, 0, len(balanceChanges))
	for id := range balanceChanges {
		accountIDs = append(accountIDs, id)
	}
	sort.Strings(accountIDs)

	lockedAccounts, err := r.accountRepo.lockAccountsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return err
	}

	if err := r.accountRepo.incrementBalancesInTx(ctx, tx, balanceChanges, entry.CreatedAt); err != nil {
		return err
	}

	runningBalances := make(map[string]decimal.Decimal, len(lockedAccounts))
	for id, account := range lockedAccounts {
		runningBalances[id] = account.Balance
	}

	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, debit, credit, description, running_balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		account, ok := lockedAccounts[line.AccountID]
		if !ok {
			return apperrors.NewAppError(500, "locked account "+line.AccountID+" missing during line insert", nil)
		}
		delta, err := accounting.SignedDelta(line, account.AccountType)
		if err != nil {
			return apperrors.NewAppError(500, "failed to compute signed delta for line "+line.LineID, err)
		}
		running := runningBalances[line.AccountID].Add(delta)
		runningBalances[line.AccountID] = running

		ml := mapping.ToModelLine(line)
		ml.RunningBalance = running
		batch.Queue(lineQuery,
			ml.LineID,
			ml.EntryID,
			ml.AccountID,
			ml.Debit,
			ml.Credit,
			ml.Description,
			ml.RunningBalance,
			ml.CreatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal lines for entry "+m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (domain.JournalEntry, error) {
	query := `
		SELECT entry_id, outlet_id, entry_date, description, reference_id, reference_type, created_at
		FROM journal_entries
		WHERE entry_id = $1;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.OutletID,
		&m.EntryDate,
		&m.Description,
		&m.ReferenceID,
		&m.ReferenceType,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.JournalEntry{}, apperrors.ErrNotFound
		}
		return domain.JournalEntry{}, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}
	return mapping.ToDomainEntry(m), nil
}

func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, debit, credit, description, running_balance, created_at
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY created_at, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.Description,
			&m.RunningBalance,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}
	return mapping.ToDomainLineSlice(lines), nil
}

// ListEntriesByOutlet pages through an outlet's entries newest first using a
// (entry_date, created_at, entry_id) cursor token. The id column breaks ties
// between rows sharing both timestamps.
func (r *PgxJournalRepository) ListEntriesByOutlet(ctx context.Context, outletID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT entry_id, outlet_id, entry_date, description, reference_id, reference_type, created_at
		FROM journal_entries
		WHERE outlet_id = $1
	`
	orderByClause := `ORDER BY entry_date DESC, created_at DESC, entry_id DESC`

	args := []any{outletID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastEntryDate, lastCreatedAt, lastEntryID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (entry_date, created_at, entry_id) < ($2, $3, $4)`
		args = append(args, lastEntryDate, lastCreatedAt, lastEntryID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries for outlet "+outletID, err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.OutletID,
			&m.EntryDate,
			&m.Description,
			&m.ReferenceID,
			&m.ReferenceType,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.EntryID)
		token = &t
	}

	result := make([]domain.JournalEntry, len(entries))
	for i, m := range entries {
		result[i] = mapping.ToDomainEntry(m)
	}
	return result, token, nil
}

// ListLinesByAccountID pages through the lines touching an account newest
// first. Lines are joined to their entries for outlet scoping and date order.
func (r *PgxJournalRepository) ListLinesByAccountID(ctx context.Context, outletID string, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT l.line_id, l.entry_id, l.account_id, l.debit, l.credit, l.description, l.running_balance, l.created_at, e.entry_date
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1 AND e.outlet_id = $2
	`
	orderByClause := `ORDER BY e.entry_date DESC, l.created_at DESC, l.line_id DESC`

	args := []any{accountID, outletID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastEntryDate, lastCreatedAt, lastLineID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (e.entry_date, l.created_at, l.line_id) < ($3, $4, $5)`
		args = append(args, lastEntryDate, lastCreatedAt, lastLineID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query lines for account "+accountID, err)
	}
	defer rows.Close()

	type lineWithDate struct {
		line      models.JournalLine
		entryDate time.Time
	}
	scanned := []lineWithDate{}
	for rows.Next() {
		var lw lineWithDate
		err := rows.Scan(
			&lw.line.LineID,
			&lw.line.EntryID,
			&lw.line.AccountID,
			&lw.line.Debit,
			&lw.line.Credit,
			&lw.line.Description,
			&lw.line.RunningBalance,
			&lw.line.CreatedAt,
			&lw.entryDate,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan line row for account "+accountID, err)
		}
		scanned = append(scanned, lw)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating line rows for account "+accountID, err)
	}

	var token *string
	if len(scanned) > limit {
		scanned = scanned[:limit]
		last := scanned[len(scanned)-1]
		t := pagination.EncodeToken(last.entryDate, last.line.CreatedAt, last.line.LineID)
		token = &t
	}

	lines := make([]domain.JournalLine, len(scanned))
	for i, lw := range scanned {
		lines[i] = mapping.ToDomainLine(lw.line)
	}
	return lines, token, nil
}
