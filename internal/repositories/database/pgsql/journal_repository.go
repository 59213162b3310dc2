package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/apperrors"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	"github.com/fleetvision/fleet_backoffice/internal/models"
	"github.com/fleetvision/fleet_backoffice/internal/utils/mapping"
	"github.com/fleetvision/fleet_backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const entryColumns = `entry_id, tenant_id, entry_number, entry_date, description, reference_type, reference_id, status, original_entry_id, reversing_entry_id, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, debit, credit, description, cost_center_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool PgxPool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.TenantID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.Status,
		&m.OriginalEntryID,
		&m.ReversingEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row pgx.Row) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.AccountID,
		&m.Debit,
		&m.Credit,
		&m.Description,
		&m.CostCenterID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func queueLineInserts(batch *pgx.Batch, lines []domain.JournalLine) {
	query := `
		INSERT INTO journal_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, l := range lines {
		m := mapping.ToModelJournalLine(l)
		batch.Queue(query,
			m.LineID,
			m.EntryID,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.Description,
			m.CostCenterID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
}

// SaveDraftEntry persists a new entry and its lines with draft status.
func (r *PgxJournalRepository) SaveDraftEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertEntryInTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)

	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.TenantID,
		m.EntryNumber,
		m.EntryDate,
		m.Description,
		m.ReferenceType,
		m.ReferenceID,
		m.Status,
		m.OriginalEntryID,
		m.ReversingEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry %s: %w", m.EntryID, err)
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, entry.Lines)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to save lines for entry %s: %w", m.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1 AND entry_id = $2;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, tenantID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	lines, err := r.findLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return &entry, nil
}

func (r *PgxJournalRepository) findLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = $1 ORDER BY line_id;`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var ms []models.JournalLine
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return mapping.ToDomainJournalLineSlice(ms), nil
}

// ListEntries retrieves entries matching the filter ordered by
// (entry_date, entry_number, entry_id) with keyset pagination; drafts
// carry number 0 until posting, so the id breaks their ties. Lines are
// loaded for the returned page in one extra query.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, tenantID string, filter portsrepo.JournalListFilter, limit int, paginationToken string) ([]domain.JournalEntry, string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1`
	args := []any{tenantID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.ReferenceType != "" {
		args = append(args, filter.ReferenceType)
		query += ` AND reference_type = $` + strconv.Itoa(len(args))
	}
	if filter.ReferenceID != "" {
		args = append(args, filter.ReferenceID)
		query += ` AND reference_id = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += ` AND entry_date >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += ` AND entry_date <= $` + strconv.Itoa(len(args))
	}
	if paginationToken != "" {
		lastDate, lastNumber, lastID, err := pagination.DecodeEntryToken(paginationToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, lastDate, lastNumber, lastID)
		query += ` AND (entry_date, coalesce(entry_number, 0), entry_id) > ($` + strconv.Itoa(len(args)-2) + `, $` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	// The cursor predicate and the ordering must compare the same triple
	// or rows sharing the boundary date get skipped between pages.
	args = append(args, fetchLimit)
	query += ` ORDER BY entry_date, coalesce(entry_number, 0), entry_id LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list journal entries for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	var ms []models.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	nextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[limit-1]
		nextToken = pagination.EncodeEntryToken(last.EntryDate, last.EntryNumber.Int64, last.EntryID)
	}

	entries := make([]domain.JournalEntry, len(ms))
	entryIDs := make([]string, len(ms))
	for i, m := range ms {
		entries[i] = mapping.ToDomainJournalEntry(m)
		entryIDs[i] = m.EntryID
	}

	linesByEntry, err := r.findLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, "", err
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].EntryID]
	}
	return entries, nextToken, nil
}

func (r *PgxJournalRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}
	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = ANY($1) ORDER BY entry_id, line_id;`

	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entries: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		result[m.EntryID] = append(result[m.EntryID], mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return result, nil
}

// UpdateDraftEntry replaces a draft entry's header fields and lines. The
// status guard in the WHERE clause makes posted entries immutable even
// under races.
func (r *PgxJournalRepository) UpdateDraftEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelJournalEntry(entry)
	query := `
		UPDATE journal_entries
		SET entry_date = $3, description = $4, reference_type = $5, reference_id = $6, last_updated_at = $7, last_updated_by = $8
		WHERE tenant_id = $1 AND entry_id = $2 AND status = 'DRAFT';
	`
	tag, err := tx.Exec(ctx, query,
		m.TenantID,
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.ReferenceType,
		m.ReferenceID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update draft entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: draft entry %s", apperrors.ErrNotDraft, m.EntryID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
		return fmt.Errorf("failed to replace lines for entry %s: %w", m.EntryID, err)
	}
	batch := &pgx.Batch{}
	queueLineInserts(batch, entry.Lines)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert replacement lines for entry %s: %w", m.EntryID, err)
	}
	return r.Commit(ctx, tx)
}

// DeleteDraftEntry removes a draft entry and its lines.
func (r *PgxJournalRepository) DeleteDraftEntry(ctx context.Context, tenantID, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to delete lines for entry %s: %w", entryID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE tenant_id = $1 AND entry_id = $2 AND status = 'DRAFT';`, tenantID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete draft entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: draft entry %s", apperrors.ErrNotDraft, entryID)
	}
	return r.Commit(ctx, tx)
}

// FindEntryByIDForUpdate retrieves an entry with its lines and locks the
// entry row for the duration of the transaction.
func (r *PgxJournalRepository) FindEntryByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1 AND entry_id = $2 FOR UPDATE;`

	m, err := scanEntry(tx.QueryRow(ctx, query, tenantID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to lock journal entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainJournalEntry(m)

	lineQuery := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = $1 ORDER BY line_id;`
	rows, err := tx.Query(ctx, lineQuery, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var ms []models.JournalLine
	for rows.Next() {
		lm, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		ms = append(ms, lm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	entry.Lines = mapping.ToDomainJournalLineSlice(ms)
	return &entry, nil
}

// NextEntryNumberInTx allocates the tenant's next entry number. The
// sequence row is updated with its row lock held, so concurrent postings
// serialize here and numbers come out gapless per tenant.
func (r *PgxJournalRepository) NextEntryNumberInTx(ctx context.Context, tx pgx.Tx, tenantID string) (int64, error) {
	query := `
		INSERT INTO tenant_entry_sequences (tenant_id, last_number)
		VALUES ($1, 1)
		ON CONFLICT (tenant_id) DO UPDATE SET last_number = tenant_entry_sequences.last_number + 1
		RETURNING last_number;
	`
	var number int64
	if err := tx.QueryRow(ctx, query, tenantID).Scan(&number); err != nil {
		return 0, fmt.Errorf("failed to allocate entry number for tenant %s: %w", tenantID, err)
	}
	return number, nil
}

// MarkEntryPostedInTx stamps an entry with its number and posted status.
func (r *PgxJournalRepository) MarkEntryPostedInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID string, entryNumber int64, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET entry_number = $3, status = 'POSTED', last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND entry_id = $2 AND status = 'DRAFT';
	`
	tag, err := tx.Exec(ctx, query, tenantID, entryID, entryNumber, now, userID)
	if err != nil {
		return fmt.Errorf("failed to mark entry %s posted: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyPosted, entryID)
	}
	return nil
}

// SavePostedEntryInTx inserts an entry and its lines already in posted
// status within the transaction.
func (r *PgxJournalRepository) SavePostedEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	return insertEntryInTx(ctx, tx, entry)
}

// LinkReversalInTx records the reversing entry's id on the original. The
// NULL guard rejects a second reversal of the same entry.
func (r *PgxJournalRepository) LinkReversalInTx(ctx context.Context, tx pgx.Tx, tenantID, originalEntryID, reversingEntryID string, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET reversing_entry_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND entry_id = $2 AND reversing_entry_id IS NULL;
	`
	tag, err := tx.Exec(ctx, query, tenantID, originalEntryID, reversingEntryID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to link reversal for entry %s: %w", originalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s already reversed", apperrors.ErrConflict, originalEntryID)
	}
	return nil
}
