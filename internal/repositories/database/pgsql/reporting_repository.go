package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingReader interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db PgxPool) portsrepo.ReportingReader {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// AccountBalancesAsOf returns each posting-enabled account's opening
// balance plus its posted movement up to and including asOf. Summary
// accounts are excluded so statement totals count each posted line once.
// The status and date filters live inside the line subquery; filtering
// after the LEFT JOIN would let draft and post-asOf lines leak into the
// sums.
func (r *reportingRepository) AccountBalancesAsOf(ctx context.Context, tenantID string, asOf time.Time) ([]domain.AccountBalance, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			a.opening_balance + COALESCE(SUM(m.debit - m.credit), 0) AS balance
		FROM accounts a
		LEFT JOIN (
			SELECT l.account_id, l.debit, l.credit
			FROM journal_lines l
			JOIN journal_entries e ON e.entry_id = l.entry_id
			WHERE e.tenant_id = $1
				AND e.status = 'POSTED'
				AND e.entry_date <= $2
		) m ON m.account_id = a.account_id
		WHERE a.tenant_id = $1
			AND a.allow_posting
		GROUP BY a.account_id, a.code, a.name, a.account_type, a.opening_balance
		ORDER BY a.code
	`

	rows, err := r.Pool.Query(ctx, query, tenantID, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying account balances: %w", err)
	}
	defer rows.Close()

	var result []domain.AccountBalance
	for rows.Next() {
		var row domain.AccountBalance
		var accountType string
		if err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&row.Balance,
		); err != nil {
			return nil, fmt.Errorf("error scanning account balance row: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account balance rows: %w", err)
	}
	if len(result) == 0 {
		return []domain.AccountBalance{}, nil
	}
	return result, nil
}

// AccountMovements returns each account's posted debit and credit totals
// within [from, to]. Accounts with no movement in the range are omitted.
func (r *reportingRepository) AccountMovements(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountMovement, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			SUM(l.debit) AS total_debit,
			SUM(l.credit) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE a.tenant_id = $1
			AND e.status = 'POSTED'
			AND e.entry_date BETWEEN $2 AND $3
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code
	`

	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying account movements: %w", err)
	}
	defer rows.Close()

	var result []domain.AccountMovement
	for rows.Next() {
		var row domain.AccountMovement
		var accountType string
		if err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning account movement row: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account movement rows: %w", err)
	}
	if len(result) == 0 {
		return []domain.AccountMovement{}, nil
	}
	return result, nil
}

// LedgerRows returns an account's posted lines within [from, to] ordered
// by (entry_date, entry_number). RunningBalance is left zero; the ledger
// service folds it from the opening position.
func (r *reportingRepository) LedgerRows(ctx context.Context, tenantID, accountID string, from, to time.Time, referenceType string) ([]domain.GeneralLedgerRow, error) {
	query := `
		SELECT
			l.line_id,
			e.entry_id,
			e.entry_number,
			e.entry_date,
			e.description,
			COALESCE(e.reference_type, ''),
			COALESCE(e.reference_id, ''),
			l.debit,
			l.credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.tenant_id = $1
			AND l.account_id = $2
			AND e.status = 'POSTED'
			AND e.entry_date BETWEEN $3 AND $4
	`
	args := []any{tenantID, accountID, from, to}
	if referenceType != "" {
		query += ` AND e.reference_type = $5`
		args = append(args, referenceType)
	}
	query += ` ORDER BY e.entry_date, e.entry_number, l.line_id`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger rows for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var result []domain.GeneralLedgerRow
	for rows.Next() {
		var row domain.GeneralLedgerRow
		if err := rows.Scan(
			&row.LineID,
			&row.EntryID,
			&row.EntryNumber,
			&row.EntryDate,
			&row.Description,
			&row.ReferenceType,
			&row.ReferenceID,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning ledger row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", err)
	}
	if len(result) == 0 {
		return []domain.GeneralLedgerRow{}, nil
	}
	return result, nil
}

// PostedMovementBefore returns one account's posted totals with entry
// date strictly before from.
func (r *reportingRepository) PostedMovementBefore(ctx context.Context, tenantID, accountID string, from time.Time) (domain.AccountMovement, error) {
	query := `
		SELECT
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.tenant_id = $1
			AND l.account_id = $2
			AND e.status = 'POSTED'
			AND e.entry_date < $3
	`

	movement := domain.AccountMovement{AccountID: accountID}
	if err := r.Pool.QueryRow(ctx, query, tenantID, accountID, from).Scan(&movement.Debit, &movement.Credit); err != nil {
		return domain.AccountMovement{}, fmt.Errorf("error querying prior movement for account %s: %w", accountID, err)
	}
	return movement, nil
}

// PostedMovementTotal returns one account's posted totals over its
// whole history.
func (r *reportingRepository) PostedMovementTotal(ctx context.Context, tenantID, accountID string) (domain.AccountMovement, error) {
	query := `
		SELECT
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.tenant_id = $1
			AND l.account_id = $2
			AND e.status = 'POSTED'
	`

	movement := domain.AccountMovement{AccountID: accountID}
	if err := r.Pool.QueryRow(ctx, query, tenantID, accountID).Scan(&movement.Debit, &movement.Credit); err != nil {
		return domain.AccountMovement{}, fmt.Errorf("error querying total movement for account %s: %w", accountID, err)
	}
	return movement, nil
}

// CostCenterActuals returns each cost center's posted expense total
// within [from, to]. Only lines on expense accounts count as spend.
func (r *reportingRepository) CostCenterActuals(ctx context.Context, tenantID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT
			l.cost_center_id,
			SUM(l.debit - l.credit) AS actual_spent
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.tenant_id = $1
			AND e.status = 'POSTED'
			AND e.entry_date BETWEEN $2 AND $3
			AND l.cost_center_id IS NOT NULL
			AND a.account_type = 'EXPENSE'
		GROUP BY l.cost_center_id
	`

	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying cost center actuals: %w", err)
	}
	defer rows.Close()

	result := make(map[string]decimal.Decimal)
	for rows.Next() {
		var costCenterID string
		var actual decimal.Decimal
		if err := rows.Scan(&costCenterID, &actual); err != nil {
			return nil, fmt.Errorf("error scanning cost center actual row: %w", err)
		}
		result[costCenterID] = actual
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost center actual rows: %w", err)
	}
	return result, nil
}
