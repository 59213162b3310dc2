package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The status and as-of filters must be applied to the line set before it
// is left-joined onto accounts. Filtering in the outer join condition
// keeps the line rows alive regardless, so draft entries and entries
// dated after asOf would leak into the sums.
const accountBalancesQueryShape = `(?s)SELECT.+FROM accounts a\s+LEFT JOIN \(\s+SELECT l\.account_id, l\.debit, l\.credit\s+FROM journal_lines l\s+JOIN journal_entries e ON e\.entry_id = l\.entry_id\s+WHERE e\.tenant_id = \$1\s+AND e\.status = 'POSTED'\s+AND e\.entry_date <= \$2\s+\) m ON m\.account_id = a\.account_id\s+WHERE a\.tenant_id = \$1\s+AND a\.allow_posting`

func TestAccountBalancesAsOf_SumsOnlyPostedLinesUpToDate(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := newReportingRepository(mockPool)
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"account_id", "code", "name", "account_type", "balance"}).
		AddRow("acc-1", "1101", "Cash", "ASSET", "150.000")
	mockPool.ExpectQuery(accountBalancesQueryShape).
		WithArgs("tenant-1", asOf).
		WillReturnRows(rows)

	balances, err := repo.AccountBalancesAsOf(context.Background(), "tenant-1", asOf)

	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "1101", balances[0].AccountCode)
	assert.True(t, balances[0].Balance.Equal(decimal.RequireFromString("150")))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestLedgerRows_ReferenceTypeFilter(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := newReportingRepository(mockPool)
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"line_id", "entry_id", "entry_number", "entry_date", "description", "reference_type", "reference_id", "debit", "credit"}).
		AddRow("l1", "e1", int64(7), from, "Rental billing", "INVOICE", "inv-9", "40.000", "0")
	mockPool.ExpectQuery(`(?s)FROM journal_lines l\s+JOIN journal_entries e ON e\.entry_id = l\.entry_id\s+WHERE.+AND e\.entry_date BETWEEN \$3 AND \$4\s+AND e\.reference_type = \$5 ORDER BY e\.entry_date, e\.entry_number, l\.line_id`).
		WithArgs("tenant-1", "acc-1", from, to, "INVOICE").
		WillReturnRows(rows)

	ledgerRows, err := repo.LedgerRows(context.Background(), "tenant-1", "acc-1", from, to, "INVOICE")

	require.NoError(t, err)
	require.Len(t, ledgerRows, 1)
	assert.Equal(t, "INVOICE", ledgerRows[0].ReferenceType)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
