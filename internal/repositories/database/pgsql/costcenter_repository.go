package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/apperrors"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	"github.com/fleetvision/fleet_backoffice/internal/models"
	"github.com/fleetvision/fleet_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const costCenterColumns = `cost_center_id, tenant_id, code, name, center_type, parent_id, budget_amount, actual_spent, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxCostCenterRepository struct {
	BaseRepository
}

// newPgxCostCenterRepository creates a new repository for cost center data.
func newPgxCostCenterRepository(pool PgxPool) *PgxCostCenterRepository {
	return &PgxCostCenterRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxCostCenterRepository implements portsrepo.CostCenterRepositoryFacade
var _ portsrepo.CostCenterRepositoryFacade = (*PgxCostCenterRepository)(nil)

func scanCostCenter(row pgx.Row) (models.CostCenter, error) {
	var m models.CostCenter
	err := row.Scan(
		&m.CostCenterID,
		&m.TenantID,
		&m.Code,
		&m.Name,
		&m.CenterType,
		&m.ParentID,
		&m.BudgetAmount,
		&m.ActualSpent,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCostCenter inserts a new cost center.
func (r *PgxCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	m := mapping.ToModelCostCenter(costCenter)

	query := `
		INSERT INTO cost_centers (` + costCenterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CostCenterID,
		m.TenantID,
		m.Code,
		m.Name,
		m.CenterType,
		m.ParentID,
		m.BudgetAmount,
		m.ActualSpent,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: cost center code %s already exists in tenant %s", apperrors.ErrDuplicate, m.Code, m.TenantID)
		}
		return fmt.Errorf("failed to save cost center %s: %w", m.CostCenterID, err)
	}
	return nil
}

// FindCostCenterByID retrieves a cost center by its ID within a tenant.
func (r *PgxCostCenterRepository) FindCostCenterByID(ctx context.Context, tenantID, costCenterID string) (*domain.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE tenant_id = $1 AND cost_center_id = $2;`

	m, err := scanCostCenter(r.Pool.QueryRow(ctx, query, tenantID, costCenterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: cost center %s", apperrors.ErrNotFound, costCenterID)
		}
		return nil, fmt.Errorf("failed to find cost center %s: %w", costCenterID, err)
	}
	cc := mapping.ToDomainCostCenter(m)
	return &cc, nil
}

// FindCostCenterByCode retrieves a cost center by code within a tenant.
func (r *PgxCostCenterRepository) FindCostCenterByCode(ctx context.Context, tenantID, code string) (*domain.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE tenant_id = $1 AND code = $2;`

	m, err := scanCostCenter(r.Pool.QueryRow(ctx, query, tenantID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: cost center code %s", apperrors.ErrNotFound, code)
		}
		return nil, fmt.Errorf("failed to find cost center by code %s: %w", code, err)
	}
	cc := mapping.ToDomainCostCenter(m)
	return &cc, nil
}

// ListCostCenters retrieves every cost center of a tenant ordered by code.
func (r *PgxCostCenterRepository) ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE tenant_id = $1 ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost centers for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	var ms []models.CostCenter
	for rows.Next() {
		m, err := scanCostCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost center row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost center rows: %w", err)
	}
	return mapping.ToDomainCostCenterSlice(ms), nil
}

// UpdateCostCenter updates a cost center's mutable details.
func (r *PgxCostCenterRepository) UpdateCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	m := mapping.ToModelCostCenter(costCenter)

	query := `
		UPDATE cost_centers
		SET name = $3, center_type = $4, parent_id = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE tenant_id = $1 AND cost_center_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TenantID,
		m.CostCenterID,
		m.Name,
		m.CenterType,
		m.ParentID,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update cost center %s: %w", m.CostCenterID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: cost center %s", apperrors.ErrNotFound, m.CostCenterID)
	}
	return nil
}

// DeactivateCostCenter marks a cost center inactive.
func (r *PgxCostCenterRepository) DeactivateCostCenter(ctx context.Context, tenantID, costCenterID string, userID string, now time.Time) error {
	query := `
		UPDATE cost_centers
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $1 AND cost_center_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, tenantID, costCenterID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate cost center %s: %w", costCenterID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: cost center %s", apperrors.ErrNotFound, costCenterID)
	}
	return nil
}

// SetBudget replaces a cost center's budget amount.
func (r *PgxCostCenterRepository) SetBudget(ctx context.Context, tenantID, costCenterID string, amount decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE cost_centers
		SET budget_amount = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND cost_center_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, tenantID, costCenterID, amount, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set budget for cost center %s: %w", costCenterID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: cost center %s", apperrors.ErrNotFound, costCenterID)
	}
	return nil
}
