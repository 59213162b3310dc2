package mapping

import (
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/fleetvision/fleet_backoffice/internal/models"
)

// ToModelCostCenter converts a domain CostCenter to a model CostCenter
func ToModelCostCenter(d domain.CostCenter) models.CostCenter {
	return models.CostCenter{
		CostCenterID: d.CostCenterID,
		TenantID:     d.TenantID,
		Code:         d.Code,
		Name:         d.Name,
		CenterType:   models.CostCenterType(d.CenterType),
		ParentID:     nullString(d.ParentID),
		BudgetAmount: d.BudgetAmount,
		ActualSpent:  d.ActualSpent,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCostCenter converts a model CostCenter to a domain CostCenter
func ToDomainCostCenter(m models.CostCenter) domain.CostCenter {
	return domain.CostCenter{
		CostCenterID: m.CostCenterID,
		TenantID:     m.TenantID,
		Code:         m.Code,
		Name:         m.Name,
		CenterType:   domain.CostCenterType(m.CenterType),
		ParentID:     fromNullString(m.ParentID),
		BudgetAmount: m.BudgetAmount,
		ActualSpent:  m.ActualSpent,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCostCenterSlice converts a slice of model CostCenters to domain CostCenters
func ToDomainCostCenterSlice(ms []models.CostCenter) []domain.CostCenter {
	ds := make([]domain.CostCenter, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCostCenter(m)
	}
	return ds
}
