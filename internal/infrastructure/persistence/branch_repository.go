package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBranchRepository implements BranchRepository on the generic tenant store
type GormBranchRepository struct {
	*TenantStore[masterdata.Branch, *masterdata.Branch]
}

// NewGormBranchRepository creates a new GormBranchRepository
func NewGormBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{
		TenantStore: NewTenantStore[masterdata.Branch](db, StoreConfig{
			NotFoundErr:      shared.NewDomainError("BRANCH_NOT_FOUND", "Branch not found"),
			NaturalKeyColumn: "code",
			SortFields:       CodeNameSortFields,
			DefaultOrderBy:   "code",
			SearchColumns:    []string{"code", "name"},
			FilterColumns:    map[string]bool{"status": true, "bank_id": true},
		}),
	}
}

// FindByBank finds all branches of one bank
func (r *GormBranchRepository) FindByBank(ctx context.Context, tenantID, bankID uuid.UUID, filter shared.Filter) ([]masterdata.Branch, error) {
	if filter.Filters == nil {
		filter.Filters = make(map[string]interface{})
	}
	filter.Filters["bank_id"] = bankID
	return r.FindAllForTenant(ctx, tenantID, filter)
}

// Ensure GormBranchRepository implements BranchRepository
var _ masterdata.BranchRepository = (*GormBranchRepository)(nil)
