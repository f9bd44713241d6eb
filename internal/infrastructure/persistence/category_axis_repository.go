package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/classification"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCategoryAxisRepository implements CategoryAxisRepository on the generic
// tenant store
type GormCategoryAxisRepository struct {
	*TenantStore[classification.CategoryAxis, *classification.CategoryAxis]
}

// NewGormCategoryAxisRepository creates a new GormCategoryAxisRepository
func NewGormCategoryAxisRepository(db *gorm.DB) *GormCategoryAxisRepository {
	return &GormCategoryAxisRepository{
		TenantStore: NewTenantStore[classification.CategoryAxis](db, StoreConfig{
			NotFoundErr:      shared.NewDomainError("CATEGORY_AXIS_NOT_FOUND", "Category axis not found"),
			NaturalKeyColumn: "code",
			SortFields:       CategoryAxisSortFields,
			DefaultOrderBy:   "display_order",
			SearchColumns:    []string{"code", "name"},
			FilterColumns:    map[string]bool{"status": true, "target_entity_kind": true},
		}),
	}
}

// FindByCode finds an axis by its tenant-unique code
func (r *GormCategoryAxisRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*classification.CategoryAxis, error) {
	return r.FindByNaturalKey(ctx, tenantID, code, nil)
}

// ExistsByCode checks whether an axis with the code exists in the tenant
func (r *GormCategoryAxisRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	return r.ExistsByNaturalKey(ctx, tenantID, code, nil)
}

// Ensure GormCategoryAxisRepository implements CategoryAxisRepository
var _ classification.CategoryAxisRepository = (*GormCategoryAxisRepository)(nil)
