package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormWarehouseRepository implements WarehouseRepository on the generic tenant store
type GormWarehouseRepository struct {
	*TenantStore[masterdata.Warehouse, *masterdata.Warehouse]
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		TenantStore: NewTenantStore[masterdata.Warehouse](db, StoreConfig{
			NotFoundErr:      shared.NewDomainError("WAREHOUSE_NOT_FOUND", "Warehouse not found"),
			NaturalKeyColumn: "code",
			SortFields:       WarehouseSortFields,
			DefaultOrderBy:   "sort_order",
			SearchColumns:    []string{"code", "name", "address"},
			FilterColumns:    map[string]bool{"status": true, "is_default_receiving": true},
		}),
	}
}

// FindDefaultReceiving finds the tenant's default receiving warehouse
func (r *GormWarehouseRepository) FindDefaultReceiving(ctx context.Context, tenantID uuid.UUID) (*masterdata.Warehouse, error) {
	var warehouse masterdata.Warehouse
	if err := r.DB().WithContext(ctx).
		Where("tenant_id = ? AND is_default_receiving = ?", tenantID, true).
		First(&warehouse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("WAREHOUSE_NOT_FOUND", "No default receiving warehouse configured")
		}
		return nil, err
	}
	return &warehouse, nil
}

// SetDefaultReceiving clears the current default and flags the given warehouse
// in one transaction, so a mid-sequence failure cannot leave the tenant with
// zero or two default receiving sites.
func (r *GormWarehouseRepository) SetDefaultReceiving(ctx context.Context, warehouse *masterdata.Warehouse, expectedVersion int) error {
	newVersion := expectedVersion + 1
	err := r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.WithTx(tx).FindByIDForTenant(ctx, warehouse.TenantID, warehouse.ID)
		if err != nil {
			return err
		}
		if current.Version != expectedVersion {
			return shared.ErrConcurrencyConflict
		}

		if err := tx.Model(&masterdata.Warehouse{}).
			Where("tenant_id = ? AND is_default_receiving = ? AND id <> ?", warehouse.TenantID, true, warehouse.ID).
			Updates(map[string]interface{}{
				"is_default_receiving": false,
				"version":              gorm.Expr("version + 1"),
				"updated_at":           time.Now(),
			}).Error; err != nil {
			return err
		}

		result := tx.Model(&masterdata.Warehouse{}).
			Where("tenant_id = ? AND id = ? AND version = ?", warehouse.TenantID, warehouse.ID, expectedVersion).
			Updates(map[string]interface{}{
				"is_default_receiving": true,
				"version":              newVersion,
				"updated_by":           warehouse.UpdatedBy,
				"updated_at":           time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	warehouse.IsDefaultReceiving = true
	warehouse.Version = newVersion
	return nil
}

// Ensure GormWarehouseRepository implements WarehouseRepository
var _ masterdata.WarehouseRepository = (*GormWarehouseRepository)(nil)
