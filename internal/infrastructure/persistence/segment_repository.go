package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/classification"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSegmentRepository implements SegmentRepository on the generic tenant
// store, with the tree-shaped queries layered on top
type GormSegmentRepository struct {
	*TenantStore[classification.Segment, *classification.Segment]
}

// NewGormSegmentRepository creates a new GormSegmentRepository
func NewGormSegmentRepository(db *gorm.DB) *GormSegmentRepository {
	return &GormSegmentRepository{
		TenantStore: NewTenantStore[classification.Segment](db, StoreConfig{
			NotFoundErr:      shared.NewDomainError("SEGMENT_NOT_FOUND", "Segment not found"),
			NaturalKeyColumn: "code",
			SortFields:       SegmentSortFields,
			DefaultOrderBy:   "display_order",
			SearchColumns:    []string{"code", "name"},
			FilterColumns:    map[string]bool{"status": true, "category_axis_id": true, "parent_id": true, "level": true},
		}),
	}
}

// FindByCodeInAxis finds a segment by code within one axis
func (r *GormSegmentRepository) FindByCodeInAxis(ctx context.Context, tenantID, axisID uuid.UUID, code string) (*classification.Segment, error) {
	return r.FindByNaturalKey(ctx, tenantID, code, shared.Scope{"category_axis_id": axisID})
}

// FindByAxis returns every segment of the axis. Siblings are ordered by
// display_order then code, which is the order the tree endpoint emits.
func (r *GormSegmentRepository) FindByAxis(ctx context.Context, tenantID, axisID uuid.UUID) ([]classification.Segment, error) {
	var segments []classification.Segment
	if err := r.DB().WithContext(ctx).
		Where("tenant_id = ? AND category_axis_id = ?", tenantID, axisID).
		Order("display_order ASC, code ASC").
		Find(&segments).Error; err != nil {
		return nil, err
	}
	return segments, nil
}

// FindChildren returns the direct children of a segment
func (r *GormSegmentRepository) FindChildren(ctx context.Context, tenantID, parentID uuid.UUID) ([]classification.Segment, error) {
	var segments []classification.Segment
	if err := r.DB().WithContext(ctx).
		Where("tenant_id = ? AND parent_id = ?", tenantID, parentID).
		Order("display_order ASC, code ASC").
		Find(&segments).Error; err != nil {
		return nil, err
	}
	return segments, nil
}

// ExistsByCodeInAxis checks whether a segment with the code exists in the axis
func (r *GormSegmentRepository) ExistsByCodeInAxis(ctx context.Context, tenantID, axisID uuid.UUID, code string) (bool, error) {
	return r.ExistsByNaturalKey(ctx, tenantID, code, shared.Scope{"category_axis_id": axisID})
}

// MaxLevelInSubtree returns the deepest level among the subtree rooted at the
// given materialized path, including the root itself
func (r *GormSegmentRepository) MaxLevelInSubtree(ctx context.Context, tenantID uuid.UUID, path string) (int, error) {
	var maxLevel int
	if err := r.DB().WithContext(ctx).
		Model(&classification.Segment{}).
		Select("COALESCE(MAX(level), 0)").
		Where("tenant_id = ? AND (path = ? OR path LIKE ?)", tenantID, path, path+"/%").
		Scan(&maxLevel).Error; err != nil {
		return 0, err
	}
	return maxLevel, nil
}

// Reparent moves the segment under a new parent and rewrites the materialized
// path and level of every descendant with a single bulk update. The whole move
// runs in one transaction guarded by the moved segment's version.
func (r *GormSegmentRepository) Reparent(ctx context.Context, segment *classification.Segment, newParentID *uuid.UUID, newPath string, levelDelta, expectedVersion int) error {
	oldPath := segment.Path
	newVersion := expectedVersion + 1
	newLevel := segment.Level + levelDelta

	err := r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.WithTx(tx).FindByIDForTenant(ctx, segment.TenantID, segment.ID)
		if err != nil {
			return err
		}
		if current.Version != expectedVersion {
			return shared.ErrConcurrencyConflict
		}

		result := tx.Model(&classification.Segment{}).
			Where("tenant_id = ? AND id = ? AND version = ?", segment.TenantID, segment.ID, expectedVersion).
			Updates(map[string]interface{}{
				"parent_id":  newParentID,
				"path":       newPath,
				"level":      newLevel,
				"version":    newVersion,
				"updated_by": segment.UpdatedBy,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		// Descendants keep their own versions; only path and level shift
		return tx.Model(&classification.Segment{}).
			Where("tenant_id = ? AND path LIKE ?", segment.TenantID, oldPath+"/%").
			Updates(map[string]interface{}{
				"path":       gorm.Expr("REPLACE(path, ?, ?)", oldPath, newPath),
				"level":      gorm.Expr("level + ?", levelDelta),
				"updated_at": time.Now(),
			}).Error
	})
	if err != nil {
		return err
	}

	segment.ParentID = newParentID
	segment.Path = newPath
	segment.Level = newLevel
	segment.Version = newVersion
	return nil
}

// Ensure GormSegmentRepository implements SegmentRepository
var _ classification.SegmentRepository = (*GormSegmentRepository)(nil)
