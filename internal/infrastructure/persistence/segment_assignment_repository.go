package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/classification"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSegmentAssignmentRepository implements SegmentAssignmentRepository on
// the generic tenant store
type GormSegmentAssignmentRepository struct {
	*TenantStore[classification.SegmentAssignment, *classification.SegmentAssignment]
}

// NewGormSegmentAssignmentRepository creates a new GormSegmentAssignmentRepository
func NewGormSegmentAssignmentRepository(db *gorm.DB) *GormSegmentAssignmentRepository {
	return &GormSegmentAssignmentRepository{
		TenantStore: NewTenantStore[classification.SegmentAssignment](db, StoreConfig{
			NotFoundErr:    shared.NewDomainError("SEGMENT_ASSIGNMENT_NOT_FOUND", "Segment assignment not found"),
			SortFields:     CommonSortFields,
			DefaultOrderBy: "created_at",
			FilterColumns: map[string]bool{
				"status":           true,
				"entity_kind":      true,
				"entity_id":        true,
				"category_axis_id": true,
				"segment_id":       true,
			},
		}),
	}
}

// FindActiveByEntityAxis finds the entity's active assignment on one axis
func (r *GormSegmentAssignmentRepository) FindActiveByEntityAxis(ctx context.Context, tenantID uuid.UUID, kind classification.EntityKind, entityID, axisID uuid.UUID) (*classification.SegmentAssignment, error) {
	var assignment classification.SegmentAssignment
	if err := r.DB().WithContext(ctx).
		Where("tenant_id = ? AND entity_kind = ? AND entity_id = ? AND category_axis_id = ? AND status = ?",
			tenantID, kind, entityID, axisID, shared.StatusActive).
		First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("SEGMENT_ASSIGNMENT_NOT_FOUND", "Segment assignment not found")
		}
		return nil, err
	}
	return &assignment, nil
}

// FindActiveByEntity lists the entity's active assignments across all axes
func (r *GormSegmentAssignmentRepository) FindActiveByEntity(ctx context.Context, tenantID uuid.UUID, kind classification.EntityKind, entityID uuid.UUID) ([]classification.SegmentAssignment, error) {
	var assignments []classification.SegmentAssignment
	if err := r.DB().WithContext(ctx).
		Where("tenant_id = ? AND entity_kind = ? AND entity_id = ? AND status = ?",
			tenantID, kind, entityID, shared.StatusActive).
		Order("created_at ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// UpsertActive supersedes any existing active assignment for the tuple and
// inserts the new one. Both steps run in one transaction, so the single-active
// rule holds even when two writers race on the same entity and axis.
func (r *GormSegmentAssignmentRepository) UpsertActive(ctx context.Context, assignment *classification.SegmentAssignment) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&classification.SegmentAssignment{}).
			Where("tenant_id = ? AND entity_kind = ? AND entity_id = ? AND category_axis_id = ? AND status = ?",
				assignment.TenantID, assignment.EntityKind, assignment.EntityID, assignment.CategoryAxisID, shared.StatusActive).
			Updates(map[string]interface{}{
				"status":     shared.StatusInactive,
				"version":    gorm.Expr("version + 1"),
				"updated_by": assignment.CreatedBy,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}

		return tx.Create(assignment).Error
	})
}

// Ensure GormSegmentAssignmentRepository implements SegmentAssignmentRepository
var _ classification.SegmentAssignmentRepository = (*GormSegmentAssignmentRepository)(nil)
