package classification

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// CategoryAxisRepository defines persistence operations for classification axes
type CategoryAxisRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*CategoryAxis, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*CategoryAxis, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]CategoryAxis, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)
	Create(ctx context.Context, axis *CategoryAxis) error
	// Update persists the axis only if the stored version still equals
	// expectedVersion; a lost race yields shared.ErrConcurrencyConflict.
	Update(ctx context.Context, axis *CategoryAxis, expectedVersion int) error
	UpdateStatus(ctx context.Context, axis *CategoryAxis, expectedVersion int) error
}

// SegmentRepository defines persistence operations for segment trees
type SegmentRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Segment, error)
	FindByCodeInAxis(ctx context.Context, tenantID, axisID uuid.UUID, code string) (*Segment, error)
	FindByAxis(ctx context.Context, tenantID, axisID uuid.UUID) ([]Segment, error)
	FindChildren(ctx context.Context, tenantID, parentID uuid.UUID) ([]Segment, error)
	ExistsByCodeInAxis(ctx context.Context, tenantID, axisID uuid.UUID, code string) (bool, error)
	// MaxLevelInSubtree returns the deepest level among the segment itself and
	// its descendants, identified by the subtree root's materialized path.
	MaxLevelInSubtree(ctx context.Context, tenantID uuid.UUID, path string) (int, error)
	Create(ctx context.Context, segment *Segment) error
	Update(ctx context.Context, segment *Segment, expectedVersion int) error
	UpdateStatus(ctx context.Context, segment *Segment, expectedVersion int) error
	// Reparent moves the segment and re-paths its whole subtree in a single
	// transaction. The version predicate guards the moved segment itself.
	Reparent(ctx context.Context, segment *Segment, newParentID *uuid.UUID, newPath string, levelDelta, expectedVersion int) error
}

// SegmentAssignmentRepository defines persistence operations for assignments
type SegmentAssignmentRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*SegmentAssignment, error)
	FindActiveByEntityAxis(ctx context.Context, tenantID uuid.UUID, kind EntityKind, entityID, axisID uuid.UUID) (*SegmentAssignment, error)
	FindActiveByEntity(ctx context.Context, tenantID uuid.UUID, kind EntityKind, entityID uuid.UUID) ([]SegmentAssignment, error)
	// UpsertActive deactivates any existing active assignment for the new
	// assignment's (entity kind, entity, axis) tuple and inserts the new one,
	// both inside one transaction.
	UpsertActive(ctx context.Context, assignment *SegmentAssignment) error
	UpdateStatus(ctx context.Context, assignment *SegmentAssignment, expectedVersion int) error
}
