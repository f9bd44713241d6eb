package classification

import (
	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// SegmentAssignment links one business entity to one segment under one axis.
// For a given (tenant, entity kind, entity, axis) at most one assignment is
// active; a new assignment supersedes and deactivates the prior one.
type SegmentAssignment struct {
	shared.TenantAggregateRoot
	EntityKind     EntityKind `gorm:"type:varchar(20);not null;index:idx_assignment_entity,priority:2"`
	EntityID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_assignment_entity,priority:3"`
	CategoryAxisID uuid.UUID  `gorm:"type:uuid;not null;index:idx_assignment_entity,priority:4"`
	SegmentID      uuid.UUID  `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (SegmentAssignment) TableName() string {
	return "segment_assignments"
}

// NewSegmentAssignment creates a new active assignment
func NewSegmentAssignment(tenantID uuid.UUID, kind EntityKind, entityID, axisID, segmentID uuid.UUID) (*SegmentAssignment, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTITY_KIND", "Unknown entity kind")
	}
	if entityID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Entity ID is required")
	}

	return &SegmentAssignment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		EntityKind:          kind,
		EntityID:            entityID,
		CategoryAxisID:      axisID,
		SegmentID:           segmentID,
	}, nil
}
