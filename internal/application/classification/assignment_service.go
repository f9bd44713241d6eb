package classification

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/classification"
	"github.com/mdm/backend/internal/domain/shared"
)

// SegmentAssignmentService handles entity classification use cases
type SegmentAssignmentService struct {
	axisRepo       classification.CategoryAxisRepository
	segmentRepo    classification.SegmentRepository
	assignmentRepo classification.SegmentAssignmentRepository
}

// NewSegmentAssignmentService creates a new segment assignment service
func NewSegmentAssignmentService(
	axisRepo classification.CategoryAxisRepository,
	segmentRepo classification.SegmentRepository,
	assignmentRepo classification.SegmentAssignmentRepository,
) *SegmentAssignmentService {
	return &SegmentAssignmentService{
		axisRepo:       axisRepo,
		segmentRepo:    segmentRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Assign classifies an entity under a segment. Any prior active assignment
// for the same (entity kind, entity, axis) tuple is superseded atomically.
func (s *SegmentAssignmentService) Assign(ctx context.Context, tenantID uuid.UUID, req AssignSegmentRequest) (*SegmentAssignmentResponse, error) {
	axis, err := s.axisRepo.FindByIDForTenant(ctx, tenantID, req.CategoryAxisID)
	if err != nil {
		return nil, err
	}
	if axis.Status != shared.StatusActive {
		return nil, shared.NewDomainError("AXIS_INACTIVE", "Cannot assign under an inactive axis")
	}

	kind := classification.EntityKind(req.EntityKind)
	if !axis.Classifies(kind) {
		return nil, shared.NewDomainError("ENTITY_KIND_MISMATCH", "This axis does not classify the given entity kind")
	}

	segment, err := s.segmentRepo.FindByIDForTenant(ctx, tenantID, req.SegmentID)
	if err != nil {
		return nil, err
	}
	if segment.CategoryAxisID != axis.ID {
		return nil, shared.NewDomainError("SEGMENT_NOT_IN_AXIS", "Segment does not belong to the given axis")
	}
	if segment.Status != shared.StatusActive {
		return nil, shared.NewDomainError("SEGMENT_INACTIVE", "Cannot assign an inactive segment")
	}

	assignment, err := classification.NewSegmentAssignment(tenantID, kind, req.EntityID, axis.ID, segment.ID)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		assignment.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.assignmentRepo.UpsertActive(ctx, assignment); err != nil {
		return nil, err
	}

	return ToSegmentAssignmentResponse(assignment), nil
}

// GetForEntity retrieves all active assignments of one entity across axes
func (s *SegmentAssignmentService) GetForEntity(ctx context.Context, tenantID uuid.UUID, kind string, entityID uuid.UUID) ([]SegmentAssignmentResponse, error) {
	entityKind := classification.EntityKind(kind)
	if !entityKind.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTITY_KIND", "Unknown entity kind")
	}

	assignments, err := s.assignmentRepo.FindActiveByEntity(ctx, tenantID, entityKind, entityID)
	if err != nil {
		return nil, err
	}

	responses := make([]SegmentAssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *ToSegmentAssignmentResponse(&assignments[i])
	}
	return responses, nil
}

// GetForEntityAxis retrieves the active assignment of one entity on one axis
func (s *SegmentAssignmentService) GetForEntityAxis(ctx context.Context, tenantID uuid.UUID, kind string, entityID, axisID uuid.UUID) (*SegmentAssignmentResponse, error) {
	entityKind := classification.EntityKind(kind)
	if !entityKind.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTITY_KIND", "Unknown entity kind")
	}

	assignment, err := s.assignmentRepo.FindActiveByEntityAxis(ctx, tenantID, entityKind, entityID, axisID)
	if err != nil {
		return nil, err
	}
	return ToSegmentAssignmentResponse(assignment), nil
}

// Remove retires an assignment without replacing it
func (s *SegmentAssignmentService) Remove(ctx context.Context, tenantID, id uuid.UUID, req RemoveAssignmentRequest) error {
	assignment, err := s.assignmentRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if assignment.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Assignment is already inactive")
	}

	assignment.SetStatus(shared.StatusInactive)
	if req.UpdatedBy != nil {
		assignment.Touch(*req.UpdatedBy)
	}
	return s.assignmentRepo.UpdateStatus(ctx, assignment, req.Version)
}
