package classification

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/classification"
	"github.com/mdm/backend/internal/domain/shared"
	"github.com/mdm/backend/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// SegmentService handles segment tree use cases. Tree reads go through the
// per-axis segment cache; every segment mutation invalidates that axis.
type SegmentService struct {
	axisRepo    classification.CategoryAxisRepository
	segmentRepo classification.SegmentRepository
	cache       cache.SegmentCache
	logger      *zap.Logger
}

// NewSegmentService creates a new segment service
func NewSegmentService(
	axisRepo classification.CategoryAxisRepository,
	segmentRepo classification.SegmentRepository,
	segmentCache cache.SegmentCache,
	logger *zap.Logger,
) *SegmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SegmentService{
		axisRepo:    axisRepo,
		segmentRepo: segmentRepo,
		cache:       segmentCache,
		logger:      logger,
	}
}

// Create adds a segment to an axis, as a root or under an existing parent
func (s *SegmentService) Create(ctx context.Context, tenantID, axisID uuid.UUID, req CreateSegmentRequest) (*SegmentResponse, error) {
	axis, err := s.axisRepo.FindByIDForTenant(ctx, tenantID, axisID)
	if err != nil {
		return nil, err
	}

	var segment *classification.Segment
	if req.ParentID != nil {
		parent, err := s.segmentRepo.FindByIDForTenant(ctx, tenantID, *req.ParentID)
		if err != nil {
			if isDomainErrCode(err, "SEGMENT_NOT_FOUND") {
				return nil, shared.NewDomainError("PARENT_SEGMENT_NOT_FOUND", "Parent segment not found")
			}
			return nil, err
		}
		if parent.CategoryAxisID != axisID {
			return nil, shared.NewDomainError("PARENT_SEGMENT_WRONG_AXIS", "Parent segment belongs to a different axis")
		}
		if !axis.SupportsHierarchy {
			return nil, shared.NewDomainError("HIERARCHY_NOT_ALLOWED", "This axis does not support hierarchical segments")
		}
		segment, err = classification.NewChildSegment(tenantID, req.Code, req.Name, parent)
		if err != nil {
			return nil, err
		}
	} else {
		segment, err = classification.NewRootSegment(tenantID, axisID, req.Code, req.Name)
		if err != nil {
			return nil, err
		}
	}

	exists, err := s.segmentRepo.ExistsByCodeInAxis(ctx, tenantID, axisID, segment.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SEGMENT_CODE_DUPLICATE", "A segment with this code already exists in the axis")
	}

	if req.DisplayOrder != nil {
		segment.SetDisplayOrder(*req.DisplayOrder)
	}
	if req.CreatedBy != nil {
		segment.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.segmentRepo.Create(ctx, segment); err != nil {
		return nil, err
	}

	s.invalidateAxis(ctx, tenantID, axisID)
	return ToSegmentResponse(segment), nil
}

// GetByID retrieves a segment by ID
func (s *SegmentService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*SegmentResponse, error) {
	segment, err := s.segmentRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToSegmentResponse(segment), nil
}

// ListByAxis retrieves the flat segment list of an axis in sibling order
func (s *SegmentService) ListByAxis(ctx context.Context, tenantID, axisID uuid.UUID) ([]SegmentResponse, error) {
	segments, err := s.loadAxisSegments(ctx, tenantID, axisID)
	if err != nil {
		return nil, err
	}

	responses := make([]SegmentResponse, len(segments))
	for i := range segments {
		responses[i] = *ToSegmentResponse(&segments[i])
	}
	return responses, nil
}

// GetTree assembles the segment forest of an axis
func (s *SegmentService) GetTree(ctx context.Context, tenantID, axisID uuid.UUID) ([]SegmentTreeNode, error) {
	if _, err := s.axisRepo.FindByIDForTenant(ctx, tenantID, axisID); err != nil {
		return nil, err
	}

	segments, err := s.loadAxisSegments(ctx, tenantID, axisID)
	if err != nil {
		return nil, err
	}

	return buildSegmentForest(segments), nil
}

// GetChildren retrieves the direct children of a segment
func (s *SegmentService) GetChildren(ctx context.Context, tenantID, parentID uuid.UUID) ([]SegmentResponse, error) {
	if _, err := s.segmentRepo.FindByIDForTenant(ctx, tenantID, parentID); err != nil {
		return nil, err
	}

	children, err := s.segmentRepo.FindChildren(ctx, tenantID, parentID)
	if err != nil {
		return nil, err
	}

	responses := make([]SegmentResponse, len(children))
	for i := range children {
		responses[i] = *ToSegmentResponse(&children[i])
	}
	return responses, nil
}

// Update modifies a segment's name and display order
func (s *SegmentService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateSegmentRequest) (*SegmentResponse, error) {
	segment, err := s.segmentRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := segment.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.DisplayOrder != nil {
		segment.SetDisplayOrder(*req.DisplayOrder)
	}
	if req.UpdatedBy != nil {
		segment.Touch(*req.UpdatedBy)
	}

	if err := s.segmentRepo.Update(ctx, segment, req.Version); err != nil {
		return nil, err
	}

	s.invalidateAxis(ctx, tenantID, segment.CategoryAxisID)
	return ToSegmentResponse(segment), nil
}

// Move re-parents a segment within its axis. The whole subtree moves with it,
// so the depth bound is checked against the subtree's deepest descendant.
func (s *SegmentService) Move(ctx context.Context, tenantID, id uuid.UUID, req MoveSegmentRequest) (*SegmentResponse, error) {
	segment, err := s.segmentRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	var (
		newParentID *uuid.UUID
		newLevel    int
		newPath     string
	)
	if req.ParentID != nil {
		axis, err := s.axisRepo.FindByIDForTenant(ctx, tenantID, segment.CategoryAxisID)
		if err != nil {
			return nil, err
		}
		if !axis.SupportsHierarchy {
			return nil, shared.NewDomainError("HIERARCHY_NOT_ALLOWED", "This axis does not support hierarchical segments")
		}

		if *req.ParentID == segment.ID {
			return nil, shared.NewDomainError("CIRCULAR_REFERENCE", "A segment cannot be its own parent")
		}
		parent, err := s.segmentRepo.FindByIDForTenant(ctx, tenantID, *req.ParentID)
		if err != nil {
			if isDomainErrCode(err, "SEGMENT_NOT_FOUND") {
				return nil, shared.NewDomainError("PARENT_SEGMENT_NOT_FOUND", "Parent segment not found")
			}
			return nil, err
		}
		if parent.CategoryAxisID != segment.CategoryAxisID {
			return nil, shared.NewDomainError("PARENT_SEGMENT_WRONG_AXIS", "Parent segment belongs to a different axis")
		}
		if segment.IsAncestorOf(parent) {
			return nil, shared.NewDomainError("CIRCULAR_REFERENCE", "Cannot move a segment under its own descendant")
		}

		newParentID = &parent.ID
		newLevel = parent.Level + 1
		newPath = parent.Path + "/" + segment.ID.String()
	} else {
		newLevel = 0
		newPath = segment.ID.String()
	}

	levelDelta := newLevel - segment.Level
	if levelDelta != 0 {
		maxLevel, err := s.segmentRepo.MaxLevelInSubtree(ctx, tenantID, segment.Path)
		if err != nil {
			return nil, err
		}
		if maxLevel+levelDelta > classification.MaxSegmentLevel {
			return nil, shared.NewDomainError("HIERARCHY_DEPTH_EXCEEDED", "Moving this segment would exceed the maximum hierarchy depth")
		}
	}

	if req.UpdatedBy != nil {
		segment.Touch(*req.UpdatedBy)
	}

	if err := s.segmentRepo.Reparent(ctx, segment, newParentID, newPath, levelDelta, req.Version); err != nil {
		return nil, err
	}

	s.invalidateAxis(ctx, tenantID, segment.CategoryAxisID)
	return ToSegmentResponse(segment), nil
}

// Activate reactivates a segment
func (s *SegmentService) Activate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	segment, err := s.segmentRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if segment.Status == shared.StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Segment is already active")
	}

	segment.SetStatus(shared.StatusActive)
	if updatedBy != nil {
		segment.Touch(*updatedBy)
	}
	if err := s.segmentRepo.UpdateStatus(ctx, segment, expectedVersion); err != nil {
		return err
	}

	s.invalidateAxis(ctx, tenantID, segment.CategoryAxisID)
	return nil
}

// Deactivate retires a segment. Descendants keep their own status; an
// inactive segment simply stops accepting new assignments.
func (s *SegmentService) Deactivate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	segment, err := s.segmentRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if segment.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Segment is already inactive")
	}

	segment.SetStatus(shared.StatusInactive)
	if updatedBy != nil {
		segment.Touch(*updatedBy)
	}
	if err := s.segmentRepo.UpdateStatus(ctx, segment, expectedVersion); err != nil {
		return err
	}

	s.invalidateAxis(ctx, tenantID, segment.CategoryAxisID)
	return nil
}

func (s *SegmentService) loadAxisSegments(ctx context.Context, tenantID, axisID uuid.UUID) ([]classification.Segment, error) {
	if s.cache != nil {
		segments, hit, err := s.cache.GetAxisSegments(ctx, tenantID, axisID)
		if err != nil {
			s.logger.Warn("segment cache read failed, falling back to database",
				zap.String("axis_id", axisID.String()),
				zap.Error(err),
			)
		} else if hit {
			return segments, nil
		}
	}

	segments, err := s.segmentRepo.FindByAxis(ctx, tenantID, axisID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAxisSegments(ctx, tenantID, axisID, segments); err != nil {
			s.logger.Warn("segment cache write failed",
				zap.String("axis_id", axisID.String()),
				zap.Error(err),
			)
		}
	}
	return segments, nil
}

func (s *SegmentService) invalidateAxis(ctx context.Context, tenantID, axisID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAxis(ctx, tenantID, axisID); err != nil {
		s.logger.Warn("segment cache invalidation failed",
			zap.String("axis_id", axisID.String()),
			zap.Error(err),
		)
	}
}

// buildSegmentForest assembles tree nodes from the flat, sibling-ordered list
func buildSegmentForest(segments []classification.Segment) []SegmentTreeNode {
	childrenOf := make(map[uuid.UUID][]classification.Segment)
	var roots []classification.Segment
	for _, seg := range segments {
		if seg.ParentID == nil {
			roots = append(roots, seg)
		} else {
			childrenOf[*seg.ParentID] = append(childrenOf[*seg.ParentID], seg)
		}
	}

	var build func(seg classification.Segment) SegmentTreeNode
	build = func(seg classification.Segment) SegmentTreeNode {
		node := SegmentTreeNode{
			ID:           seg.ID,
			Code:         seg.Code,
			Name:         seg.Name,
			ParentID:     seg.ParentID,
			Level:        seg.Level,
			DisplayOrder: seg.DisplayOrder,
			Status:       string(seg.Status),
			Children:     []SegmentTreeNode{},
		}
		for _, child := range childrenOf[seg.ID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	forest := make([]SegmentTreeNode, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, build(root))
	}
	return forest
}

func isDomainErrCode(err error, code string) bool {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return strings.EqualFold(domainErr.Code, code)
	}
	return false
}
