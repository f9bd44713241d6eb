package classification

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// MaxSegmentLevel is the deepest allowed hierarchy level (roots are level 0)
const MaxSegmentLevel = 5

// Segment is one node in an axis's classification forest. The materialized
// Path holds the ancestor chain from root to self and backs both prefix
// queries and cycle detection.
type Segment struct {
	shared.TenantAggregateRoot
	CategoryAxisID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_segment_axis_code,priority:2"`
	Code           string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_segment_axis_code,priority:3"`
	Name           string     `gorm:"type:varchar(100);not null"`
	ParentID       *uuid.UUID `gorm:"type:uuid;index"`
	Path           string     `gorm:"type:varchar(500);not null;index"`
	Level          int        `gorm:"not null;default:0"`
	DisplayOrder   int        `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Segment) TableName() string {
	return "segments"
}

// NewRootSegment creates a new root segment under an axis
func NewRootSegment(tenantID, axisID uuid.UUID, code, name string) (*Segment, error) {
	if err := validateSegmentCode(code); err != nil {
		return nil, err
	}
	if err := validateSegmentName(name); err != nil {
		return nil, err
	}

	segment := &Segment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CategoryAxisID:      axisID,
		Code:                strings.ToUpper(code),
		Name:                name,
		Level:               0,
	}
	segment.Path = segment.ID.String()

	return segment, nil
}

// NewChildSegment creates a new segment under a parent in the same axis
func NewChildSegment(tenantID uuid.UUID, code, name string, parent *Segment) (*Segment, error) {
	if parent == nil {
		return nil, shared.NewDomainError("PARENT_SEGMENT_NOT_FOUND", "Parent segment is required")
	}
	if parent.Level >= MaxSegmentLevel {
		return nil, shared.NewDomainError("HIERARCHY_DEPTH_EXCEEDED", "Segment hierarchy cannot exceed the maximum depth")
	}
	if err := validateSegmentCode(code); err != nil {
		return nil, err
	}
	if err := validateSegmentName(name); err != nil {
		return nil, err
	}

	segment := &Segment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CategoryAxisID:      parent.CategoryAxisID,
		Code:                strings.ToUpper(code),
		Name:                name,
		ParentID:            &parent.ID,
		Level:               parent.Level + 1,
	}
	segment.Path = parent.Path + "/" + segment.ID.String()

	return segment, nil
}

// Update updates the segment's name
func (s *Segment) Update(name string) error {
	if err := validateSegmentName(name); err != nil {
		return err
	}
	s.Name = name
	s.UpdatedAt = time.Now()
	return nil
}

// SetDisplayOrder sets the sibling ordering of the segment
func (s *Segment) SetDisplayOrder(order int) {
	s.DisplayOrder = order
	s.UpdatedAt = time.Now()
}

// IsRoot returns true if this segment has no parent
func (s *Segment) IsRoot() bool {
	return s.ParentID == nil
}

// GetAncestorIDs returns the IDs of all ancestor segments, root first
func (s *Segment) GetAncestorIDs() []uuid.UUID {
	parts := strings.Split(s.Path, "/")
	if len(parts) <= 1 {
		return nil
	}
	ancestors := make([]uuid.UUID, 0, len(parts)-1)
	for i := 0; i < len(parts)-1; i++ {
		if id, err := uuid.Parse(parts[i]); err == nil {
			ancestors = append(ancestors, id)
		}
	}
	return ancestors
}

// IsAncestorOf returns true if this segment is an ancestor of the given segment
func (s *Segment) IsAncestorOf(other *Segment) bool {
	if other == nil || other.Path == "" {
		return false
	}
	return strings.HasPrefix(other.Path, s.Path+"/")
}

// IsDescendantOf returns true if this segment is a descendant of the given segment
func (s *Segment) IsDescendantOf(other *Segment) bool {
	if other == nil {
		return false
	}
	return other.IsAncestorOf(s)
}

func validateSegmentCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Segment code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Segment code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Segment code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateSegmentName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Segment name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Segment name cannot exceed 100 characters")
	}
	return nil
}
