package classification

import (
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/classification"
)

// CreateCategoryAxisRequest represents a request to create a classification axis
type CreateCategoryAxisRequest struct {
	Code              string     `json:"code" binding:"required,min=1,max=50"`
	Name              string     `json:"name" binding:"required,min=1,max=100"`
	TargetEntityKind  string     `json:"target_entity_kind" binding:"required,oneof=ITEM SUPPLIER"`
	SupportsHierarchy bool       `json:"supports_hierarchy"`
	DisplayOrder      *int       `json:"display_order"`
	CreatedBy         *uuid.UUID `json:"-"`
}

// UpdateCategoryAxisRequest represents a request to update a classification axis.
// Code and TargetEntityKind are fixed at creation; sending a different value is
// rejected rather than silently ignored.
type UpdateCategoryAxisRequest struct {
	Code              *string    `json:"code"`
	TargetEntityKind  *string    `json:"target_entity_kind"`
	Name              *string    `json:"name" binding:"omitempty,min=1,max=100"`
	SupportsHierarchy *bool      `json:"supports_hierarchy"`
	DisplayOrder      *int       `json:"display_order"`
	Version           int        `json:"version" binding:"required,min=1"`
	UpdatedBy         *uuid.UUID `json:"-"`
}

// CategoryAxisResponse represents a classification axis in API responses
type CategoryAxisResponse struct {
	ID                uuid.UUID `json:"id"`
	TenantID          uuid.UUID `json:"tenant_id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	TargetEntityKind  string    `json:"target_entity_kind"`
	SupportsHierarchy bool      `json:"supports_hierarchy"`
	DisplayOrder      int       `json:"display_order"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Version           int       `json:"version"`
}

// CategoryAxisListFilter represents filter options for the axis list
type CategoryAxisListFilter struct {
	Search           string `form:"search"`
	Status           string `form:"status" binding:"omitempty,oneof=active inactive"`
	TargetEntityKind string `form:"target_entity_kind" binding:"omitempty,oneof=ITEM SUPPLIER"`
	Page             int    `form:"page" binding:"omitempty,min=1"`
	PageSize         int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy          string `form:"order_by"`
	OrderDir         string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CreateSegmentRequest represents a request to create a segment under an axis
type CreateSegmentRequest struct {
	Code         string     `json:"code" binding:"required,min=1,max=50"`
	Name         string     `json:"name" binding:"required,min=1,max=100"`
	ParentID     *uuid.UUID `json:"parent_id"`
	DisplayOrder *int       `json:"display_order"`
	CreatedBy    *uuid.UUID `json:"-"`
}

// UpdateSegmentRequest represents a request to update a segment
type UpdateSegmentRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=1,max=100"`
	DisplayOrder *int       `json:"display_order"`
	Version      int        `json:"version" binding:"required,min=1"`
	UpdatedBy    *uuid.UUID `json:"-"`
}

// MoveSegmentRequest represents a request to re-parent a segment.
// A nil ParentID moves the segment to the root of its axis.
type MoveSegmentRequest struct {
	ParentID  *uuid.UUID `json:"parent_id"`
	Version   int        `json:"version" binding:"required,min=1"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// SegmentResponse represents a segment in API responses
type SegmentResponse struct {
	ID             uuid.UUID  `json:"id"`
	TenantID       uuid.UUID  `json:"tenant_id"`
	CategoryAxisID uuid.UUID  `json:"category_axis_id"`
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	ParentID       *uuid.UUID `json:"parent_id"`
	Level          int        `json:"level"`
	DisplayOrder   int        `json:"display_order"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Version        int        `json:"version"`
}

// SegmentTreeNode represents one node of the axis forest
type SegmentTreeNode struct {
	ID           uuid.UUID         `json:"id"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	ParentID     *uuid.UUID        `json:"parent_id"`
	Level        int               `json:"level"`
	DisplayOrder int               `json:"display_order"`
	Status       string            `json:"status"`
	Children     []SegmentTreeNode `json:"children"`
}

// AssignSegmentRequest represents a request to classify an entity.
// The axis is named explicitly; a segment from a different axis is rejected
// rather than silently classifying under the segment's own axis.
type AssignSegmentRequest struct {
	EntityKind     string     `json:"entity_kind" binding:"required,oneof=ITEM SUPPLIER"`
	EntityID       uuid.UUID  `json:"entity_id" binding:"required"`
	CategoryAxisID uuid.UUID  `json:"category_axis_id" binding:"required"`
	SegmentID      uuid.UUID  `json:"segment_id" binding:"required"`
	CreatedBy      *uuid.UUID `json:"-"`
}

// RemoveAssignmentRequest represents a request to retire an assignment
type RemoveAssignmentRequest struct {
	Version   int        `json:"version" binding:"required,min=1"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// SegmentAssignmentResponse represents an assignment in API responses
type SegmentAssignmentResponse struct {
	ID             uuid.UUID `json:"id"`
	TenantID       uuid.UUID `json:"tenant_id"`
	EntityKind     string    `json:"entity_kind"`
	EntityID       uuid.UUID `json:"entity_id"`
	CategoryAxisID uuid.UUID `json:"category_axis_id"`
	SegmentID      uuid.UUID `json:"segment_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Version        int       `json:"version"`
}

// ToCategoryAxisResponse converts a domain CategoryAxis to CategoryAxisResponse
func ToCategoryAxisResponse(a *classification.CategoryAxis) *CategoryAxisResponse {
	return &CategoryAxisResponse{
		ID:                a.ID,
		TenantID:          a.TenantID,
		Code:              a.Code,
		Name:              a.Name,
		TargetEntityKind:  string(a.TargetEntityKind),
		SupportsHierarchy: a.SupportsHierarchy,
		DisplayOrder:      a.DisplayOrder,
		Status:            string(a.Status),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
		Version:           a.Version,
	}
}

// ToSegmentResponse converts a domain Segment to SegmentResponse
func ToSegmentResponse(s *classification.Segment) *SegmentResponse {
	return &SegmentResponse{
		ID:             s.ID,
		TenantID:       s.TenantID,
		CategoryAxisID: s.CategoryAxisID,
		Code:           s.Code,
		Name:           s.Name,
		ParentID:       s.ParentID,
		Level:          s.Level,
		DisplayOrder:   s.DisplayOrder,
		Status:         string(s.Status),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		Version:        s.Version,
	}
}

// ToSegmentAssignmentResponse converts a domain SegmentAssignment to its response
func ToSegmentAssignmentResponse(a *classification.SegmentAssignment) *SegmentAssignmentResponse {
	return &SegmentAssignmentResponse{
		ID:             a.ID,
		TenantID:       a.TenantID,
		EntityKind:     string(a.EntityKind),
		EntityID:       a.EntityID,
		CategoryAxisID: a.CategoryAxisID,
		SegmentID:      a.SegmentID,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		Version:        a.Version,
	}
}
