package handler

import (
	classificationapp "github.com/mdm/backend/internal/application/classification"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SegmentAssignmentHandler handles entity classification API endpoints
type SegmentAssignmentHandler struct {
	BaseHandler
	assignmentService *classificationapp.SegmentAssignmentService
}

// NewSegmentAssignmentHandler creates a new SegmentAssignmentHandler
func NewSegmentAssignmentHandler(assignmentService *classificationapp.SegmentAssignmentService) *SegmentAssignmentHandler {
	return &SegmentAssignmentHandler{assignmentService: assignmentService}
}

// RegisterRoutes registers assignment routes on the given group
func (h *SegmentAssignmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/classification/assignments", h.Assign)
	rg.POST("/classification/assignments/:id/remove", h.Remove)
	rg.GET("/classification/entities/:kind/:entityId/assignments", h.GetForEntity)
}

// Assign classifies an entity under a segment, replacing any active
// assignment on the same axis
func (h *SegmentAssignmentHandler) Assign(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req classificationapp.AssignSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	assignment, err := h.assignmentService.Assign(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, assignment)
}

// Remove retires an active assignment
func (h *SegmentAssignmentHandler) Remove(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid assignment ID format")
		return
	}

	var req classificationapp.RemoveAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	if err := h.assignmentService.Remove(c.Request.Context(), tenantID, assignmentID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// GetForEntity returns the active assignments of an entity. When the
// axis_id query parameter is given, only that axis is consulted.
func (h *SegmentAssignmentHandler) GetForEntity(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	entityID, err := parseIDParam(c, "entityId")
	if err != nil {
		h.BadRequest(c, "Invalid entity ID format")
		return
	}
	kind := c.Param("kind")

	if axisIDStr := c.Query("axis_id"); axisIDStr != "" {
		axisID, err := uuid.Parse(axisIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid axis ID format")
			return
		}
		assignment, err := h.assignmentService.GetForEntityAxis(c.Request.Context(), tenantID, kind, entityID, axisID)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, assignment)
		return
	}

	assignments, err := h.assignmentService.GetForEntity(c.Request.Context(), tenantID, kind, entityID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, assignments)
}
