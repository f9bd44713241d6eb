package handler

import (
	classificationapp "github.com/mdm/backend/internal/application/classification"

	"github.com/gin-gonic/gin"
)

// SegmentHandler handles segment API endpoints
type SegmentHandler struct {
	BaseHandler
	segmentService *classificationapp.SegmentService
}

// NewSegmentHandler creates a new SegmentHandler
func NewSegmentHandler(segmentService *classificationapp.SegmentService) *SegmentHandler {
	return &SegmentHandler{segmentService: segmentService}
}

// RegisterRoutes registers segment routes on the given group.
// Creation and listing are nested under the owning axis, everything
// else addresses segments directly.
func (h *SegmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	axisSegments := rg.Group("/classification/axes/:id/segments")
	axisSegments.POST("", h.Create)
	axisSegments.GET("", h.ListByAxis)
	axisSegments.GET("/tree", h.GetTree)

	segments := rg.Group("/classification/segments")
	segments.GET("/:id", h.GetByID)
	segments.GET("/:id/children", h.GetChildren)
	segments.PUT("/:id", h.Update)
	segments.POST("/:id/move", h.Move)
	segments.POST("/:id/activate", h.Activate)
	segments.POST("/:id/deactivate", h.Deactivate)
}

// Create creates a segment under an axis
func (h *SegmentHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	axisID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid axis ID format")
		return
	}

	var req classificationapp.CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	segment, err := h.segmentService.Create(c.Request.Context(), tenantID, axisID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, segment)
}

// ListByAxis returns all segments of an axis as a flat list
func (h *SegmentHandler) ListByAxis(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	axisID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid axis ID format")
		return
	}

	segments, err := h.segmentService.ListByAxis(c.Request.Context(), tenantID, axisID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, segments)
}

// GetTree returns the segments of an axis as a forest
func (h *SegmentHandler) GetTree(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	axisID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid axis ID format")
		return
	}

	tree, err := h.segmentService.GetTree(c.Request.Context(), tenantID, axisID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tree)
}

// GetByID retrieves a segment by ID
func (h *SegmentHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	segmentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid segment ID format")
		return
	}

	segment, err := h.segmentService.GetByID(c.Request.Context(), tenantID, segmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, segment)
}

// GetChildren returns the direct children of a segment
func (h *SegmentHandler) GetChildren(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	segmentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid segment ID format")
		return
	}

	children, err := h.segmentService.GetChildren(c.Request.Context(), tenantID, segmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, children)
}

// Update updates the mutable attributes of a segment
func (h *SegmentHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	segmentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid segment ID format")
		return
	}

	var req classificationapp.UpdateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	segment, err := h.segmentService.Update(c.Request.Context(), tenantID, segmentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, segment)
}

// Move re-parents a segment within its axis
func (h *SegmentHandler) Move(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	segmentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid segment ID format")
		return
	}

	var req classificationapp.MoveSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	segment, err := h.segmentService.Move(c.Request.Context(), tenantID, segmentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, segment)
}

// Activate reactivates an inactive segment
func (h *SegmentHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.segmentService.Activate)
}

// Deactivate deactivates an active segment
func (h *SegmentHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.segmentService.Deactivate)
}

func (h *SegmentHandler) changeStatus(c *gin.Context, fn statusChangeFunc) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	segmentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid segment ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := fn(c.Request.Context(), tenantID, segmentID, req.Version, getUserRef(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
