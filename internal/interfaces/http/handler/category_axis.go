package handler

import (
	classificationapp "github.com/mdm/backend/internal/application/classification"

	"github.com/gin-gonic/gin"
)

// CategoryAxisHandler handles classification axis API endpoints
type CategoryAxisHandler struct {
	BaseHandler
	axisService *classificationapp.CategoryAxisService
}

// NewCategoryAxisHandler creates a new CategoryAxisHandler
func NewCategoryAxisHandler(axisService *classificationapp.CategoryAxisService) *CategoryAxisHandler {
	return &CategoryAxisHandler{axisService: axisService}
}

// RegisterRoutes registers axis routes on the given group
func (h *CategoryAxisHandler) RegisterRoutes(rg *gin.RouterGroup) {
	axes := rg.Group("/classification/axes")
	axes.POST("", h.Create)
	axes.GET("", h.List)
	axes.GET("/:id", h.GetByID)
	axes.GET("/code/:code", h.GetByCode)
	axes.PUT("/:id", h.Update)
	axes.POST("/:id/activate", h.Activate)
	axes.POST("/:id/deactivate", h.Deactivate)
}

// Create creates a new classification axis
func (h *CategoryAxisHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req classificationapp.CreateCategoryAxisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	axis, err := h.axisService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, axis)
}

// List returns axes matching the filter
func (h *CategoryAxisHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter classificationapp.CategoryAxisListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	axes, total, err := h.axisService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, axes, total, filter.Page, filter.PageSize)
}

// GetByID retrieves an axis by ID
func (h *CategoryAxisHandler) GetByID(c *gin.Context) {
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

	axis, err := h.axisService.GetByID(c.Request.Context(), tenantID, axisID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, axis)
}

// GetByCode retrieves an axis by code
func (h *CategoryAxisHandler) GetByCode(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	axis, err := h.axisService.GetByCode(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, axis)
}

// Update updates the mutable attributes of an axis
func (h *CategoryAxisHandler) Update(c *gin.Context) {
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

	var req classificationapp.UpdateCategoryAxisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	axis, err := h.axisService.Update(c.Request.Context(), tenantID, axisID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, axis)
}

// Activate reactivates an inactive axis
func (h *CategoryAxisHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.axisService.Activate)
}

// Deactivate deactivates an active axis
func (h *CategoryAxisHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.axisService.Deactivate)
}

func (h *CategoryAxisHandler) changeStatus(c *gin.Context, fn statusChangeFunc) {
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

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := fn(c.Request.Context(), tenantID, axisID, req.Version, getUserRef(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
