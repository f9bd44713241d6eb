package handler

import (
	masterdataapp "github.com/mdm/backend/internal/application/masterdata"

	"github.com/gin-gonic/gin"
)

// ShipToHandler handles ship-to site API endpoints
type ShipToHandler struct {
	BaseHandler
	shipToService *masterdataapp.ShipToService
}

// NewShipToHandler creates a new ShipToHandler
func NewShipToHandler(shipToService *masterdataapp.ShipToService) *ShipToHandler {
	return &ShipToHandler{shipToService: shipToService}
}

// RegisterRoutes registers ship-to routes on the given group
func (h *ShipToHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shipTos := rg.Group("/masterdata/ship-tos")
	shipTos.POST("", h.Create)
	shipTos.GET("", h.List)
	shipTos.GET("/:id", h.GetByID)
	shipTos.PUT("/:id", h.Update)
	shipTos.POST("/:id/activate", h.Activate)
	shipTos.POST("/:id/deactivate", h.Deactivate)
}

// Create creates a new ship-to site
func (h *ShipToHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req masterdataapp.CreateShipToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	shipTo, err := h.shipToService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, shipTo)
}

// List returns ship-to sites matching the filter
func (h *ShipToHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter masterdataapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	applyFilterDefaults(&filter)

	shipTos, total, err := h.shipToService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, shipTos, total, filter.Page, filter.PageSize)
}

// GetByID retrieves a ship-to site by ID
func (h *ShipToHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	shipToID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ship-to ID format")
		return
	}

	shipTo, err := h.shipToService.GetByID(c.Request.Context(), tenantID, shipToID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shipTo)
}

// Update updates the mutable attributes of a ship-to site
func (h *ShipToHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	shipToID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ship-to ID format")
		return
	}

	var req masterdataapp.UpdateShipToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	shipTo, err := h.shipToService.Update(c.Request.Context(), tenantID, shipToID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shipTo)
}

// Activate reactivates an inactive ship-to site
func (h *ShipToHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.shipToService.Activate)
}

// Deactivate deactivates an active ship-to site
func (h *ShipToHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.shipToService.Deactivate)
}

func (h *ShipToHandler) changeStatus(c *gin.Context, fn statusChangeFunc) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	shipToID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ship-to ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := fn(c.Request.Context(), tenantID, shipToID, req.Version, getUserRef(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
