package handler

import (
	masterdataapp "github.com/mdm/backend/internal/application/masterdata"

	"github.com/gin-gonic/gin"
)

// WarehouseHandler handles warehouse API endpoints
type WarehouseHandler struct {
	BaseHandler
	warehouseService *masterdataapp.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler
func NewWarehouseHandler(warehouseService *masterdataapp.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// RegisterRoutes registers warehouse routes on the given group
func (h *WarehouseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	warehouses := rg.Group("/masterdata/warehouses")
	warehouses.POST("", h.Create)
	warehouses.GET("", h.List)
	warehouses.GET("/default-receiving", h.GetDefaultReceiving)
	warehouses.GET("/:id", h.GetByID)
	warehouses.PUT("/:id", h.Update)
	warehouses.POST("/:id/default-receiving", h.SetDefaultReceiving)
	warehouses.POST("/:id/activate", h.Activate)
	warehouses.POST("/:id/deactivate", h.Deactivate)
}

// Create creates a new warehouse
func (h *WarehouseHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req masterdataapp.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	warehouse, err := h.warehouseService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, warehouse)
}

// List returns warehouses matching the filter
func (h *WarehouseHandler) List(c *gin.Context) {
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

	warehouses, total, err := h.warehouseService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, warehouses, total, filter.Page, filter.PageSize)
}

// GetDefaultReceiving returns the tenant's default receiving warehouse
func (h *WarehouseHandler) GetDefaultReceiving(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	warehouse, err := h.warehouseService.GetDefaultReceiving(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// GetByID retrieves a warehouse by ID
func (h *WarehouseHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	warehouseID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	warehouse, err := h.warehouseService.GetByID(c.Request.Context(), tenantID, warehouseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// Update updates the mutable attributes of a warehouse
func (h *WarehouseHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	warehouseID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	var req masterdataapp.UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	warehouse, err := h.warehouseService.Update(c.Request.Context(), tenantID, warehouseID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// SetDefaultReceiving marks a warehouse as the default receiving site
func (h *WarehouseHandler) SetDefaultReceiving(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	warehouseID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	warehouse, err := h.warehouseService.SetDefaultReceiving(c.Request.Context(), tenantID, warehouseID, req.Version, getUserRef(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// Activate reactivates an inactive warehouse
func (h *WarehouseHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.warehouseService.Activate)
}

// Deactivate deactivates an active warehouse
func (h *WarehouseHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.warehouseService.Deactivate)
}

func (h *WarehouseHandler) changeStatus(c *gin.Context, fn statusChangeFunc) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	warehouseID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := fn(c.Request.Context(), tenantID, warehouseID, req.Version, getUserRef(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
