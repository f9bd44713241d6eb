package handler

import (
	masterdataapp "github.com/mdm/backend/internal/application/masterdata"

	"github.com/gin-gonic/gin"
)

// TaxCodeHandler handles tax code API endpoints
type TaxCodeHandler struct {
	BaseHandler
	taxCodeService *masterdataapp.TaxCodeService
}

// NewTaxCodeHandler creates a new TaxCodeHandler
func NewTaxCodeHandler(taxCodeService *masterdataapp.TaxCodeService) *TaxCodeHandler {
	return &TaxCodeHandler{taxCodeService: taxCodeService}
}

// RegisterRoutes registers tax code routes on the given group
func (h *TaxCodeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	taxCodes := rg.Group("/masterdata/tax-codes")
	taxCodes.POST("", h.Create)
	taxCodes.GET("", h.List)
	taxCodes.GET("/:id", h.GetByID)
	taxCodes.PUT("/:id", h.Update)
	taxCodes.POST("/:id/activate", h.Activate)
	taxCodes.POST("/:id/deactivate", h.Deactivate)
}

// Create creates a new tax code
func (h *TaxCodeHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req masterdataapp.CreateTaxCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	taxCode, err := h.taxCodeService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, taxCode)
}

// List returns tax codes matching the filter
func (h *TaxCodeHandler) List(c *gin.Context) {
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

	taxCodes, total, err := h.taxCodeService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, taxCodes, total, filter.Page, filter.PageSize)
}

// GetByID retrieves a tax code by ID
func (h *TaxCodeHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	taxCodeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid tax code ID format")
		return
	}

	taxCode, err := h.taxCodeService.GetByID(c.Request.Context(), tenantID, taxCodeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, taxCode)
}

// Update updates the mutable attributes of a tax code
func (h *TaxCodeHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	taxCodeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid tax code ID format")
		return
	}

	var req masterdataapp.UpdateTaxCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	taxCode, err := h.taxCodeService.Update(c.Request.Context(), tenantID, taxCodeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, taxCode)
}

// Activate reactivates an inactive tax code
func (h *TaxCodeHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.taxCodeService.Activate)
}

// Deactivate deactivates an active tax code
func (h *TaxCodeHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.taxCodeService.Deactivate)
}

func (h *TaxCodeHandler) changeStatus(c *gin.Context, fn statusChangeFunc) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	taxCodeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid tax code ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := fn(c.Request.Context(), tenantID, taxCodeID, req.Version, getUserRef(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
