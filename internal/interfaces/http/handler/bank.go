package handler

import (
	masterdataapp "github.com/mdm/backend/internal/application/masterdata"

	"github.com/gin-gonic/gin"
)

// BankHandler handles bank API endpoints
type BankHandler struct {
	BaseHandler
	bankService *masterdataapp.BankService
}

// NewBankHandler creates a new BankHandler
func NewBankHandler(bankService *masterdataapp.BankService) *BankHandler {
	return &BankHandler{bankService: bankService}
}

// RegisterRoutes registers bank routes on the given group
func (h *BankHandler) RegisterRoutes(rg *gin.RouterGroup) {
	banks := rg.Group("/masterdata/banks")
	banks.POST("", h.Create)
	banks.GET("", h.List)
	banks.GET("/:id", h.GetByID)
	banks.GET("/code/:code", h.GetByCode)
	banks.PUT("/:id", h.Update)
	banks.POST("/:id/activate", h.Activate)
	banks.POST("/:id/deactivate", h.Deactivate)
}

// Create creates a new bank
func (h *BankHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req masterdataapp.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	bank, err := h.bankService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, bank)
}

// List returns banks matching the filter
func (h *BankHandler) List(c *gin.Context) {
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

	banks, total, err := h.bankService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, banks, total, filter.Page, filter.PageSize)
}

// GetByID retrieves a bank by ID
func (h *BankHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	bankID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bank ID format")
		return
	}

	bank, err := h.bankService.GetByID(c.Request.Context(), tenantID, bankID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, bank)
}

// GetByCode retrieves a bank by code
func (h *BankHandler) GetByCode(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	bank, err := h.bankService.GetByCode(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, bank)
}

// Update updates the mutable attributes of a bank
func (h *BankHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	bankID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bank ID format")
		return
	}

	var req masterdataapp.UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	bank, err := h.bankService.Update(c.Request.Context(), tenantID, bankID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, bank)
}

// Activate reactivates an inactive bank
func (h *BankHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.bankService.Activate)
}

// Deactivate deactivates an active bank
func (h *BankHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.bankService.Deactivate)
}

func (h *BankHandler) changeStatus(c *gin.Context, fn statusChangeFunc) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	bankID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bank ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := fn(c.Request.Context(), tenantID, bankID, req.Version, getUserRef(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
