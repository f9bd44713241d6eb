package handler

import (
	masterdataapp "github.com/mdm/backend/internal/application/masterdata"

	"github.com/gin-gonic/gin"
)

// BranchHandler handles bank branch API endpoints
type BranchHandler struct {
	BaseHandler
	branchService *masterdataapp.BranchService
}

// NewBranchHandler creates a new BranchHandler
func NewBranchHandler(branchService *masterdataapp.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// RegisterRoutes registers branch routes on the given group
func (h *BranchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	branches := rg.Group("/masterdata/branches")
	branches.POST("", h.Create)
	branches.GET("", h.List)
	branches.GET("/:id", h.GetByID)
	branches.PUT("/:id", h.Update)
	branches.POST("/:id/activate", h.Activate)
	branches.POST("/:id/deactivate", h.Deactivate)

	rg.GET("/masterdata/banks/:id/branches", h.ListByBank)
}

// Create creates a new branch under a bank
func (h *BranchHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req masterdataapp.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	branch, err := h.branchService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, branch)
}

// List returns branches matching the filter
func (h *BranchHandler) List(c *gin.Context) {
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

	branches, total, err := h.branchService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, branches, total, filter.Page, filter.PageSize)
}

// ListByBank returns the branches of one bank
func (h *BranchHandler) ListByBank(c *gin.Context) {
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

	var filter masterdataapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	branches, err := h.branchService.ListByBank(c.Request.Context(), tenantID, bankID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, branches)
}

// GetByID retrieves a branch by ID
func (h *BranchHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	branchID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid branch ID format")
		return
	}

	branch, err := h.branchService.GetByID(c.Request.Context(), tenantID, branchID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, branch)
}

// Update updates the mutable attributes of a branch
func (h *BranchHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	branchID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid branch ID format")
		return
	}

	var req masterdataapp.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	branch, err := h.branchService.Update(c.Request.Context(), tenantID, branchID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, branch)
}

// Activate reactivates an inactive branch
func (h *BranchHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.branchService.Activate)
}

// Deactivate deactivates an active branch
func (h *BranchHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.branchService.Deactivate)
}

func (h *BranchHandler) changeStatus(c *gin.Context, fn statusChangeFunc) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	branchID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid branch ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := fn(c.Request.Context(), tenantID, branchID, req.Version, getUserRef(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
