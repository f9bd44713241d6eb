package handler

import (
	masterdataapp "github.com/mdm/backend/internal/application/masterdata"

	"github.com/gin-gonic/gin"
)

// PayeeBankAccountHandler handles payee bank account API endpoints
type PayeeBankAccountHandler struct {
	BaseHandler
	accountService *masterdataapp.PayeeBankAccountService
}

// NewPayeeBankAccountHandler creates a new PayeeBankAccountHandler
func NewPayeeBankAccountHandler(accountService *masterdataapp.PayeeBankAccountService) *PayeeBankAccountHandler {
	return &PayeeBankAccountHandler{accountService: accountService}
}

// RegisterRoutes registers payee bank account routes on the given group
func (h *PayeeBankAccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/masterdata/bank-accounts")
	accounts.POST("", h.Create)
	accounts.GET("/:id", h.GetByID)
	accounts.PUT("/:id", h.Update)
	accounts.POST("/:id/default", h.SetDefault)
	accounts.POST("/:id/activate", h.Activate)
	accounts.POST("/:id/deactivate", h.Deactivate)

	payees := rg.Group("/masterdata/payees/:payeeId/bank-accounts")
	payees.GET("", h.ListByPayee)
	payees.GET("/default", h.GetDefaultForPayee)
}

// Create registers a bank account for a payee
func (h *PayeeBankAccountHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req masterdataapp.CreatePayeeBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	account, err := h.accountService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, account)
}

// GetByID retrieves an account by ID
func (h *PayeeBankAccountHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	accountID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), tenantID, accountID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// ListByPayee returns the accounts registered for a payee
func (h *PayeeBankAccountHandler) ListByPayee(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	payeeID, err := parseIDParam(c, "payeeId")
	if err != nil {
		h.BadRequest(c, "Invalid payee ID format")
		return
	}

	var filter masterdataapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	accounts, err := h.accountService.ListByPayee(c.Request.Context(), tenantID, payeeID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, accounts)
}

// GetDefaultForPayee returns the payee's default account
func (h *PayeeBankAccountHandler) GetDefaultForPayee(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	payeeID, err := parseIDParam(c, "payeeId")
	if err != nil {
		h.BadRequest(c, "Invalid payee ID format")
		return
	}

	account, err := h.accountService.GetDefaultForPayee(c.Request.Context(), tenantID, payeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// Update updates the mutable attributes of an account
func (h *PayeeBankAccountHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	accountID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return
	}

	var req masterdataapp.UpdatePayeeBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	account, err := h.accountService.Update(c.Request.Context(), tenantID, accountID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// SetDefault marks an account as the payee's default
func (h *PayeeBankAccountHandler) SetDefault(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	accountID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.SetDefault(c.Request.Context(), tenantID, accountID, req.Version, getUserRef(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// Activate reactivates an inactive account
func (h *PayeeBankAccountHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.accountService.Activate)
}

// Deactivate deactivates an active account
func (h *PayeeBankAccountHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.accountService.Deactivate)
}

func (h *PayeeBankAccountHandler) changeStatus(c *gin.Context, fn statusChangeFunc) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	accountID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := fn(c.Request.Context(), tenantID, accountID, req.Version, getUserRef(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
