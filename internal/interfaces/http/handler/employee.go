package handler

import (
	masterdataapp "github.com/mdm/backend/internal/application/masterdata"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee API endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *masterdataapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *masterdataapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// RegisterRoutes registers employee routes on the given group
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/masterdata/employees")
	employees.POST("", h.Create)
	employees.GET("", h.List)
	employees.GET("/:id", h.GetByID)
	employees.PUT("/:id", h.Update)
	employees.POST("/:id/activate", h.Activate)
	employees.POST("/:id/deactivate", h.Deactivate)
}

// Create creates a new employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req masterdataapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	employee, err := h.employeeService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, employee)
}

// List returns employees matching the filter
func (h *EmployeeHandler) List(c *gin.Context) {
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

	employees, total, err := h.employeeService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, employees, total, filter.Page, filter.PageSize)
}

// GetByID retrieves an employee by ID
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), tenantID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// Update updates the mutable attributes of an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req masterdataapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	employee, err := h.employeeService.Update(c.Request.Context(), tenantID, employeeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// Activate reactivates an inactive employee
func (h *EmployeeHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.employeeService.Activate)
}

// Deactivate deactivates an active employee
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.employeeService.Deactivate)
}

func (h *EmployeeHandler) changeStatus(c *gin.Context, fn statusChangeFunc) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := fn(c.Request.Context(), tenantID, employeeID, req.Version, getUserRef(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
