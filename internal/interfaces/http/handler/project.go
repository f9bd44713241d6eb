package handler

import (
	masterdataapp "github.com/mdm/backend/internal/application/masterdata"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project API endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *masterdataapp.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *masterdataapp.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// RegisterRoutes registers project routes on the given group
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/masterdata/projects")
	projects.POST("", h.Create)
	projects.GET("", h.List)
	projects.GET("/:id", h.GetByID)
	projects.PUT("/:id", h.Update)
	projects.POST("/:id/activate", h.Activate)
	projects.POST("/:id/deactivate", h.Deactivate)
}

// Create creates a new project
func (h *ProjectHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req masterdataapp.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = getUserRef(c)

	project, err := h.projectService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, project)
}

// List returns projects matching the filter
func (h *ProjectHandler) List(c *gin.Context) {
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

	projects, total, err := h.projectService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, projects, total, filter.Page, filter.PageSize)
}

// GetByID retrieves a project by ID
func (h *ProjectHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), tenantID, projectID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, project)
}

// Update updates the mutable attributes of a project
func (h *ProjectHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var req masterdataapp.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.UpdatedBy = getUserRef(c)

	project, err := h.projectService.Update(c.Request.Context(), tenantID, projectID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, project)
}

// Activate reactivates an inactive project
func (h *ProjectHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.projectService.Activate)
}

// Deactivate deactivates an active project
func (h *ProjectHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.projectService.Deactivate)
}

func (h *ProjectHandler) changeStatus(c *gin.Context, fn statusChangeFunc) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := fn(c.Request.Context(), tenantID, projectID, req.Version, getUserRef(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
