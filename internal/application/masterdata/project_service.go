package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
)

// ProjectService handles project master data use cases
type ProjectService struct {
	projectRepo masterdata.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo masterdata.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// Create registers a new project
func (s *ProjectService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProjectRequest) (*ProjectResponse, error) {
	project, err := masterdata.NewProject(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.StartDate != nil || req.EndDate != nil {
		if err := project.Update(project.Name, req.StartDate, req.EndDate); err != nil {
			return nil, err
		}
	}

	exists, err := s.projectRepo.ExistsByNaturalKey(ctx, tenantID, project.Code, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("PROJECT_CODE_DUPLICATE", "A project with this code already exists")
	}

	if req.CreatedBy != nil {
		project.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return ToProjectResponse(project), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToProjectResponse(project), nil
}

// List retrieves projects with filtering and pagination
func (s *ProjectService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]ProjectResponse, int64, error) {
	repoFilter := toRepositoryFilter(filter)

	projects, err := s.projectRepo.FindAllForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.projectRepo.CountForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *ToProjectResponse(&projects[i])
	}
	return responses, total, nil
}

// Update modifies a project's mutable fields
func (s *ProjectService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	name := project.Name
	if req.Name != nil {
		name = *req.Name
	}
	startDate := project.StartDate
	if req.StartDate != nil {
		startDate = req.StartDate
	}
	endDate := project.EndDate
	if req.EndDate != nil {
		endDate = req.EndDate
	}
	if err := project.Update(name, startDate, endDate); err != nil {
		return nil, err
	}
	if req.UpdatedBy != nil {
		project.Touch(*req.UpdatedBy)
	}

	if err := s.projectRepo.Update(ctx, project, req.Version); err != nil {
		return nil, err
	}

	return ToProjectResponse(project), nil
}

// Activate reactivates a project
func (s *ProjectService) Activate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if project.Status == shared.StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Project is already active")
	}

	project.SetStatus(shared.StatusActive)
	if updatedBy != nil {
		project.Touch(*updatedBy)
	}
	return s.projectRepo.UpdateStatus(ctx, project, expectedVersion)
}

// Deactivate retires a project
func (s *ProjectService) Deactivate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if project.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Project is already inactive")
	}

	project.SetStatus(shared.StatusInactive)
	if updatedBy != nil {
		project.Touch(*updatedBy)
	}
	return s.projectRepo.UpdateStatus(ctx, project, expectedVersion)
}
