package classification

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/classification"
	"github.com/mdm/backend/internal/domain/shared"
)

// CategoryAxisService handles classification axis use cases
type CategoryAxisService struct {
	axisRepo classification.CategoryAxisRepository
}

// NewCategoryAxisService creates a new category axis service
func NewCategoryAxisService(axisRepo classification.CategoryAxisRepository) *CategoryAxisService {
	return &CategoryAxisService{
		axisRepo: axisRepo,
	}
}

// Create registers a new classification axis
func (s *CategoryAxisService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCategoryAxisRequest) (*CategoryAxisResponse, error) {
	axis, err := classification.NewCategoryAxis(tenantID, req.Code, req.Name, classification.EntityKind(req.TargetEntityKind), req.SupportsHierarchy)
	if err != nil {
		return nil, err
	}

	exists, err := s.axisRepo.ExistsByCode(ctx, tenantID, axis.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("AXIS_CODE_DUPLICATE", "An axis with this code already exists")
	}

	if req.DisplayOrder != nil {
		axis.SetDisplayOrder(*req.DisplayOrder)
	}
	if req.CreatedBy != nil {
		axis.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.axisRepo.Create(ctx, axis); err != nil {
		return nil, err
	}

	return ToCategoryAxisResponse(axis), nil
}

// GetByID retrieves an axis by ID
func (s *CategoryAxisService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*CategoryAxisResponse, error) {
	axis, err := s.axisRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryAxisResponse(axis), nil
}

// GetByCode retrieves an axis by its code
func (s *CategoryAxisService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*CategoryAxisResponse, error) {
	axis, err := s.axisRepo.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	return ToCategoryAxisResponse(axis), nil
}

// List retrieves axes with filtering and pagination
func (s *CategoryAxisService) List(ctx context.Context, tenantID uuid.UUID, filter CategoryAxisListFilter) ([]CategoryAxisResponse, int64, error) {
	sharedFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		sharedFilter.Filters["status"] = filter.Status
	}
	if filter.TargetEntityKind != "" {
		sharedFilter.Filters["target_entity_kind"] = filter.TargetEntityKind
	}

	axes, err := s.axisRepo.FindAllForTenant(ctx, tenantID, sharedFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.axisRepo.CountForTenant(ctx, tenantID, sharedFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CategoryAxisResponse, len(axes))
	for i := range axes {
		responses[i] = *ToCategoryAxisResponse(&axes[i])
	}
	return responses, total, nil
}

// Update modifies the mutable fields of an axis. The caller's expected
// version must match the stored one or the update is rejected.
func (s *CategoryAxisService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateCategoryAxisRequest) (*CategoryAxisResponse, error) {
	axis, err := s.axisRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil && *req.Code != axis.Code {
		return nil, shared.NewDomainError("AXIS_CODE_IMMUTABLE", "Axis code cannot be changed after creation")
	}
	if req.TargetEntityKind != nil && classification.EntityKind(*req.TargetEntityKind) != axis.TargetEntityKind {
		return nil, shared.NewDomainError("TARGET_ENTITY_KIND_IMMUTABLE", "Target entity kind cannot be changed after creation")
	}

	if req.Name != nil {
		if err := axis.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.DisplayOrder != nil {
		axis.SetDisplayOrder(*req.DisplayOrder)
	}
	if req.SupportsHierarchy != nil {
		if *req.SupportsHierarchy && !axis.SupportsHierarchy {
			if err := axis.EnableHierarchy(); err != nil {
				return nil, err
			}
		}
		if !*req.SupportsHierarchy && axis.SupportsHierarchy {
			return nil, shared.NewDomainError("HIERARCHY_CANNOT_BE_DISABLED", "Hierarchy support cannot be disabled once enabled")
		}
	}
	if req.UpdatedBy != nil {
		axis.Touch(*req.UpdatedBy)
	}

	if err := s.axisRepo.Update(ctx, axis, req.Version); err != nil {
		return nil, err
	}

	return ToCategoryAxisResponse(axis), nil
}

// Activate reactivates an axis
func (s *CategoryAxisService) Activate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	axis, err := s.axisRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if axis.Status == shared.StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Axis is already active")
	}

	axis.SetStatus(shared.StatusActive)
	if updatedBy != nil {
		axis.Touch(*updatedBy)
	}
	return s.axisRepo.UpdateStatus(ctx, axis, expectedVersion)
}

// Deactivate retires an axis. Existing assignments stay untouched; new
// assignments against an inactive axis are rejected at assignment time.
func (s *CategoryAxisService) Deactivate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	axis, err := s.axisRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if axis.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Axis is already inactive")
	}

	axis.SetStatus(shared.StatusInactive)
	if updatedBy != nil {
		axis.Touch(*updatedBy)
	}
	return s.axisRepo.UpdateStatus(ctx, axis, expectedVersion)
}
