package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
)

// TaxCodeService handles tax code master data use cases
type TaxCodeService struct {
	taxCodeRepo masterdata.TaxCodeRepository
}

// NewTaxCodeService creates a new tax code service
func NewTaxCodeService(taxCodeRepo masterdata.TaxCodeRepository) *TaxCodeService {
	return &TaxCodeService{
		taxCodeRepo: taxCodeRepo,
	}
}

// Create registers a new tax code
func (s *TaxCodeService) Create(ctx context.Context, tenantID uuid.UUID, req CreateTaxCodeRequest) (*TaxCodeResponse, error) {
	taxCode, err := masterdata.NewTaxCode(tenantID, req.Code, req.Name, req.Rate)
	if err != nil {
		return nil, err
	}
	if req.ValidFrom != nil {
		taxCode.ValidFrom = req.ValidFrom
	}

	exists, err := s.taxCodeRepo.ExistsByNaturalKey(ctx, tenantID, taxCode.Code, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("TAX_CODE_DUPLICATE", "A tax code with this code already exists")
	}

	if req.CreatedBy != nil {
		taxCode.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.taxCodeRepo.Create(ctx, taxCode); err != nil {
		return nil, err
	}

	return ToTaxCodeResponse(taxCode), nil
}

// GetByID retrieves a tax code by ID
func (s *TaxCodeService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*TaxCodeResponse, error) {
	taxCode, err := s.taxCodeRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToTaxCodeResponse(taxCode), nil
}

// List retrieves tax codes with filtering and pagination
func (s *TaxCodeService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]TaxCodeResponse, int64, error) {
	repoFilter := toRepositoryFilter(filter)

	taxCodes, err := s.taxCodeRepo.FindAllForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.taxCodeRepo.CountForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TaxCodeResponse, len(taxCodes))
	for i := range taxCodes {
		responses[i] = *ToTaxCodeResponse(&taxCodes[i])
	}
	return responses, total, nil
}

// Update modifies a tax code's mutable fields
func (s *TaxCodeService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateTaxCodeRequest) (*TaxCodeResponse, error) {
	taxCode, err := s.taxCodeRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	name := taxCode.Name
	if req.Name != nil {
		name = *req.Name
	}
	rate := taxCode.Rate
	if req.Rate != nil {
		rate = *req.Rate
	}
	validFrom := taxCode.ValidFrom
	if req.ValidFrom != nil {
		validFrom = req.ValidFrom
	}
	if err := taxCode.Update(name, rate, validFrom); err != nil {
		return nil, err
	}
	if req.UpdatedBy != nil {
		taxCode.Touch(*req.UpdatedBy)
	}

	if err := s.taxCodeRepo.Update(ctx, taxCode, req.Version); err != nil {
		return nil, err
	}

	return ToTaxCodeResponse(taxCode), nil
}

// Activate reactivates a tax code
func (s *TaxCodeService) Activate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	taxCode, err := s.taxCodeRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if taxCode.Status == shared.StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Tax code is already active")
	}

	taxCode.SetStatus(shared.StatusActive)
	if updatedBy != nil {
		taxCode.Touch(*updatedBy)
	}
	return s.taxCodeRepo.UpdateStatus(ctx, taxCode, expectedVersion)
}

// Deactivate retires a tax code
func (s *TaxCodeService) Deactivate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	taxCode, err := s.taxCodeRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if taxCode.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Tax code is already inactive")
	}

	taxCode.SetStatus(shared.StatusInactive)
	if updatedBy != nil {
		taxCode.Touch(*updatedBy)
	}
	return s.taxCodeRepo.UpdateStatus(ctx, taxCode, expectedVersion)
}
