package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
)

// ShipToService handles ship-to site master data use cases
type ShipToService struct {
	shipToRepo masterdata.ShipToRepository
}

// NewShipToService creates a new ship-to service
func NewShipToService(shipToRepo masterdata.ShipToRepository) *ShipToService {
	return &ShipToService{
		shipToRepo: shipToRepo,
	}
}

// Create registers a new ship-to site
func (s *ShipToService) Create(ctx context.Context, tenantID uuid.UUID, req CreateShipToRequest) (*ShipToResponse, error) {
	site, err := masterdata.NewShipTo(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.PostalCode != "" || req.Address != "" {
		if err := site.Update(site.Name, req.PostalCode, req.Address); err != nil {
			return nil, err
		}
	}

	exists, err := s.shipToRepo.ExistsByNaturalKey(ctx, tenantID, site.Code, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SHIP_TO_CODE_DUPLICATE", "A ship-to site with this code already exists")
	}

	if req.CreatedBy != nil {
		site.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.shipToRepo.Create(ctx, site); err != nil {
		return nil, err
	}

	return ToShipToResponse(site), nil
}

// GetByID retrieves a ship-to site by ID
func (s *ShipToService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ShipToResponse, error) {
	site, err := s.shipToRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToShipToResponse(site), nil
}

// List retrieves ship-to sites with filtering and pagination
func (s *ShipToService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]ShipToResponse, int64, error) {
	repoFilter := toRepositoryFilter(filter)

	sites, err := s.shipToRepo.FindAllForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.shipToRepo.CountForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ShipToResponse, len(sites))
	for i := range sites {
		responses[i] = *ToShipToResponse(&sites[i])
	}
	return responses, total, nil
}

// Update modifies a ship-to site's mutable fields
func (s *ShipToService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateShipToRequest) (*ShipToResponse, error) {
	site, err := s.shipToRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	name := site.Name
	if req.Name != nil {
		name = *req.Name
	}
	postalCode := site.PostalCode
	if req.PostalCode != nil {
		postalCode = *req.PostalCode
	}
	address := site.Address
	if req.Address != nil {
		address = *req.Address
	}
	if err := site.Update(name, postalCode, address); err != nil {
		return nil, err
	}
	if req.UpdatedBy != nil {
		site.Touch(*req.UpdatedBy)
	}

	if err := s.shipToRepo.Update(ctx, site, req.Version); err != nil {
		return nil, err
	}

	return ToShipToResponse(site), nil
}

// Activate reactivates a ship-to site
func (s *ShipToService) Activate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	site, err := s.shipToRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if site.Status == shared.StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Ship-to site is already active")
	}

	site.SetStatus(shared.StatusActive)
	if updatedBy != nil {
		site.Touch(*updatedBy)
	}
	return s.shipToRepo.UpdateStatus(ctx, site, expectedVersion)
}

// Deactivate retires a ship-to site
func (s *ShipToService) Deactivate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	site, err := s.shipToRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if site.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Ship-to site is already inactive")
	}

	site.SetStatus(shared.StatusInactive)
	if updatedBy != nil {
		site.Touch(*updatedBy)
	}
	return s.shipToRepo.UpdateStatus(ctx, site, expectedVersion)
}
