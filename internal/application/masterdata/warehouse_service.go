package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
)

// WarehouseService handles warehouse master data use cases
type WarehouseService struct {
	warehouseRepo masterdata.WarehouseRepository
}

// NewWarehouseService creates a new warehouse service
func NewWarehouseService(warehouseRepo masterdata.WarehouseRepository) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
	}
}

// Create registers a new warehouse
func (s *WarehouseService) Create(ctx context.Context, tenantID uuid.UUID, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := masterdata.NewWarehouse(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	exists, err := s.warehouseRepo.ExistsByNaturalKey(ctx, tenantID, warehouse.Code, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("WAREHOUSE_CODE_DUPLICATE", "A warehouse with this code already exists")
	}

	if req.Address != "" {
		warehouse.Address = req.Address
	}
	if req.SortOrder != nil {
		warehouse.SetSortOrder(*req.SortOrder)
	}
	if req.CreatedBy != nil {
		warehouse.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}

	return ToWarehouseResponse(warehouse), nil
}

// GetByID retrieves a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToWarehouseResponse(warehouse), nil
}

// GetDefaultReceiving retrieves the tenant's default receiving warehouse
func (s *WarehouseService) GetDefaultReceiving(ctx context.Context, tenantID uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindDefaultReceiving(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToWarehouseResponse(warehouse), nil
}

// List retrieves warehouses with filtering and pagination
func (s *WarehouseService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]WarehouseResponse, int64, error) {
	repoFilter := toRepositoryFilter(filter)

	warehouses, err := s.warehouseRepo.FindAllForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.warehouseRepo.CountForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]WarehouseResponse, len(warehouses))
	for i := range warehouses {
		responses[i] = *ToWarehouseResponse(&warehouses[i])
	}
	return responses, total, nil
}

// Update modifies a warehouse's mutable fields
func (s *WarehouseService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	name := warehouse.Name
	if req.Name != nil {
		name = *req.Name
	}
	address := warehouse.Address
	if req.Address != nil {
		address = *req.Address
	}
	if err := warehouse.Update(name, address); err != nil {
		return nil, err
	}
	if req.SortOrder != nil {
		warehouse.SetSortOrder(*req.SortOrder)
	}
	if req.UpdatedBy != nil {
		warehouse.Touch(*req.UpdatedBy)
	}

	if err := s.warehouseRepo.Update(ctx, warehouse, req.Version); err != nil {
		return nil, err
	}

	return ToWarehouseResponse(warehouse), nil
}

// SetDefaultReceiving makes the warehouse the tenant's default receiving site.
// The previous default hands off the flag in the same transaction.
func (s *WarehouseService) SetDefaultReceiving(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if warehouse.Status != shared.StatusActive {
		return nil, shared.NewDomainError("WAREHOUSE_INACTIVE", "Cannot make an inactive warehouse the default receiving site")
	}

	if updatedBy != nil {
		warehouse.Touch(*updatedBy)
	}
	if err := s.warehouseRepo.SetDefaultReceiving(ctx, warehouse, expectedVersion); err != nil {
		return nil, err
	}

	return ToWarehouseResponse(warehouse), nil
}

// Activate reactivates a warehouse
func (s *WarehouseService) Activate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	warehouse, err := s.warehouseRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := warehouse.Activate(); err != nil {
		return err
	}
	if updatedBy != nil {
		warehouse.Touch(*updatedBy)
	}
	return s.warehouseRepo.UpdateStatus(ctx, warehouse, expectedVersion)
}

// Deactivate retires a warehouse. The default receiving warehouse must hand
// off the flag before it can be deactivated.
func (s *WarehouseService) Deactivate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	warehouse, err := s.warehouseRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := warehouse.Deactivate(); err != nil {
		return err
	}
	if updatedBy != nil {
		warehouse.Touch(*updatedBy)
	}
	return s.warehouseRepo.UpdateStatus(ctx, warehouse, expectedVersion)
}
