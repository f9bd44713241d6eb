package masterdata

import (
	"context"
	"testing"

	"github.com/mdm/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWarehouseService_Create_Success(t *testing.T) {
	mockWarehouseRepo := new(MockWarehouseRepository)
	service := NewWarehouseService(mockWarehouseRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	sortOrder := 3

	mockWarehouseRepo.On("ExistsByNaturalKey", ctx, tenantID, "WH-MAIN", shared.Scope(nil)).Return(false, nil)
	mockWarehouseRepo.On("Create", ctx, mock.AnythingOfType("*masterdata.Warehouse")).Return(nil)

	result, err := service.Create(ctx, tenantID, CreateWarehouseRequest{
		Code:      "WH-MAIN",
		Name:      "Main Warehouse",
		Address:   "1 Depot Road",
		SortOrder: &sortOrder,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "WH-MAIN", result.Code)
	assert.Equal(t, "1 Depot Road", result.Address)
	assert.Equal(t, 3, result.SortOrder)
	assert.False(t, result.IsDefaultReceiving)
	mockWarehouseRepo.AssertExpectations(t)
}

func TestWarehouseService_SetDefaultReceiving_Success(t *testing.T) {
	mockWarehouseRepo := new(MockWarehouseRepository)
	service := NewWarehouseService(mockWarehouseRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	warehouse := createTestWarehouse(tenantID)

	mockWarehouseRepo.On("FindByIDForTenant", ctx, tenantID, warehouse.ID).Return(warehouse, nil)
	mockWarehouseRepo.On("SetDefaultReceiving", ctx, warehouse, 1).Return(nil)

	result, err := service.SetDefaultReceiving(ctx, tenantID, warehouse.ID, 1, nil)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	mockWarehouseRepo.AssertExpectations(t)
}

func TestWarehouseService_SetDefaultReceiving_InactiveWarehouse(t *testing.T) {
	mockWarehouseRepo := new(MockWarehouseRepository)
	service := NewWarehouseService(mockWarehouseRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	warehouse := createTestWarehouse(tenantID)
	warehouse.SetStatus(shared.StatusInactive)

	mockWarehouseRepo.On("FindByIDForTenant", ctx, tenantID, warehouse.ID).Return(warehouse, nil)

	result, err := service.SetDefaultReceiving(ctx, tenantID, warehouse.ID, 1, nil)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "WAREHOUSE_INACTIVE", domainErr.Code)
	mockWarehouseRepo.AssertNotCalled(t, "SetDefaultReceiving")
}

func TestWarehouseService_Deactivate_DefaultReceivingRejected(t *testing.T) {
	mockWarehouseRepo := new(MockWarehouseRepository)
	service := NewWarehouseService(mockWarehouseRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	warehouse := createTestWarehouse(tenantID)
	warehouse.IsDefaultReceiving = true

	mockWarehouseRepo.On("FindByIDForTenant", ctx, tenantID, warehouse.ID).Return(warehouse, nil)

	err := service.Deactivate(ctx, tenantID, warehouse.ID, 1, nil)

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CANNOT_DEACTIVATE_DEFAULT_RECEIVING", domainErr.Code)
	mockWarehouseRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestWarehouseService_Deactivate_Success(t *testing.T) {
	mockWarehouseRepo := new(MockWarehouseRepository)
	service := NewWarehouseService(mockWarehouseRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	warehouse := createTestWarehouse(tenantID)

	mockWarehouseRepo.On("FindByIDForTenant", ctx, tenantID, warehouse.ID).Return(warehouse, nil)
	mockWarehouseRepo.On("UpdateStatus", ctx, warehouse, 1).Return(nil)

	err := service.Deactivate(ctx, tenantID, warehouse.ID, 1, nil)

	assert.NoError(t, err)
	assert.Equal(t, shared.StatusInactive, warehouse.Status)
	mockWarehouseRepo.AssertExpectations(t)
}

func TestWarehouseService_GetDefaultReceiving_NotConfigured(t *testing.T) {
	mockWarehouseRepo := new(MockWarehouseRepository)
	service := NewWarehouseService(mockWarehouseRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()

	mockWarehouseRepo.On("FindDefaultReceiving", ctx, tenantID).
		Return(nil, shared.NewDomainError("WAREHOUSE_NOT_FOUND", "Warehouse not found"))

	result, err := service.GetDefaultReceiving(ctx, tenantID)

	assert.Error(t, err)
	assert.Nil(t, result)
	mockWarehouseRepo.AssertExpectations(t)
}
