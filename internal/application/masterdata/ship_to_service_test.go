package masterdata

import (
	"context"
	"testing"

	"github.com/mdm/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestShipToService_Create_Success(t *testing.T) {
	mockShipToRepo := new(MockShipToRepository)
	service := NewShipToService(mockShipToRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	req := CreateShipToRequest{
		Code:       "SITE-001",
		Name:       "Central Depot",
		PostalCode: "1000001",
		Address:    "1-1 Harbor Street",
	}

	mockShipToRepo.On("ExistsByNaturalKey", ctx, tenantID, "SITE-001", shared.Scope(nil)).Return(false, nil)
	mockShipToRepo.On("Create", ctx, mock.AnythingOfType("*masterdata.ShipTo")).Return(nil)

	result, err := service.Create(ctx, tenantID, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "SITE-001", result.Code)
	assert.Equal(t, "1000001", result.PostalCode)
	assert.Equal(t, "1-1 Harbor Street", result.Address)
	assert.Equal(t, "active", result.Status)
	assert.Equal(t, 1, result.Version)
	mockShipToRepo.AssertExpectations(t)
}

func TestShipToService_Create_DuplicateCode(t *testing.T) {
	mockShipToRepo := new(MockShipToRepository)
	service := NewShipToService(mockShipToRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()

	mockShipToRepo.On("ExistsByNaturalKey", ctx, tenantID, "SITE-001", shared.Scope(nil)).Return(true, nil)

	result, err := service.Create(ctx, tenantID, CreateShipToRequest{
		Code: "SITE-001",
		Name: "Central Depot",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SHIP_TO_CODE_DUPLICATE", domainErr.Code)
	mockShipToRepo.AssertNotCalled(t, "Create")
}

func TestShipToService_Create_PostalCodeTooLong(t *testing.T) {
	mockShipToRepo := new(MockShipToRepository)
	service := NewShipToService(mockShipToRepo)

	ctx := context.Background()
	result, err := service.Create(ctx, newTestTenantID(), CreateShipToRequest{
		Code:       "SITE-001",
		Name:       "Central Depot",
		PostalCode: "12345678901",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_POSTAL_CODE", domainErr.Code)
	mockShipToRepo.AssertNotCalled(t, "ExistsByNaturalKey")
}

func TestShipToService_Update_VersionConflict(t *testing.T) {
	mockShipToRepo := new(MockShipToRepository)
	service := NewShipToService(mockShipToRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	site := createTestShipTo(tenantID)
	newName := "Renamed Depot"

	mockShipToRepo.On("FindByIDForTenant", ctx, tenantID, site.ID).Return(site, nil)
	mockShipToRepo.On("Update", ctx, site, 2).Return(shared.ErrConcurrencyConflict)

	result, err := service.Update(ctx, tenantID, site.ID, UpdateShipToRequest{
		Name:    &newName,
		Version: 2,
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONCURRENCY_CONFLICT", domainErr.Code)
	mockShipToRepo.AssertExpectations(t)
}

func TestShipToService_Deactivate_AlreadyInactive(t *testing.T) {
	mockShipToRepo := new(MockShipToRepository)
	service := NewShipToService(mockShipToRepo)

	ctx := context.Background()
	tenantID := newTestTenantID()
	site := createTestShipTo(tenantID)
	site.SetStatus(shared.StatusInactive)

	mockShipToRepo.On("FindByIDForTenant", ctx, tenantID, site.ID).Return(site, nil)

	err := service.Deactivate(ctx, tenantID, site.ID, 1, nil)

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_INACTIVE", domainErr.Code)
	mockShipToRepo.AssertNotCalled(t, "UpdateStatus")
}
