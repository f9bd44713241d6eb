package masterdata

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdm/backend/internal/domain/shared"
)

func TestWarehouseLifecycle(t *testing.T) {
	tenantID := uuid.New()

	t.Run("deactivates a non-default warehouse", func(t *testing.T) {
		wh, err := NewWarehouse(tenantID, "WH-EAST", "East Warehouse")
		require.NoError(t, err)

		err = wh.Deactivate()
		require.NoError(t, err)
		assert.Equal(t, shared.StatusInactive, wh.Status)
	})

	t.Run("refuses to deactivate the default receiving warehouse", func(t *testing.T) {
		wh, err := NewWarehouse(tenantID, "WH-MAIN", "Main Warehouse")
		require.NoError(t, err)
		wh.IsDefaultReceiving = true

		err = wh.Deactivate()
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CANNOT_DEACTIVATE_DEFAULT_RECEIVING", domainErr.Code)
		assert.Equal(t, shared.StatusActive, wh.Status)
	})

	t.Run("refuses to deactivate twice", func(t *testing.T) {
		wh, err := NewWarehouse(tenantID, "WH-EAST", "East Warehouse")
		require.NoError(t, err)
		require.NoError(t, wh.Deactivate())

		err = wh.Deactivate()
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_INACTIVE", domainErr.Code)
	})

	t.Run("reactivates an inactive warehouse", func(t *testing.T) {
		wh, err := NewWarehouse(tenantID, "WH-EAST", "East Warehouse")
		require.NoError(t, err)
		require.NoError(t, wh.Deactivate())

		err = wh.Activate()
		require.NoError(t, err)
		assert.Equal(t, shared.StatusActive, wh.Status)
	})

	t.Run("refuses to activate an active warehouse", func(t *testing.T) {
		wh, err := NewWarehouse(tenantID, "WH-EAST", "East Warehouse")
		require.NoError(t, err)

		err = wh.Activate()
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_ACTIVE", domainErr.Code)
	})
}

func TestNewWarehouse(t *testing.T) {
	tenantID := uuid.New()

	t.Run("fails with invalid code characters", func(t *testing.T) {
		_, err := NewWarehouse(tenantID, "WH EAST", "East Warehouse")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "letters, numbers, underscores, and hyphens")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewWarehouse(tenantID, "WH-EAST", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})
}
