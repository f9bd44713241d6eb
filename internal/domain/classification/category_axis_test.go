package classification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdm/backend/internal/domain/shared"
)

func TestNewCategoryAxis(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates axis with valid inputs", func(t *testing.T) {
		axis, err := NewCategoryAxis(tenantID, "PRODUCT_FAMILY", "Product Family", EntityKindItem, true)
		require.NoError(t, err)
		require.NotNil(t, axis)

		assert.Equal(t, tenantID, axis.TenantID)
		assert.Equal(t, "PRODUCT_FAMILY", axis.Code)
		assert.Equal(t, "Product Family", axis.Name)
		assert.Equal(t, EntityKindItem, axis.TargetEntityKind)
		assert.True(t, axis.SupportsHierarchy)
		assert.Equal(t, shared.StatusActive, axis.Status)
		assert.Equal(t, 1, axis.Version)
		assert.NotEmpty(t, axis.ID)
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		axis, err := NewCategoryAxis(tenantID, "product_family", "Product Family", EntityKindItem, false)
		require.NoError(t, err)
		assert.Equal(t, "PRODUCT_FAMILY", axis.Code)
	})

	t.Run("allows flat supplier axis", func(t *testing.T) {
		axis, err := NewCategoryAxis(tenantID, "SUPPLIER_TIER", "Supplier Tier", EntityKindSupplier, false)
		require.NoError(t, err)
		assert.False(t, axis.SupportsHierarchy)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		_, err := NewCategoryAxis(tenantID, "", "Product Family", EntityKindItem, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code cannot be empty")
	})

	t.Run("fails with code too long", func(t *testing.T) {
		longCode := "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890ABCDEFGHIJKLMNOP"
		_, err := NewCategoryAxis(tenantID, longCode, "Product Family", EntityKindItem, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 50 characters")
	})

	t.Run("fails with invalid code characters", func(t *testing.T) {
		_, err := NewCategoryAxis(tenantID, "PRODUCT FAMILY", "Product Family", EntityKindItem, false)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CODE", domainErr.Code)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCategoryAxis(tenantID, "PRODUCT_FAMILY", "", EntityKindItem, false)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})

	t.Run("fails with unknown entity kind", func(t *testing.T) {
		_, err := NewCategoryAxis(tenantID, "PRODUCT_FAMILY", "Product Family", EntityKind("CUSTOMER"), false)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ENTITY_KIND", domainErr.Code)
	})

	t.Run("rejects hierarchy on supplier axis", func(t *testing.T) {
		_, err := NewCategoryAxis(tenantID, "SUPPLIER_TIER", "Supplier Tier", EntityKindSupplier, true)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "HIERARCHY_NOT_ALLOWED", domainErr.Code)
	})
}

func TestCategoryAxisUpdate(t *testing.T) {
	tenantID := uuid.New()

	t.Run("updates name", func(t *testing.T) {
		axis, err := NewCategoryAxis(tenantID, "PRODUCT_FAMILY", "Product Family", EntityKindItem, false)
		require.NoError(t, err)

		err = axis.Update("Product Line")
		require.NoError(t, err)
		assert.Equal(t, "Product Line", axis.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		axis, err := NewCategoryAxis(tenantID, "PRODUCT_FAMILY", "Product Family", EntityKindItem, false)
		require.NoError(t, err)

		err = axis.Update("")
		require.Error(t, err)
		assert.Equal(t, "Product Family", axis.Name)
	})
}

func TestCategoryAxisEnableHierarchy(t *testing.T) {
	tenantID := uuid.New()

	t.Run("enables hierarchy on item axis", func(t *testing.T) {
		axis, err := NewCategoryAxis(tenantID, "PRODUCT_FAMILY", "Product Family", EntityKindItem, false)
		require.NoError(t, err)

		err = axis.EnableHierarchy()
		require.NoError(t, err)
		assert.True(t, axis.SupportsHierarchy)
	})

	t.Run("rejects hierarchy on supplier axis", func(t *testing.T) {
		axis, err := NewCategoryAxis(tenantID, "SUPPLIER_TIER", "Supplier Tier", EntityKindSupplier, false)
		require.NoError(t, err)

		err = axis.EnableHierarchy()
		require.Error(t, err)
		assert.False(t, axis.SupportsHierarchy)
	})
}

func TestCategoryAxisClassifies(t *testing.T) {
	tenantID := uuid.New()

	axis, err := NewCategoryAxis(tenantID, "PRODUCT_FAMILY", "Product Family", EntityKindItem, false)
	require.NoError(t, err)

	assert.True(t, axis.Classifies(EntityKindItem))
	assert.False(t, axis.Classifies(EntityKindSupplier))
}

func TestEntityKindIsValid(t *testing.T) {
	assert.True(t, EntityKindItem.IsValid())
	assert.True(t, EntityKindSupplier.IsValid())
	assert.False(t, EntityKind("CUSTOMER").IsValid())
	assert.False(t, EntityKind("").IsValid())
}
