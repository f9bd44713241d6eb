package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// Warehouse represents a storage location. Exactly one warehouse per tenant
// may be the default receiving site; the default cannot be deactivated until
// another warehouse takes over the flag.
type Warehouse struct {
	shared.TenantAggregateRoot
	Code               string `gorm:"type:varchar(50);not null;uniqueIndex:idx_warehouse_tenant_code,priority:2"`
	Name               string `gorm:"type:varchar(200);not null"`
	Address            string `gorm:"type:text"`
	IsDefaultReceiving bool   `gorm:"not null;default:false"`
	SortOrder          int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse with required fields
func NewWarehouse(tenantID uuid.UUID, code, name string) (*Warehouse, error) {
	if err := validateCode(code, "Warehouse code"); err != nil {
		return nil, err
	}
	if err := validateName(name, "Warehouse name"); err != nil {
		return nil, err
	}

	return &Warehouse{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
	}, nil
}

// Update updates the warehouse's mutable fields
func (w *Warehouse) Update(name, address string) error {
	if err := validateName(name, "Warehouse name"); err != nil {
		return err
	}
	w.Name = name
	w.Address = address
	w.UpdatedAt = time.Now()
	return nil
}

// SetSortOrder sets the display order of the warehouse
func (w *Warehouse) SetSortOrder(order int) {
	w.SortOrder = order
	w.UpdatedAt = time.Now()
}

// Deactivate marks the warehouse inactive. The default receiving warehouse
// must hand off the flag first.
func (w *Warehouse) Deactivate() error {
	if w.IsDefaultReceiving {
		return shared.NewDomainError("CANNOT_DEACTIVATE_DEFAULT_RECEIVING", "Cannot deactivate the default receiving warehouse")
	}
	if w.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Warehouse is already inactive")
	}
	w.Status = shared.StatusInactive
	w.UpdatedAt = time.Now()
	return nil
}

// Activate marks the warehouse active
func (w *Warehouse) Activate() error {
	if w.Status == shared.StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Warehouse is already active")
	}
	w.Status = shared.StatusActive
	w.UpdatedAt = time.Now()
	return nil
}

func validateCode(code, label string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", label+" cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", label+" cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", label+" can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
