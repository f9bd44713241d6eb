package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// ShipTo represents a delivery destination site
type ShipTo struct {
	shared.TenantAggregateRoot
	Code       string `gorm:"type:varchar(50);not null;uniqueIndex:idx_shipto_tenant_code,priority:2"`
	Name       string `gorm:"type:varchar(200);not null"`
	PostalCode string `gorm:"type:varchar(10)"`
	Address    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ShipTo) TableName() string {
	return "ship_to_sites"
}

// NewShipTo creates a new ship-to site with required fields
func NewShipTo(tenantID uuid.UUID, code, name string) (*ShipTo, error) {
	if err := validateCode(code, "Ship-to code"); err != nil {
		return nil, err
	}
	if err := validateName(name, "Ship-to name"); err != nil {
		return nil, err
	}

	return &ShipTo{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
	}, nil
}

// Update updates the ship-to site's mutable fields
func (s *ShipTo) Update(name, postalCode, address string) error {
	if err := validateName(name, "Ship-to name"); err != nil {
		return err
	}
	if len(postalCode) > 10 {
		return shared.NewDomainError("INVALID_POSTAL_CODE", "Postal code cannot exceed 10 characters")
	}
	s.Name = name
	s.PostalCode = postalCode
	s.Address = address
	s.UpdatedAt = time.Now()
	return nil
}
