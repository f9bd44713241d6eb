package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// Bank represents a financial institution in the master data
type Bank struct {
	shared.TenantAggregateRoot
	Code      string `gorm:"type:varchar(10);not null;uniqueIndex:idx_bank_tenant_code,priority:2"`
	Name      string `gorm:"type:varchar(200);not null"`
	SwiftCode string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (Bank) TableName() string {
	return "banks"
}

// NewBank creates a new bank with required fields
func NewBank(tenantID uuid.UUID, code, name string) (*Bank, error) {
	if err := validateBankCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name, "Bank name"); err != nil {
		return nil, err
	}

	return &Bank{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
	}, nil
}

// Update updates the bank's mutable fields
func (b *Bank) Update(name, swiftCode string) error {
	if err := validateName(name, "Bank name"); err != nil {
		return err
	}
	if len(swiftCode) > 20 {
		return shared.NewDomainError("INVALID_SWIFT_CODE", "SWIFT code cannot exceed 20 characters")
	}
	b.Name = name
	b.SwiftCode = swiftCode
	b.UpdatedAt = time.Now()
	return nil
}

func validateBankCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Bank code cannot be empty")
	}
	if len(code) > 10 {
		return shared.NewDomainError("INVALID_CODE", "Bank code cannot exceed 10 characters")
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return shared.NewDomainError("INVALID_CODE", "Bank code must be numeric")
		}
	}
	return nil
}

func validateName(name, label string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", label+" cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", label+" cannot exceed 200 characters")
	}
	return nil
}
