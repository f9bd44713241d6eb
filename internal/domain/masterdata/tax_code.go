package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TaxCode represents a tax rate classification
type TaxCode struct {
	shared.TenantAggregateRoot
	Code      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_taxcode_tenant_code,priority:2"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Rate      decimal.Decimal `gorm:"type:decimal(5,4);not null"`
	ValidFrom *time.Time      `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (TaxCode) TableName() string {
	return "tax_codes"
}

// NewTaxCode creates a new tax code with required fields
func NewTaxCode(tenantID uuid.UUID, code, name string, rate decimal.Decimal) (*TaxCode, error) {
	if err := validateCode(code, "Tax code"); err != nil {
		return nil, err
	}
	if err := validateName(name, "Tax name"); err != nil {
		return nil, err
	}
	if err := validateRate(rate); err != nil {
		return nil, err
	}

	return &TaxCode{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
		Rate:                rate,
	}, nil
}

// Update updates the tax code's mutable fields
func (t *TaxCode) Update(name string, rate decimal.Decimal, validFrom *time.Time) error {
	if err := validateName(name, "Tax name"); err != nil {
		return err
	}
	if err := validateRate(rate); err != nil {
		return err
	}
	t.Name = name
	t.Rate = rate
	t.ValidFrom = validFrom
	t.UpdatedAt = time.Now()
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Tax rate cannot be negative")
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return shared.NewDomainError("INVALID_RATE", "Tax rate cannot exceed 100%")
	}
	return nil
}
