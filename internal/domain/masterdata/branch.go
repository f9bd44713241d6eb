package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// Branch represents a bank branch. Branch codes are unique within their bank,
// not across the whole tenant.
type Branch struct {
	shared.TenantAggregateRoot
	BankID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_branch_bank_code,priority:2"`
	Code   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_branch_bank_code,priority:3"`
	Name   string    `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (Branch) TableName() string {
	return "branches"
}

// NewBranch creates a new branch under a bank
func NewBranch(tenantID, bankID uuid.UUID, code, name string) (*Branch, error) {
	if bankID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Bank ID is required")
	}
	if err := validateBranchCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name, "Branch name"); err != nil {
		return nil, err
	}

	return &Branch{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BankID:              bankID,
		Code:                code,
		Name:                name,
	}, nil
}

// Update updates the branch's mutable fields
func (b *Branch) Update(name string) error {
	if err := validateName(name, "Branch name"); err != nil {
		return err
	}
	b.Name = name
	b.UpdatedAt = time.Now()
	return nil
}

func validateBranchCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Branch code cannot be empty")
	}
	if len(code) > 10 {
		return shared.NewDomainError("INVALID_CODE", "Branch code cannot exceed 10 characters")
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return shared.NewDomainError("INVALID_CODE", "Branch code must be numeric")
		}
	}
	return nil
}
