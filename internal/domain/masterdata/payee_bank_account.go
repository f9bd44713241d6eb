package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// AccountType represents the kind of bank account
type AccountType string

const (
	AccountTypeOrdinary AccountType = "ordinary"
	AccountTypeChecking AccountType = "checking"
)

// IsValid reports whether t is a known account type
func (t AccountType) IsValid() bool {
	return t == AccountTypeOrdinary || t == AccountTypeChecking
}

// PayeeBankAccount represents a payee's remittance account. Account numbers
// are unique per payee, and each payee has at most one default account.
type PayeeBankAccount struct {
	shared.TenantAggregateRoot
	PayeeID       uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:idx_account_payee_number,priority:2"`
	BankID        uuid.UUID   `gorm:"type:uuid;not null"`
	BranchID      uuid.UUID   `gorm:"type:uuid;not null"`
	AccountType   AccountType `gorm:"type:varchar(20);not null;default:'ordinary'"`
	AccountNumber string      `gorm:"type:varchar(20);not null;uniqueIndex:idx_account_payee_number,priority:3"`
	AccountHolder string      `gorm:"type:varchar(200);not null"`
	IsDefault     bool        `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (PayeeBankAccount) TableName() string {
	return "payee_bank_accounts"
}

// NewPayeeBankAccount creates a new payee bank account
func NewPayeeBankAccount(tenantID, payeeID, bankID, branchID uuid.UUID, accountType AccountType, number, holder string) (*PayeeBankAccount, error) {
	if payeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payee ID is required")
	}
	if bankID == uuid.Nil || branchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Bank and branch are required")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Unknown account type")
	}
	if err := validateAccountNumber(number); err != nil {
		return nil, err
	}
	if err := validateName(holder, "Account holder"); err != nil {
		return nil, err
	}

	return &PayeeBankAccount{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PayeeID:             payeeID,
		BankID:              bankID,
		BranchID:            branchID,
		AccountType:         accountType,
		AccountNumber:       number,
		AccountHolder:       holder,
	}, nil
}

// Update updates the account's mutable fields
func (a *PayeeBankAccount) Update(accountType AccountType, holder string) error {
	if !accountType.IsValid() {
		return shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Unknown account type")
	}
	if err := validateName(holder, "Account holder"); err != nil {
		return err
	}
	a.AccountType = accountType
	a.AccountHolder = holder
	a.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the account inactive. The payee's default account must
// hand off the flag first.
func (a *PayeeBankAccount) Deactivate() error {
	if a.IsDefault {
		return shared.NewDomainError("CANNOT_DEACTIVATE_DEFAULT_ACCOUNT", "Cannot deactivate the default bank account")
	}
	if a.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Account is already inactive")
	}
	a.Status = shared.StatusInactive
	a.UpdatedAt = time.Now()
	return nil
}

func validateAccountNumber(number string) error {
	if number == "" {
		return shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number cannot be empty")
	}
	if len(number) > 20 {
		return shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number cannot exceed 20 characters")
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number must be numeric")
		}
	}
	return nil
}
